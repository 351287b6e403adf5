// Package models defines the core domain models for TableRound.
//
// # Models
//
//   - Group: a dining table; members order food together and check out once
//   - Round: one ordering cycle of a group (ordinary) or the checkout
//     correction round (extra)
//   - RoundItem: an order line, either private to its creator or shared
//   - GroupMenuItem: a dish in the group's catalog
//   - RestaurantMenu / UserMenuLink: menu templates saved from settled groups
//   - User: registered account; members and participants reference user IDs
//
// # Design Principles
//
// 1. **Integer money**: every price and amount is an int64 in the smallest
// currency unit.
// 2. **Avoid circular references**: relationships use ID strings, never pointers.
// 3. **Derived totals**: nothing stores a member's total; it is recomputed from
// lines and, for locked shared lines, their frozen amounts.
// 4. **Versioned aggregates**: Group, Round and RoundItem carry a Version used by
// the store for compare-and-swap updates.
package models
