package dining

import (
	"context"

	"github.com/mmynk/tableround/internal/calculator"
	"github.com/mmynk/tableround/internal/models"
	"github.com/mmynk/tableround/internal/storage"
)

// OrderInput describes a new order line. When MenuItemID is set the name
// and price come from that dish.
type OrderInput struct {
	Name       string
	Price      int64
	Quantity   int64
	Note       string
	MenuItemID string
}

// OrderPatch lists the fields of a line to change. Nil fields are kept.
type OrderPatch struct {
	Name     *string
	Price    *int64
	Quantity *int64
	Note     *string
}

// resolveDish determines the name, price and catalog link of a new line.
func resolveDish(ctx context.Context, q storage.Queries, g *models.Group, in OrderInput) (string, int64, string, error) {
	if in.MenuItemID != "" {
		dish, err := q.GetMenuItem(ctx, in.MenuItemID)
		if err != nil {
			return "", 0, "", err
		}
		if dish.GroupID != g.ID {
			return "", 0, "", errorf(KindNotFound, "dish %s not found in group %s", in.MenuItemID, g.ID)
		}
		if !dish.IsActive() {
			return "", 0, "", errorf(KindInvalidState, "dish %q is disabled", dish.Name)
		}
		if err := checkLineTotal(dish.Price, in.Quantity); err != nil {
			return "", 0, "", err
		}
		return dish.Name, dish.Price, dish.ID, nil
	}

	name := NormalizeName(in.Name)
	if name == "" {
		return "", 0, "", errorf(KindInvalid, "item name is required")
	}
	if in.Price < 0 {
		return "", 0, "", errorf(KindInvalid, "price must not be negative")
	}
	if err := checkLineTotal(in.Price, in.Quantity); err != nil {
		return "", 0, "", err
	}
	link, err := linkFor(ctx, q, g.ID, name, in.Price)
	if err != nil {
		return "", 0, "", err
	}
	return name, in.Price, link, nil
}

// checkLineTotal rejects lines whose price × quantity overflows.
func checkLineTotal(price, quantity int64) error {
	_, err := calculator.LineTotal(price, quantity)
	return translate(err)
}

// linkFor returns the id of the active dish matching name and price, or "".
func linkFor(ctx context.Context, q storage.Queries, groupID, name string, price int64) (string, error) {
	dish, err := activeDish(ctx, q, groupID, name)
	if err != nil || dish == nil || dish.Price != price {
		return "", err
	}
	return dish.ID, nil
}

// touch drops the confirmations invalidated by an edit of a line owned by
// ownerID: the owner's and the actor's, in the round map for ordinary rounds
// and in the checkout map for the extra round.
func touch(ctx context.Context, q storage.Queries, g *models.Group, r *models.Round, ownerID, actor string) error {
	if r.Kind == models.RoundExtra {
		if !g.CheckoutConfirming {
			return nil
		}
		changed := g.CheckoutConfirmations.Clear(ownerID)
		if g.CheckoutConfirmations.Clear(actor) {
			changed = true
		}
		if !changed {
			return nil
		}
		return q.UpdateGroup(ctx, g)
	}

	changed := r.Confirmations.Clear(ownerID)
	if r.Confirmations.Clear(actor) {
		changed = true
	}
	if !changed {
		return nil
	}
	return q.UpdateRound(ctx, r)
}

// loadLine fetches a live line with its round and group.
func loadLine(ctx context.Context, q storage.Queries, itemID string) (*models.Group, *models.Round, *models.RoundItem, error) {
	item, err := q.GetRoundItem(ctx, itemID)
	if err != nil {
		return nil, nil, nil, err
	}
	if item.Deleted {
		return nil, nil, nil, errorf(KindNotFound, "line %s was deleted", itemID)
	}
	r, err := q.GetRound(ctx, item.RoundID)
	if err != nil {
		return nil, nil, nil, err
	}
	g, err := q.GetGroup(ctx, item.GroupID)
	if err != nil {
		return nil, nil, nil, err
	}
	return g, r, item, nil
}

// checkEditable verifies actor may change item: capability first, then
// group, round and lock state.
func checkEditable(g *models.Group, r *models.Round, item *models.RoundItem, actor string, caps capability, subjects ...string) error {
	if err := authorize(g, actor, caps, subjects...); err != nil {
		return err
	}
	if err := requireMutable(g); err != nil {
		return err
	}
	if !r.IsOpen() {
		return errorf(KindInvalidState, "round %s is closed", r.ID)
	}
	if item.IsLocked() {
		return errorf(KindInvalidState, "line %s is locked", item.ID)
	}
	return nil
}

// servedQuantity sums a member's private quantity of (name, price) across
// all rounds, adjustments included, skipping the line skipID.
func servedQuantity(items []*models.RoundItem, memberID, name string, price int64, skipID string) int64 {
	var n int64
	for _, item := range items {
		if item.Deleted || item.IsShared() || item.ID == skipID {
			continue
		}
		if item.CreatorID == memberID && item.Name == name && item.Price == price {
			n += item.Quantity
		}
	}
	return n
}

func negativeServed(name string) *Error {
	return coded(KindQuotaExceeded, CodeNegativeServed, "cannot remove more %q than was served", name)
}

// AddOrderItem adds a private line to the group's open ordinary round.
func (e *Engine) AddOrderItem(ctx context.Context, groupID, actor string, in OrderInput) (*models.RoundItem, error) {
	if in.Quantity <= 0 {
		return nil, errorf(KindInvalid, "quantity must be positive")
	}

	var item *models.RoundItem
	err := e.run(ctx, func(q storage.Queries, fx *effects) error {
		g, err := q.GetGroup(ctx, groupID)
		if err != nil {
			return err
		}
		if err := authorize(g, actor, capMember); err != nil {
			return err
		}
		if err := requireMutable(g); err != nil {
			return err
		}
		r, err := requireCurrentRound(ctx, q, g)
		if err != nil {
			return err
		}
		name, price, link, err := resolveDish(ctx, q, g, in)
		if err != nil {
			return err
		}

		now := e.unix()
		item = &models.RoundItem{
			GroupID:    g.ID,
			RoundID:    r.ID,
			CreatorID:  actor,
			Name:       name,
			Price:      price,
			Quantity:   in.Quantity,
			Note:       in.Note,
			MenuItemID: link,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := q.CreateRoundItem(ctx, item); err != nil {
			return err
		}
		return touch(ctx, q, g, r, actor, actor)
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// AddExtraItem records a checkout adjustment in the extra round. A positive
// quantity means more was eaten than ordered, a negative one that ordered
// food never arrived. The member's net served quantity of the dish must not
// drop below zero.
func (e *Engine) AddExtraItem(ctx context.Context, groupID, actor string, in OrderInput) (*models.RoundItem, error) {
	if in.Quantity == 0 {
		return nil, errorf(KindInvalid, "adjustment quantity must not be zero")
	}

	var item *models.RoundItem
	err := e.run(ctx, func(q storage.Queries, fx *effects) error {
		g, err := q.GetGroup(ctx, groupID)
		if err != nil {
			return err
		}
		if err := authorize(g, actor, capMember); err != nil {
			return err
		}
		if err := requireMutable(g); err != nil {
			return err
		}
		if !g.CheckoutConfirming {
			return errorf(KindInvalidState, "checkout has not started")
		}
		r, err := q.GetRound(ctx, models.ExtraRoundID(g.ID))
		if err != nil {
			return err
		}
		if !r.IsOpen() {
			return errorf(KindInvalidState, "round %s is closed", r.ID)
		}
		name, price, link, err := resolveDish(ctx, q, g, in)
		if err != nil {
			return err
		}

		items, err := q.ListGroupItems(ctx, g.ID)
		if err != nil {
			return err
		}
		if servedQuantity(items, actor, name, price, "")+in.Quantity < 0 {
			return negativeServed(name)
		}

		now := e.unix()
		item = &models.RoundItem{
			GroupID:    g.ID,
			RoundID:    r.ID,
			CreatorID:  actor,
			Name:       name,
			Price:      price,
			Quantity:   in.Quantity,
			Note:       in.Note,
			MenuItemID: link,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := q.CreateRoundItem(ctx, item); err != nil {
			return err
		}
		return touch(ctx, q, g, r, actor, actor)
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateOrderItem changes a line's name, price, quantity or note. Only the
// line's creator or the group owner may edit it.
func (e *Engine) UpdateOrderItem(ctx context.Context, itemID, actor string, patch OrderPatch) (*models.RoundItem, error) {
	var item *models.RoundItem
	err := e.run(ctx, func(q storage.Queries, fx *effects) error {
		g, r, it, err := loadLine(ctx, q, itemID)
		if err != nil {
			return err
		}
		item = it
		if err := checkEditable(g, r, item, actor, capOwner|capSelf, item.CreatorID); err != nil {
			return err
		}

		oldName, oldPrice := item.Name, item.Price
		if patch.Name != nil {
			name := NormalizeName(*patch.Name)
			if name == "" {
				return errorf(KindInvalid, "item name is required")
			}
			item.Name = name
		}
		if patch.Price != nil {
			if *patch.Price < 0 {
				return errorf(KindInvalid, "price must not be negative")
			}
			item.Price = *patch.Price
		}
		if patch.Note != nil {
			item.Note = *patch.Note
		}
		if patch.Quantity != nil {
			qty := *patch.Quantity
			switch {
			case r.Kind == models.RoundExtra && qty == 0:
				return errorf(KindInvalid, "adjustment quantity must not be zero")
			case r.Kind == models.RoundOrdinary && qty <= 0:
				return errorf(KindInvalid, "quantity must be positive")
			case item.IsShared() && qty < item.Shared.ClaimedUnits():
				return coded(KindQuotaExceeded, CodeUnitsOverClaimed,
					"%d units are already claimed", item.Shared.ClaimedUnits())
			}
			item.Quantity = qty
		}
		if err := checkLineTotal(item.Price, item.Quantity); err != nil {
			return err
		}

		if item.Name != oldName || item.Price != oldPrice {
			link, err := linkFor(ctx, q, g.ID, item.Name, item.Price)
			if err != nil {
				return err
			}
			item.MenuItemID = link
		}

		if r.Kind == models.RoundExtra {
			items, err := q.ListGroupItems(ctx, g.ID)
			if err != nil {
				return err
			}
			if servedQuantity(items, item.CreatorID, item.Name, item.Price, item.ID)+item.Quantity < 0 {
				return negativeServed(item.Name)
			}
			if servedQuantity(items, item.CreatorID, oldName, oldPrice, item.ID) < 0 {
				return negativeServed(oldName)
			}
		}

		if err := q.UpdateRoundItem(ctx, item); err != nil {
			return err
		}
		return touch(ctx, q, g, r, item.CreatorID, actor)
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteOrderItem soft-deletes a line.
func (e *Engine) DeleteOrderItem(ctx context.Context, itemID, actor string) error {
	return e.run(ctx, func(q storage.Queries, fx *effects) error {
		g, r, item, err := loadLine(ctx, q, itemID)
		if err != nil {
			return err
		}
		if err := checkEditable(g, r, item, actor, capOwner|capSelf, item.CreatorID); err != nil {
			return err
		}

		if r.Kind == models.RoundExtra && item.Quantity > 0 {
			items, err := q.ListGroupItems(ctx, g.ID)
			if err != nil {
				return err
			}
			if servedQuantity(items, item.CreatorID, item.Name, item.Price, item.ID) < 0 {
				return negativeServed(item.Name)
			}
		}

		item.Deleted = true
		if err := q.UpdateRoundItem(ctx, item); err != nil {
			return err
		}
		return touch(ctx, q, g, r, item.CreatorID, actor)
	})
}
