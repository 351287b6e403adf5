package models

// RestaurantMenu is an immutable, deduplicated snapshot of the dishes a
// settled group ordered. Users reach it through UserMenuLink; a menu
// without links is garbage and gets deleted.
type RestaurantMenu struct {
	ID string

	// SourceGroupID is the settled group the snapshot was taken from.
	SourceGroupID string

	// Name defaults to the source group's name.
	Name string

	Items []RestaurantMenuItem

	CreatedAt int64
}

// RestaurantMenuItem is one deduplicated (name, price, note) entry.
type RestaurantMenuItem struct {
	Name  string
	Price int64
	Note  string
}

// UserMenuLink is a user's pointer to a saved menu. A user holds at most
// two links; the least recently used one is evicted first.
type UserMenuLink struct {
	UserID string
	MenuID string
	Label  string

	CreatedAt int64

	// LastUsedAt is zero until the menu is imported or re-saved.
	LastUsedAt int64
}

// RecencyKey is the timestamp used for LRU ordering: last use, falling back
// to creation time.
func (l *UserMenuLink) RecencyKey() int64 {
	if l.LastUsedAt != 0 {
		return l.LastUsedAt
	}
	return l.CreatedAt
}
