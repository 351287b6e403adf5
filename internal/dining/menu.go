package dining

import (
	"context"

	"github.com/mmynk/tableround/internal/models"
	"github.com/mmynk/tableround/internal/storage"
)

// Resolution tells AddDish what to do when an active dish of the same name
// has a different price.
type Resolution string

const (
	// ResolveNone fails with PRICE_CONFLICT.
	ResolveNone Resolution = ""
	// ResolveKeep returns the existing dish unchanged.
	ResolveKeep Resolution = "keep"
	// ResolveOverwrite moves the dish and its open lines to the new price.
	ResolveOverwrite Resolution = "overwrite"
)

// DishResult is the outcome of a catalog change.
type DishResult struct {
	Dish    *models.GroupMenuItem
	Created bool

	// UpdatedLines counts the order lines rewritten alongside the dish.
	UpdatedLines int
}

// activeDish returns the active dish with the given normalized name, or nil.
func activeDish(ctx context.Context, q storage.Queries, groupID, name string) (*models.GroupMenuItem, error) {
	dishes, err := q.ListMenuItems(ctx, groupID)
	if err != nil {
		return nil, err
	}
	for _, d := range dishes {
		if d.IsActive() && d.Name == name {
			return d, nil
		}
	}
	return nil, nil
}

// openRounds returns the ids of the group's open rounds.
func openRounds(ctx context.Context, q storage.Queries, groupID string) (map[string]bool, error) {
	rounds, err := q.ListRounds(ctx, groupID)
	if err != nil {
		return nil, err
	}
	open := make(map[string]bool, len(rounds))
	for _, r := range rounds {
		if r.IsOpen() {
			open[r.ID] = true
		}
	}
	return open, nil
}

// roundCache loads each round once while a catalog edit rewrites lines.
type roundCache map[string]*models.Round

// touch clears the confirmations a rewritten line invalidates, like any
// other edit of that line. Lines of closed rounds are left alone.
func (c roundCache) touch(ctx context.Context, q storage.Queries, g *models.Group, item *models.RoundItem, actor string) error {
	r, ok := c[item.RoundID]
	if !ok {
		var err error
		if r, err = q.GetRound(ctx, item.RoundID); err != nil {
			return err
		}
		c[item.RoundID] = r
	}
	if !r.IsOpen() {
		return nil
	}
	return touch(ctx, q, g, r, item.CreatorID, actor)
}

// AddDish adds a dish to the group catalog.
//
// An active dish with the same name and price fails with DUPLICATE_NAME.
// Same name with another price fails with PRICE_CONFLICT unless res says
// to keep the existing dish or to overwrite its price. Overwriting also
// reprices every live, unlocked line of an open round that was ordered at
// the old price.
func (e *Engine) AddDish(ctx context.Context, groupID, actor, name string, price int64, res Resolution) (*DishResult, error) {
	name = NormalizeName(name)
	if name == "" {
		return nil, errorf(KindInvalid, "dish name is required")
	}
	if price < 0 {
		return nil, errorf(KindInvalid, "price must not be negative")
	}
	switch res {
	case ResolveNone, ResolveKeep, ResolveOverwrite:
	default:
		return nil, errorf(KindInvalid, "unknown resolution %q", res)
	}

	result := &DishResult{}
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

		existing, err := activeDish(ctx, q, g.ID, name)
		if err != nil {
			return err
		}
		if existing == nil {
			now := e.unix()
			dish := &models.GroupMenuItem{
				GroupID:   g.ID,
				Name:      name,
				Price:     price,
				Status:    models.DishActive,
				CreatedBy: actor,
				UpdatedBy: actor,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := q.CreateMenuItem(ctx, dish); err != nil {
				return err
			}
			result.Dish = dish
			result.Created = true
			return nil
		}

		if existing.Price == price {
			conflict := coded(KindConflict, CodeDuplicateName, "%q is already on the menu", name)
			conflict.Dish = existing
			return conflict
		}
		switch res {
		case ResolveKeep:
			result.Dish = existing
			return nil
		case ResolveOverwrite:
			n, err := e.repriceDish(ctx, q, g, existing, price, actor)
			if err != nil {
				return err
			}
			result.Dish = existing
			result.UpdatedLines = n
			return nil
		}
		conflict := coded(KindConflict, CodePriceConflict, "%q is on the menu at %d", name, existing.Price)
		conflict.Dish = existing
		return conflict
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (e *Engine) repriceDish(ctx context.Context, q storage.Queries, g *models.Group, dish *models.GroupMenuItem, price int64, actor string) (int, error) {
	oldPrice := dish.Price
	dish.Price = price
	dish.UpdatedBy = actor
	if err := q.UpdateMenuItem(ctx, dish); err != nil {
		return 0, err
	}

	open, err := openRounds(ctx, q, g.ID)
	if err != nil {
		return 0, err
	}
	items, err := q.ListGroupItems(ctx, g.ID)
	if err != nil {
		return 0, err
	}
	rounds := roundCache{}
	updated := 0
	for _, item := range items {
		if item.Deleted || item.IsLocked() || !open[item.RoundID] {
			continue
		}
		if item.Name != dish.Name || item.Price != oldPrice {
			continue
		}
		if err := checkLineTotal(price, item.Quantity); err != nil {
			return 0, err
		}
		item.Price = price
		item.MenuItemID = dish.ID
		if err := q.UpdateRoundItem(ctx, item); err != nil {
			return 0, err
		}
		updated++
		if err := rounds.touch(ctx, q, g, item, actor); err != nil {
			return 0, err
		}
	}
	return updated, nil
}

// RenameDish renames a dish and every live line that refers to it, either
// by catalog link or by its old name and price.
func (e *Engine) RenameDish(ctx context.Context, dishID, actor, name string) (*DishResult, error) {
	name = NormalizeName(name)
	if name == "" {
		return nil, errorf(KindInvalid, "dish name is required")
	}

	result := &DishResult{}
	err := e.run(ctx, func(q storage.Queries, fx *effects) error {
		dish, err := q.GetMenuItem(ctx, dishID)
		if err != nil {
			return err
		}
		result.Dish = dish
		g, err := q.GetGroup(ctx, dish.GroupID)
		if err != nil {
			return err
		}
		if err := authorize(g, actor, capMember); err != nil {
			return err
		}
		if err := requireMutable(g); err != nil {
			return err
		}
		if dish.Name == name {
			return nil
		}

		other, err := activeDish(ctx, q, g.ID, name)
		if err != nil {
			return err
		}
		if other != nil && other.ID != dish.ID {
			conflict := coded(KindConflict, CodeDuplicateName, "%q is already on the menu", name)
			conflict.Dish = other
			return conflict
		}

		oldName := dish.Name
		dish.Name = name
		dish.UpdatedBy = actor
		if err := q.UpdateMenuItem(ctx, dish); err != nil {
			return err
		}

		items, err := q.ListGroupItems(ctx, g.ID)
		if err != nil {
			return err
		}
		rounds := roundCache{}
		for _, item := range items {
			if item.Deleted {
				continue
			}
			linked := item.MenuItemID == dish.ID
			if !linked && (item.Name != oldName || item.Price != dish.Price) {
				continue
			}
			item.Name = name
			item.MenuItemID = dish.ID
			if err := q.UpdateRoundItem(ctx, item); err != nil {
				return err
			}
			result.UpdatedLines++
			if err := rounds.touch(ctx, q, g, item, actor); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// DisableDish hides a dish from the catalog. Existing lines keep their
// name and price.
func (e *Engine) DisableDish(ctx context.Context, dishID, actor string) (*models.GroupMenuItem, error) {
	var dish *models.GroupMenuItem
	err := e.run(ctx, func(q storage.Queries, fx *effects) error {
		d, err := q.GetMenuItem(ctx, dishID)
		if err != nil {
			return err
		}
		dish = d
		g, err := q.GetGroup(ctx, d.GroupID)
		if err != nil {
			return err
		}
		if err := authorize(g, actor, capOwner|capSelf, d.CreatedBy); err != nil {
			return err
		}
		if err := requireMutable(g); err != nil {
			return err
		}
		if !d.IsActive() {
			return nil
		}
		d.Status = models.DishDisabled
		d.UpdatedBy = actor
		return q.UpdateMenuItem(ctx, d)
	})
	if err != nil {
		return nil, err
	}
	return dish, nil
}

// ListDishes returns the group catalog, disabled dishes only on request.
func (e *Engine) ListDishes(ctx context.Context, groupID, actor string, includeDisabled bool) ([]*models.GroupMenuItem, error) {
	g, err := e.store.GetGroup(ctx, groupID)
	if err != nil {
		return nil, translate(err)
	}
	if err := authorize(g, actor, capMember); err != nil {
		return nil, err
	}
	dishes, err := e.store.ListMenuItems(ctx, g.ID)
	if err != nil {
		return nil, translate(err)
	}
	if includeDisabled {
		return dishes, nil
	}
	active := make([]*models.GroupMenuItem, 0, len(dishes))
	for _, d := range dishes {
		if d.IsActive() {
			active = append(active, d)
		}
	}
	return active, nil
}
