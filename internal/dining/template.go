package dining

import (
	"context"
	"sort"

	"github.com/mmynk/tableround/internal/models"
	"github.com/mmynk/tableround/internal/storage"
)

// Template is a user's link to a saved restaurant menu.
type Template struct {
	Link *models.UserMenuLink
	Menu *models.RestaurantMenu
}

// ImportResult lists what ImportTemplate added to a group catalog.
type ImportResult struct {
	Added []*models.GroupMenuItem

	// Skipped names dishes already on the catalog. Their existing price is kept.
	Skipped []string
}

// SaveAsTemplate snapshots the dishes ordered in a settled group and links
// the snapshot to actor. A group is snapshotted once; saving again only
// refreshes the link. Each user keeps at most MaxTemplateLinks links, the
// least recently used going first.
func (e *Engine) SaveAsTemplate(ctx context.Context, groupID, actor, label string) (*Template, error) {
	var tpl *Template
	err := e.run(ctx, func(q storage.Queries, fx *effects) error {
		g, err := q.GetGroup(ctx, groupID)
		if err != nil {
			return err
		}
		if err := authorize(g, actor, capMember); err != nil {
			return err
		}
		if !g.Settled {
			return errorf(KindInvalidState, "group %s is not settled yet", g.ID)
		}
		tpl, err = e.saveTemplateTx(ctx, q, fx, g, actor, label)
		return err
	})
	if err != nil {
		return nil, err
	}
	return tpl, nil
}

func (e *Engine) saveTemplateTx(ctx context.Context, q storage.Queries, fx *effects, g *models.Group, userID, label string) (*Template, error) {
	now := e.unix()
	menu, err := q.FindRestaurantMenuBySource(ctx, g.ID)
	if err != nil {
		return nil, err
	}
	if menu == nil {
		items, err := q.ListGroupItems(ctx, g.ID)
		if err != nil {
			return nil, err
		}
		menu = &models.RestaurantMenu{
			SourceGroupID: g.ID,
			Name:          g.Name,
			Items:         snapshot(items),
			CreatedAt:     now,
		}
		if err := q.CreateRestaurantMenu(ctx, menu); err != nil {
			return nil, err
		}
	}

	link, err := q.GetMenuLink(ctx, userID, menu.ID)
	if err != nil {
		return nil, err
	}
	if link == nil {
		link = &models.UserMenuLink{UserID: userID, MenuID: menu.ID, Label: g.Name, CreatedAt: now}
	} else {
		link.LastUsedAt = now
	}
	if label != "" {
		link.Label = label
	}
	if err := q.UpsertMenuLink(ctx, link); err != nil {
		return nil, err
	}

	if err := evictLinks(ctx, q, fx, userID, menu.ID); err != nil {
		return nil, err
	}
	swept, err := q.DeleteOrphanRestaurantMenus(ctx)
	if err != nil {
		return nil, err
	}
	fx.swept += swept

	return &Template{Link: link, Menu: menu}, nil
}

type snapshotKey struct {
	name  string
	price int64
	note  string
}

// snapshot dedupes the live ordinary lines of a group by name, price and
// note, in order of first appearance.
func snapshot(items []*models.RoundItem) []models.RestaurantMenuItem {
	seen := make(map[snapshotKey]bool)
	var out []models.RestaurantMenuItem
	for _, item := range items {
		if item.Deleted || item.RoundID == models.ExtraRoundID(item.GroupID) {
			continue
		}
		k := snapshotKey{name: item.Name, price: item.Price, note: item.Note}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, models.RestaurantMenuItem{Name: item.Name, Price: item.Price, Note: item.Note})
	}
	return out
}

// lessRecent orders links from least to most recently used.
func lessRecent(a, b *models.UserMenuLink) bool {
	if a.RecencyKey() != b.RecencyKey() {
		return a.RecencyKey() < b.RecencyKey()
	}
	if a.CreatedAt != b.CreatedAt {
		return a.CreatedAt < b.CreatedAt
	}
	return a.MenuID < b.MenuID
}

// evictLinks drops the user's least recently used links beyond
// MaxTemplateLinks, never the one for keep, and deletes menus left unlinked.
func evictLinks(ctx context.Context, q storage.Queries, fx *effects, userID, keep string) error {
	links, err := q.ListMenuLinks(ctx, userID)
	if err != nil {
		return err
	}
	for len(links) > MaxTemplateLinks {
		victim := -1
		for i, l := range links {
			if l.MenuID == keep {
				continue
			}
			if victim < 0 || lessRecent(l, links[victim]) {
				victim = i
			}
		}
		v := links[victim]
		if err := q.DeleteMenuLink(ctx, userID, v.MenuID); err != nil {
			return err
		}
		fx.evicted = append(fx.evicted, v.MenuID)

		n, err := q.CountMenuLinks(ctx, v.MenuID)
		if err != nil {
			return err
		}
		if n == 0 {
			if err := q.DeleteRestaurantMenu(ctx, v.MenuID); err != nil {
				return err
			}
			fx.swept++
		}
		links = append(links[:victim], links[victim+1:]...)
	}
	return nil
}

// ListTemplates returns userID's saved menus, most recently used first.
func (e *Engine) ListTemplates(ctx context.Context, userID string) ([]*Template, error) {
	links, err := e.store.ListMenuLinks(ctx, userID)
	if err != nil {
		return nil, translate(err)
	}
	sort.Slice(links, func(i, j int) bool { return lessRecent(links[j], links[i]) })

	templates := make([]*Template, 0, len(links))
	for _, l := range links {
		menu, err := e.store.GetRestaurantMenu(ctx, l.MenuID)
		if err != nil {
			return nil, translate(err)
		}
		templates = append(templates, &Template{Link: l, Menu: menu})
	}
	return templates, nil
}

// ImportTemplate copies a saved menu into a group catalog. Dishes whose
// name is already active in the catalog are skipped.
func (e *Engine) ImportTemplate(ctx context.Context, groupID, actor, menuID string) (*ImportResult, error) {
	res := &ImportResult{}
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
		link, err := q.GetMenuLink(ctx, actor, menuID)
		if err != nil {
			return err
		}
		if link == nil {
			return errorf(KindNotFound, "no saved menu %s", menuID)
		}
		menu, err := q.GetRestaurantMenu(ctx, menuID)
		if err != nil {
			return err
		}

		dishes, err := q.ListMenuItems(ctx, g.ID)
		if err != nil {
			return err
		}
		active := make(map[string]bool, len(dishes))
		for _, d := range dishes {
			if d.IsActive() {
				active[d.Name] = true
			}
		}

		now := e.unix()
		for _, it := range menu.Items {
			name := NormalizeName(it.Name)
			if name == "" {
				continue
			}
			if active[name] {
				res.Skipped = append(res.Skipped, name)
				continue
			}
			dish := &models.GroupMenuItem{
				GroupID:   g.ID,
				Name:      name,
				Price:     it.Price,
				Status:    models.DishActive,
				CreatedBy: actor,
				UpdatedBy: actor,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := q.CreateMenuItem(ctx, dish); err != nil {
				return err
			}
			active[name] = true
			res.Added = append(res.Added, dish)
		}

		link.LastUsedAt = now
		return q.UpsertMenuLink(ctx, link)
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
