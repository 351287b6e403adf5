package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/tableround/internal/models"
)

// CreateRestaurantMenu persists a menu snapshot with its items.
func (s *queries) CreateRestaurantMenu(ctx context.Context, menu *models.RestaurantMenu) error {
	// Generate ID if not set
	if menu.ID == "" {
		menu.ID = uuid.New().String()
	}
	if menu.CreatedAt == 0 {
		menu.CreatedAt = time.Now().Unix()
	}

	_, err := s.q.ExecContext(ctx,
		"INSERT INTO restaurant_menus (id, source_group_id, name, created_at) VALUES (?, ?, ?, ?)",
		menu.ID, menu.SourceGroupID, menu.Name, menu.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert restaurant menu: %w", err)
	}

	for i, item := range menu.Items {
		_, err := s.q.ExecContext(ctx,
			"INSERT INTO restaurant_menu_items (menu_id, position, name, price, note) VALUES (?, ?, ?, ?, ?)",
			menu.ID, i, item.Name, item.Price, item.Note,
		)
		if err != nil {
			return fmt.Errorf("failed to insert restaurant menu item: %w", err)
		}
	}
	return nil
}

// GetRestaurantMenu retrieves a menu snapshot by ID.
func (s *queries) GetRestaurantMenu(ctx context.Context, menuID string) (*models.RestaurantMenu, error) {
	menu, err := s.getRestaurantMenu(ctx, "id", menuID)
	if err != nil {
		return nil, err
	}
	if menu == nil {
		return nil, notFound("restaurant menu", menuID)
	}
	return menu, nil
}

// FindRestaurantMenuBySource retrieves the snapshot taken from a group, if any.
func (s *queries) FindRestaurantMenuBySource(ctx context.Context, groupID string) (*models.RestaurantMenu, error) {
	return s.getRestaurantMenu(ctx, "source_group_id", groupID)
}

func (s *queries) getRestaurantMenu(ctx context.Context, column, value string) (*models.RestaurantMenu, error) {
	menu := &models.RestaurantMenu{}
	err := s.q.QueryRowContext(ctx,
		`SELECT id, source_group_id, name, created_at FROM restaurant_menus WHERE `+column+` = ?
		 ORDER BY created_at LIMIT 1`,
		value,
	).Scan(&menu.ID, &menu.SourceGroupID, &menu.Name, &menu.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get restaurant menu: %w", err)
	}

	rows, err := s.q.QueryContext(ctx,
		"SELECT name, price, note FROM restaurant_menu_items WHERE menu_id = ? ORDER BY position", menu.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get restaurant menu items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item models.RestaurantMenuItem
		if err := rows.Scan(&item.Name, &item.Price, &item.Note); err != nil {
			return nil, fmt.Errorf("failed to scan restaurant menu item: %w", err)
		}
		menu.Items = append(menu.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate restaurant menu items: %w", err)
	}
	return menu, nil
}

// DeleteRestaurantMenu removes a snapshot and, through foreign keys, its items and links.
func (s *queries) DeleteRestaurantMenu(ctx context.Context, menuID string) error {
	res, err := s.q.ExecContext(ctx, "DELETE FROM restaurant_menus WHERE id = ?", menuID)
	if err != nil {
		return fmt.Errorf("failed to delete restaurant menu: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return notFound("restaurant menu", menuID)
	}
	return nil
}

// DeleteOrphanRestaurantMenus removes snapshots no user links to.
func (s *queries) DeleteOrphanRestaurantMenus(ctx context.Context) (int, error) {
	res, err := s.q.ExecContext(ctx,
		`DELETE FROM restaurant_menus
		 WHERE NOT EXISTS (SELECT 1 FROM user_menu_links l WHERE l.menu_id = restaurant_menus.id)`)
	if err != nil {
		return 0, fmt.Errorf("failed to sweep restaurant menus: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read swept rows: %w", err)
	}
	return int(n), nil
}

// UpsertMenuLink inserts or replaces a user's link to a menu.
func (s *queries) UpsertMenuLink(ctx context.Context, link *models.UserMenuLink) error {
	if link.CreatedAt == 0 {
		link.CreatedAt = time.Now().Unix()
	}
	_, err := s.q.ExecContext(ctx,
		`INSERT INTO user_menu_links (user_id, menu_id, label, created_at, last_used_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT (user_id, menu_id) DO UPDATE SET label = excluded.label, last_used_at = excluded.last_used_at`,
		link.UserID, link.MenuID, link.Label, link.CreatedAt, link.LastUsedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert menu link: %w", err)
	}
	return nil
}

// GetMenuLink retrieves a single link.
func (s *queries) GetMenuLink(ctx context.Context, userID, menuID string) (*models.UserMenuLink, error) {
	link := &models.UserMenuLink{}
	err := s.q.QueryRowContext(ctx,
		`SELECT user_id, menu_id, label, created_at, last_used_at FROM user_menu_links
		 WHERE user_id = ? AND menu_id = ?`,
		userID, menuID,
	).Scan(&link.UserID, &link.MenuID, &link.Label, &link.CreatedAt, &link.LastUsedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get menu link: %w", err)
	}
	return link, nil
}

// ListMenuLinks retrieves a user's links, oldest first.
func (s *queries) ListMenuLinks(ctx context.Context, userID string) ([]*models.UserMenuLink, error) {
	rows, err := s.q.QueryContext(ctx,
		`SELECT user_id, menu_id, label, created_at, last_used_at FROM user_menu_links
		 WHERE user_id = ? ORDER BY created_at, rowid`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list menu links: %w", err)
	}
	defer rows.Close()

	var links []*models.UserMenuLink
	for rows.Next() {
		link := &models.UserMenuLink{}
		if err := rows.Scan(&link.UserID, &link.MenuID, &link.Label, &link.CreatedAt, &link.LastUsedAt); err != nil {
			return nil, fmt.Errorf("failed to scan menu link: %w", err)
		}
		links = append(links, link)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate menu links: %w", err)
	}
	return links, nil
}

// DeleteMenuLink removes a user's link to a menu.
func (s *queries) DeleteMenuLink(ctx context.Context, userID, menuID string) error {
	res, err := s.q.ExecContext(ctx,
		"DELETE FROM user_menu_links WHERE user_id = ? AND menu_id = ?", userID, menuID)
	if err != nil {
		return fmt.Errorf("failed to delete menu link: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return notFound("menu link", userID+"/"+menuID)
	}
	return nil
}

// CountMenuLinks returns how many users link to a menu.
func (s *queries) CountMenuLinks(ctx context.Context, menuID string) (int, error) {
	var n int
	if err := s.q.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM user_menu_links WHERE menu_id = ?", menuID,
	).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count menu links: %w", err)
	}
	return n, nil
}
