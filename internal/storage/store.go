// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/tableround/internal/models"
)

var (
	// ErrNotFound is wrapped by every lookup of a missing record.
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when a versioned update loses a
	// compare-and-swap race or an insert collides with an existing key.
	ErrConflict = errors.New("version conflict")
)

// Store defines the persistence collaborator of the dining engine.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the engine.
type Store interface {
	Queries

	// InTx runs fn inside a single serializable transaction. If fn returns
	// an error nothing it wrote is committed.
	InTx(ctx context.Context, fn func(q Queries) error) error

	// Close releases any resources held by the store.
	Close() error
}

// Queries are the record-level operations available inside and outside a
// transaction.
type Queries interface {
	UserQueries
	GroupQueries
	RoundQueries
	ItemQueries
	MenuQueries
	TemplateQueries
}

// UserQueries persists user accounts.
type UserQueries interface {
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail returns nil and no error when the user does not exist.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID returns nil and no error when the user does not exist.
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// GroupQueries persists groups with their members and checkout confirmations.
type GroupQueries interface {
	// CreateGroup fails with ErrConflict if group.ID is already taken.
	CreateGroup(ctx context.Context, group *models.Group) error
	GetGroup(ctx context.Context, groupID string) (*models.Group, error)

	// UpdateGroup replaces the group's fields, members and confirmations.
	// It fails with ErrConflict if group.Version is stale and bumps it on success.
	UpdateGroup(ctx context.Context, group *models.Group) error

	DeleteGroup(ctx context.Context, groupID string) error
	ListGroupsByMember(ctx context.Context, userID string) ([]*models.Group, error)
}

// RoundQueries persists rounds and their confirmation maps.
type RoundQueries interface {
	CreateRound(ctx context.Context, round *models.Round) error
	GetRound(ctx context.Context, roundID string) (*models.Round, error)

	// UpdateRound is a compare-and-swap on round.Version.
	UpdateRound(ctx context.Context, round *models.Round) error

	// ListRounds returns the group's rounds, ordinary rounds by number first
	// and the extra round last.
	ListRounds(ctx context.Context, groupID string) ([]*models.Round, error)
}

// ItemQueries persists order lines and their shares.
type ItemQueries interface {
	CreateRoundItem(ctx context.Context, item *models.RoundItem) error
	GetRoundItem(ctx context.Context, itemID string) (*models.RoundItem, error)

	// UpdateRoundItem is a compare-and-swap on item.Version.
	UpdateRoundItem(ctx context.Context, item *models.RoundItem) error

	// ListRoundItems returns every line of a round, deleted ones included,
	// in creation order.
	ListRoundItems(ctx context.Context, roundID string) ([]*models.RoundItem, error)

	// ListGroupItems returns every line of a group, deleted ones included.
	ListGroupItems(ctx context.Context, groupID string) ([]*models.RoundItem, error)
}

// MenuQueries persists the group dish catalog.
type MenuQueries interface {
	CreateMenuItem(ctx context.Context, dish *models.GroupMenuItem) error
	GetMenuItem(ctx context.Context, dishID string) (*models.GroupMenuItem, error)
	UpdateMenuItem(ctx context.Context, dish *models.GroupMenuItem) error
	ListMenuItems(ctx context.Context, groupID string) ([]*models.GroupMenuItem, error)
}

// TemplateQueries persists restaurant menu snapshots and per-user links.
type TemplateQueries interface {
	CreateRestaurantMenu(ctx context.Context, menu *models.RestaurantMenu) error
	GetRestaurantMenu(ctx context.Context, menuID string) (*models.RestaurantMenu, error)

	// FindRestaurantMenuBySource returns nil and no error when the group
	// has no snapshot.
	FindRestaurantMenuBySource(ctx context.Context, groupID string) (*models.RestaurantMenu, error)

	DeleteRestaurantMenu(ctx context.Context, menuID string) error

	// DeleteOrphanRestaurantMenus removes every menu without links and
	// returns how many were deleted.
	DeleteOrphanRestaurantMenus(ctx context.Context) (int, error)

	// UpsertMenuLink inserts or replaces the (user, menu) link.
	UpsertMenuLink(ctx context.Context, link *models.UserMenuLink) error

	// GetMenuLink returns nil and no error when the link does not exist.
	GetMenuLink(ctx context.Context, userID, menuID string) (*models.UserMenuLink, error)

	ListMenuLinks(ctx context.Context, userID string) ([]*models.UserMenuLink, error)
	DeleteMenuLink(ctx context.Context, userID, menuID string) error
	CountMenuLinks(ctx context.Context, menuID string) (int, error)
}
