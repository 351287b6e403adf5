package models

// DishStatus is the catalog state of a dish.
type DishStatus string

const (
	DishActive   DishStatus = "active"
	DishDisabled DishStatus = "disabled"
)

// GroupMenuItem is a dish in a group's catalog.
// Normalized names are unique among the active dishes of a group.
type GroupMenuItem struct {
	ID      string
	GroupID string

	// Name is the normalized display name.
	Name string

	// Price is the unit price in the smallest currency unit.
	Price int64

	Status DishStatus

	CreatedBy string
	UpdatedBy string

	CreatedAt int64
	UpdatedAt int64
}

// IsActive reports whether the dish can be ordered.
func (d *GroupMenuItem) IsActive() bool { return d.Status == DishActive }
