package models

// ShareMode selects how a shared line's cost is divided.
type ShareMode string

const (
	// ShareEqual splits the line total evenly among participants.
	ShareEqual ShareMode = "equal"
	// ShareRatio splits proportionally to each participant's weight.
	ShareRatio ShareMode = "ratio"
	// ShareUnits splits proportionally to the units each participant claimed.
	ShareUnits ShareMode = "units"
)

// Valid reports whether m is a known share mode.
func (m ShareMode) Valid() bool {
	switch m {
	case ShareEqual, ShareRatio, ShareUnits:
		return true
	}
	return false
}

// ShareStatus is the lifecycle state of a shared line.
type ShareStatus string

const (
	// SharePending means nobody participates yet.
	SharePending ShareStatus = "pending"
	// ShareActive means participants can still be edited.
	ShareActive ShareStatus = "active"
	// ShareLocked means amounts are frozen.
	ShareLocked ShareStatus = "locked"
)

// Share is one participant's stake in a shared line.
type Share struct {
	ParticipantID string

	// Weight is the ratio-mode weight. Zero means the default weight of 1.
	Weight int64

	// Units is the number of units claimed in units mode.
	Units int64

	// Amount is the frozen amount owed, set when the line is locked.
	Amount *int64
}

// SharedLine carries the split configuration of a shared order line.
type SharedLine struct {
	Mode   ShareMode
	Status ShareStatus
	Shares []Share

	// AllowSelfJoin lets members add themselves as participants.
	AllowSelfJoin bool

	// AllowClaimUnits lets participants other than the creator claim units.
	AllowClaimUnits bool
}

// Share returns the participant's share, or nil.
func (s *SharedLine) Share(participantID string) *Share {
	for i := range s.Shares {
		if s.Shares[i].ParticipantID == participantID {
			return &s.Shares[i]
		}
	}
	return nil
}

// ClaimedUnits sums units claimed by every participant.
func (s *SharedLine) ClaimedUnits() int64 {
	var total int64
	for _, sh := range s.Shares {
		total += sh.Units
	}
	return total
}

// RoundItem is an order line placed in a round.
//
// A line without Shared is private: its creator consumes and owes all of it.
// A line with Shared is split among its participants per the share mode.
type RoundItem struct {
	// ID is the unique identifier for the line (UUID format).
	ID string

	GroupID   string
	RoundID   string
	CreatorID string

	// Name is the normalized display name of the dish.
	Name string

	// Price is the unit price in the smallest currency unit.
	Price int64

	// Quantity is positive for ordinary lines. Lines in the extra round
	// carry a signed adjustment (negative means "not served").
	Quantity int64

	Note string

	// Deleted marks a soft-deleted line.
	Deleted bool

	// MenuItemID links the line to a catalog dish, if any.
	MenuItemID string

	// OrdererName is a snapshot of the creator's display name taken at settlement.
	OrdererName string

	// Shared is nil for private lines.
	Shared *SharedLine

	CreatedAt int64
	UpdatedAt int64
	Version   int64
}

// IsShared reports whether the line is split among participants.
func (i *RoundItem) IsShared() bool { return i.Shared != nil }

// IsLocked reports whether the line is a shared line with frozen amounts.
func (i *RoundItem) IsLocked() bool {
	return i.Shared != nil && i.Shared.Status == ShareLocked
}

// LineTotal is price times quantity.
func (i *RoundItem) LineTotal() int64 { return i.Price * i.Quantity }

// Involves reports whether userID created the line or participates in it.
func (i *RoundItem) Involves(userID string) bool {
	if i.CreatorID == userID {
		return true
	}
	return i.Shared != nil && i.Shared.Share(userID) != nil
}
