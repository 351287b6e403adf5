package models

import "fmt"

// RoundStatus is the lifecycle state of a round.
type RoundStatus string

const (
	RoundOpen   RoundStatus = "open"
	RoundClosed RoundStatus = "closed"
)

// RoundKind distinguishes ordinary ordering rounds from the checkout extra round.
type RoundKind string

const (
	RoundOrdinary RoundKind = "ordinary"
	RoundExtra    RoundKind = "extra"
)

// Round is one ordering cycle of a group.
// At most one ordinary round per group is open at a time; the extra round
// exists only once checkout has started.
type Round struct {
	// ID is "<group>-<number>" for ordinary rounds and "<group>-x" for the extra round.
	ID string

	GroupID string

	// Number is the 1-based sequence number of an ordinary round; 0 for the extra round.
	Number int

	Kind   RoundKind
	Status RoundStatus

	// CreatedBy is the user who opened the round.
	CreatedBy string

	// Confirmations is the per-round confirmation map, independent of the
	// group's checkout confirmations.
	Confirmations Confirmations

	CreatedAt int64

	// ClosedAt is zero while the round is open.
	ClosedAt int64

	Version int64
}

// IsOpen reports whether the round accepts edits.
func (r *Round) IsOpen() bool { return r.Status == RoundOpen }

// RoundID builds the ID of the n-th ordinary round of a group.
func RoundID(groupID string, n int) string {
	return fmt.Sprintf("%s-%d", groupID, n)
}

// ExtraRoundID builds the deterministic ID of a group's extra round.
func ExtraRoundID(groupID string) string {
	return groupID + "-x"
}
