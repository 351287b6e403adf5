package models

// Member is one participant of a group.
type Member struct {
	// UserID references the member's user account.
	UserID string

	// DisplayName is the name snapshot taken when the member joined.
	DisplayName string

	// JoinedAt is the Unix timestamp when the member joined.
	JoinedAt int64
}

// Group represents a dining table: the members who order together,
// the owner who drives rounds and checkout, and the checkout state.
//
// Once Settled is true the group is terminal: members, menu and orders
// can no longer change.
type Group struct {
	// ID is a short shareable identifier (8 upper-case hex characters).
	ID string

	// Name is the display name of the table (e.g., "Friday Hotpot").
	Name string

	// OwnerID is the user who created the group. Always a member.
	OwnerID string

	// Members is the list of participants, in join order.
	Members []Member

	// Settled is set by a successful checkout finalization.
	Settled bool

	// CheckoutConfirming is true between StartCheckout and FinalizeCheckout.
	CheckoutConfirming bool

	// CheckoutConfirmations holds each member's checkout confirmation.
	CheckoutConfirmations Confirmations

	// CreatedAt is the Unix timestamp when the group was created.
	CreatedAt int64

	// UpdatedAt is the Unix timestamp of the last change.
	UpdatedAt int64

	// Version is the compare-and-swap stamp maintained by the store.
	Version int64
}

// MemberIDs returns member user IDs in join order.
func (g *Group) MemberIDs() []string {
	ids := make([]string, len(g.Members))
	for i, m := range g.Members {
		ids[i] = m.UserID
	}
	return ids
}

// IsMember reports whether userID belongs to the group.
func (g *Group) IsMember(userID string) bool {
	_, ok := g.Member(userID)
	return ok
}

// Member looks up a member by user ID.
func (g *Group) Member(userID string) (Member, bool) {
	for _, m := range g.Members {
		if m.UserID == userID {
			return m, true
		}
	}
	return Member{}, false
}

// DisplayName returns the member's display name, or the ID if unknown.
func (g *Group) DisplayName(userID string) string {
	if m, ok := g.Member(userID); ok && m.DisplayName != "" {
		return m.DisplayName
	}
	return userID
}
