package models

import "sort"

// Confirmations maps a member ID to whether that member has confirmed.
// A missing key means "not confirmed".
type Confirmations map[string]bool

// Reset marks every given member as unconfirmed and drops everyone else.
func (c Confirmations) Reset(memberIDs []string) {
	for id := range c {
		delete(c, id)
	}
	for _, id := range memberIDs {
		c[id] = false
	}
}

// Confirm marks the member as confirmed. It reports whether the flag changed.
func (c Confirmations) Confirm(memberID string) bool {
	if c[memberID] {
		return false
	}
	c[memberID] = true
	return true
}

// Clear withdraws the member's confirmation. It reports whether the flag changed.
func (c Confirmations) Clear(memberID string) bool {
	if !c[memberID] {
		return false
	}
	c[memberID] = false
	return true
}

// Retain drops every entry whose member is not in memberIDs.
func (c Confirmations) Retain(memberIDs []string) {
	keep := make(map[string]bool, len(memberIDs))
	for _, id := range memberIDs {
		keep[id] = true
	}
	for id := range c {
		if !keep[id] {
			delete(c, id)
		}
	}
}

// Pending returns the members from memberIDs that have not confirmed, sorted.
func (c Confirmations) Pending(memberIDs []string) []string {
	var pending []string
	for _, id := range memberIDs {
		if !c[id] {
			pending = append(pending, id)
		}
	}
	sort.Strings(pending)
	return pending
}

// AllConfirmed reports whether every member in memberIDs has confirmed.
// An empty member list is never considered confirmed.
func (c Confirmations) AllConfirmed(memberIDs []string) bool {
	if len(memberIDs) == 0 {
		return false
	}
	return len(c.Pending(memberIDs)) == 0
}

// Clone returns an independent copy.
func (c Confirmations) Clone() Confirmations {
	out := make(Confirmations, len(c))
	for id, ok := range c {
		out[id] = ok
	}
	return out
}
