package calculator

import (
	"fmt"
	"sort"
)

// LineForTotal is an order line with the minimal information needed to
// compute member liabilities.
type LineForTotal struct {
	OwnerID  string
	Price    int64
	Quantity int64

	// Adjustment marks an extra-round correction line.
	Adjustment bool

	// Shared is nil for private lines.
	Shared *Line

	// Frozen holds the locked amounts of a shared line; nil while unlocked.
	Frozen []Allocation
}

// MemberTotal is one member's liability.
type MemberTotal struct {
	MemberID    string
	Private     int64 // private lines
	Shared      int64 // allocated shares of shared lines
	Adjustments int64 // extra-round corrections, may be negative
	Total       int64
}

// Totals is the outcome of CalculateTotals.
type Totals struct {
	Members []MemberTotal

	// Unassigned is money on shared lines nobody owes yet: lines without
	// participants and unclaimed units of units-mode lines.
	Unassigned int64
}

// Member returns the total for memberID (zero value if absent).
func (t Totals) Member(memberID string) MemberTotal {
	for _, m := range t.Members {
		if m.MemberID == memberID {
			return m
		}
	}
	return MemberTotal{MemberID: memberID}
}

// CalculateTotals derives each member's liability from order lines.
//
// Private lines are owed wholly by their owner. Locked shared lines use
// their frozen amounts; unlocked ones use a Partial allocation so the
// preview never charges anyone for units nobody claimed.
// memberIDs seeds the result so members without lines report zero.
func CalculateTotals(memberIDs []string, lines []LineForTotal) (Totals, error) {
	byMember := make(map[string]*MemberTotal)
	get := func(id string) *MemberTotal {
		if m, ok := byMember[id]; ok {
			return m
		}
		m := &MemberTotal{MemberID: id}
		byMember[id] = m
		return m
	}
	for _, id := range memberIDs {
		get(id)
	}

	var res Totals
	add := func(dst *int64, amount int64) error {
		sum, err := AddAmounts(*dst, amount)
		if err != nil {
			return err
		}
		*dst = sum
		return nil
	}
	for _, l := range lines {
		var err error
		switch {
		case l.Shared == nil:
			var amount int64
			if amount, err = LineTotal(l.Price, l.Quantity); err != nil {
				break
			}
			m := get(l.OwnerID)
			if l.Adjustment {
				err = add(&m.Adjustments, amount)
			} else {
				err = add(&m.Private, amount)
			}
		case l.Frozen != nil:
			for _, a := range l.Frozen {
				if err = add(&get(a.ParticipantID).Shared, a.Amount); err != nil {
					break
				}
			}
		case len(l.Shared.Shares) == 0:
			var amount int64
			if amount, err = LineTotal(l.Shared.Price, l.Shared.Quantity); err == nil {
				err = add(&res.Unassigned, amount)
			}
		default:
			var allocs []Allocation
			allocs, err = Allocate(*l.Shared, Partial)
			if err != nil {
				return Totals{}, fmt.Errorf("failed to allocate shared line: %w", err)
			}
			var allocated int64
			for _, a := range allocs {
				if err = add(&get(a.ParticipantID).Shared, a.Amount); err != nil {
					break
				}
				allocated += a.Amount
			}
			if err == nil {
				// Allocate already checked the line total.
				err = add(&res.Unassigned, l.Shared.Total()-allocated)
			}
		}
		if err != nil {
			return Totals{}, fmt.Errorf("failed to total order lines: %w", err)
		}
	}

	for _, m := range byMember {
		total, err := AddAmounts(m.Private, m.Shared, m.Adjustments)
		if err != nil {
			return Totals{}, fmt.Errorf("failed to total member %s: %w", m.MemberID, err)
		}
		m.Total = total
		res.Members = append(res.Members, *m)
	}
	sort.Slice(res.Members, func(i, j int) bool {
		return res.Members[i].MemberID < res.Members[j].MemberID
	})
	return res, nil
}
