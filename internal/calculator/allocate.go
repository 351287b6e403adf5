package calculator

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
	"sort"
)

// Mode selects how a shared line's total is divided.
type Mode string

const (
	Equal Mode = "equal"
	Ratio Mode = "ratio"
	Units Mode = "units"
)

// UnitsPolicy controls units-mode allocation when not every unit is claimed.
type UnitsPolicy int

const (
	// Strict requires claims to cover the full quantity. Used when locking.
	Strict UnitsPolicy = iota
	// Partial allocates only the claimed portion of the line. Used for previews.
	Partial
)

var (
	ErrNoParticipants       = errors.New("shared line has no participants")
	ErrDuplicateParticipant = errors.New("participant listed twice")
	ErrInvalidWeight        = errors.New("ratio weight must be positive")
	ErrInvalidUnits         = errors.New("claimed units must not be negative")
	ErrInvalidQuantity      = errors.New("quantity must be positive")
	ErrNegativePrice        = errors.New("price must not be negative")
	ErrUnknownMode          = errors.New("unknown share mode")

	// ErrAmountOverflow is returned when a line total, a weight sum or a
	// member total does not fit in int64.
	ErrAmountOverflow = errors.New("amount overflows int64")

	// ErrUnitsNotFullyClaimed is returned by Strict units allocation when the
	// claims do not add up to the line quantity.
	ErrUnitsNotFullyClaimed = errors.New("UNITS_NOT_FULLY_CLAIMED")

	// ErrUnitsOverClaimed is returned whenever claims exceed the line quantity.
	ErrUnitsOverClaimed = errors.New("UNITS_OVER_CLAIMED")
)

// Share is one participant's input to an allocation.
type Share struct {
	ParticipantID string
	Weight        int64 // ratio mode; 0 means 1
	Units         int64 // units mode
}

// Line is a shared order line as seen by the allocator.
type Line struct {
	Price    int64
	Quantity int64
	Mode     Mode
	Shares   []Share
}

// Total is price times quantity. Callers must have checked it with
// LineTotal first.
func (l Line) Total() int64 { return l.Price * l.Quantity }

// LineTotal returns price × quantity, failing with ErrAmountOverflow when
// the magnitude does not fit in int64. quantity may be negative for
// adjustment lines; price must not be.
func LineTotal(price, quantity int64) (int64, error) {
	if price < 0 {
		return 0, ErrNegativePrice
	}
	q := quantity
	if q < 0 {
		if q == math.MinInt64 {
			return 0, fmt.Errorf("%w: quantity %d", ErrAmountOverflow, quantity)
		}
		q = -q
	}
	hi, lo := bits.Mul64(uint64(price), uint64(q))
	if hi != 0 || lo > math.MaxInt64 {
		return 0, fmt.Errorf("%w: %d × %d", ErrAmountOverflow, price, quantity)
	}
	return price * quantity, nil
}

// AddAmounts sums amounts, failing with ErrAmountOverflow on int64 overflow.
func AddAmounts(amounts ...int64) (int64, error) {
	var sum int64
	for _, a := range amounts {
		next := sum + a
		if (a > 0 && next < sum) || (a < 0 && next > sum) {
			return 0, fmt.Errorf("%w: sum of amounts", ErrAmountOverflow)
		}
		sum = next
	}
	return sum, nil
}

// ClaimedUnits sums the units claimed across shares.
func (l Line) ClaimedUnits() int64 {
	var n int64
	for _, s := range l.Shares {
		n += s.Units
	}
	return n
}

// Allocation is the integer amount one participant owes for a line.
type Allocation struct {
	ParticipantID string
	Amount        int64
}

// Allocate divides a shared line among its participants.
//
// Amounts are returned in share order and always sum to the allocated
// total: the full line total, or for Partial units allocation price ×
// claimed units.
func Allocate(line Line, policy UnitsPolicy) ([]Allocation, error) {
	if line.Price < 0 {
		return nil, ErrNegativePrice
	}
	if line.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if len(line.Shares) == 0 {
		return nil, ErrNoParticipants
	}

	ids := make([]string, len(line.Shares))
	weights := make([]int64, len(line.Shares))
	seen := make(map[string]bool, len(line.Shares))
	for i, s := range line.Shares {
		if seen[s.ParticipantID] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateParticipant, s.ParticipantID)
		}
		seen[s.ParticipantID] = true
		ids[i] = s.ParticipantID
	}

	total, err := LineTotal(line.Price, line.Quantity)
	if err != nil {
		return nil, err
	}
	switch line.Mode {
	case Equal:
		for i := range weights {
			weights[i] = 1
		}
	case Ratio:
		for i, s := range line.Shares {
			switch {
			case s.Weight == 0:
				weights[i] = 1
			case s.Weight < 0:
				return nil, fmt.Errorf("%w: %s", ErrInvalidWeight, s.ParticipantID)
			default:
				weights[i] = s.Weight
			}
		}
	case Units:
		var claimed int64
		for i, s := range line.Shares {
			if s.Units < 0 {
				return nil, fmt.Errorf("%w: %s", ErrInvalidUnits, s.ParticipantID)
			}
			weights[i] = s.Units
			claimed += s.Units
			if claimed < 0 {
				return nil, fmt.Errorf("%w: claimed units", ErrAmountOverflow)
			}
		}
		if claimed > line.Quantity {
			return nil, fmt.Errorf("%w: %d of %d", ErrUnitsOverClaimed, claimed, line.Quantity)
		}
		if claimed < line.Quantity {
			if policy == Strict {
				return nil, fmt.Errorf("%w: %d of %d", ErrUnitsNotFullyClaimed, claimed, line.Quantity)
			}
			total = line.Price * claimed
		}
		if claimed == 0 {
			out := make([]Allocation, len(ids))
			for i, id := range ids {
				out[i] = Allocation{ParticipantID: id}
			}
			return out, nil
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, line.Mode)
	}

	var sum, carry uint64
	for _, w := range weights {
		if sum, carry = bits.Add64(sum, uint64(w), 0); carry != 0 {
			return nil, fmt.Errorf("%w: share weights", ErrAmountOverflow)
		}
	}
	return LargestRemainder(total, ids, weights), nil
}

// LargestRemainder splits total across ids proportionally to weights.
// Each party gets the floor of its exact entitlement; the leftover units go
// one each to the largest fractional remainders, ties broken by ascending
// id. The result sums to total exactly and is deterministic for a fixed
// input. total must be non-negative and weights non-negative with a
// positive sum that fits in uint64.
func LargestRemainder(total int64, ids []string, weights []int64) []Allocation {
	var sum uint64
	for _, w := range weights {
		sum += uint64(w)
	}

	out := make([]Allocation, len(ids))
	rems := make([]uint64, len(ids))
	var assigned int64
	for i, id := range ids {
		// total*w/sum never exceeds total, so the 128-bit quotient fits.
		hi, lo := bits.Mul64(uint64(total), uint64(weights[i]))
		q, r := bits.Div64(hi, lo, sum)
		out[i] = Allocation{ParticipantID: id, Amount: int64(q)}
		rems[i] = r
		assigned += int64(q)
	}

	order := make([]int, len(ids))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		ia, ib := order[a], order[b]
		if rems[ia] != rems[ib] {
			return rems[ia] > rems[ib]
		}
		return ids[ia] < ids[ib]
	})

	for k := int64(0); k < total-assigned; k++ {
		out[order[k]].Amount++
	}
	return out
}
