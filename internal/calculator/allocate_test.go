package calculator

import (
	"errors"
	"fmt"
	"math"
	"testing"
)

func amounts(allocs []Allocation) map[string]int64 {
	out := make(map[string]int64, len(allocs))
	for _, a := range allocs {
		out[a.ParticipantID] = a.Amount
	}
	return out
}

func sum(allocs []Allocation) int64 {
	var s int64
	for _, a := range allocs {
		s += a.Amount
	}
	return s
}

func TestAllocate(t *testing.T) {
	tests := []struct {
		name    string
		line    Line
		policy  UnitsPolicy
		want    map[string]int64
		wantErr error
	}{
		{
			name: "equal split gives remainder to lowest ids",
			line: Line{Price: 580, Quantity: 2, Mode: Equal, Shares: []Share{
				{ParticipantID: "c"}, {ParticipantID: "a"}, {ParticipantID: "b"},
			}},
			want: map[string]int64{"a": 387, "b": 387, "c": 386},
		},
		{
			name: "ratio split by weight",
			line: Line{Price: 1000, Quantity: 1, Mode: Ratio, Shares: []Share{
				{ParticipantID: "a", Weight: 1}, {ParticipantID: "b", Weight: 1}, {ParticipantID: "c", Weight: 2},
			}},
			want: map[string]int64{"a": 250, "b": 250, "c": 500},
		},
		{
			name: "ratio weight defaults to one",
			line: Line{Price: 300, Quantity: 1, Mode: Ratio, Shares: []Share{
				{ParticipantID: "a"}, {ParticipantID: "b", Weight: 2},
			}},
			want: map[string]int64{"a": 100, "b": 200},
		},
		{
			name: "units partial preview scales to claimed units",
			line: Line{Price: 220, Quantity: 6, Mode: Units, Shares: []Share{
				{ParticipantID: "A", Units: 2}, {ParticipantID: "B", Units: 1},
			}},
			policy: Partial,
			want:   map[string]int64{"A": 440, "B": 220},
		},
		{
			name: "units strict fails before full claim",
			line: Line{Price: 220, Quantity: 6, Mode: Units, Shares: []Share{
				{ParticipantID: "A", Units: 2}, {ParticipantID: "B", Units: 1},
			}},
			policy:  Strict,
			wantErr: ErrUnitsNotFullyClaimed,
		},
		{
			name: "units strict with full claim",
			line: Line{Price: 220, Quantity: 6, Mode: Units, Shares: []Share{
				{ParticipantID: "A", Units: 4}, {ParticipantID: "B", Units: 2},
			}},
			want: map[string]int64{"A": 880, "B": 440},
		},
		{
			name: "units over claim is rejected in any policy",
			line: Line{Price: 100, Quantity: 2, Mode: Units, Shares: []Share{
				{ParticipantID: "A", Units: 2}, {ParticipantID: "B", Units: 1},
			}},
			policy:  Partial,
			wantErr: ErrUnitsOverClaimed,
		},
		{
			name: "units partial with nothing claimed owes nothing",
			line: Line{Price: 100, Quantity: 2, Mode: Units, Shares: []Share{
				{ParticipantID: "A"},
			}},
			policy: Partial,
			want:   map[string]int64{"A": 0},
		},
		{
			name:    "no participants",
			line:    Line{Price: 100, Quantity: 1, Mode: Equal},
			wantErr: ErrNoParticipants,
		},
		{
			name: "duplicate participant",
			line: Line{Price: 100, Quantity: 1, Mode: Equal, Shares: []Share{
				{ParticipantID: "a"}, {ParticipantID: "a"},
			}},
			wantErr: ErrDuplicateParticipant,
		},
		{
			name: "negative weight",
			line: Line{Price: 100, Quantity: 1, Mode: Ratio, Shares: []Share{
				{ParticipantID: "a", Weight: -1},
			}},
			wantErr: ErrInvalidWeight,
		},
		{
			name:    "zero quantity",
			line:    Line{Price: 100, Quantity: 0, Mode: Equal, Shares: []Share{{ParticipantID: "a"}}},
			wantErr: ErrInvalidQuantity,
		},
		{
			name: "ratio weights summing past int64",
			line: Line{Price: 100, Quantity: 1, Mode: Ratio, Shares: []Share{
				{ParticipantID: "a", Weight: math.MaxInt64},
				{ParticipantID: "b", Weight: math.MaxInt64},
				{ParticipantID: "c", Weight: math.MaxInt64},
			}},
			wantErr: ErrAmountOverflow,
		},
		{
			name:    "line total past int64",
			line:    Line{Price: math.MaxInt64 / 2, Quantity: 3, Mode: Equal, Shares: []Share{{ParticipantID: "a"}}},
			wantErr: ErrAmountOverflow,
		},
		{
			name:    "unknown mode",
			line:    Line{Price: 100, Quantity: 1, Mode: "thirds", Shares: []Share{{ParticipantID: "a"}}},
			wantErr: ErrUnknownMode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Allocate(tt.line, tt.policy)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Allocate() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Allocate() unexpected error: %v", err)
			}
			gotAmounts := amounts(got)
			for id, want := range tt.want {
				if gotAmounts[id] != want {
					t.Errorf("%s amount = %d, want %d", id, gotAmounts[id], want)
				}
			}
			if len(got) != len(tt.want) {
				t.Errorf("got %d allocations, want %d", len(got), len(tt.want))
			}
		})
	}
}

func TestAllocate_PreservesShareOrder(t *testing.T) {
	line := Line{Price: 10, Quantity: 1, Mode: Equal, Shares: []Share{
		{ParticipantID: "z"}, {ParticipantID: "m"}, {ParticipantID: "a"},
	}}
	got, err := Allocate(line, Strict)
	if err != nil {
		t.Fatalf("Allocate failed: %v", err)
	}
	for i, want := range []string{"z", "m", "a"} {
		if got[i].ParticipantID != want {
			t.Errorf("position %d = %s, want %s", i, got[i].ParticipantID, want)
		}
	}
	// 10/3: a gets the single leftover unit.
	if got[2].Amount != 4 || got[0].Amount != 3 || got[1].Amount != 3 {
		t.Errorf("unexpected amounts: %+v", got)
	}
}

func TestAllocate_SumInvariant(t *testing.T) {
	prices := []int64{0, 1, 7, 99, 580, 1001, 123457}
	quantities := []int64{1, 2, 3, 7}

	for _, mode := range []Mode{Equal, Ratio, Units} {
		for n := 1; n <= 9; n++ {
			for _, price := range prices {
				for _, qty := range quantities {
					shares := make([]Share, n)
					remaining := qty
					for i := range shares {
						shares[i] = Share{ParticipantID: fmt.Sprintf("p%02d", n-i), Weight: int64(i%4 + 1)}
						if mode == Units {
							u := remaining / int64(n-i)
							shares[i].Units = u
							remaining -= u
						}
					}
					line := Line{Price: price, Quantity: qty, Mode: mode, Shares: shares}

					got, err := Allocate(line, Strict)
					if err != nil {
						t.Fatalf("%s n=%d price=%d qty=%d: %v", mode, n, price, qty, err)
					}
					if s := sum(got); s != line.Total() {
						t.Fatalf("%s n=%d price=%d qty=%d: sum %d != total %d", mode, n, price, qty, s, line.Total())
					}

					again, _ := Allocate(line, Strict)
					for i := range got {
						if got[i] != again[i] {
							t.Fatalf("%s: allocation not deterministic at %d: %+v vs %+v", mode, i, got[i], again[i])
						}
					}
				}
			}
		}
	}
}

func TestLargestRemainder_NoOverflow(t *testing.T) {
	total := int64(1) << 62
	got := LargestRemainder(total, []string{"a", "b", "c"}, []int64{1 << 40, 1 << 40, 1 << 41})
	if s := sum(got); s != total {
		t.Fatalf("sum = %d, want %d", s, total)
	}
	if got[2].Amount != total/2 {
		t.Errorf("c = %d, want %d", got[2].Amount, total/2)
	}
}

func TestLineTotal(t *testing.T) {
	tests := []struct {
		name     string
		price    int64
		quantity int64
		want     int64
		wantErr  error
	}{
		{name: "plain", price: 250, quantity: 4, want: 1000},
		{name: "adjustment", price: 250, quantity: -2, want: -500},
		{name: "largest fitting", price: math.MaxInt64, quantity: 1, want: math.MaxInt64},
		{name: "overflow", price: math.MaxInt64 / 2, quantity: 3, wantErr: ErrAmountOverflow},
		{name: "negative overflow", price: math.MaxInt64 / 2, quantity: -3, wantErr: ErrAmountOverflow},
		{name: "min quantity", price: 1, quantity: math.MinInt64, wantErr: ErrAmountOverflow},
		{name: "negative price", price: -1, quantity: 1, wantErr: ErrNegativePrice},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LineTotal(tt.price, tt.quantity)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("LineTotal() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LineTotal() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("LineTotal() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestAddAmounts(t *testing.T) {
	if got, err := AddAmounts(5, -3, 10); err != nil || got != 12 {
		t.Fatalf("AddAmounts() = %d, %v; want 12", got, err)
	}
	if _, err := AddAmounts(math.MaxInt64, 1); !errors.Is(err, ErrAmountOverflow) {
		t.Errorf("positive overflow: error = %v", err)
	}
	if _, err := AddAmounts(math.MinInt64, -1); !errors.Is(err, ErrAmountOverflow) {
		t.Errorf("negative overflow: error = %v", err)
	}
}

func TestLock(t *testing.T) {
	t.Run("strict lock fails on partial claims", func(t *testing.T) {
		line := Line{Price: 220, Quantity: 6, Mode: Units, Shares: []Share{
			{ParticipantID: "A", Units: 2}, {ParticipantID: "B", Units: 1},
		}}
		if _, _, err := Lock(line, "A", false); !errors.Is(err, ErrUnitsNotFullyClaimed) {
			t.Fatalf("Lock() error = %v, want ErrUnitsNotFullyClaimed", err)
		}
	})

	t.Run("forced lock gives unclaimed units to creator", func(t *testing.T) {
		line := Line{Price: 220, Quantity: 6, Mode: Units, Shares: []Share{
			{ParticipantID: "A", Units: 2}, {ParticipantID: "B", Units: 1},
		}}
		completed, allocs, err := Lock(line, "B", true)
		if err != nil {
			t.Fatalf("Lock failed: %v", err)
		}
		got := amounts(allocs)
		if got["A"] != 440 || got["B"] != 880 {
			t.Errorf("amounts = %v, want A=440 B=880", got)
		}
		if completed.ClaimedUnits() != 6 {
			t.Errorf("claimed units = %d, want 6", completed.ClaimedUnits())
		}
		if line.Shares[1].Units != 1 {
			t.Error("Lock must not mutate the caller's shares")
		}
	})

	t.Run("forced lock appends creator when absent", func(t *testing.T) {
		line := Line{Price: 100, Quantity: 3, Mode: Units, Shares: []Share{
			{ParticipantID: "A", Units: 1},
		}}
		_, allocs, err := Lock(line, "C", true)
		if err != nil {
			t.Fatalf("Lock failed: %v", err)
		}
		got := amounts(allocs)
		if got["A"] != 100 || got["C"] != 200 {
			t.Errorf("amounts = %v, want A=100 C=200", got)
		}
	})

	t.Run("forced lock of empty line bills creator", func(t *testing.T) {
		line := Line{Price: 150, Quantity: 2, Mode: Equal}
		_, allocs, err := Lock(line, "owner", true)
		if err != nil {
			t.Fatalf("Lock failed: %v", err)
		}
		if len(allocs) != 1 || allocs[0].ParticipantID != "owner" || allocs[0].Amount != 300 {
			t.Errorf("allocs = %+v, want owner=300", allocs)
		}
	})

	t.Run("unforced lock of empty line fails", func(t *testing.T) {
		if _, _, err := Lock(Line{Price: 1, Quantity: 1, Mode: Equal}, "x", false); !errors.Is(err, ErrNoParticipants) {
			t.Fatalf("Lock() error = %v, want ErrNoParticipants", err)
		}
	})
}

func TestCalculateTotals(t *testing.T) {
	frozen := []Allocation{{ParticipantID: "a", Amount: 70}, {ParticipantID: "b", Amount: 30}}
	lines := []LineForTotal{
		{OwnerID: "a", Price: 100, Quantity: 2},
		{OwnerID: "b", Price: 50, Quantity: 1},
		{OwnerID: "a", Price: 300, Quantity: 1, Shared: &Line{Price: 300, Quantity: 1, Mode: Equal, Shares: []Share{
			{ParticipantID: "a"}, {ParticipantID: "b"}, {ParticipantID: "c"},
		}}},
		{OwnerID: "b", Price: 100, Quantity: 1, Shared: &Line{Price: 100, Quantity: 1, Mode: Equal}, Frozen: frozen},
		{OwnerID: "c", Price: 10, Quantity: 4, Shared: &Line{Price: 10, Quantity: 4, Mode: Units, Shares: []Share{
			{ParticipantID: "c", Units: 1},
		}}},
		{OwnerID: "a", Price: 40, Quantity: 1, Shared: &Line{Price: 40, Quantity: 1, Mode: Equal}},
		{OwnerID: "b", Price: 50, Quantity: -1, Adjustment: true},
	}

	totals, err := CalculateTotals([]string{"a", "b", "c", "d"}, lines)
	if err != nil {
		t.Fatalf("CalculateTotals failed: %v", err)
	}

	want := map[string]MemberTotal{
		"a": {MemberID: "a", Private: 200, Shared: 170, Total: 370},
		"b": {MemberID: "b", Private: 50, Shared: 130, Adjustments: -50, Total: 130},
		"c": {MemberID: "c", Shared: 110, Total: 110},
		"d": {MemberID: "d"},
	}
	for id, w := range want {
		if got := totals.Member(id); got != w {
			t.Errorf("member %s = %+v, want %+v", id, got, w)
		}
	}
	// 30 unclaimed units on the units line + 40 on the participant-less line.
	if totals.Unassigned != 70 {
		t.Errorf("Unassigned = %d, want 70", totals.Unassigned)
	}
	if len(totals.Members) != 4 || totals.Members[0].MemberID != "a" {
		t.Errorf("members not sorted by id: %+v", totals.Members)
	}
}

func TestCalculateTotals_Overflow(t *testing.T) {
	half := int64(math.MaxInt64 / 2)
	tests := []struct {
		name  string
		lines []LineForTotal
	}{
		{
			name:  "single private line",
			lines: []LineForTotal{{OwnerID: "a", Price: half, Quantity: 3}},
		},
		{
			name: "private lines summed per member",
			lines: []LineForTotal{
				{OwnerID: "a", Price: half, Quantity: 1},
				{OwnerID: "a", Price: half, Quantity: 1},
				{OwnerID: "a", Price: half, Quantity: 1},
			},
		},
		{
			name: "private plus shared",
			lines: []LineForTotal{
				{OwnerID: "a", Price: math.MaxInt64, Quantity: 1},
				{OwnerID: "b", Price: 10, Quantity: 1, Shared: &Line{Price: 10, Quantity: 1, Mode: Equal, Shares: []Share{
					{ParticipantID: "a"},
				}}},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CalculateTotals([]string{"a", "b"}, tt.lines)
			if !errors.Is(err, ErrAmountOverflow) {
				t.Fatalf("CalculateTotals() error = %v, want %v", err, ErrAmountOverflow)
			}
		})
	}
}
