package dining

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/mmynk/tableround/internal/models"
	"github.com/mmynk/tableround/internal/storage/sqlite"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func setupEngine(t *testing.T) (*Engine, *fakeClock) {
	t.Helper()
	return setupEngineWith(t)
}

func setupEngineWith(t *testing.T, opts ...Option) (*Engine, *fakeClock) {
	t.Helper()

	tmpFile, err := os.CreateTemp("", "dining-*.db")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	tmpFile.Close()

	store, err := sqlite.New(tmpFile.Name())
	if err != nil {
		os.Remove(tmpFile.Name())
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
		os.Remove(tmpFile.Name())
	})

	clock := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	opts = append([]Option{WithClock(clock.Now), WithLogger(logger)}, opts...)
	return New(store, opts...), clock
}

// setupGroup creates a group owned by the first member and joins the rest.
func setupGroup(t *testing.T, e *Engine, members ...string) (*models.Group, *models.Round) {
	t.Helper()
	ctx := context.Background()

	g, r, err := e.CreateGroup(ctx, members[0], "Friday dinner")
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	for _, m := range members[1:] {
		if g, err = e.JoinGroup(ctx, g.ID, m); err != nil {
			t.Fatalf("JoinGroup(%s) failed: %v", m, err)
		}
	}
	return g, r
}

func assertKind(t *testing.T, err error, want *Error) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", want.Kind)
	}
	if !errors.Is(err, want) {
		t.Fatalf("expected %s error, got %v (kind %s)", want.Kind, err, KindOf(err))
	}
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	var de *Error
	if !errors.As(err, &de) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if de.Code != code {
		t.Errorf("expected code %s, got %q", code, de.Code)
	}
}

func TestCreateGroup(t *testing.T) {
	e, _ := setupEngine(t)

	g, r, err := e.CreateGroup(context.Background(), "alice", "  Friday dinner ")
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}

	if len(g.ID) != 8 || strings.ToUpper(g.ID) != g.ID {
		t.Errorf("expected 8 upper-case characters, got %q", g.ID)
	}
	if g.Name != "Friday dinner" {
		t.Errorf("expected trimmed name, got %q", g.Name)
	}
	if g.OwnerID != "alice" || !g.IsMember("alice") {
		t.Errorf("expected alice to own and belong to the group")
	}
	if r.ID != g.ID+"-1" || r.Number != 1 || !r.IsOpen() {
		t.Errorf("expected open round %s-1, got %+v", g.ID, r)
	}
	if confirmed, ok := r.Confirmations["alice"]; !ok || confirmed {
		t.Errorf("expected alice unconfirmed in the first round, got %v", r.Confirmations)
	}
}

func TestCreateGroup_Validation(t *testing.T) {
	e, _ := setupEngine(t)
	ctx := context.Background()

	_, _, err := e.CreateGroup(ctx, "alice", "   ")
	assertKind(t, err, ErrInvalid)

	_, _, err = e.CreateGroup(ctx, "", "Lunch")
	assertKind(t, err, ErrUnauthorized)
}

func TestCreateGroup_RetriesTakenID(t *testing.T) {
	ids := []string{"TAKEN001", "TAKEN001", "TAKEN001", "FRESH001"}
	calls := 0
	e, _ := setupEngineWith(t, WithGroupIDs(func() string {
		id := ids[calls%len(ids)]
		calls++
		return id
	}))
	ctx := context.Background()

	first, _, err := e.CreateGroup(ctx, "alice", "Lunch")
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	second, r, err := e.CreateGroup(ctx, "bob", "Dinner")
	if err != nil {
		t.Fatalf("CreateGroup with taken id failed: %v", err)
	}
	if first.ID != "TAKEN001" || second.ID != "FRESH001" {
		t.Errorf("expected TAKEN001 then FRESH001, got %s and %s", first.ID, second.ID)
	}
	if r.GroupID != "FRESH001" || calls != 4 {
		t.Errorf("expected round of FRESH001 after 4 ids, got %s after %d", r.GroupID, calls)
	}

	t.Run("gives up after repeated collisions", func(t *testing.T) {
		ids = []string{"TAKEN001"}
		calls = 0
		_, _, err := e.CreateGroup(ctx, "carol", "Brunch")
		assertKind(t, err, ErrConflict)
		if calls != groupIDAttempts {
			t.Errorf("expected %d attempts, got %d", groupIDAttempts, calls)
		}
	})
}

func TestJoinGroup(t *testing.T) {
	e, _ := setupEngine(t)
	ctx := context.Background()
	g, r := setupGroup(t, e, "alice", "bob")

	if len(g.Members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(g.Members))
	}

	again, err := e.JoinGroup(ctx, g.ID, "bob")
	if err != nil {
		t.Fatalf("second JoinGroup failed: %v", err)
	}
	if len(again.Members) != 2 {
		t.Errorf("expected join to be idempotent, got %d members", len(again.Members))
	}

	view, err := e.GetRound(ctx, r.ID, "bob")
	if err != nil {
		t.Fatalf("GetRound failed: %v", err)
	}
	if confirmed, ok := view.Round.Confirmations["bob"]; !ok || confirmed {
		t.Errorf("expected bob to start unconfirmed, got %v", view.Round.Confirmations)
	}

	_, err = e.JoinGroup(ctx, "NOPE0000", "bob")
	assertKind(t, err, ErrNotFound)
}

func TestOpenRound(t *testing.T) {
	e, _ := setupEngine(t)
	ctx := context.Background()
	g, r := setupGroup(t, e, "alice", "bob")

	_, err := e.OpenRound(ctx, g.ID, "alice")
	assertKind(t, err, ErrInvalidState)

	_, err = e.OpenRound(ctx, g.ID, "mallory")
	assertKind(t, err, ErrUnauthorized)

	if _, err := e.CloseRound(ctx, r.ID, "alice"); err != nil {
		t.Fatalf("CloseRound failed: %v", err)
	}

	next, err := e.OpenRound(ctx, g.ID, "bob")
	if err != nil {
		t.Fatalf("OpenRound failed: %v", err)
	}
	if next.Number != 2 || next.ID != g.ID+"-2" {
		t.Errorf("expected round 2, got %+v", next)
	}
}

func TestCloseRound(t *testing.T) {
	e, _ := setupEngine(t)
	ctx := context.Background()
	g, r := setupGroup(t, e, "alice", "bob")

	_, err := e.CloseRound(ctx, r.ID, "bob")
	assertKind(t, err, ErrUnauthorized)

	closed, err := e.CloseRound(ctx, r.ID, "alice")
	if err != nil {
		t.Fatalf("CloseRound failed: %v", err)
	}
	if closed.IsOpen() || closed.ClosedAt == 0 {
		t.Errorf("expected closed round with close time, got %+v", closed)
	}

	_, err = e.CloseRound(ctx, r.ID, "alice")
	assertKind(t, err, ErrInvalidState)

	_, err = e.AddOrderItem(ctx, g.ID, "bob", OrderInput{Name: "Tea", Price: 300, Quantity: 1})
	assertKind(t, err, ErrInvalidState)
}

func TestOrderItems(t *testing.T) {
	e, _ := setupEngine(t)
	ctx := context.Background()
	g, r := setupGroup(t, e, "alice", "bob", "carol")

	item, err := e.AddOrderItem(ctx, g.ID, "bob", OrderInput{Name: " Fried  rice ", Price: 850, Quantity: 2})
	if err != nil {
		t.Fatalf("AddOrderItem failed: %v", err)
	}
	if item.Name != "Fried rice" || item.RoundID != r.ID || item.CreatorID != "bob" {
		t.Errorf("unexpected item: %+v", item)
	}

	_, err = e.AddOrderItem(ctx, g.ID, "bob", OrderInput{Name: "Tea", Price: 100, Quantity: 0})
	assertKind(t, err, ErrInvalid)
	_, err = e.AddOrderItem(ctx, g.ID, "bob", OrderInput{Name: "Tea", Price: -1, Quantity: 1})
	assertKind(t, err, ErrInvalid)

	t.Run("only creator or owner may edit", func(t *testing.T) {
		qty := int64(3)
		_, err := e.UpdateOrderItem(ctx, item.ID, "carol", OrderPatch{Quantity: &qty})
		assertKind(t, err, ErrUnauthorized)

		updated, err := e.UpdateOrderItem(ctx, item.ID, "alice", OrderPatch{Quantity: &qty})
		if err != nil {
			t.Fatalf("UpdateOrderItem by owner failed: %v", err)
		}
		if updated.Quantity != 3 {
			t.Errorf("expected quantity 3, got %d", updated.Quantity)
		}
	})

	t.Run("totals", func(t *testing.T) {
		totals, err := e.RoundTotals(ctx, r.ID, "carol")
		if err != nil {
			t.Fatalf("RoundTotals failed: %v", err)
		}
		if got := totals.Member("bob").Total; got != 2550 {
			t.Errorf("expected bob to owe 2550, got %d", got)
		}
		if got := totals.Member("carol").Total; got != 0 {
			t.Errorf("expected carol to owe 0, got %d", got)
		}
	})

	t.Run("delete", func(t *testing.T) {
		if err := e.DeleteOrderItem(ctx, item.ID, "bob"); err != nil {
			t.Fatalf("DeleteOrderItem failed: %v", err)
		}
		view, err := e.GetRound(ctx, r.ID, "bob")
		if err != nil {
			t.Fatalf("GetRound failed: %v", err)
		}
		if len(view.Items) != 0 {
			t.Errorf("expected deleted line to be hidden, got %d lines", len(view.Items))
		}
		err = e.DeleteOrderItem(ctx, item.ID, "bob")
		assertKind(t, err, ErrNotFound)
	})
}

func TestOrderItems_AmountOverflow(t *testing.T) {
	e, _ := setupEngine(t)
	ctx := context.Background()
	g, r := setupGroup(t, e, "alice", "bob")
	half := int64(math.MaxInt64 / 2)

	_, err := e.AddOrderItem(ctx, g.ID, "bob", OrderInput{Name: "Caviar", Price: half, Quantity: 3})
	assertKind(t, err, ErrInvalid)
	assertCode(t, err, CodeAmountOverflow)

	item, err := e.AddOrderItem(ctx, g.ID, "bob", OrderInput{Name: "Caviar", Price: half, Quantity: 1})
	if err != nil {
		t.Fatalf("AddOrderItem failed: %v", err)
	}
	qty := int64(3)
	_, err = e.UpdateOrderItem(ctx, item.ID, "bob", OrderPatch{Quantity: &qty})
	assertKind(t, err, ErrInvalid)
	assertCode(t, err, CodeAmountOverflow)

	// Each line fits; their sum does not.
	for i := 0; i < 2; i++ {
		if _, err := e.AddOrderItem(ctx, g.ID, "bob", OrderInput{Name: "Truffle", Price: half, Quantity: 1}); err != nil {
			t.Fatalf("AddOrderItem failed: %v", err)
		}
	}
	_, err = e.RoundTotals(ctx, r.ID, "alice")
	assertKind(t, err, ErrInvalid)
	assertCode(t, err, CodeAmountOverflow)
	_, err = e.GroupTotals(ctx, g.ID, "alice")
	assertKind(t, err, ErrInvalid)
}

func TestConfirmRound_AdvancesWhenUnanimous(t *testing.T) {
	e, _ := setupEngine(t)
	ctx := context.Background()
	g, r := setupGroup(t, e, "alice", "bob")

	shared, err := e.CreateSharedItem(ctx, g.ID, "alice", SharedInput{
		OrderInput:   OrderInput{Name: "Dumplings", Price: 100, Quantity: 3},
		Mode:         models.ShareUnits,
		Participants: []ShareInput{{ParticipantID: "alice", Units: 1}},
	})
	if err != nil {
		t.Fatalf("CreateSharedItem failed: %v", err)
	}

	res, err := e.ConfirmRound(ctx, r.ID, "alice")
	if err != nil {
		t.Fatalf("ConfirmRound(alice) failed: %v", err)
	}
	if res.Advanced {
		t.Fatal("expected round to stay open after one of two confirmations")
	}

	// Confirming twice changes nothing.
	if res, err = e.ConfirmRound(ctx, r.ID, "alice"); err != nil || res.Advanced {
		t.Fatalf("expected idempotent confirmation, got %+v, %v", res, err)
	}

	res, err = e.ConfirmRound(ctx, r.ID, "bob")
	if err != nil {
		t.Fatalf("ConfirmRound(bob) failed: %v", err)
	}
	if !res.Advanced || res.NextRound == nil {
		t.Fatalf("expected the round to advance, got %+v", res)
	}
	if res.NextRound.ID != g.ID+"-2" || !res.NextRound.IsOpen() {
		t.Errorf("expected open round %s-2, got %+v", g.ID, res.NextRound)
	}

	view, err := e.GetRound(ctx, r.ID, "alice")
	if err != nil {
		t.Fatalf("GetRound failed: %v", err)
	}
	if view.Round.IsOpen() {
		t.Error("expected first round to be closed")
	}
	line := view.Items[0]
	if line.ID != shared.ID || !line.IsLocked() {
		t.Fatalf("expected shared line to be locked, got %+v", line.Shared)
	}
	// The two unclaimed units go to the creator.
	if s := line.Shared.Share("alice"); s == nil || s.Units != 3 || s.Amount == nil || *s.Amount != 300 {
		t.Errorf("expected alice to owe 300 for 3 units, got %+v", s)
	}

	_, err = e.ConfirmRound(ctx, r.ID, "alice")
	assertKind(t, err, ErrInvalidState)

	// Edits after the transition land in the new round.
	item, err := e.AddOrderItem(ctx, g.ID, "bob", OrderInput{Name: "Tea", Price: 200, Quantity: 1})
	if err != nil {
		t.Fatalf("AddOrderItem failed: %v", err)
	}
	if item.RoundID != res.NextRound.ID {
		t.Errorf("expected line in %s, got %s", res.NextRound.ID, item.RoundID)
	}
}

func TestConfirmRound_ClearedByEdits(t *testing.T) {
	e, _ := setupEngine(t)
	ctx := context.Background()
	g, r := setupGroup(t, e, "alice", "bob", "carol")

	item, err := e.AddOrderItem(ctx, g.ID, "bob", OrderInput{Name: "Noodles", Price: 900, Quantity: 1})
	if err != nil {
		t.Fatalf("AddOrderItem failed: %v", err)
	}
	if _, err := e.ConfirmRound(ctx, r.ID, "alice"); err != nil {
		t.Fatalf("ConfirmRound failed: %v", err)
	}
	if _, err := e.ConfirmRound(ctx, r.ID, "bob"); err != nil {
		t.Fatalf("ConfirmRound failed: %v", err)
	}

	// The owner edits bob's line: both lose their confirmation.
	qty := int64(2)
	if _, err := e.UpdateOrderItem(ctx, item.ID, "alice", OrderPatch{Quantity: &qty}); err != nil {
		t.Fatalf("UpdateOrderItem failed: %v", err)
	}

	view, err := e.GetRound(ctx, r.ID, "carol")
	if err != nil {
		t.Fatalf("GetRound failed: %v", err)
	}
	if pending := view.Round.Confirmations.Pending(g.MemberIDs()); len(pending) != 3 {
		t.Errorf("expected every member pending, got %v", pending)
	}

	// carol confirming alone does not advance.
	res, err := e.ConfirmRound(ctx, r.ID, "carol")
	if err != nil {
		t.Fatalf("ConfirmRound failed: %v", err)
	}
	if res.Advanced {
		t.Error("expected round to stay open")
	}
}

func TestRemoveMember(t *testing.T) {
	e, _ := setupEngine(t)
	ctx := context.Background()
	g, r := setupGroup(t, e, "alice", "bob", "carol")

	if _, err := e.AddOrderItem(ctx, g.ID, "bob", OrderInput{Name: "Soup", Price: 400, Quantity: 1}); err != nil {
		t.Fatalf("AddOrderItem failed: %v", err)
	}
	for _, m := range []string{"alice", "bob"} {
		if _, err := e.ConfirmRound(ctx, r.ID, m); err != nil {
			t.Fatalf("ConfirmRound(%s) failed: %v", m, err)
		}
	}

	_, err := e.RemoveMember(ctx, g.ID, "bob", "carol")
	assertKind(t, err, ErrUnauthorized)

	_, err = e.RemoveMember(ctx, g.ID, "alice", "alice")
	assertKind(t, err, ErrInvalidState)

	_, err = e.RemoveMember(ctx, g.ID, "alice", "bob")
	assertKind(t, err, ErrInvalidState)

	updated, err := e.RemoveMember(ctx, g.ID, "alice", "carol")
	if err != nil {
		t.Fatalf("RemoveMember failed: %v", err)
	}
	if updated.IsMember("carol") {
		t.Error("expected carol to be removed")
	}

	// Everyone left had confirmed, so the round advanced.
	rounds, err := e.ListRounds(ctx, g.ID, "alice")
	if err != nil {
		t.Fatalf("ListRounds failed: %v", err)
	}
	if len(rounds) != 2 || rounds[0].IsOpen() || !rounds[1].IsOpen() {
		t.Fatalf("expected a closed round followed by an open one, got %d rounds", len(rounds))
	}
	if _, ok := rounds[1].Confirmations["carol"]; ok {
		t.Error("expected carol to be absent from the new round")
	}

	_, err = e.RemoveMember(ctx, g.ID, "alice", "carol")
	assertKind(t, err, ErrNotFound)
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Pizza", "Pizza"},
		{"surrounding space", "  Pizza ", "Pizza"},
		{"inner runs", "Pizza \t Margherita", "Pizza Margherita"},
		{"full-width latin", "Ｐｉｚｚａ", "Pizza"},
		{"ideographic space", "焼き　鳥", "焼き 鳥"},
		{"empty", "   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeName(tt.in); got != tt.want {
				t.Errorf("NormalizeName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
