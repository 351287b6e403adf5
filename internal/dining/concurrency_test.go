package dining

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/mmynk/tableround/internal/models"
)

// runTogether starts every fn at once and waits for all of them.
func runTogether(fns ...func() error) []error {
	var (
		wg    sync.WaitGroup
		start = make(chan struct{})
		errs  = make([]error, len(fns))
	)
	for i, fn := range fns {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			errs[i] = fn()
		}()
	}
	close(start)
	wg.Wait()
	return errs
}

func TestJoinSharedItem_ConcurrentClaims(t *testing.T) {
	e, _ := setupEngine(t)
	ctx := context.Background()
	g, r := setupGroup(t, e, "alice", "bob", "carol")

	item, err := e.CreateSharedItem(ctx, g.ID, "alice", SharedInput{
		OrderInput:      OrderInput{Name: "Bao", Price: 300, Quantity: 4},
		Mode:            models.ShareUnits,
		AllowSelfJoin:   true,
		AllowClaimUnits: true,
	})
	if err != nil {
		t.Fatalf("CreateSharedItem failed: %v", err)
	}

	claim := func(member string) func() error {
		return func() error {
			_, err := e.JoinSharedItem(ctx, item.ID, member, 0, 3)
			return err
		}
	}
	errs := runTogether(claim("bob"), claim("carol"))

	var succeeded, rejected int
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, ErrQuotaExceeded):
			rejected++
			assertCode(t, err, CodeUnitsOverClaimed)
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	if succeeded != 1 || rejected != 1 {
		t.Fatalf("expected one claim accepted and one rejected, got %d and %d", succeeded, rejected)
	}

	view, err := e.GetRound(ctx, r.ID, "alice")
	if err != nil {
		t.Fatalf("GetRound failed: %v", err)
	}
	line := view.Items[0]
	if n := len(line.Shared.Shares); n != 1 {
		t.Errorf("expected a single participant, got %d", n)
	}
	if claimed := calcLine(line).ClaimedUnits(); claimed != 3 {
		t.Errorf("expected 3 of 4 units claimed, got %d", claimed)
	}
}

func TestConfirmRound_Concurrent(t *testing.T) {
	e, _ := setupEngine(t)
	ctx := context.Background()
	g, r := setupGroup(t, e, "alice", "bob", "carol")

	results := make([]*ConfirmResult, 3)
	confirm := func(i int, member string) func() error {
		return func() error {
			res, err := e.ConfirmRound(ctx, r.ID, member)
			results[i] = res
			return err
		}
	}
	errs := runTogether(confirm(0, "alice"), confirm(1, "bob"), confirm(2, "carol"))

	advanced := 0
	for i, err := range errs {
		if err != nil {
			t.Fatalf("ConfirmRound %d failed: %v", i, err)
		}
		if results[i].Advanced {
			advanced++
		}
	}
	if advanced != 1 {
		t.Fatalf("expected exactly one confirmation to advance the round, got %d", advanced)
	}

	rounds, err := e.ListRounds(ctx, g.ID, "alice")
	if err != nil {
		t.Fatalf("ListRounds failed: %v", err)
	}
	open := 0
	for _, round := range rounds {
		if round.IsOpen() {
			open++
		}
	}
	if len(rounds) != 2 || open != 1 {
		t.Errorf("expected 2 rounds with one open, got %d with %d open", len(rounds), open)
	}
}
