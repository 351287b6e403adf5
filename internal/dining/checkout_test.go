package dining

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/mmynk/tableround/internal/models"
)

func TestStartCheckout(t *testing.T) {
	e, _ := setupEngine(t)
	ctx := context.Background()
	g, r := setupGroup(t, e, "alice", "bob")

	_, _, err := e.StartCheckout(ctx, g.ID, "bob")
	assertKind(t, err, ErrUnauthorized)

	group, extra, err := e.StartCheckout(ctx, g.ID, "alice")
	if err != nil {
		t.Fatalf("StartCheckout failed: %v", err)
	}
	if !group.CheckoutConfirming {
		t.Error("expected checkout to be in progress")
	}
	if extra.ID != models.ExtraRoundID(g.ID) || extra.Kind != models.RoundExtra || !extra.IsOpen() {
		t.Errorf("expected open extra round, got %+v", extra)
	}

	view, err := e.GetRound(ctx, r.ID, "alice")
	if err != nil {
		t.Fatalf("GetRound failed: %v", err)
	}
	if view.Round.IsOpen() {
		t.Error("expected the ordinary round to be closed")
	}

	_, err = e.OpenRound(ctx, g.ID, "bob")
	assertKind(t, err, ErrInvalidState)

	_, err = e.CloseRound(ctx, extra.ID, "alice")
	assertKind(t, err, ErrInvalidState)

	_, err = e.ConfirmRound(ctx, extra.ID, "alice")
	assertKind(t, err, ErrInvalidState)

	// Restarting keeps the same extra round.
	if _, again, err := e.StartCheckout(ctx, g.ID, "alice"); err != nil || again.ID != extra.ID {
		t.Fatalf("expected restart to reuse %s, got %v", extra.ID, err)
	}
}

func TestConfirmMemberOrder_RequiresCheckout(t *testing.T) {
	e, _ := setupEngine(t)
	g, _ := setupGroup(t, e, "alice")

	_, err := e.ConfirmMemberOrder(context.Background(), g.ID, "alice")
	assertKind(t, err, ErrInvalidState)
}

func TestAddExtraItem(t *testing.T) {
	e, _ := setupEngine(t)
	ctx := context.Background()
	g, _ := setupGroup(t, e, "alice")

	if _, err := e.AddOrderItem(ctx, g.ID, "alice", OrderInput{Name: "Beer", Price: 100, Quantity: 2}); err != nil {
		t.Fatalf("AddOrderItem failed: %v", err)
	}

	_, err := e.AddExtraItem(ctx, g.ID, "alice", OrderInput{Name: "Beer", Price: 100, Quantity: -1})
	assertKind(t, err, ErrInvalidState)

	if _, _, err := e.StartCheckout(ctx, g.ID, "alice"); err != nil {
		t.Fatalf("StartCheckout failed: %v", err)
	}

	_, err = e.AddExtraItem(ctx, g.ID, "alice", OrderInput{Name: "Beer", Price: 100, Quantity: 0})
	assertKind(t, err, ErrInvalid)

	_, err = e.AddExtraItem(ctx, g.ID, "alice", OrderInput{Name: "Beer", Price: 100, Quantity: -3})
	assertKind(t, err, ErrQuotaExceeded)
	assertCode(t, err, CodeNegativeServed)

	notServed, err := e.AddExtraItem(ctx, g.ID, "alice", OrderInput{Name: "Beer", Price: 100, Quantity: -2})
	if err != nil {
		t.Fatalf("AddExtraItem failed: %v", err)
	}
	if notServed.RoundID != models.ExtraRoundID(g.ID) {
		t.Errorf("expected line in the extra round, got %s", notServed.RoundID)
	}

	totals, err := e.GroupTotals(ctx, g.ID, "alice")
	if err != nil {
		t.Fatalf("GroupTotals failed: %v", err)
	}
	alice := totals.Member("alice")
	if alice.Private != 200 || alice.Adjustments != -200 || alice.Total != 0 {
		t.Errorf("expected 200 - 200 = 0, got %+v", alice)
	}

	var more *models.RoundItem
	t.Run("editing an adjustment clears the checkout confirmation", func(t *testing.T) {
		if _, err := e.ConfirmMemberOrder(ctx, g.ID, "alice"); err != nil {
			t.Fatalf("ConfirmMemberOrder failed: %v", err)
		}
		more, err = e.AddExtraItem(ctx, g.ID, "alice", OrderInput{Name: "Beer", Price: 100, Quantity: 1})
		if err != nil {
			t.Fatalf("AddExtraItem failed: %v", err)
		}
		summary, err := e.CheckoutSummary(ctx, g.ID, "alice")
		if err != nil {
			t.Fatalf("CheckoutSummary failed: %v", err)
		}
		if !reflect.DeepEqual(summary.Pending, []string{"alice"}) {
			t.Errorf("expected alice pending, got %v", summary.Pending)
		}
		if got := summary.Totals.Member("alice").Total; got != 100 {
			t.Errorf("expected alice to owe 100, got %d", got)
		}
	})

	t.Run("served quantity never goes negative", func(t *testing.T) {
		if more == nil {
			t.Skip("previous step failed")
		}
		// 2 ordered, 2 not served, 1 more eaten: one beer is billed.
		less := int64(-4)
		_, err := e.UpdateOrderItem(ctx, notServed.ID, "alice", OrderPatch{Quantity: &less})
		assertKind(t, err, ErrQuotaExceeded)

		if err := e.DeleteOrderItem(ctx, more.ID, "alice"); err != nil {
			t.Fatalf("DeleteOrderItem failed: %v", err)
		}
		totals, err := e.GroupTotals(ctx, g.ID, "alice")
		if err != nil {
			t.Fatalf("GroupTotals failed: %v", err)
		}
		if got := totals.Member("alice").Total; got != 0 {
			t.Errorf("expected alice to owe 0, got %d", got)
		}
	})
}

func TestFinalizeCheckout(t *testing.T) {
	e, _ := setupEngine(t)
	ctx := context.Background()
	g, r := setupGroup(t, e, "alice", "bob", "carol")

	shared, err := e.CreateSharedItem(ctx, g.ID, "alice", SharedInput{
		OrderInput:   OrderInput{Name: "Hot pot", Price: 3000, Quantity: 1},
		Mode:         models.ShareEqual,
		Participants: []ShareInput{{ParticipantID: "alice"}, {ParticipantID: "bob"}, {ParticipantID: "carol"}},
	})
	if err != nil {
		t.Fatalf("CreateSharedItem failed: %v", err)
	}
	if _, err := e.AddOrderItem(ctx, g.ID, "carol", OrderInput{Name: "Cola", Price: 250, Quantity: 1}); err != nil {
		t.Fatalf("AddOrderItem failed: %v", err)
	}

	_, err = e.FinalizeCheckout(ctx, g.ID, "alice", false)
	assertKind(t, err, ErrInvalidState)

	if _, _, err := e.StartCheckout(ctx, g.ID, "alice"); err != nil {
		t.Fatalf("StartCheckout failed: %v", err)
	}
	for _, m := range []string{"alice", "bob"} {
		if _, err := e.ConfirmMemberOrder(ctx, g.ID, m); err != nil {
			t.Fatalf("ConfirmMemberOrder(%s) failed: %v", m, err)
		}
	}

	_, err = e.FinalizeCheckout(ctx, g.ID, "bob", false)
	assertKind(t, err, ErrUnauthorized)

	_, err = e.FinalizeCheckout(ctx, g.ID, "alice", false)
	assertKind(t, err, ErrUnconfirmed)
	var de *Error
	if errors.As(err, &de) && !reflect.DeepEqual(de.Pending, []string{"carol"}) {
		t.Errorf("expected carol pending, got %v", de.Pending)
	}

	if _, err := e.ConfirmMemberOrder(ctx, g.ID, "carol"); err != nil {
		t.Fatalf("ConfirmMemberOrder(carol) failed: %v", err)
	}
	settled, err := e.FinalizeCheckout(ctx, g.ID, "alice", false)
	if err != nil {
		t.Fatalf("FinalizeCheckout failed: %v", err)
	}
	if !settled.Settled || settled.CheckoutConfirming {
		t.Errorf("expected settled group, got %+v", settled)
	}

	rounds, err := e.ListRounds(ctx, g.ID, "bob")
	if err != nil {
		t.Fatalf("ListRounds failed: %v", err)
	}
	for _, rd := range rounds {
		if rd.IsOpen() {
			t.Errorf("expected round %s to be closed", rd.ID)
		}
	}

	view, err := e.GetRound(ctx, r.ID, "bob")
	if err != nil {
		t.Fatalf("GetRound failed: %v", err)
	}
	for _, item := range view.Items {
		if item.OrdererName == "" {
			t.Errorf("expected orderer name on %s", item.Name)
		}
		if item.ID == shared.ID && !item.IsLocked() {
			t.Error("expected shared line to be locked")
		}
	}

	summary, err := e.CheckoutSummary(ctx, g.ID, "carol")
	if err != nil {
		t.Fatalf("CheckoutSummary failed: %v", err)
	}
	if got := summary.Totals.Member("carol").Total; got != 1250 {
		t.Errorf("expected carol to owe 1250, got %d", got)
	}

	templates, err := e.ListTemplates(ctx, "alice")
	if err != nil {
		t.Fatalf("ListTemplates failed: %v", err)
	}
	if len(templates) != 1 || templates[0].Menu.SourceGroupID != g.ID {
		t.Fatalf("expected a template saved from %s, got %d templates", g.ID, len(templates))
	}

	t.Run("settled groups are read-only", func(t *testing.T) {
		_, err := e.AddOrderItem(ctx, g.ID, "alice", OrderInput{Name: "Tea", Price: 100, Quantity: 1})
		assertKind(t, err, ErrInvalidState)

		_, err = e.JoinGroup(ctx, g.ID, "dave")
		assertKind(t, err, ErrInvalidState)

		_, err = e.AddDish(ctx, g.ID, "alice", "Tea", 100, ResolveNone)
		assertKind(t, err, ErrInvalidState)

		_, err = e.FinalizeCheckout(ctx, g.ID, "alice", true)
		assertKind(t, err, ErrInvalidState)
	})
}

func TestFinalizeCheckout_Override(t *testing.T) {
	e, _ := setupEngine(t)
	ctx := context.Background()
	g, _ := setupGroup(t, e, "alice", "bob")

	if _, _, err := e.StartCheckout(ctx, g.ID, "alice"); err != nil {
		t.Fatalf("StartCheckout failed: %v", err)
	}
	settled, err := e.FinalizeCheckout(ctx, g.ID, "alice", true)
	if err != nil {
		t.Fatalf("FinalizeCheckout with override failed: %v", err)
	}
	if !settled.Settled {
		t.Error("expected the group to be settled")
	}
}
