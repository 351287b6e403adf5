package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/tableround/internal/dining"
	pb "github.com/mmynk/tableround/pkg/proto"
)

func TestTableService_Lifecycle(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	alice := env.register(t, "alice")
	bob := env.register(t, "bob")
	group, round := env.newTable(t, alice, bob)

	if round.Number != 1 || round.Status != "open" {
		t.Fatalf("expected open round 1, got %+v", round)
	}
	if group.GetCreatedAt() == nil || round.GetCreatedAt() == nil {
		t.Error("expected creation timestamps")
	}
	if round.GetClosedAt() != nil {
		t.Errorf("expected open round without closed_at, got %v", round.GetClosedAt().AsTime())
	}

	// Alice orders two bowls; both share a platter.
	if _, err := env.order.AddOrderItem(ctx, as(alice, &pb.AddOrderItemRequest{
		GroupId:  group.Id,
		Name:     "Beef Noodles",
		Price:    1200,
		Quantity: 2,
	})); err != nil {
		t.Fatalf("AddOrderItem failed: %v", err)
	}
	shared, err := env.order.CreateSharedItem(ctx, as(bob, &pb.CreateSharedItemRequest{
		GroupId:  group.Id,
		Name:     "Dumpling Platter",
		Price:    1000,
		Quantity: 1,
		Mode:     "equal",
		Participants: []*pb.Share{
			{ParticipantId: alice.ID},
			{ParticipantId: bob.ID},
		},
	}))
	if err != nil {
		t.Fatalf("CreateSharedItem failed: %v", err)
	}
	for _, sh := range shared.Msg.Item.Shared.Shares {
		if sh.Owed != 500 {
			t.Errorf("expected 500 owed by %s, got %d", sh.ParticipantId, sh.Owed)
		}
	}

	got, err := env.table.GetRound(ctx, as(bob, &pb.GetRoundRequest{RoundId: round.Id}))
	if err != nil {
		t.Fatalf("GetRound failed: %v", err)
	}
	if len(got.Msg.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(got.Msg.Items))
	}

	// Both confirm: the round closes, its shared line locks and round 2 opens.
	first, err := env.table.ConfirmRound(ctx, as(alice, &pb.ConfirmRoundRequest{RoundId: round.Id}))
	if err != nil {
		t.Fatalf("ConfirmRound failed: %v", err)
	}
	if first.Msg.Advanced {
		t.Fatal("expected round to stay open after first confirmation")
	}
	second, err := env.table.ConfirmRound(ctx, as(bob, &pb.ConfirmRoundRequest{RoundId: round.Id}))
	if err != nil {
		t.Fatalf("ConfirmRound failed: %v", err)
	}
	if !second.Msg.Advanced || second.Msg.NextRound == nil || second.Msg.NextRound.Number != 2 {
		t.Fatalf("expected advance to round 2, got %+v", second.Msg)
	}

	totals, err := env.table.GetGroupTotals(ctx, as(alice, &pb.GetGroupTotalsRequest{GroupId: group.Id}))
	if err != nil {
		t.Fatalf("GetGroupTotals failed: %v", err)
	}
	want := map[string]int64{alice.ID: 2900, bob.ID: 500}
	for _, m := range totals.Msg.Totals.Members {
		if m.Total != want[m.UserId] {
			t.Errorf("total for %s: expected %d, got %d", m.UserId, want[m.UserId], m.Total)
		}
	}

	// Checkout: finalizing is refused until Bob confirms.
	start, err := env.table.StartCheckout(ctx, as(alice, &pb.StartCheckoutRequest{GroupId: group.Id}))
	if err != nil {
		t.Fatalf("StartCheckout failed: %v", err)
	}
	if start.Msg.ExtraRound.Kind != "extra" || !start.Msg.Group.CheckoutConfirming {
		t.Fatalf("unexpected checkout state: %+v", start.Msg)
	}
	if _, err := env.table.ConfirmMemberOrder(ctx, as(alice, &pb.ConfirmMemberOrderRequest{GroupId: group.Id})); err != nil {
		t.Fatalf("ConfirmMemberOrder failed: %v", err)
	}

	_, err = env.table.FinalizeCheckout(ctx, as(alice, &pb.FinalizeCheckoutRequest{GroupId: group.Id}))
	cerr := assertCode(t, err, connect.CodeFailedPrecondition)
	if got := cerr.Meta().Get(CodeHeader); got != dining.CodeCheckoutUnconfirmed {
		t.Errorf("code header: expected %s, got %q", dining.CodeCheckoutUnconfirmed, got)
	}
	if got := cerr.Meta().Get(PendingHeader); got != bob.ID {
		t.Errorf("pending header: expected %s, got %q", bob.ID, got)
	}

	summary, err := env.table.GetCheckoutSummary(ctx, as(bob, &pb.GetCheckoutSummaryRequest{GroupId: group.Id}))
	if err != nil {
		t.Fatalf("GetCheckoutSummary failed: %v", err)
	}
	if len(summary.Msg.Pending) != 1 || summary.Msg.Pending[0] != bob.ID {
		t.Errorf("expected bob pending, got %v", summary.Msg.Pending)
	}

	if _, err := env.table.ConfirmMemberOrder(ctx, as(bob, &pb.ConfirmMemberOrderRequest{GroupId: group.Id})); err != nil {
		t.Fatalf("ConfirmMemberOrder failed: %v", err)
	}
	final, err := env.table.FinalizeCheckout(ctx, as(alice, &pb.FinalizeCheckoutRequest{GroupId: group.Id}))
	if err != nil {
		t.Fatalf("FinalizeCheckout failed: %v", err)
	}
	if !final.Msg.Group.Settled {
		t.Fatal("expected group to be settled")
	}

	// Settled groups are read-only.
	_, err = env.order.AddOrderItem(ctx, as(alice, &pb.AddOrderItemRequest{
		GroupId:  group.Id,
		Name:     "Tea",
		Price:    100,
		Quantity: 1,
	}))
	cerr = assertCode(t, err, connect.CodeFailedPrecondition)
	if got := cerr.Meta().Get(KindHeader); got != "invalid_state" {
		t.Errorf("kind header: expected invalid_state, got %q", got)
	}

	// The owner's restaurant menu was saved on settlement.
	templates, err := env.menu.ListTemplates(ctx, as(alice, &pb.ListTemplatesRequest{}))
	if err != nil {
		t.Fatalf("ListTemplates failed: %v", err)
	}
	if len(templates.Msg.Templates) != 1 {
		t.Fatalf("expected 1 template, got %d", len(templates.Msg.Templates))
	}
	if n := len(templates.Msg.Templates[0].Items); n != 2 {
		t.Errorf("expected 2 template items, got %d", n)
	}
}

func TestTableService_Access(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	alice := env.register(t, "alice")
	bob := env.register(t, "bob")
	carol := env.register(t, "carol")
	group, round := env.newTable(t, alice, bob)

	t.Run("non-member", func(t *testing.T) {
		_, err := env.table.GetGroup(ctx, as(carol, &pb.GetGroupRequest{GroupId: group.Id}))
		cerr := assertCode(t, err, connect.CodePermissionDenied)
		if got := cerr.Meta().Get(KindHeader); got != "unauthorized" {
			t.Errorf("kind header: expected unauthorized, got %q", got)
		}
	})

	t.Run("unknown group", func(t *testing.T) {
		_, err := env.table.GetGroup(ctx, as(alice, &pb.GetGroupRequest{GroupId: "NOPE0000"}))
		assertCode(t, err, connect.CodeNotFound)
	})

	t.Run("owner only", func(t *testing.T) {
		_, err := env.table.CloseRound(ctx, as(bob, &pb.CloseRoundRequest{RoundId: round.Id}))
		assertCode(t, err, connect.CodePermissionDenied)
	})

	t.Run("missing fields", func(t *testing.T) {
		_, err := env.table.GetGroup(ctx, as(alice, &pb.GetGroupRequest{}))
		assertCode(t, err, connect.CodeInvalidArgument)
	})

	t.Run("list groups", func(t *testing.T) {
		resp, err := env.table.ListGroups(ctx, as(bob, &pb.ListGroupsRequest{}))
		if err != nil {
			t.Fatalf("ListGroups failed: %v", err)
		}
		if len(resp.Msg.Groups) != 1 || resp.Msg.Groups[0].Id != group.Id {
			t.Errorf("expected bob's single group, got %+v", resp.Msg.Groups)
		}
	})

	t.Run("remove member", func(t *testing.T) {
		resp, err := env.table.RemoveMember(ctx, as(alice, &pb.RemoveMemberRequest{
			GroupId: group.Id,
			UserId:  bob.ID,
		}))
		if err != nil {
			t.Fatalf("RemoveMember failed: %v", err)
		}
		if len(resp.Msg.Group.Members) != 1 {
			t.Errorf("expected 1 member left, got %d", len(resp.Msg.Group.Members))
		}
		for _, m := range resp.Msg.Group.Members {
			if strings.EqualFold(m.DisplayName, "bob") {
				t.Error("bob is still a member")
			}
		}
	})
}

func TestToConnectError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code connect.Code
	}{
		{"invalid", &dining.Error{Kind: dining.KindInvalid}, connect.CodeInvalidArgument},
		{"not found", &dining.Error{Kind: dining.KindNotFound}, connect.CodeNotFound},
		{"unauthorized", &dining.Error{Kind: dining.KindUnauthorized}, connect.CodePermissionDenied},
		{"invalid state", &dining.Error{Kind: dining.KindInvalidState}, connect.CodeFailedPrecondition},
		{"conflict", &dining.Error{Kind: dining.KindConflict, Code: dining.CodeDuplicateName}, connect.CodeAlreadyExists},
		{"stale version", &dining.Error{Kind: dining.KindConflict, Code: dining.CodeStaleVersion}, connect.CodeAborted},
		{"quota", &dining.Error{Kind: dining.KindQuotaExceeded}, connect.CodeResourceExhausted},
		{"unconfirmed", &dining.Error{Kind: dining.KindUnconfirmed, Pending: []string{"a", "b"}}, connect.CodeFailedPrecondition},
		{"untyped", errors.New("disk on fire"), connect.CodeInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cerr := assertCode(t, toConnectError(tt.err), tt.code)
			var derr *dining.Error
			if errors.As(tt.err, &derr) {
				if got := cerr.Meta().Get(KindHeader); got != derr.Kind.String() {
					t.Errorf("kind header: expected %s, got %q", derr.Kind, got)
				}
				if len(derr.Pending) > 0 && cerr.Meta().Get(PendingHeader) != "a,b" {
					t.Errorf("pending header: got %q", cerr.Meta().Get(PendingHeader))
				}
			}
		})
	}
}
