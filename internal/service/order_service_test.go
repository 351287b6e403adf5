package service

import (
	"context"
	"math"
	"strings"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/tableround/internal/dining"
	pb "github.com/mmynk/tableround/pkg/proto"
)

func TestOrderService_SharedUnits(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	alice := env.register(t, "alice")
	bob := env.register(t, "bob")
	carol := env.register(t, "carol")
	group, _ := env.newTable(t, alice, bob, carol)

	created, err := env.order.CreateSharedItem(ctx, as(alice, &pb.CreateSharedItemRequest{
		GroupId:         group.Id,
		Name:            "Lamb Skewers",
		Price:           300,
		Quantity:        10,
		Mode:            "units",
		Participants:    []*pb.Share{{ParticipantId: alice.ID, Units: 4}},
		AllowSelfJoin:   true,
		AllowClaimUnits: true,
	}))
	if err != nil {
		t.Fatalf("CreateSharedItem failed: %v", err)
	}
	itemID := created.Msg.Item.Id

	_, err = env.order.JoinSharedItem(ctx, as(bob, &pb.JoinSharedItemRequest{ItemId: itemID, Units: 7}))
	cerr := assertCode(t, err, connect.CodeResourceExhausted)
	if got := cerr.Meta().Get(CodeHeader); got != dining.CodeUnitsOverClaimed {
		t.Errorf("code header: expected %s, got %q", dining.CodeUnitsOverClaimed, got)
	}

	joined, err := env.order.JoinSharedItem(ctx, as(bob, &pb.JoinSharedItemRequest{ItemId: itemID, Units: 4}))
	if err != nil {
		t.Fatalf("JoinSharedItem failed: %v", err)
	}
	for _, sh := range joined.Msg.Item.Shared.Shares {
		if sh.Owed != 1200 {
			t.Errorf("preview for %s: expected 1200, got %d", sh.ParticipantId, sh.Owed)
		}
		if sh.Amount != nil {
			t.Errorf("expected no frozen amount before lock for %s", sh.ParticipantId)
		}
	}

	_, err = env.order.LockSharedItem(ctx, as(alice, &pb.LockSharedItemRequest{ItemId: itemID}))
	cerr = assertCode(t, err, connect.CodeFailedPrecondition)
	if got := cerr.Meta().Get(CodeHeader); got != dining.CodeUnitsNotFullyClaimed {
		t.Errorf("code header: expected %s, got %q", dining.CodeUnitsNotFullyClaimed, got)
	}

	_, err = env.order.LockSharedItem(ctx, as(carol, &pb.LockSharedItemRequest{ItemId: itemID, Force: true}))
	assertCode(t, err, connect.CodePermissionDenied)

	locked, err := env.order.LockSharedItem(ctx, as(alice, &pb.LockSharedItemRequest{ItemId: itemID, Force: true}))
	if err != nil {
		t.Fatalf("LockSharedItem failed: %v", err)
	}
	if locked.Msg.Item.Shared.Status != "locked" {
		t.Fatalf("expected locked line, got %s", locked.Msg.Item.Shared.Status)
	}
	var sum int64
	for _, sh := range locked.Msg.Item.Shared.Shares {
		if sh.Amount == nil {
			t.Fatalf("expected frozen amount for %s", sh.ParticipantId)
		}
		sum += *sh.Amount
	}
	if sum != 3000 {
		t.Errorf("frozen amounts: expected 3000 in total, got %d", sum)
	}

	_, err = env.order.JoinSharedItem(ctx, as(carol, &pb.JoinSharedItemRequest{ItemId: itemID, Units: 1}))
	assertCode(t, err, connect.CodeFailedPrecondition)
}

func TestOrderService_PrivateLines(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	alice := env.register(t, "alice")
	bob := env.register(t, "bob")
	group, round := env.newTable(t, alice, bob)

	added, err := env.order.AddOrderItem(ctx, as(bob, &pb.AddOrderItemRequest{
		GroupId:  group.Id,
		Name:     "  Cola  ",
		Price:    250,
		Quantity: 2,
	}))
	if err != nil {
		t.Fatalf("AddOrderItem failed: %v", err)
	}
	if added.Msg.Item.Name != "Cola" {
		t.Errorf("expected normalized name, got %q", added.Msg.Item.Name)
	}
	itemID := added.Msg.Item.Id

	t.Run("validation", func(t *testing.T) {
		tests := []struct {
			name     string
			price    int64
			quantity int64
			field    string
		}{
			{"zero quantity", 250, 0, "quantity"},
			{"negative price", -1, 1, "price"},
			{"price over bound", math.MaxInt64 / 2, 3, "price"},
			{"quantity over bound", 250, 1 << 40, "quantity"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := env.order.AddOrderItem(ctx, as(bob, &pb.AddOrderItemRequest{
					GroupId:  group.Id,
					Name:     "Cola",
					Price:    tt.price,
					Quantity: tt.quantity,
				}))
				cerr := assertCode(t, err, connect.CodeInvalidArgument)
				if !strings.Contains(cerr.Message(), tt.field) {
					t.Errorf("expected %s in %q", tt.field, cerr.Message())
				}
			})
		}
	})

	t.Run("other members cannot edit", func(t *testing.T) {
		qty := int64(5)
		_, err := env.order.UpdateOrderItem(ctx, as(env.register(t, "carol"), &pb.UpdateOrderItemRequest{
			ItemId:   itemID,
			Quantity: &qty,
		}))
		assertCode(t, err, connect.CodePermissionDenied)
	})

	t.Run("creator edits", func(t *testing.T) {
		qty := int64(3)
		resp, err := env.order.UpdateOrderItem(ctx, as(bob, &pb.UpdateOrderItemRequest{
			ItemId:   itemID,
			Quantity: &qty,
		}))
		if err != nil {
			t.Fatalf("UpdateOrderItem failed: %v", err)
		}
		if resp.Msg.Item.Quantity != 3 {
			t.Errorf("expected quantity 3, got %d", resp.Msg.Item.Quantity)
		}
	})

	t.Run("delete", func(t *testing.T) {
		if _, err := env.order.DeleteOrderItem(ctx, as(alice, &pb.DeleteOrderItemRequest{ItemId: itemID})); err != nil {
			t.Fatalf("DeleteOrderItem failed: %v", err)
		}
		got, err := env.table.GetRound(ctx, as(bob, &pb.GetRoundRequest{RoundId: round.Id}))
		if err != nil {
			t.Fatalf("GetRound failed: %v", err)
		}
		if len(got.Msg.Items) != 0 {
			t.Errorf("expected deleted line to be hidden, got %d items", len(got.Msg.Items))
		}
		_, err = env.order.DeleteOrderItem(ctx, as(bob, &pb.DeleteOrderItemRequest{ItemId: itemID}))
		assertCode(t, err, connect.CodeNotFound)
	})
}

func TestOrderService_ExtraItems(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	alice := env.register(t, "alice")
	bob := env.register(t, "bob")
	group, _ := env.newTable(t, alice, bob)

	if _, err := env.order.AddOrderItem(ctx, as(bob, &pb.AddOrderItemRequest{
		GroupId:  group.Id,
		Name:     "Rice",
		Price:    200,
		Quantity: 2,
	})); err != nil {
		t.Fatalf("AddOrderItem failed: %v", err)
	}

	_, err := env.order.AddExtraItem(ctx, as(bob, &pb.AddExtraItemRequest{
		GroupId:  group.Id,
		Name:     "Rice",
		Price:    200,
		Quantity: -1,
	}))
	assertCode(t, err, connect.CodeFailedPrecondition)

	if _, err := env.table.StartCheckout(ctx, as(alice, &pb.StartCheckoutRequest{GroupId: group.Id})); err != nil {
		t.Fatalf("StartCheckout failed: %v", err)
	}

	_, err = env.order.AddExtraItem(ctx, as(bob, &pb.AddExtraItemRequest{
		GroupId:  group.Id,
		Name:     "Rice",
		Price:    200,
		Quantity: -3,
	}))
	cerr := assertCode(t, err, connect.CodeResourceExhausted)
	if got := cerr.Meta().Get(CodeHeader); got != dining.CodeNegativeServed {
		t.Errorf("code header: expected %s, got %q", dining.CodeNegativeServed, got)
	}

	if _, err := env.order.AddExtraItem(ctx, as(bob, &pb.AddExtraItemRequest{
		GroupId:  group.Id,
		Name:     "Rice",
		Price:    200,
		Quantity: -1,
	})); err != nil {
		t.Fatalf("AddExtraItem failed: %v", err)
	}

	totals, err := env.table.GetGroupTotals(ctx, as(bob, &pb.GetGroupTotalsRequest{GroupId: group.Id}))
	if err != nil {
		t.Fatalf("GetGroupTotals failed: %v", err)
	}
	for _, m := range totals.Msg.Totals.Members {
		if m.UserId != bob.ID {
			continue
		}
		if m.Private != 400 || m.Adjustments != -200 || m.Total != 200 {
			t.Errorf("unexpected totals for bob: %+v", m)
		}
	}
}
