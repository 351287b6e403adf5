package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/tableround/internal/dining"
	pb "github.com/mmynk/tableround/pkg/proto"
)

func TestMenuService_Catalog(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	alice := env.register(t, "alice")
	bob := env.register(t, "bob")
	group, round := env.newTable(t, alice, bob)

	added, err := env.menu.AddDish(ctx, as(alice, &pb.AddDishRequest{
		GroupId: group.Id,
		Name:    "Mapo Tofu",
		Price:   800,
	}))
	if err != nil {
		t.Fatalf("AddDish failed: %v", err)
	}
	if !added.Msg.Created {
		t.Fatal("expected dish to be created")
	}
	dishID := added.Msg.Dish.Id

	tests := []struct {
		name  string
		price int64
		code  string
	}{
		{"same price", 800, dining.CodeDuplicateName},
		{"other price", 900, dining.CodePriceConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.menu.AddDish(ctx, as(bob, &pb.AddDishRequest{
				GroupId: group.Id,
				Name:    "Mapo Tofu",
				Price:   tt.price,
			}))
			cerr := assertCode(t, err, connect.CodeAlreadyExists)
			if got := cerr.Meta().Get(CodeHeader); got != tt.code {
				t.Errorf("code header: expected %s, got %q", tt.code, got)
			}
		})
	}

	overwritten, err := env.menu.AddDish(ctx, as(bob, &pb.AddDishRequest{
		GroupId:    group.Id,
		Name:       "Mapo Tofu",
		Price:      900,
		Resolution: "overwrite",
	}))
	if err != nil {
		t.Fatalf("AddDish overwrite failed: %v", err)
	}
	if overwritten.Msg.Created || overwritten.Msg.Dish.Id != dishID || overwritten.Msg.Dish.Price != 900 {
		t.Fatalf("unexpected overwrite result: %+v", overwritten.Msg)
	}

	ordered, err := env.order.AddOrderItem(ctx, as(bob, &pb.AddOrderItemRequest{
		GroupId:    group.Id,
		MenuItemId: dishID,
		Quantity:   1,
	}))
	if err != nil {
		t.Fatalf("AddOrderItem from dish failed: %v", err)
	}
	if ordered.Msg.Item.Name != "Mapo Tofu" || ordered.Msg.Item.Price != 900 {
		t.Errorf("expected line from dish, got %+v", ordered.Msg.Item)
	}

	renamed, err := env.menu.RenameDish(ctx, as(bob, &pb.RenameDishRequest{DishId: dishID, Name: "Mapo Doufu"}))
	if err != nil {
		t.Fatalf("RenameDish failed: %v", err)
	}
	if renamed.Msg.UpdatedLines != 1 {
		t.Errorf("expected 1 line renamed, got %d", renamed.Msg.UpdatedLines)
	}
	view, err := env.table.GetRound(ctx, as(alice, &pb.GetRoundRequest{RoundId: round.Id}))
	if err != nil {
		t.Fatalf("GetRound failed: %v", err)
	}
	if view.Msg.Items[0].Name != "Mapo Doufu" {
		t.Errorf("expected renamed line, got %q", view.Msg.Items[0].Name)
	}

	_, err = env.menu.DisableDish(ctx, as(bob, &pb.DisableDishRequest{DishId: dishID}))
	assertCode(t, err, connect.CodePermissionDenied)

	if _, err := env.menu.DisableDish(ctx, as(alice, &pb.DisableDishRequest{DishId: dishID})); err != nil {
		t.Fatalf("DisableDish failed: %v", err)
	}
	active, err := env.menu.ListDishes(ctx, as(bob, &pb.ListDishesRequest{GroupId: group.Id}))
	if err != nil {
		t.Fatalf("ListDishes failed: %v", err)
	}
	if len(active.Msg.Dishes) != 0 {
		t.Errorf("expected no active dishes, got %d", len(active.Msg.Dishes))
	}
	all, err := env.menu.ListDishes(ctx, as(bob, &pb.ListDishesRequest{GroupId: group.Id, IncludeDisabled: true}))
	if err != nil {
		t.Fatalf("ListDishes failed: %v", err)
	}
	if len(all.Msg.Dishes) != 1 || all.Msg.Dishes[0].Status != "disabled" {
		t.Errorf("expected the disabled dish, got %+v", all.Msg.Dishes)
	}
}

func TestMenuService_Templates(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	alice := env.register(t, "alice")
	old, _ := env.newTable(t, alice)

	for _, name := range []string{"Fried Rice", "Wonton Soup"} {
		if _, err := env.order.AddOrderItem(ctx, as(alice, &pb.AddOrderItemRequest{
			GroupId:  old.Id,
			Name:     name,
			Price:    700,
			Quantity: 1,
		})); err != nil {
			t.Fatalf("AddOrderItem failed: %v", err)
		}
	}

	_, err := env.menu.SaveAsTemplate(ctx, as(alice, &pb.SaveAsTemplateRequest{GroupId: old.Id}))
	assertCode(t, err, connect.CodeFailedPrecondition)

	if _, err := env.table.FinalizeCheckout(ctx, as(alice, &pb.FinalizeCheckoutRequest{
		GroupId:  old.Id,
		Override: true,
	})); err != nil {
		t.Fatalf("FinalizeCheckout failed: %v", err)
	}

	saved, err := env.menu.SaveAsTemplate(ctx, as(alice, &pb.SaveAsTemplateRequest{GroupId: old.Id, Label: "Golden Dragon"}))
	if err != nil {
		t.Fatalf("SaveAsTemplate failed: %v", err)
	}
	if saved.Msg.Template.Label != "Golden Dragon" || len(saved.Msg.Template.Items) != 2 {
		t.Errorf("unexpected template: %+v", saved.Msg.Template)
	}

	fresh, _ := env.newTable(t, alice)
	if _, err := env.menu.AddDish(ctx, as(alice, &pb.AddDishRequest{
		GroupId: fresh.Id,
		Name:    "Fried Rice",
		Price:   650,
	})); err != nil {
		t.Fatalf("AddDish failed: %v", err)
	}

	imported, err := env.menu.ImportTemplate(ctx, as(alice, &pb.ImportTemplateRequest{
		GroupId: fresh.Id,
		MenuId:  saved.Msg.Template.MenuId,
	}))
	if err != nil {
		t.Fatalf("ImportTemplate failed: %v", err)
	}
	if len(imported.Msg.Added) != 1 || imported.Msg.Added[0].Name != "Wonton Soup" {
		t.Errorf("expected Wonton Soup added, got %+v", imported.Msg.Added)
	}
	if len(imported.Msg.Skipped) != 1 || imported.Msg.Skipped[0] != "Fried Rice" {
		t.Errorf("expected Fried Rice skipped, got %v", imported.Msg.Skipped)
	}
}
