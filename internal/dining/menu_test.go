package dining

import (
	"context"
	"errors"
	"testing"
)

func TestAddDish(t *testing.T) {
	e, _ := setupEngine(t)
	ctx := context.Background()
	g, r := setupGroup(t, e, "alice", "bob")

	res, err := e.AddDish(ctx, g.ID, "bob", "Ｐｉｚｚａ  Margherita", 1200, ResolveNone)
	if err != nil {
		t.Fatalf("AddDish failed: %v", err)
	}
	if !res.Created || res.Dish.Name != "Pizza Margherita" {
		t.Fatalf("expected new dish named %q, got %+v", "Pizza Margherita", res)
	}
	dish := res.Dish

	line, err := e.AddOrderItem(ctx, g.ID, "alice", OrderInput{MenuItemID: dish.ID, Quantity: 1})
	if err != nil {
		t.Fatalf("AddOrderItem from menu failed: %v", err)
	}
	if line.Name != dish.Name || line.Price != 1200 || line.MenuItemID != dish.ID {
		t.Errorf("expected line to copy the dish, got %+v", line)
	}

	t.Run("same name and price", func(t *testing.T) {
		_, err := e.AddDish(ctx, g.ID, "alice", "pizza margherita", 1200, ResolveNone)
		if err != nil {
			t.Fatalf("expected case to matter, got %v", err)
		}
		_, err = e.AddDish(ctx, g.ID, "alice", "Pizza   Margherita", 1200, ResolveNone)
		assertKind(t, err, ErrConflict)
		assertCode(t, err, CodeDuplicateName)
	})

	t.Run("price conflict", func(t *testing.T) {
		_, err := e.AddDish(ctx, g.ID, "alice", "Pizza Margherita", 1300, ResolveNone)
		assertKind(t, err, ErrConflict)
		assertCode(t, err, CodePriceConflict)
		var de *Error
		if errors.As(err, &de) && (de.Dish == nil || de.Dish.Price != 1200) {
			t.Errorf("expected the existing dish in the conflict, got %+v", de.Dish)
		}
	})

	t.Run("keep", func(t *testing.T) {
		kept, err := e.AddDish(ctx, g.ID, "alice", "Pizza Margherita", 1300, ResolveKeep)
		if err != nil {
			t.Fatalf("AddDish keep failed: %v", err)
		}
		if kept.Created || kept.Dish.ID != dish.ID || kept.Dish.Price != 1200 {
			t.Errorf("expected the existing dish unchanged, got %+v", kept.Dish)
		}
	})

	t.Run("overwrite reprices open lines", func(t *testing.T) {
		over, err := e.AddDish(ctx, g.ID, "alice", "Pizza Margherita", 1300, ResolveOverwrite)
		if err != nil {
			t.Fatalf("AddDish overwrite failed: %v", err)
		}
		if over.Dish.Price != 1300 || over.UpdatedLines != 1 {
			t.Errorf("expected price 1300 and one line updated, got %+v", over)
		}

		view, err := e.GetRound(ctx, r.ID, "alice")
		if err != nil {
			t.Fatalf("GetRound failed: %v", err)
		}
		if view.Items[0].Price != 1300 {
			t.Errorf("expected line repriced to 1300, got %d", view.Items[0].Price)
		}
	})

	t.Run("disabled dishes", func(t *testing.T) {
		_, err := e.DisableDish(ctx, dish.ID, "bob")
		if err != nil {
			t.Fatalf("DisableDish by creator failed: %v", err)
		}
		_, err = e.AddOrderItem(ctx, g.ID, "alice", OrderInput{MenuItemID: dish.ID, Quantity: 1})
		assertKind(t, err, ErrInvalidState)

		active, err := e.ListDishes(ctx, g.ID, "alice", false)
		if err != nil {
			t.Fatalf("ListDishes failed: %v", err)
		}
		for _, d := range active {
			if d.ID == dish.ID {
				t.Error("expected disabled dish to be hidden")
			}
		}
		all, err := e.ListDishes(ctx, g.ID, "alice", true)
		if err != nil {
			t.Fatalf("ListDishes failed: %v", err)
		}
		if len(all) != len(active)+1 {
			t.Errorf("expected one disabled dish, got %d of %d", len(all)-len(active), len(all))
		}

		// The name is free again.
		if _, err := e.AddDish(ctx, g.ID, "alice", "Pizza Margherita", 1400, ResolveNone); err != nil {
			t.Errorf("expected name to be reusable, got %v", err)
		}
	})
}

func TestRenameDish(t *testing.T) {
	e, _ := setupEngine(t)
	ctx := context.Background()
	g, r := setupGroup(t, e, "alice", "bob")

	res, err := e.AddDish(ctx, g.ID, "alice", "Gyoza", 500, ResolveNone)
	if err != nil {
		t.Fatalf("AddDish failed: %v", err)
	}
	if _, err := e.AddDish(ctx, g.ID, "alice", "Ramen", 900, ResolveNone); err != nil {
		t.Fatalf("AddDish failed: %v", err)
	}

	if _, err := e.AddOrderItem(ctx, g.ID, "bob", OrderInput{Name: "Gyoza", Price: 500, Quantity: 1}); err != nil {
		t.Fatalf("AddOrderItem failed: %v", err)
	}
	if _, err := e.AddOrderItem(ctx, g.ID, "bob", OrderInput{Name: "Gyoza", Price: 600, Quantity: 1}); err != nil {
		t.Fatalf("AddOrderItem failed: %v", err)
	}

	_, err = e.RenameDish(ctx, res.Dish.ID, "bob", "Ramen")
	assertKind(t, err, ErrConflict)
	assertCode(t, err, CodeDuplicateName)

	renamed, err := e.RenameDish(ctx, res.Dish.ID, "bob", "Pan-fried  gyoza")
	if err != nil {
		t.Fatalf("RenameDish failed: %v", err)
	}
	if renamed.Dish.Name != "Pan-fried gyoza" || renamed.UpdatedLines != 1 {
		t.Errorf("expected one line renamed, got %+v", renamed)
	}

	view, err := e.GetRound(ctx, r.ID, "alice")
	if err != nil {
		t.Fatalf("GetRound failed: %v", err)
	}
	for _, item := range view.Items {
		switch item.Price {
		case 500:
			if item.Name != "Pan-fried gyoza" {
				t.Errorf("expected linked line renamed, got %q", item.Name)
			}
		case 600:
			if item.Name != "Gyoza" {
				t.Errorf("expected unrelated line untouched, got %q", item.Name)
			}
		}
	}
}

func TestCatalogEdits_ClearConfirmations(t *testing.T) {
	e, _ := setupEngine(t)
	ctx := context.Background()
	g, r := setupGroup(t, e, "alice", "bob", "carol")

	res, err := e.AddDish(ctx, g.ID, "alice", "Gyoza", 500, ResolveNone)
	if err != nil {
		t.Fatalf("AddDish failed: %v", err)
	}
	if _, err := e.AddOrderItem(ctx, g.ID, "bob", OrderInput{MenuItemID: res.Dish.ID, Quantity: 1}); err != nil {
		t.Fatalf("AddOrderItem failed: %v", err)
	}

	confirm := func(t *testing.T, members ...string) {
		t.Helper()
		for _, m := range members {
			if _, err := e.ConfirmRound(ctx, r.ID, m); err != nil {
				t.Fatalf("ConfirmRound(%s) failed: %v", m, err)
			}
		}
	}
	pending := func(t *testing.T) []string {
		t.Helper()
		view, err := e.GetRound(ctx, r.ID, "alice")
		if err != nil {
			t.Fatalf("GetRound failed: %v", err)
		}
		return view.Round.Confirmations.Pending(g.MemberIDs())
	}

	tests := []struct {
		name string
		edit func() error
	}{
		{
			name: "rename",
			edit: func() error {
				_, err := e.RenameDish(ctx, res.Dish.ID, "carol", "Pan-fried gyoza")
				return err
			},
		},
		{
			name: "reprice",
			edit: func() error {
				_, err := e.AddDish(ctx, g.ID, "carol", "Pan-fried gyoza", 550, ResolveOverwrite)
				return err
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			confirm(t, "bob", "carol")
			if err := tt.edit(); err != nil {
				t.Fatalf("edit failed: %v", err)
			}
			// The line's creator and the editor lose their confirmation.
			got := pending(t)
			if len(got) != 3 {
				t.Errorf("expected every member pending, got %v", got)
			}
		})
	}
}
