package sqlite

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mmynk/tableround/internal/models"
	"github.com/mmynk/tableround/internal/storage"
)

func setupStore(t *testing.T) *SQLiteStore {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "tableround-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}

	store, err := New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		os.RemoveAll(tempDir)
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
		os.RemoveAll(tempDir)
	})
	return store
}

func createGroup(t *testing.T, store *SQLiteStore, id string, members ...string) *models.Group {
	t.Helper()
	g := &models.Group{
		ID:                    id,
		Name:                  "Table " + id,
		OwnerID:               members[0],
		CheckoutConfirmations: models.Confirmations{},
	}
	for _, m := range members {
		g.Members = append(g.Members, models.Member{UserID: m, DisplayName: m})
		g.CheckoutConfirmations[m] = false
	}
	if err := store.CreateGroup(context.Background(), g); err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	return g
}

func createRound(t *testing.T, store *SQLiteStore, g *models.Group, n int) *models.Round {
	t.Helper()
	r := &models.Round{
		ID:            models.RoundID(g.ID, n),
		GroupID:       g.ID,
		Number:        n,
		Kind:          models.RoundOrdinary,
		Status:        models.RoundOpen,
		CreatedBy:     g.OwnerID,
		Confirmations: models.Confirmations{},
	}
	r.Confirmations.Reset(g.MemberIDs())
	if err := store.CreateRound(context.Background(), r); err != nil {
		t.Fatalf("CreateRound failed: %v", err)
	}
	return r
}

func TestGroups(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	g := createGroup(t, store, "AAAA0001", "alice", "bob")

	t.Run("GetGroup keeps member order and confirmations", func(t *testing.T) {
		got, err := store.GetGroup(ctx, g.ID)
		if err != nil {
			t.Fatalf("GetGroup failed: %v", err)
		}
		if len(got.Members) != 2 || got.Members[0].UserID != "alice" || got.Members[1].UserID != "bob" {
			t.Errorf("unexpected members: %+v", got.Members)
		}
		if got.Version != 1 {
			t.Errorf("expected version 1, got %d", got.Version)
		}
		if _, ok := got.CheckoutConfirmations["bob"]; !ok {
			t.Error("expected confirmation entry for bob")
		}
	})

	t.Run("UpdateGroup is compare-and-swap", func(t *testing.T) {
		first, err := store.GetGroup(ctx, g.ID)
		if err != nil {
			t.Fatalf("GetGroup failed: %v", err)
		}
		stale, err := store.GetGroup(ctx, g.ID)
		if err != nil {
			t.Fatalf("GetGroup failed: %v", err)
		}

		first.CheckoutConfirmations.Confirm("bob")
		if err := store.UpdateGroup(ctx, first); err != nil {
			t.Fatalf("UpdateGroup failed: %v", err)
		}
		if first.Version != 2 {
			t.Errorf("expected version bump to 2, got %d", first.Version)
		}

		stale.Name = "Lost update"
		if err := store.UpdateGroup(ctx, stale); !errors.Is(err, storage.ErrConflict) {
			t.Fatalf("expected ErrConflict, got %v", err)
		}

		got, err := store.GetGroup(ctx, g.ID)
		if err != nil {
			t.Fatalf("GetGroup failed: %v", err)
		}
		if !got.CheckoutConfirmations["bob"] || got.Name == "Lost update" {
			t.Errorf("unexpected group after conflict: %+v", got)
		}
	})

	t.Run("missing group", func(t *testing.T) {
		if _, err := store.GetGroup(ctx, "MISSING0"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
		missing := &models.Group{ID: "MISSING0", Version: 1}
		if err := store.UpdateGroup(ctx, missing); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound on update, got %v", err)
		}
	})

	t.Run("duplicate id conflicts", func(t *testing.T) {
		dup := &models.Group{ID: g.ID, Name: "Other table", OwnerID: "carol"}
		if err := store.CreateGroup(ctx, dup); !errors.Is(err, storage.ErrConflict) {
			t.Fatalf("expected ErrConflict, got %v", err)
		}
		got, err := store.GetGroup(ctx, g.ID)
		if err != nil {
			t.Fatalf("GetGroup failed: %v", err)
		}
		if got.OwnerID != "alice" {
			t.Errorf("expected original group kept, got owner %s", got.OwnerID)
		}
	})

	t.Run("ListGroupsByMember", func(t *testing.T) {
		createGroup(t, store, "AAAA0002", "carol", "bob")
		groups, err := store.ListGroupsByMember(ctx, "bob")
		if err != nil {
			t.Fatalf("ListGroupsByMember failed: %v", err)
		}
		if len(groups) != 2 {
			t.Errorf("expected 2 groups for bob, got %d", len(groups))
		}
		groups, err = store.ListGroupsByMember(ctx, "alice")
		if err != nil {
			t.Fatalf("ListGroupsByMember failed: %v", err)
		}
		if len(groups) != 1 {
			t.Errorf("expected 1 group for alice, got %d", len(groups))
		}
	})
}

func TestRounds(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	g := createGroup(t, store, "BBBB0001", "alice", "bob")

	createRound(t, store, g, 2)
	extra := &models.Round{
		ID:            models.ExtraRoundID(g.ID),
		GroupID:       g.ID,
		Kind:          models.RoundExtra,
		Status:        models.RoundOpen,
		CreatedBy:     "alice",
		Confirmations: models.Confirmations{},
	}
	if err := store.CreateRound(ctx, extra); err != nil {
		t.Fatalf("CreateRound extra failed: %v", err)
	}
	first := createRound(t, store, g, 1)

	if err := store.CreateRound(ctx, &models.Round{ID: first.ID, GroupID: g.ID, Number: 1}); !errors.Is(err, storage.ErrConflict) {
		t.Errorf("expected ErrConflict for duplicate round, got %v", err)
	}

	rounds, err := store.ListRounds(ctx, g.ID)
	if err != nil {
		t.Fatalf("ListRounds failed: %v", err)
	}
	var ids []string
	for _, r := range rounds {
		ids = append(ids, r.ID)
	}
	want := []string{"BBBB0001-1", "BBBB0001-2", "BBBB0001-x"}
	if len(ids) != len(want) {
		t.Fatalf("expected rounds %v, got %v", want, ids)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("round %d: expected %s, got %s", i, want[i], ids[i])
		}
	}

	first.Confirmations.Confirm("alice")
	first.Status = models.RoundClosed
	first.ClosedAt = 1700000000
	if err := store.UpdateRound(ctx, first); err != nil {
		t.Fatalf("UpdateRound failed: %v", err)
	}
	got, err := store.GetRound(ctx, first.ID)
	if err != nil {
		t.Fatalf("GetRound failed: %v", err)
	}
	if got.IsOpen() || got.ClosedAt != 1700000000 || !got.Confirmations["alice"] || got.Confirmations["bob"] {
		t.Errorf("unexpected round after update: %+v", got)
	}

	stale := *first
	stale.Version = 1
	if err := store.UpdateRound(ctx, &stale); !errors.Is(err, storage.ErrConflict) {
		t.Errorf("expected ErrConflict, got %v", err)
	}
}

func TestRoundItems(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	g := createGroup(t, store, "CCCC0001", "alice", "bob")
	r := createRound(t, store, g, 1)

	private := &models.RoundItem{
		GroupID:   g.ID,
		RoundID:   r.ID,
		CreatorID: "alice",
		Name:      "Beer",
		Price:     600,
		Quantity:  2,
	}
	if err := store.CreateRoundItem(ctx, private); err != nil {
		t.Fatalf("CreateRoundItem failed: %v", err)
	}
	if private.ID == "" || private.Version != 1 {
		t.Errorf("expected generated ID and version 1, got %q v%d", private.ID, private.Version)
	}

	amount := int64(700)
	shared := &models.RoundItem{
		GroupID:   g.ID,
		RoundID:   r.ID,
		CreatorID: "bob",
		Name:      "Pizza",
		Price:     1000,
		Quantity:  1,
		Shared: &models.SharedLine{
			Mode:   models.ShareRatio,
			Status: models.ShareActive,
			Shares: []models.Share{
				{ParticipantID: "bob", Weight: 7},
				{ParticipantID: "alice", Weight: 3},
			},
			AllowSelfJoin: true,
		},
	}
	if err := store.CreateRoundItem(ctx, shared); err != nil {
		t.Fatalf("CreateRoundItem shared failed: %v", err)
	}

	t.Run("shares round-trip", func(t *testing.T) {
		got, err := store.GetRoundItem(ctx, shared.ID)
		if err != nil {
			t.Fatalf("GetRoundItem failed: %v", err)
		}
		if !got.IsShared() || got.Shared.Mode != models.ShareRatio || !got.Shared.AllowSelfJoin {
			t.Fatalf("unexpected shared line: %+v", got.Shared)
		}
		if len(got.Shared.Shares) != 2 || got.Shared.Shares[0].ParticipantID != "bob" {
			t.Fatalf("expected shares in insertion order, got %+v", got.Shared.Shares)
		}
		for _, sh := range got.Shared.Shares {
			if sh.Amount != nil {
				t.Errorf("expected no amount before lock for %s", sh.ParticipantID)
			}
		}

		got.Shared.Status = models.ShareLocked
		got.Shared.Shares[0].Amount = &amount
		rest := int64(300)
		got.Shared.Shares[1].Amount = &rest
		if err := store.UpdateRoundItem(ctx, got); err != nil {
			t.Fatalf("UpdateRoundItem failed: %v", err)
		}

		locked, err := store.GetRoundItem(ctx, shared.ID)
		if err != nil {
			t.Fatalf("GetRoundItem failed: %v", err)
		}
		if !locked.IsLocked() {
			t.Error("expected locked line")
		}
		if a := locked.Shared.Shares[0].Amount; a == nil || *a != 700 {
			t.Errorf("expected frozen 700 for bob, got %v", a)
		}
	})

	t.Run("private line has no shares", func(t *testing.T) {
		got, err := store.GetRoundItem(ctx, private.ID)
		if err != nil {
			t.Fatalf("GetRoundItem failed: %v", err)
		}
		if got.IsShared() {
			t.Error("expected private line")
		}
	})

	t.Run("UpdateRoundItem is compare-and-swap", func(t *testing.T) {
		stale, err := store.GetRoundItem(ctx, private.ID)
		if err != nil {
			t.Fatalf("GetRoundItem failed: %v", err)
		}
		private.Quantity = 3
		if err := store.UpdateRoundItem(ctx, private); err != nil {
			t.Fatalf("UpdateRoundItem failed: %v", err)
		}
		stale.Deleted = true
		if err := store.UpdateRoundItem(ctx, stale); !errors.Is(err, storage.ErrConflict) {
			t.Errorf("expected ErrConflict, got %v", err)
		}
	})

	t.Run("list by round and group", func(t *testing.T) {
		byRound, err := store.ListRoundItems(ctx, r.ID)
		if err != nil {
			t.Fatalf("ListRoundItems failed: %v", err)
		}
		byGroup, err := store.ListGroupItems(ctx, g.ID)
		if err != nil {
			t.Fatalf("ListGroupItems failed: %v", err)
		}
		if len(byRound) != 2 || len(byGroup) != 2 {
			t.Fatalf("expected 2 items, got %d by round and %d by group", len(byRound), len(byGroup))
		}
		if byRound[0].ID != private.ID {
			t.Error("expected creation order")
		}
	})
}

func TestInTx_RollsBack(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	g := createGroup(t, store, "DDDD0001", "alice")

	boom := errors.New("boom")
	err := store.InTx(ctx, func(q storage.Queries) error {
		dish := &models.GroupMenuItem{
			GroupID:   g.ID,
			Name:      "Soup",
			Price:     500,
			Status:    models.DishActive,
			CreatedBy: "alice",
			UpdatedBy: "alice",
		}
		if err := q.CreateMenuItem(ctx, dish); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected fn error, got %v", err)
	}

	dishes, err := store.ListMenuItems(ctx, g.ID)
	if err != nil {
		t.Fatalf("ListMenuItems failed: %v", err)
	}
	if len(dishes) != 0 {
		t.Errorf("expected rollback, found %d dishes", len(dishes))
	}
}

func TestTemplates(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	menu := &models.RestaurantMenu{
		SourceGroupID: "EEEE0001",
		Name:          "Golden Dragon",
		Items: []models.RestaurantMenuItem{
			{Name: "Fried Rice", Price: 700},
			{Name: "Wonton Soup", Price: 650, Note: "no cilantro"},
		},
	}
	if err := store.CreateRestaurantMenu(ctx, menu); err != nil {
		t.Fatalf("CreateRestaurantMenu failed: %v", err)
	}

	found, err := store.FindRestaurantMenuBySource(ctx, "EEEE0001")
	if err != nil || found == nil {
		t.Fatalf("FindRestaurantMenuBySource failed: %v", err)
	}
	if len(found.Items) != 2 || found.Items[1].Note != "no cilantro" {
		t.Errorf("unexpected items: %+v", found.Items)
	}
	if none, err := store.FindRestaurantMenuBySource(ctx, "NOPE0000"); err != nil || none != nil {
		t.Errorf("expected nil menu and no error, got %v, %v", none, err)
	}

	link := &models.UserMenuLink{UserID: "alice", MenuID: menu.ID, Label: "Dragon"}
	if err := store.UpsertMenuLink(ctx, link); err != nil {
		t.Fatalf("UpsertMenuLink failed: %v", err)
	}
	link.LastUsedAt = 1700000100
	link.Label = "Dragon (Fridays)"
	if err := store.UpsertMenuLink(ctx, link); err != nil {
		t.Fatalf("UpsertMenuLink update failed: %v", err)
	}

	got, err := store.GetMenuLink(ctx, "alice", menu.ID)
	if err != nil || got == nil {
		t.Fatalf("GetMenuLink failed: %v", err)
	}
	if got.Label != "Dragon (Fridays)" || got.RecencyKey() != 1700000100 {
		t.Errorf("unexpected link: %+v", got)
	}
	if n, err := store.CountMenuLinks(ctx, menu.ID); err != nil || n != 1 {
		t.Errorf("expected 1 link, got %d (%v)", n, err)
	}

	swept, err := store.DeleteOrphanRestaurantMenus(ctx)
	if err != nil {
		t.Fatalf("DeleteOrphanRestaurantMenus failed: %v", err)
	}
	if swept != 0 {
		t.Errorf("expected linked menu to survive, swept %d", swept)
	}

	if err := store.DeleteMenuLink(ctx, "alice", menu.ID); err != nil {
		t.Fatalf("DeleteMenuLink failed: %v", err)
	}
	swept, err = store.DeleteOrphanRestaurantMenus(ctx)
	if err != nil {
		t.Fatalf("DeleteOrphanRestaurantMenus failed: %v", err)
	}
	if swept != 1 {
		t.Errorf("expected orphan menu to be swept, swept %d", swept)
	}
	if _, err := store.GetRestaurantMenu(ctx, menu.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound after sweep, got %v", err)
	}
}

func TestUsers(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	user := models.NewUser("alice@example.com", "Alice", "hash")
	if err := store.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	byEmail, err := store.GetUserByEmail(ctx, "alice@example.com")
	if err != nil || byEmail == nil || byEmail.ID != user.ID {
		t.Fatalf("GetUserByEmail: got %v, %v", byEmail, err)
	}
	byID, err := store.GetUserByID(ctx, user.ID)
	if err != nil || byID == nil || byID.DisplayName != "Alice" {
		t.Fatalf("GetUserByID: got %v, %v", byID, err)
	}
	missing, err := store.GetUserByID(ctx, "nobody")
	if err != nil || missing != nil {
		t.Errorf("expected nil user and no error, got %v, %v", missing, err)
	}

	if err := store.CreateUser(ctx, models.NewUser("alice@example.com", "Alice 2", "hash")); err == nil {
		t.Error("expected duplicate email to fail")
	}
}

func TestDeleteGroup_Cascades(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	g := createGroup(t, store, "FFFF0001", "alice", "bob")
	r := createRound(t, store, g, 1)

	item := &models.RoundItem{GroupID: g.ID, RoundID: r.ID, CreatorID: "alice", Name: "Tea", Price: 300, Quantity: 1}
	if err := store.CreateRoundItem(ctx, item); err != nil {
		t.Fatalf("CreateRoundItem failed: %v", err)
	}

	if err := store.DeleteGroup(ctx, g.ID); err != nil {
		t.Fatalf("DeleteGroup failed: %v", err)
	}
	if _, err := store.GetRound(ctx, r.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected round to be gone, got %v", err)
	}
	if _, err := store.GetRoundItem(ctx, item.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected item to be gone, got %v", err)
	}
	if err := store.DeleteGroup(ctx, g.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}
}
