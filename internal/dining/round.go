package dining

import (
	"context"

	"github.com/mmynk/tableround/internal/calculator"
	"github.com/mmynk/tableround/internal/models"
	"github.com/mmynk/tableround/internal/storage"
)

// Round close triggers, used as metric labels.
const (
	triggerManual    = "manual"
	triggerUnanimous = "unanimous"
	triggerCheckout  = "checkout"
)

// RoundView is a round with its live lines.
type RoundView struct {
	Round *models.Round
	Items []*models.RoundItem
}

// currentRound returns the open ordinary round of a group, or nil.
func currentRound(ctx context.Context, q storage.Queries, groupID string) (*models.Round, error) {
	rounds, err := q.ListRounds(ctx, groupID)
	if err != nil {
		return nil, err
	}
	for _, r := range rounds {
		if r.Kind == models.RoundOrdinary && r.IsOpen() {
			return r, nil
		}
	}
	return nil, nil
}

// requireCurrentRound is currentRound for operations that need one.
func requireCurrentRound(ctx context.Context, q storage.Queries, g *models.Group) (*models.Round, error) {
	r, err := currentRound(ctx, q, g.ID)
	if err != nil {
		return nil, err
	}
	if r == nil {
		if g.CheckoutConfirming {
			return nil, errorf(KindInvalidState, "checkout is in progress, use extra items")
		}
		return nil, errorf(KindInvalidState, "group %s has no open round", g.ID)
	}
	return r, nil
}

// OpenRound starts the next ordinary round of a group.
func (e *Engine) OpenRound(ctx context.Context, groupID, actor string) (*models.Round, error) {
	var round *models.Round
	err := e.run(ctx, func(q storage.Queries, fx *effects) error {
		g, err := q.GetGroup(ctx, groupID)
		if err != nil {
			return err
		}
		if err := authorize(g, actor, capMember); err != nil {
			return err
		}
		if err := requireMutable(g); err != nil {
			return err
		}
		if g.CheckoutConfirming {
			return errorf(KindInvalidState, "cannot open a round during checkout")
		}
		round, err = e.openRoundTx(ctx, q, g, actor)
		return err
	})
	if err != nil {
		return nil, err
	}
	return round, nil
}

func (e *Engine) openRoundTx(ctx context.Context, q storage.Queries, g *models.Group, actor string) (*models.Round, error) {
	rounds, err := q.ListRounds(ctx, g.ID)
	if err != nil {
		return nil, err
	}
	number := 0
	for _, r := range rounds {
		if r.Kind != models.RoundOrdinary {
			continue
		}
		if r.IsOpen() {
			return nil, errorf(KindInvalidState, "round %s is still open", r.ID)
		}
		number = max(number, r.Number)
	}

	number++
	round := &models.Round{
		ID:            models.RoundID(g.ID, number),
		GroupID:       g.ID,
		Number:        number,
		Kind:          models.RoundOrdinary,
		Status:        models.RoundOpen,
		CreatedBy:     actor,
		Confirmations: models.Confirmations{},
		CreatedAt:     e.unix(),
	}
	round.Confirmations.Reset(g.MemberIDs())
	if err := q.CreateRound(ctx, round); err != nil {
		return nil, err
	}
	return round, nil
}

// CloseRound force-locks the shared lines of an open ordinary round and
// closes it.
func (e *Engine) CloseRound(ctx context.Context, roundID, actor string) (*models.Round, error) {
	var round *models.Round
	err := e.run(ctx, func(q storage.Queries, fx *effects) error {
		r, err := q.GetRound(ctx, roundID)
		if err != nil {
			return err
		}
		round = r
		g, err := q.GetGroup(ctx, r.GroupID)
		if err != nil {
			return err
		}
		if err := authorize(g, actor, capOwner); err != nil {
			return err
		}
		if err := requireMutable(g); err != nil {
			return err
		}
		if r.Kind == models.RoundExtra {
			return errorf(KindInvalidState, "the extra round closes when checkout is finalized")
		}
		return e.closeRoundTx(ctx, q, fx, r, triggerManual)
	})
	if err != nil {
		return nil, err
	}
	return round, nil
}

func (e *Engine) closeRoundTx(ctx context.Context, q storage.Queries, fx *effects, r *models.Round, trigger string) error {
	if !r.IsOpen() {
		return errorf(KindInvalidState, "round %s is closed", r.ID)
	}
	items, err := q.ListRoundItems(ctx, r.ID)
	if err != nil {
		return err
	}
	for _, item := range items {
		if item.Deleted || !item.IsShared() || item.IsLocked() {
			continue
		}
		if err := freeze(item, true); err != nil {
			return err
		}
		if err := q.UpdateRoundItem(ctx, item); err != nil {
			return err
		}
		fx.locks = append(fx.locks, lockEvent{itemID: item.ID, forced: true})
	}

	r.Status = models.RoundClosed
	r.ClosedAt = e.unix()
	if err := q.UpdateRound(ctx, r); err != nil {
		return err
	}
	fx.closed = append(fx.closed, closedRound{id: r.ID, trigger: trigger})
	return nil
}

// advanceIfUnanimous closes r and opens the next round once every current
// member has confirmed. It returns the new round, or nil if r stays open.
func (e *Engine) advanceIfUnanimous(ctx context.Context, q storage.Queries, fx *effects, g *models.Group, r *models.Round, actor string) (*models.Round, error) {
	if !r.Confirmations.AllConfirmed(g.MemberIDs()) {
		return nil, nil
	}
	if err := e.closeRoundTx(ctx, q, fx, r, triggerUnanimous); err != nil {
		return nil, err
	}
	return e.openRoundTx(ctx, q, g, actor)
}

// calcLine converts a shared line to its allocator input.
func calcLine(item *models.RoundItem) calculator.Line {
	line := calculator.Line{
		Price:    item.Price,
		Quantity: item.Quantity,
		Mode:     calculator.Mode(item.Shared.Mode),
		Shares:   make([]calculator.Share, len(item.Shared.Shares)),
	}
	for i, s := range item.Shared.Shares {
		line.Shares[i] = calculator.Share{ParticipantID: s.ParticipantID, Weight: s.Weight, Units: s.Units}
	}
	return line
}

// freeze locks a shared line in place, storing each participant's amount.
// Forced locks complete the line first.
func freeze(item *models.RoundItem, force bool) error {
	line, allocs, err := calculator.Lock(calcLine(item), item.CreatorID, force)
	if err != nil {
		return err
	}
	shares := make([]models.Share, len(line.Shares))
	for i, s := range line.Shares {
		amount := allocs[i].Amount
		shares[i] = models.Share{ParticipantID: s.ParticipantID, Weight: s.Weight, Units: s.Units, Amount: &amount}
	}
	item.Shared.Shares = shares
	item.Shared.Status = models.ShareLocked
	return nil
}

// GetRound returns a round with its non-deleted lines.
func (e *Engine) GetRound(ctx context.Context, roundID, actor string) (*RoundView, error) {
	r, err := e.store.GetRound(ctx, roundID)
	if err != nil {
		return nil, translate(err)
	}
	g, err := e.store.GetGroup(ctx, r.GroupID)
	if err != nil {
		return nil, translate(err)
	}
	if err := authorize(g, actor, capMember); err != nil {
		return nil, err
	}
	items, err := e.store.ListRoundItems(ctx, r.ID)
	if err != nil {
		return nil, translate(err)
	}
	return &RoundView{Round: r, Items: live(items)}, nil
}

// ListRounds returns a group's rounds, the extra round last.
func (e *Engine) ListRounds(ctx context.Context, groupID, actor string) ([]*models.Round, error) {
	g, err := e.store.GetGroup(ctx, groupID)
	if err != nil {
		return nil, translate(err)
	}
	if err := authorize(g, actor, capMember); err != nil {
		return nil, err
	}
	rounds, err := e.store.ListRounds(ctx, groupID)
	if err != nil {
		return nil, translate(err)
	}
	return rounds, nil
}

func live(items []*models.RoundItem) []*models.RoundItem {
	out := make([]*models.RoundItem, 0, len(items))
	for _, item := range items {
		if !item.Deleted {
			out = append(out, item)
		}
	}
	return out
}
