package dining

import (
	"context"

	"github.com/mmynk/tableround/internal/models"
	"github.com/mmynk/tableround/internal/storage"
)

// ConfirmResult reports the outcome of a round confirmation.
type ConfirmResult struct {
	Round *models.Round

	// Advanced is true when this confirmation was the last one missing and
	// the round was closed. NextRound is the round opened in its place.
	Advanced  bool
	NextRound *models.Round
}

// ConfirmRound records that actor is done ordering in an ordinary round.
// Confirming twice is a no-op. When every current member has confirmed,
// the round's shared lines are force-locked, the round closes and the next
// one opens, all in the same transaction.
func (e *Engine) ConfirmRound(ctx context.Context, roundID, actor string) (*ConfirmResult, error) {
	res := &ConfirmResult{}
	err := e.run(ctx, func(q storage.Queries, fx *effects) error {
		r, err := q.GetRound(ctx, roundID)
		if err != nil {
			return err
		}
		res.Round = r
		g, err := q.GetGroup(ctx, r.GroupID)
		if err != nil {
			return err
		}
		if err := authorize(g, actor, capMember); err != nil {
			return err
		}
		if err := requireMutable(g); err != nil {
			return err
		}
		if r.Kind == models.RoundExtra {
			return errorf(KindInvalidState, "the extra round is confirmed through checkout")
		}
		if !r.IsOpen() {
			return errorf(KindInvalidState, "round %s is closed", r.ID)
		}

		changed := r.Confirmations.Confirm(actor)
		next, err := e.advanceIfUnanimous(ctx, q, fx, g, r, actor)
		if err != nil {
			return err
		}
		if next != nil {
			res.Advanced = true
			res.NextRound = next
			return nil
		}
		if !changed {
			return nil
		}
		return q.UpdateRound(ctx, r)
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
