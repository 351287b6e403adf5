package dining

import (
	"context"
	"errors"

	"github.com/mmynk/tableround/internal/calculator"
	"github.com/mmynk/tableround/internal/models"
	"github.com/mmynk/tableround/internal/storage"
)

// CheckoutSummary is a group's merged bill with its confirmation state.
type CheckoutSummary struct {
	Group  *models.Group
	Totals calculator.Totals

	// Pending lists members that have not confirmed checkout. Empty when
	// checkout has not started.
	Pending []string
}

// StartCheckout closes the open ordinary round, opens the extra round for
// adjustments and asks every member to confirm their order again.
// Calling it during checkout restarts the confirmation.
func (e *Engine) StartCheckout(ctx context.Context, groupID, actor string) (*models.Group, *models.Round, error) {
	var group *models.Group
	var extra *models.Round
	err := e.run(ctx, func(q storage.Queries, fx *effects) error {
		g, err := q.GetGroup(ctx, groupID)
		if err != nil {
			return err
		}
		group = g
		if err := authorize(g, actor, capOwner); err != nil {
			return err
		}
		if err := requireMutable(g); err != nil {
			return err
		}

		r, err := currentRound(ctx, q, g.ID)
		if err != nil {
			return err
		}
		if r != nil {
			if err := e.closeRoundTx(ctx, q, fx, r, triggerCheckout); err != nil {
				return err
			}
		}

		extra, err = q.GetRound(ctx, models.ExtraRoundID(g.ID))
		switch {
		case errors.Is(err, storage.ErrNotFound):
			extra = &models.Round{
				ID:            models.ExtraRoundID(g.ID),
				GroupID:       g.ID,
				Kind:          models.RoundExtra,
				Status:        models.RoundOpen,
				CreatedBy:     actor,
				Confirmations: models.Confirmations{},
				CreatedAt:     e.unix(),
			}
			if err := q.CreateRound(ctx, extra); err != nil {
				return err
			}
		case err != nil:
			return err
		case !extra.IsOpen():
			return errorf(KindInvalidState, "round %s is closed", extra.ID)
		}

		g.CheckoutConfirming = true
		g.CheckoutConfirmations.Reset(g.MemberIDs())
		return q.UpdateGroup(ctx, g)
	})
	if err != nil {
		return nil, nil, err
	}
	e.logger.Info("Checkout started", "group_id", groupID)
	return group, extra, nil
}

// ConfirmMemberOrder records that actor agrees with their checkout bill.
func (e *Engine) ConfirmMemberOrder(ctx context.Context, groupID, actor string) (*models.Group, error) {
	var group *models.Group
	err := e.run(ctx, func(q storage.Queries, fx *effects) error {
		g, err := q.GetGroup(ctx, groupID)
		if err != nil {
			return err
		}
		group = g
		if err := authorize(g, actor, capMember); err != nil {
			return err
		}
		if err := requireMutable(g); err != nil {
			return err
		}
		if !g.CheckoutConfirming {
			return errorf(KindInvalidState, "checkout has not started")
		}
		if !g.CheckoutConfirmations.Confirm(actor) {
			return nil
		}
		return q.UpdateGroup(ctx, g)
	})
	if err != nil {
		return nil, err
	}
	return group, nil
}

// FinalizeCheckout settles the group. Unless override is set every member
// must have confirmed checkout. All remaining shared lines are force-locked,
// every round is closed and the orderer names are written onto the lines.
// The owner then gets a restaurant menu saved from the group's orders; a
// failure there is logged and does not undo the settlement.
func (e *Engine) FinalizeCheckout(ctx context.Context, groupID, actor string, override bool) (*models.Group, error) {
	var group *models.Group
	var pending []string
	err := e.run(ctx, func(q storage.Queries, fx *effects) error {
		g, err := q.GetGroup(ctx, groupID)
		if err != nil {
			return err
		}
		group = g
		if err := authorize(g, actor, capOwner); err != nil {
			return err
		}
		if err := requireMutable(g); err != nil {
			return err
		}
		if !g.CheckoutConfirming && !override {
			return errorf(KindInvalidState, "checkout has not started")
		}
		pending = g.CheckoutConfirmations.Pending(g.MemberIDs())
		if len(pending) > 0 && !override {
			return unconfirmed(g, pending)
		}

		rounds, err := q.ListRounds(ctx, g.ID)
		if err != nil {
			return err
		}
		for _, r := range rounds {
			if !r.IsOpen() {
				continue
			}
			if err := e.closeRoundTx(ctx, q, fx, r, triggerCheckout); err != nil {
				return err
			}
		}

		items, err := q.ListGroupItems(ctx, g.ID)
		if err != nil {
			return err
		}
		for _, item := range items {
			changed := false
			if !item.Deleted && item.IsShared() && !item.IsLocked() {
				if err := freeze(item, true); err != nil {
					return err
				}
				fx.locks = append(fx.locks, lockEvent{itemID: item.ID, forced: true})
				changed = true
			}
			if name := g.DisplayName(item.CreatorID); item.OrdererName != name {
				item.OrdererName = name
				changed = true
			}
			if !changed {
				continue
			}
			if err := q.UpdateRoundItem(ctx, item); err != nil {
				return err
			}
		}

		g.Settled = true
		g.CheckoutConfirming = false
		if err := q.UpdateGroup(ctx, g); err != nil {
			return err
		}
		fx.settled = g.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(pending) > 0 {
		e.logger.Warn("Checkout finalized without every confirmation",
			"group_id", groupID,
			"pending", pending,
		)
	}

	if _, err := e.SaveAsTemplate(ctx, groupID, actor, ""); err != nil {
		e.logger.Warn("Failed to save restaurant menu after checkout",
			"group_id", groupID,
			"user_id", actor,
			"error", err,
		)
	}
	return group, nil
}

// CheckoutSummary returns the merged bill of every round of a group.
func (e *Engine) CheckoutSummary(ctx context.Context, groupID, actor string) (*CheckoutSummary, error) {
	g, err := e.store.GetGroup(ctx, groupID)
	if err != nil {
		return nil, translate(err)
	}
	if err := authorize(g, actor, capMember); err != nil {
		return nil, err
	}
	items, err := e.store.ListGroupItems(ctx, g.ID)
	if err != nil {
		return nil, translate(err)
	}
	totals, err := totalsOf(g, items)
	if err != nil {
		return nil, err
	}

	summary := &CheckoutSummary{Group: g, Totals: totals}
	if g.CheckoutConfirming {
		summary.Pending = g.CheckoutConfirmations.Pending(g.MemberIDs())
	}
	return summary, nil
}
