package dining

import (
	"context"

	"github.com/mmynk/tableround/internal/calculator"
	"github.com/mmynk/tableround/internal/models"
	"github.com/mmynk/tableround/internal/storage"
)

// ShareInput is one participant's stake in a shared line. Weight is used in
// ratio mode and Units in units mode.
type ShareInput struct {
	ParticipantID string
	Weight        int64
	Units         int64
}

// SharedInput describes a new shared line.
type SharedInput struct {
	OrderInput

	Mode         models.ShareMode
	Participants []ShareInput

	AllowSelfJoin   bool
	AllowClaimUnits bool
}

// mergeShare adds a participant or replaces their stake.
func mergeShare(line *models.SharedLine, in ShareInput) {
	if s := line.Share(in.ParticipantID); s != nil {
		s.Weight = in.Weight
		s.Units = in.Units
		return
	}
	line.Shares = append(line.Shares, models.Share{ParticipantID: in.ParticipantID, Weight: in.Weight, Units: in.Units})
}

// addShares merges shares after checking every participant is a member.
func addShares(g *models.Group, line *models.SharedLine, shares []ShareInput) error {
	for _, s := range shares {
		if !g.IsMember(s.ParticipantID) {
			return errorf(KindInvalid, "participant %s is not a member of group %s", s.ParticipantID, g.ID)
		}
		mergeShare(line, s)
	}
	return nil
}

// validateShares runs a preview allocation so bad weights and over-claimed
// units are rejected when they are entered rather than at lock time.
func validateShares(item *models.RoundItem) error {
	if len(item.Shared.Shares) == 0 {
		item.Shared.Status = models.SharePending
		return nil
	}
	item.Shared.Status = models.ShareActive
	_, err := calculator.Allocate(calcLine(item), calculator.Partial)
	return translate(err)
}

// loadShared is loadLine for operations that need a shared line.
func loadShared(ctx context.Context, q storage.Queries, itemID string) (*models.Group, *models.Round, *models.RoundItem, error) {
	g, r, item, err := loadLine(ctx, q, itemID)
	if err != nil {
		return nil, nil, nil, err
	}
	if !item.IsShared() {
		return nil, nil, nil, errorf(KindInvalidState, "line %s is not shared", itemID)
	}
	return g, r, item, nil
}

// CreateSharedItem adds a shared line to the open ordinary round.
func (e *Engine) CreateSharedItem(ctx context.Context, groupID, actor string, in SharedInput) (*models.RoundItem, error) {
	if in.Quantity <= 0 {
		return nil, errorf(KindInvalid, "quantity must be positive")
	}
	if !in.Mode.Valid() {
		return nil, errorf(KindInvalid, "unknown share mode %q", in.Mode)
	}

	var item *models.RoundItem
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
		r, err := requireCurrentRound(ctx, q, g)
		if err != nil {
			return err
		}
		name, price, link, err := resolveDish(ctx, q, g, in.OrderInput)
		if err != nil {
			return err
		}

		now := e.unix()
		item = &models.RoundItem{
			GroupID:    g.ID,
			RoundID:    r.ID,
			CreatorID:  actor,
			Name:       name,
			Price:      price,
			Quantity:   in.Quantity,
			Note:       in.Note,
			MenuItemID: link,
			Shared: &models.SharedLine{
				Mode:            in.Mode,
				AllowSelfJoin:   in.AllowSelfJoin,
				AllowClaimUnits: in.AllowClaimUnits,
			},
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := addShares(g, item.Shared, in.Participants); err != nil {
			return err
		}
		if err := validateShares(item); err != nil {
			return err
		}
		if err := q.CreateRoundItem(ctx, item); err != nil {
			return err
		}
		return touch(ctx, q, g, r, actor, actor)
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// JoinSharedItem adds the actor to a shared line, or updates their stake.
// Members other than the line's creator and the group owner need the line
// to allow self-join, and to allow unit claims when claiming units.
func (e *Engine) JoinSharedItem(ctx context.Context, itemID, actor string, weight, units int64) (*models.RoundItem, error) {
	var item *models.RoundItem
	err := e.run(ctx, func(q storage.Queries, fx *effects) error {
		g, r, it, err := loadShared(ctx, q, itemID)
		if err != nil {
			return err
		}
		item = it
		if err := checkEditable(g, r, item, actor, capMember); err != nil {
			return err
		}

		privileged := actor == item.CreatorID || actor == g.OwnerID
		if !privileged && !item.Shared.AllowSelfJoin {
			return errorf(KindUnauthorized, "joining line %s requires an invitation", item.ID)
		}
		if !privileged && units > 0 && !item.Shared.AllowClaimUnits {
			return errorf(KindUnauthorized, "claiming units of line %s is not allowed", item.ID)
		}

		mergeShare(item.Shared, ShareInput{ParticipantID: actor, Weight: weight, Units: units})
		if err := validateShares(item); err != nil {
			return err
		}
		if err := q.UpdateRoundItem(ctx, item); err != nil {
			return err
		}
		return touch(ctx, q, g, r, item.CreatorID, actor)
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// AddParticipants adds or updates several participants of a shared line.
func (e *Engine) AddParticipants(ctx context.Context, itemID, actor string, shares []ShareInput) (*models.RoundItem, error) {
	if len(shares) == 0 {
		return nil, errorf(KindInvalid, "no participants given")
	}

	var item *models.RoundItem
	err := e.run(ctx, func(q storage.Queries, fx *effects) error {
		g, r, it, err := loadShared(ctx, q, itemID)
		if err != nil {
			return err
		}
		item = it
		if err := checkEditable(g, r, item, actor, capOwner|capSelf, item.CreatorID); err != nil {
			return err
		}
		if err := addShares(g, item.Shared, shares); err != nil {
			return err
		}
		if err := validateShares(item); err != nil {
			return err
		}
		if err := q.UpdateRoundItem(ctx, item); err != nil {
			return err
		}
		return touch(ctx, q, g, r, item.CreatorID, actor)
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// RemoveParticipant drops a participant from a shared line. The line's
// creator, the group owner and the participant themselves may do this.
func (e *Engine) RemoveParticipant(ctx context.Context, itemID, actor, participantID string) (*models.RoundItem, error) {
	var item *models.RoundItem
	err := e.run(ctx, func(q storage.Queries, fx *effects) error {
		g, r, it, err := loadShared(ctx, q, itemID)
		if err != nil {
			return err
		}
		item = it
		if err := checkEditable(g, r, item, actor, capOwner|capSelf, item.CreatorID, participantID); err != nil {
			return err
		}

		shares := item.Shared.Shares
		idx := -1
		for i, s := range shares {
			if s.ParticipantID == participantID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return errorf(KindNotFound, "%s does not share line %s", participantID, item.ID)
		}
		item.Shared.Shares = append(shares[:idx], shares[idx+1:]...)

		if err := validateShares(item); err != nil {
			return err
		}
		if err := q.UpdateRoundItem(ctx, item); err != nil {
			return err
		}
		return touch(ctx, q, g, r, item.CreatorID, actor)
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// LockSharedItem freezes the amounts of a shared line. Without force the
// line must have participants and, in units mode, every unit claimed.
// A locked line never changes again.
func (e *Engine) LockSharedItem(ctx context.Context, itemID, actor string, force bool) (*models.RoundItem, error) {
	var item *models.RoundItem
	err := e.run(ctx, func(q storage.Queries, fx *effects) error {
		g, r, it, err := loadShared(ctx, q, itemID)
		if err != nil {
			return err
		}
		item = it
		if err := checkEditable(g, r, item, actor, capOwner|capSelf, item.CreatorID); err != nil {
			return err
		}
		if err := freeze(item, force); err != nil {
			return err
		}
		if err := q.UpdateRoundItem(ctx, item); err != nil {
			return err
		}
		fx.locks = append(fx.locks, lockEvent{itemID: item.ID, forced: force})
		return touch(ctx, q, g, r, item.CreatorID, actor)
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}
