package dining

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/mmynk/tableround/internal/models"
	"github.com/mmynk/tableround/internal/storage"
)

// groupIDAttempts bounds how many fresh ids CreateGroup tries when an id
// is already taken.
const groupIDAttempts = 4

// newGroupID returns a short shareable group id: the first 8 hex digits of a
// random UUID, upper-cased.
func newGroupID() string {
	id := strings.ReplaceAll(uuid.New().String(), "-", "")
	return strings.ToUpper(id[:8])
}

// displayName resolves the name shown for a user, falling back to the id
// for unknown users.
func displayName(ctx context.Context, q storage.Queries, userID string) (string, error) {
	user, err := q.GetUserByID(ctx, userID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return userID, nil
	}
	if user.DisplayName != "" {
		return user.DisplayName, nil
	}
	return user.Email, nil
}

// CreateGroup creates a group owned by ownerID together with its first round.
func (e *Engine) CreateGroup(ctx context.Context, ownerID, name string) (*models.Group, *models.Round, error) {
	if ownerID == "" {
		return nil, nil, errorf(KindUnauthorized, "authentication required")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil, errorf(KindInvalid, "group name is required")
	}

	var group *models.Group
	err := e.run(ctx, func(q storage.Queries, fx *effects) error {
		display, err := displayName(ctx, q, ownerID)
		if err != nil {
			return err
		}
		now := e.unix()
		for attempt := 1; ; attempt++ {
			group = &models.Group{
				ID:                    e.groupID(),
				Name:                  name,
				OwnerID:               ownerID,
				Members:               []models.Member{{UserID: ownerID, DisplayName: display, JoinedAt: now}},
				CheckoutConfirmations: models.Confirmations{ownerID: false},
				CreatedAt:             now,
				UpdatedAt:             now,
			}
			err = q.CreateGroup(ctx, group)
			if !errors.Is(err, storage.ErrConflict) || attempt == groupIDAttempts {
				return err
			}
			e.logger.Warn("Group id taken, retrying", "group_id", group.ID, "attempt", attempt)
		}
	})
	if err != nil {
		return nil, nil, err
	}

	var round *models.Round
	err = e.run(ctx, func(q storage.Queries, fx *effects) error {
		var err error
		round, err = e.openRoundTx(ctx, q, group, ownerID)
		return err
	})
	if err != nil {
		if derr := e.store.DeleteGroup(ctx, group.ID); derr != nil {
			e.logger.Warn("Failed to remove group after first round failed",
				"group_id", group.ID,
				"error", derr,
			)
		}
		return nil, nil, err
	}

	e.logger.Info("Group created", "group_id", group.ID, "owner_id", ownerID)
	return group, round, nil
}

// JoinGroup adds userID to the group. Joining twice is a no-op.
func (e *Engine) JoinGroup(ctx context.Context, groupID, userID string) (*models.Group, error) {
	if userID == "" {
		return nil, errorf(KindUnauthorized, "authentication required")
	}

	var group *models.Group
	err := e.run(ctx, func(q storage.Queries, fx *effects) error {
		g, err := q.GetGroup(ctx, groupID)
		if err != nil {
			return err
		}
		group = g
		if err := requireMutable(g); err != nil {
			return err
		}
		if g.IsMember(userID) {
			return nil
		}

		display, err := displayName(ctx, q, userID)
		if err != nil {
			return err
		}
		g.Members = append(g.Members, models.Member{UserID: userID, DisplayName: display, JoinedAt: e.unix()})
		g.CheckoutConfirmations[userID] = false

		r, err := currentRound(ctx, q, g.ID)
		if err != nil {
			return err
		}
		if r != nil {
			r.Confirmations[userID] = false
			if err := q.UpdateRound(ctx, r); err != nil {
				return err
			}
		}
		return q.UpdateGroup(ctx, g)
	})
	if err != nil {
		return nil, err
	}
	return group, nil
}

// RemoveMember drops memberID from the group. Members that still own or
// share lines cannot be removed. If everyone left has confirmed the open
// round, the round advances.
func (e *Engine) RemoveMember(ctx context.Context, groupID, actor, memberID string) (*models.Group, error) {
	var group *models.Group
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
		if memberID == g.OwnerID {
			return errorf(KindInvalidState, "the owner cannot be removed")
		}
		if !g.IsMember(memberID) {
			return errorf(KindNotFound, "user %s is not a member of group %s", memberID, g.ID)
		}

		items, err := q.ListGroupItems(ctx, g.ID)
		if err != nil {
			return err
		}
		for _, item := range items {
			if !item.Deleted && item.Involves(memberID) {
				return errorf(KindInvalidState, "%s still has order lines", g.DisplayName(memberID))
			}
		}

		members := g.Members[:0]
		for _, m := range g.Members {
			if m.UserID != memberID {
				members = append(members, m)
			}
		}
		g.Members = members
		g.CheckoutConfirmations.Retain(g.MemberIDs())

		r, err := currentRound(ctx, q, g.ID)
		if err != nil {
			return err
		}
		if r != nil {
			r.Confirmations.Retain(g.MemberIDs())
			next, err := e.advanceIfUnanimous(ctx, q, fx, g, r, actor)
			if err != nil {
				return err
			}
			if next == nil {
				if err := q.UpdateRound(ctx, r); err != nil {
					return err
				}
			}
		}
		return q.UpdateGroup(ctx, g)
	})
	if err != nil {
		return nil, err
	}
	return group, nil
}

// GetGroup returns a group the actor belongs to.
func (e *Engine) GetGroup(ctx context.Context, groupID, actor string) (*models.Group, error) {
	g, err := e.store.GetGroup(ctx, groupID)
	if err != nil {
		return nil, translate(err)
	}
	if err := authorize(g, actor, capMember); err != nil {
		return nil, err
	}
	return g, nil
}

// ListGroups returns every group userID belongs to.
func (e *Engine) ListGroups(ctx context.Context, userID string) ([]*models.Group, error) {
	groups, err := e.store.ListGroupsByMember(ctx, userID)
	if err != nil {
		return nil, translate(err)
	}
	return groups, nil
}
