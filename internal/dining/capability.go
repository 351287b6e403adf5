package dining

import "github.com/mmynk/tableround/internal/models"

// capability is a role an actor can hold relative to a group and a subject.
type capability uint8

const (
	capOwner  capability = 1 << iota // the group owner
	capMember                        // any group member
	capSelf                          // a member acting on their own record
)

func (c capability) String() string {
	switch {
	case c&capOwner != 0 && c&capSelf != 0:
		return "the owner or the member concerned"
	case c&capOwner != 0:
		return "the group owner"
	case c&capSelf != 0:
		return "the member concerned"
	}
	return "a group member"
}

// authorize succeeds if actor holds any capability in caps. capSelf is
// satisfied when the actor is a member and equals one of subjects.
// Every mutating operation calls it before touching state.
func authorize(g *models.Group, actor string, caps capability, subjects ...string) error {
	if actor == "" {
		return errorf(KindUnauthorized, "authentication required")
	}
	member := g.IsMember(actor)
	if caps&capOwner != 0 && actor == g.OwnerID {
		return nil
	}
	if caps&capMember != 0 && member {
		return nil
	}
	if caps&capSelf != 0 && member {
		for _, s := range subjects {
			if s == actor {
				return nil
			}
		}
	}
	return errorf(KindUnauthorized, "only %s may do this", caps)
}

// requireMutable rejects changes to a settled group.
func requireMutable(g *models.Group) error {
	if g.Settled {
		return errorf(KindInvalidState, "group %s is settled", g.ID)
	}
	return nil
}
