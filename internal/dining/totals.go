package dining

import (
	"context"

	"github.com/mmynk/tableround/internal/calculator"
	"github.com/mmynk/tableround/internal/models"
)

// OwedAmounts returns what each participant owes for a shared line: the
// frozen amounts once locked, a preview of the claimed part otherwise.
func OwedAmounts(item *models.RoundItem) ([]calculator.Allocation, error) {
	if !item.IsShared() {
		return []calculator.Allocation{{ParticipantID: item.CreatorID, Amount: item.LineTotal()}}, nil
	}
	if item.IsLocked() {
		return frozen(item), nil
	}
	if len(item.Shared.Shares) == 0 {
		return nil, nil
	}
	allocs, err := calculator.Allocate(calcLine(item), calculator.Partial)
	if err != nil {
		return nil, translate(err)
	}
	return allocs, nil
}

func frozen(item *models.RoundItem) []calculator.Allocation {
	out := make([]calculator.Allocation, len(item.Shared.Shares))
	for i, s := range item.Shared.Shares {
		out[i].ParticipantID = s.ParticipantID
		if s.Amount != nil {
			out[i].Amount = *s.Amount
		}
	}
	return out
}

func totalLine(item *models.RoundItem) calculator.LineForTotal {
	l := calculator.LineForTotal{
		OwnerID:    item.CreatorID,
		Price:      item.Price,
		Quantity:   item.Quantity,
		Adjustment: item.RoundID == models.ExtraRoundID(item.GroupID),
	}
	if item.IsShared() {
		line := calcLine(item)
		l.Shared = &line
		if item.IsLocked() {
			l.Frozen = frozen(item)
		}
	}
	return l
}

func totalsOf(g *models.Group, items []*models.RoundItem) (calculator.Totals, error) {
	lines := make([]calculator.LineForTotal, 0, len(items))
	for _, item := range items {
		if item.Deleted {
			continue
		}
		lines = append(lines, totalLine(item))
	}
	totals, err := calculator.CalculateTotals(g.MemberIDs(), lines)
	if err != nil {
		return calculator.Totals{}, translate(err)
	}
	return totals, nil
}

// RoundTotals returns each member's liability for one round.
func (e *Engine) RoundTotals(ctx context.Context, roundID, actor string) (calculator.Totals, error) {
	r, err := e.store.GetRound(ctx, roundID)
	if err != nil {
		return calculator.Totals{}, translate(err)
	}
	g, err := e.store.GetGroup(ctx, r.GroupID)
	if err != nil {
		return calculator.Totals{}, translate(err)
	}
	if err := authorize(g, actor, capMember); err != nil {
		return calculator.Totals{}, err
	}
	items, err := e.store.ListRoundItems(ctx, r.ID)
	if err != nil {
		return calculator.Totals{}, translate(err)
	}
	return totalsOf(g, items)
}

// GroupTotals returns each member's liability across all rounds.
func (e *Engine) GroupTotals(ctx context.Context, groupID, actor string) (calculator.Totals, error) {
	g, err := e.store.GetGroup(ctx, groupID)
	if err != nil {
		return calculator.Totals{}, translate(err)
	}
	if err := authorize(g, actor, capMember); err != nil {
		return calculator.Totals{}, err
	}
	items, err := e.store.ListGroupItems(ctx, g.ID)
	if err != nil {
		return calculator.Totals{}, translate(err)
	}
	return totalsOf(g, items)
}
