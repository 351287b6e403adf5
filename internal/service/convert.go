package service

import (
	"sort"
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/mmynk/tableround/internal/calculator"
	"github.com/mmynk/tableround/internal/dining"
	"github.com/mmynk/tableround/internal/models"
	pb "github.com/mmynk/tableround/pkg/proto"
)

// toTimestamp converts a Unix timestamp; zero means unset.
func toTimestamp(unix int64) *timestamppb.Timestamp {
	if unix == 0 {
		return nil
	}
	return timestamppb.New(time.Unix(unix, 0))
}

func toPBGroup(g *models.Group) *pb.Group {
	if g == nil {
		return nil
	}
	members := make([]*pb.Member, len(g.Members))
	for i, m := range g.Members {
		members[i] = &pb.Member{
			UserId:            m.UserID,
			DisplayName:       m.DisplayName,
			JoinedAt:          toTimestamp(m.JoinedAt),
			CheckoutConfirmed: g.CheckoutConfirmations[m.UserID],
		}
	}
	return &pb.Group{
		Id:                 g.ID,
		Name:               g.Name,
		OwnerId:            g.OwnerID,
		Members:            members,
		Settled:            g.Settled,
		CheckoutConfirming: g.CheckoutConfirming,
		CreatedAt:          toTimestamp(g.CreatedAt),
		UpdatedAt:          toTimestamp(g.UpdatedAt),
	}
}

func toPBGroups(groups []*models.Group) []*pb.Group {
	out := make([]*pb.Group, len(groups))
	for i, g := range groups {
		out[i] = toPBGroup(g)
	}
	return out
}

func toPBRound(r *models.Round) *pb.Round {
	if r == nil {
		return nil
	}
	confirmations := make([]*pb.Confirmation, 0, len(r.Confirmations))
	for userID, ok := range r.Confirmations {
		confirmations = append(confirmations, &pb.Confirmation{UserId: userID, Confirmed: ok})
	}
	sort.Slice(confirmations, func(i, j int) bool {
		return confirmations[i].UserId < confirmations[j].UserId
	})
	return &pb.Round{
		Id:            r.ID,
		GroupId:       r.GroupID,
		Number:        int32(r.Number),
		Kind:          string(r.Kind),
		Status:        string(r.Status),
		CreatedBy:     r.CreatedBy,
		Confirmations: confirmations,
		CreatedAt:     toTimestamp(r.CreatedAt),
		ClosedAt:      toTimestamp(r.ClosedAt),
	}
}

func toPBRounds(rounds []*models.Round) []*pb.Round {
	out := make([]*pb.Round, len(rounds))
	for i, r := range rounds {
		out[i] = toPBRound(r)
	}
	return out
}

func toPBItem(item *models.RoundItem) (*pb.Item, error) {
	out := &pb.Item{
		Id:          item.ID,
		GroupId:     item.GroupID,
		RoundId:     item.RoundID,
		CreatorId:   item.CreatorID,
		Name:        item.Name,
		Price:       item.Price,
		Quantity:    item.Quantity,
		Note:        item.Note,
		MenuItemId:  item.MenuItemID,
		OrdererName: item.OrdererName,
		CreatedAt:   toTimestamp(item.CreatedAt),
		UpdatedAt:   toTimestamp(item.UpdatedAt),
	}
	if !item.IsShared() {
		return out, nil
	}

	owed, err := dining.OwedAmounts(item)
	if err != nil {
		return nil, err
	}
	byParticipant := make(map[string]int64, len(owed))
	for _, a := range owed {
		byParticipant[a.ParticipantID] = a.Amount
	}

	shares := make([]*pb.Share, len(item.Shared.Shares))
	for i, sh := range item.Shared.Shares {
		shares[i] = &pb.Share{
			ParticipantId: sh.ParticipantID,
			Weight:        sh.Weight,
			Units:         sh.Units,
			Amount:        sh.Amount,
			Owed:          byParticipant[sh.ParticipantID],
		}
	}
	out.Shared = &pb.SharedLine{
		Mode:            string(item.Shared.Mode),
		Status:          string(item.Shared.Status),
		Shares:          shares,
		AllowSelfJoin:   item.Shared.AllowSelfJoin,
		AllowClaimUnits: item.Shared.AllowClaimUnits,
	}
	return out, nil
}

func toPBItems(items []*models.RoundItem) ([]*pb.Item, error) {
	out := make([]*pb.Item, len(items))
	for i, item := range items {
		converted, err := toPBItem(item)
		if err != nil {
			return nil, err
		}
		out[i] = converted
	}
	return out, nil
}

func toPBDish(d *models.GroupMenuItem) *pb.Dish {
	if d == nil {
		return nil
	}
	return &pb.Dish{
		Id:        d.ID,
		GroupId:   d.GroupID,
		Name:      d.Name,
		Price:     d.Price,
		Status:    string(d.Status),
		CreatedBy: d.CreatedBy,
		UpdatedBy: d.UpdatedBy,
	}
}

func toPBDishes(dishes []*models.GroupMenuItem) []*pb.Dish {
	out := make([]*pb.Dish, len(dishes))
	for i, d := range dishes {
		out[i] = toPBDish(d)
	}
	return out
}

func toPBTotals(t calculator.Totals) *pb.Totals {
	members := make([]*pb.MemberTotal, len(t.Members))
	for i, m := range t.Members {
		members[i] = &pb.MemberTotal{
			UserId:      m.MemberID,
			Private:     m.Private,
			Shared:      m.Shared,
			Adjustments: m.Adjustments,
			Total:       m.Total,
		}
	}
	return &pb.Totals{Members: members, Unassigned: t.Unassigned}
}

func toPBTemplate(t *dining.Template) *pb.Template {
	items := make([]*pb.TemplateItem, len(t.Menu.Items))
	for i, it := range t.Menu.Items {
		items[i] = &pb.TemplateItem{Name: it.Name, Price: it.Price, Note: it.Note}
	}
	return &pb.Template{
		MenuId:        t.Menu.ID,
		SourceGroupId: t.Menu.SourceGroupID,
		Name:          t.Menu.Name,
		Label:         t.Link.Label,
		Items:         items,
		CreatedAt:     toTimestamp(t.Link.CreatedAt),
		LastUsedAt:    toTimestamp(t.Link.LastUsedAt),
	}
}

func toPBUser(u *models.User) *pb.User {
	return &pb.User{
		Id:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		CreatedAt:   toTimestamp(u.CreatedAt),
	}
}

func toShareInputs(shares []*pb.Share) []dining.ShareInput {
	out := make([]dining.ShareInput, len(shares))
	for i, sh := range shares {
		out[i] = dining.ShareInput{
			ParticipantID: sh.GetParticipantId(),
			Weight:        sh.GetWeight(),
			Units:         sh.GetUnits(),
		}
	}
	return out
}
