package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/tableround/internal/dining"
	pb "github.com/mmynk/tableround/pkg/proto"
	"github.com/mmynk/tableround/pkg/proto/protoconnect"
)

// TableService implements the Connect TableService: groups, rounds,
// confirmations, checkout and totals.
type TableService struct {
	engine *dining.Engine
	logger *slog.Logger
}

var _ protoconnect.TableServiceHandler = (*TableService)(nil)

// NewTableService creates a new TableService backed by the engine.
func NewTableService(engine *dining.Engine, logger *slog.Logger) *TableService {
	return &TableService{engine: engine, logger: logger}
}

// CreateGroup creates a group owned by the caller and opens its first round.
func (s *TableService) CreateGroup(ctx context.Context, req *connect.Request[pb.CreateGroupRequest]) (*connect.Response[pb.CreateGroupResponse], error) {
	actor, err := actorOf(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateRequest(check("name", req.Msg.Name, "required,max=100")); err != nil {
		return nil, err
	}
	s.logger.Info("CreateGroup request received", "name", req.Msg.Name, "user_id", actor)

	g, r, err := s.engine.CreateGroup(ctx, actor, req.Msg.Name)
	if err != nil {
		return nil, fail(s.logger, "CreateGroup", err, "user_id", actor)
	}

	s.logger.Info("Group created", "group_id", g.ID, "round_id", r.ID)
	return connect.NewResponse(&pb.CreateGroupResponse{
		Group: toPBGroup(g),
		Round: toPBRound(r),
	}), nil
}

// JoinGroup adds the caller to a group.
func (s *TableService) JoinGroup(ctx context.Context, req *connect.Request[pb.JoinGroupRequest]) (*connect.Response[pb.JoinGroupResponse], error) {
	actor, err := actorOf(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateRequest(required("group_id", req.Msg.GroupId)); err != nil {
		return nil, err
	}
	s.logger.Info("JoinGroup request received", "group_id", req.Msg.GroupId, "user_id", actor)

	g, err := s.engine.JoinGroup(ctx, req.Msg.GroupId, actor)
	if err != nil {
		return nil, fail(s.logger, "JoinGroup", err, "group_id", req.Msg.GroupId)
	}
	return connect.NewResponse(&pb.JoinGroupResponse{Group: toPBGroup(g)}), nil
}

// GetGroup returns a group the caller belongs to.
func (s *TableService) GetGroup(ctx context.Context, req *connect.Request[pb.GetGroupRequest]) (*connect.Response[pb.GetGroupResponse], error) {
	actor, err := actorOf(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateRequest(required("group_id", req.Msg.GroupId)); err != nil {
		return nil, err
	}

	g, err := s.engine.GetGroup(ctx, req.Msg.GroupId, actor)
	if err != nil {
		return nil, fail(s.logger, "GetGroup", err, "group_id", req.Msg.GroupId)
	}
	return connect.NewResponse(&pb.GetGroupResponse{Group: toPBGroup(g)}), nil
}

// ListGroups returns every group the caller belongs to.
func (s *TableService) ListGroups(ctx context.Context, req *connect.Request[pb.ListGroupsRequest]) (*connect.Response[pb.ListGroupsResponse], error) {
	actor, err := actorOf(ctx)
	if err != nil {
		return nil, err
	}

	groups, err := s.engine.ListGroups(ctx, actor)
	if err != nil {
		return nil, fail(s.logger, "ListGroups", err, "user_id", actor)
	}

	s.logger.Info("ListGroups successful", "user_id", actor, "count", len(groups))
	return connect.NewResponse(&pb.ListGroupsResponse{Groups: toPBGroups(groups)}), nil
}

// RemoveMember removes a member from the group. Owner only.
func (s *TableService) RemoveMember(ctx context.Context, req *connect.Request[pb.RemoveMemberRequest]) (*connect.Response[pb.RemoveMemberResponse], error) {
	actor, err := actorOf(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateRequest(required("group_id", req.Msg.GroupId), required("user_id", req.Msg.UserId)); err != nil {
		return nil, err
	}
	s.logger.Info("RemoveMember request received", "group_id", req.Msg.GroupId, "member_id", req.Msg.UserId)

	g, err := s.engine.RemoveMember(ctx, req.Msg.GroupId, actor, req.Msg.UserId)
	if err != nil {
		return nil, fail(s.logger, "RemoveMember", err, "group_id", req.Msg.GroupId)
	}
	return connect.NewResponse(&pb.RemoveMemberResponse{Group: toPBGroup(g)}), nil
}

// OpenRound opens the next ordinary round.
func (s *TableService) OpenRound(ctx context.Context, req *connect.Request[pb.OpenRoundRequest]) (*connect.Response[pb.OpenRoundResponse], error) {
	actor, err := actorOf(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateRequest(required("group_id", req.Msg.GroupId)); err != nil {
		return nil, err
	}

	r, err := s.engine.OpenRound(ctx, req.Msg.GroupId, actor)
	if err != nil {
		return nil, fail(s.logger, "OpenRound", err, "group_id", req.Msg.GroupId)
	}
	s.logger.Info("Round opened", "round_id", r.ID, "user_id", actor)
	return connect.NewResponse(&pb.OpenRoundResponse{Round: toPBRound(r)}), nil
}

// CloseRound closes an ordinary round, locking its shared lines.
func (s *TableService) CloseRound(ctx context.Context, req *connect.Request[pb.CloseRoundRequest]) (*connect.Response[pb.CloseRoundResponse], error) {
	actor, err := actorOf(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateRequest(required("round_id", req.Msg.RoundId)); err != nil {
		return nil, err
	}

	r, err := s.engine.CloseRound(ctx, req.Msg.RoundId, actor)
	if err != nil {
		return nil, fail(s.logger, "CloseRound", err, "round_id", req.Msg.RoundId)
	}
	return connect.NewResponse(&pb.CloseRoundResponse{Round: toPBRound(r)}), nil
}

// GetRound returns a round and its live lines.
func (s *TableService) GetRound(ctx context.Context, req *connect.Request[pb.GetRoundRequest]) (*connect.Response[pb.GetRoundResponse], error) {
	actor, err := actorOf(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateRequest(required("round_id", req.Msg.RoundId)); err != nil {
		return nil, err
	}

	view, err := s.engine.GetRound(ctx, req.Msg.RoundId, actor)
	if err != nil {
		return nil, fail(s.logger, "GetRound", err, "round_id", req.Msg.RoundId)
	}
	items, err := toPBItems(view.Items)
	if err != nil {
		return nil, fail(s.logger, "GetRound", err, "round_id", req.Msg.RoundId)
	}
	return connect.NewResponse(&pb.GetRoundResponse{
		Round: toPBRound(view.Round),
		Items: items,
	}), nil
}

// ListRounds returns every round of a group, the extra round last.
func (s *TableService) ListRounds(ctx context.Context, req *connect.Request[pb.ListRoundsRequest]) (*connect.Response[pb.ListRoundsResponse], error) {
	actor, err := actorOf(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateRequest(required("group_id", req.Msg.GroupId)); err != nil {
		return nil, err
	}

	rounds, err := s.engine.ListRounds(ctx, req.Msg.GroupId, actor)
	if err != nil {
		return nil, fail(s.logger, "ListRounds", err, "group_id", req.Msg.GroupId)
	}
	return connect.NewResponse(&pb.ListRoundsResponse{Rounds: toPBRounds(rounds)}), nil
}

// ConfirmRound records the caller's confirmation. When everyone has
// confirmed the round closes and the next one opens.
func (s *TableService) ConfirmRound(ctx context.Context, req *connect.Request[pb.ConfirmRoundRequest]) (*connect.Response[pb.ConfirmRoundResponse], error) {
	actor, err := actorOf(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateRequest(required("round_id", req.Msg.RoundId)); err != nil {
		return nil, err
	}

	res, err := s.engine.ConfirmRound(ctx, req.Msg.RoundId, actor)
	if err != nil {
		return nil, fail(s.logger, "ConfirmRound", err, "round_id", req.Msg.RoundId)
	}
	return connect.NewResponse(&pb.ConfirmRoundResponse{
		Round:     toPBRound(res.Round),
		Advanced:  res.Advanced,
		NextRound: toPBRound(res.NextRound),
	}), nil
}

// StartCheckout opens the extra round and asks every member to confirm.
func (s *TableService) StartCheckout(ctx context.Context, req *connect.Request[pb.StartCheckoutRequest]) (*connect.Response[pb.StartCheckoutResponse], error) {
	actor, err := actorOf(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateRequest(required("group_id", req.Msg.GroupId)); err != nil {
		return nil, err
	}
	s.logger.Info("StartCheckout request received", "group_id", req.Msg.GroupId, "user_id", actor)

	g, extra, err := s.engine.StartCheckout(ctx, req.Msg.GroupId, actor)
	if err != nil {
		return nil, fail(s.logger, "StartCheckout", err, "group_id", req.Msg.GroupId)
	}
	return connect.NewResponse(&pb.StartCheckoutResponse{
		Group:      toPBGroup(g),
		ExtraRound: toPBRound(extra),
	}), nil
}

// ConfirmMemberOrder records the caller's checkout confirmation.
func (s *TableService) ConfirmMemberOrder(ctx context.Context, req *connect.Request[pb.ConfirmMemberOrderRequest]) (*connect.Response[pb.ConfirmMemberOrderResponse], error) {
	actor, err := actorOf(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateRequest(required("group_id", req.Msg.GroupId)); err != nil {
		return nil, err
	}

	g, err := s.engine.ConfirmMemberOrder(ctx, req.Msg.GroupId, actor)
	if err != nil {
		return nil, fail(s.logger, "ConfirmMemberOrder", err, "group_id", req.Msg.GroupId)
	}
	return connect.NewResponse(&pb.ConfirmMemberOrderResponse{Group: toPBGroup(g)}), nil
}

// FinalizeCheckout settles the group.
func (s *TableService) FinalizeCheckout(ctx context.Context, req *connect.Request[pb.FinalizeCheckoutRequest]) (*connect.Response[pb.FinalizeCheckoutResponse], error) {
	actor, err := actorOf(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateRequest(required("group_id", req.Msg.GroupId)); err != nil {
		return nil, err
	}
	s.logger.Info("FinalizeCheckout request received",
		"group_id", req.Msg.GroupId,
		"user_id", actor,
		"override", req.Msg.Override,
	)

	g, err := s.engine.FinalizeCheckout(ctx, req.Msg.GroupId, actor, req.Msg.Override)
	if err != nil {
		return nil, fail(s.logger, "FinalizeCheckout", err, "group_id", req.Msg.GroupId)
	}
	return connect.NewResponse(&pb.FinalizeCheckoutResponse{Group: toPBGroup(g)}), nil
}

// GetCheckoutSummary returns the merged bill and who has yet to confirm.
func (s *TableService) GetCheckoutSummary(ctx context.Context, req *connect.Request[pb.GetCheckoutSummaryRequest]) (*connect.Response[pb.GetCheckoutSummaryResponse], error) {
	actor, err := actorOf(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateRequest(required("group_id", req.Msg.GroupId)); err != nil {
		return nil, err
	}

	summary, err := s.engine.CheckoutSummary(ctx, req.Msg.GroupId, actor)
	if err != nil {
		return nil, fail(s.logger, "GetCheckoutSummary", err, "group_id", req.Msg.GroupId)
	}
	return connect.NewResponse(&pb.GetCheckoutSummaryResponse{
		Group:   toPBGroup(summary.Group),
		Totals:  toPBTotals(summary.Totals),
		Pending: summary.Pending,
	}), nil
}

// GetRoundTotals returns member liabilities for one round.
func (s *TableService) GetRoundTotals(ctx context.Context, req *connect.Request[pb.GetRoundTotalsRequest]) (*connect.Response[pb.GetRoundTotalsResponse], error) {
	actor, err := actorOf(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateRequest(required("round_id", req.Msg.RoundId)); err != nil {
		return nil, err
	}

	totals, err := s.engine.RoundTotals(ctx, req.Msg.RoundId, actor)
	if err != nil {
		return nil, fail(s.logger, "GetRoundTotals", err, "round_id", req.Msg.RoundId)
	}
	return connect.NewResponse(&pb.GetRoundTotalsResponse{Totals: toPBTotals(totals)}), nil
}

// GetGroupTotals returns member liabilities across every round.
func (s *TableService) GetGroupTotals(ctx context.Context, req *connect.Request[pb.GetGroupTotalsRequest]) (*connect.Response[pb.GetGroupTotalsResponse], error) {
	actor, err := actorOf(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateRequest(required("group_id", req.Msg.GroupId)); err != nil {
		return nil, err
	}

	totals, err := s.engine.GroupTotals(ctx, req.Msg.GroupId, actor)
	if err != nil {
		return nil, fail(s.logger, "GetGroupTotals", err, "group_id", req.Msg.GroupId)
	}
	return connect.NewResponse(&pb.GetGroupTotalsResponse{Totals: toPBTotals(totals)}), nil
}
