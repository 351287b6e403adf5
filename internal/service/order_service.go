package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/tableround/internal/dining"
	"github.com/mmynk/tableround/internal/models"
	pb "github.com/mmynk/tableround/pkg/proto"
	"github.com/mmynk/tableround/pkg/proto/protoconnect"
)

// OrderService implements the Connect OrderService: private, extra and
// shared order lines.
type OrderService struct {
	engine *dining.Engine
	logger *slog.Logger
}

var _ protoconnect.OrderServiceHandler = (*OrderService)(nil)

// NewOrderService creates a new OrderService backed by the engine.
func NewOrderService(engine *dining.Engine, logger *slog.Logger) *OrderService {
	return &OrderService{engine: engine, logger: logger}
}

// item converts a line for the response, logging a failure against op.
func (s *OrderService) item(op string, item *models.RoundItem) (*pb.Item, error) {
	out, err := toPBItem(item)
	if err != nil {
		return nil, fail(s.logger, op, err, "item_id", item.ID)
	}
	return out, nil
}

// AddOrderItem adds a private line to the current round.
func (s *OrderService) AddOrderItem(ctx context.Context, req *connect.Request[pb.AddOrderItemRequest]) (*connect.Response[pb.AddOrderItemResponse], error) {
	actor, err := actorOf(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateRequest(
		required("group_id", req.Msg.GroupId),
		lineName(req.Msg.Name, req.Msg.MenuItemId),
		check("price", req.Msg.Price, priceTag),
		check("quantity", req.Msg.Quantity, quantityTag),
		check("note", req.Msg.Note, noteTag),
	); err != nil {
		return nil, err
	}
	s.logger.Info("AddOrderItem request received",
		"group_id", req.Msg.GroupId,
		"name", req.Msg.Name,
		"quantity", req.Msg.Quantity,
	)

	line, err := s.engine.AddOrderItem(ctx, req.Msg.GroupId, actor, dining.OrderInput{
		Name:       req.Msg.Name,
		Price:      req.Msg.Price,
		Quantity:   req.Msg.Quantity,
		Note:       req.Msg.Note,
		MenuItemID: req.Msg.MenuItemId,
	})
	if err != nil {
		return nil, fail(s.logger, "AddOrderItem", err, "group_id", req.Msg.GroupId)
	}
	out, err := s.item("AddOrderItem", line)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&pb.AddOrderItemResponse{Item: out}), nil
}

// AddExtraItem adds a signed correction line to the extra round.
func (s *OrderService) AddExtraItem(ctx context.Context, req *connect.Request[pb.AddExtraItemRequest]) (*connect.Response[pb.AddExtraItemResponse], error) {
	actor, err := actorOf(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateRequest(
		required("group_id", req.Msg.GroupId),
		lineName(req.Msg.Name, req.Msg.MenuItemId),
		check("price", req.Msg.Price, priceTag),
		check("quantity", req.Msg.Quantity, adjustQtyTag),
		check("note", req.Msg.Note, noteTag),
	); err != nil {
		return nil, err
	}
	s.logger.Info("AddExtraItem request received",
		"group_id", req.Msg.GroupId,
		"name", req.Msg.Name,
		"quantity", req.Msg.Quantity,
	)

	line, err := s.engine.AddExtraItem(ctx, req.Msg.GroupId, actor, dining.OrderInput{
		Name:       req.Msg.Name,
		Price:      req.Msg.Price,
		Quantity:   req.Msg.Quantity,
		Note:       req.Msg.Note,
		MenuItemID: req.Msg.MenuItemId,
	})
	if err != nil {
		return nil, fail(s.logger, "AddExtraItem", err, "group_id", req.Msg.GroupId)
	}
	out, err := s.item("AddExtraItem", line)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&pb.AddExtraItemResponse{Item: out}), nil
}

// UpdateOrderItem changes the fields set in the request. The quantity bound
// depends on the round, so the engine checks its sign.
func (s *OrderService) UpdateOrderItem(ctx context.Context, req *connect.Request[pb.UpdateOrderItemRequest]) (*connect.Response[pb.UpdateOrderItemResponse], error) {
	actor, err := actorOf(ctx)
	if err != nil {
		return nil, err
	}
	rules := []rule{required("item_id", req.Msg.ItemId)}
	if req.Msg.Name != nil {
		rules = append(rules, check("name", req.Msg.GetName(), "required,"+nameTag))
	}
	if req.Msg.Price != nil {
		rules = append(rules, check("price", req.Msg.GetPrice(), priceTag))
	}
	if req.Msg.Quantity != nil {
		rules = append(rules, check("quantity", req.Msg.GetQuantity(), "gte=-10000,lte=10000"))
	}
	if req.Msg.Note != nil {
		rules = append(rules, check("note", req.Msg.GetNote(), noteTag))
	}
	if err := validateRequest(rules...); err != nil {
		return nil, err
	}

	line, err := s.engine.UpdateOrderItem(ctx, req.Msg.ItemId, actor, dining.OrderPatch{
		Name:     req.Msg.Name,
		Price:    req.Msg.Price,
		Quantity: req.Msg.Quantity,
		Note:     req.Msg.Note,
	})
	if err != nil {
		return nil, fail(s.logger, "UpdateOrderItem", err, "item_id", req.Msg.ItemId)
	}
	out, err := s.item("UpdateOrderItem", line)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&pb.UpdateOrderItemResponse{Item: out}), nil
}

// DeleteOrderItem soft-deletes a line.
func (s *OrderService) DeleteOrderItem(ctx context.Context, req *connect.Request[pb.DeleteOrderItemRequest]) (*connect.Response[pb.DeleteOrderItemResponse], error) {
	actor, err := actorOf(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateRequest(required("item_id", req.Msg.ItemId)); err != nil {
		return nil, err
	}

	if err := s.engine.DeleteOrderItem(ctx, req.Msg.ItemId, actor); err != nil {
		return nil, fail(s.logger, "DeleteOrderItem", err, "item_id", req.Msg.ItemId)
	}
	s.logger.Info("Order item deleted", "item_id", req.Msg.ItemId, "user_id", actor)
	return connect.NewResponse(&pb.DeleteOrderItemResponse{}), nil
}

// CreateSharedItem adds a shared line to the current round.
func (s *OrderService) CreateSharedItem(ctx context.Context, req *connect.Request[pb.CreateSharedItemRequest]) (*connect.Response[pb.CreateSharedItemResponse], error) {
	actor, err := actorOf(ctx)
	if err != nil {
		return nil, err
	}
	rules := []rule{
		required("group_id", req.Msg.GroupId),
		lineName(req.Msg.Name, req.Msg.MenuItemId),
		check("price", req.Msg.Price, priceTag),
		check("quantity", req.Msg.Quantity, quantityTag),
		check("note", req.Msg.Note, noteTag),
		check("mode", req.Msg.Mode, "required,oneof=equal ratio units"),
	}
	if err := validateRequest(append(rules, shareRules(req.Msg.Participants)...)...); err != nil {
		return nil, err
	}
	s.logger.Info("CreateSharedItem request received",
		"group_id", req.Msg.GroupId,
		"name", req.Msg.Name,
		"mode", req.Msg.Mode,
		"participants", len(req.Msg.Participants),
	)

	line, err := s.engine.CreateSharedItem(ctx, req.Msg.GroupId, actor, dining.SharedInput{
		OrderInput: dining.OrderInput{
			Name:       req.Msg.Name,
			Price:      req.Msg.Price,
			Quantity:   req.Msg.Quantity,
			Note:       req.Msg.Note,
			MenuItemID: req.Msg.MenuItemId,
		},
		Mode:            models.ShareMode(req.Msg.Mode),
		Participants:    toShareInputs(req.Msg.Participants),
		AllowSelfJoin:   req.Msg.AllowSelfJoin,
		AllowClaimUnits: req.Msg.AllowClaimUnits,
	})
	if err != nil {
		return nil, fail(s.logger, "CreateSharedItem", err, "group_id", req.Msg.GroupId)
	}
	out, err := s.item("CreateSharedItem", line)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&pb.CreateSharedItemResponse{Item: out}), nil
}

// JoinSharedItem adds the caller to a shared line or updates their stake.
func (s *OrderService) JoinSharedItem(ctx context.Context, req *connect.Request[pb.JoinSharedItemRequest]) (*connect.Response[pb.JoinSharedItemResponse], error) {
	actor, err := actorOf(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateRequest(
		required("item_id", req.Msg.ItemId),
		check("weight", req.Msg.Weight, weightTag),
		check("units", req.Msg.Units, unitsTag),
	); err != nil {
		return nil, err
	}

	line, err := s.engine.JoinSharedItem(ctx, req.Msg.ItemId, actor, req.Msg.Weight, req.Msg.Units)
	if err != nil {
		return nil, fail(s.logger, "JoinSharedItem", err, "item_id", req.Msg.ItemId)
	}
	out, err := s.item("JoinSharedItem", line)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&pb.JoinSharedItemResponse{Item: out}), nil
}

// AddParticipants adds members to a shared line.
func (s *OrderService) AddParticipants(ctx context.Context, req *connect.Request[pb.AddParticipantsRequest]) (*connect.Response[pb.AddParticipantsResponse], error) {
	actor, err := actorOf(ctx)
	if err != nil {
		return nil, err
	}
	rules := []rule{
		required("item_id", req.Msg.ItemId),
		check("participants", req.Msg.Participants, "min=1"),
	}
	if err := validateRequest(append(rules, shareRules(req.Msg.Participants)...)...); err != nil {
		return nil, err
	}

	line, err := s.engine.AddParticipants(ctx, req.Msg.ItemId, actor, toShareInputs(req.Msg.Participants))
	if err != nil {
		return nil, fail(s.logger, "AddParticipants", err, "item_id", req.Msg.ItemId)
	}
	out, err := s.item("AddParticipants", line)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&pb.AddParticipantsResponse{Item: out}), nil
}

// RemoveParticipant drops a participant from a shared line.
func (s *OrderService) RemoveParticipant(ctx context.Context, req *connect.Request[pb.RemoveParticipantRequest]) (*connect.Response[pb.RemoveParticipantResponse], error) {
	actor, err := actorOf(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateRequest(
		required("item_id", req.Msg.ItemId),
		required("participant_id", req.Msg.ParticipantId),
	); err != nil {
		return nil, err
	}

	line, err := s.engine.RemoveParticipant(ctx, req.Msg.ItemId, actor, req.Msg.ParticipantId)
	if err != nil {
		return nil, fail(s.logger, "RemoveParticipant", err, "item_id", req.Msg.ItemId)
	}
	out, err := s.item("RemoveParticipant", line)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&pb.RemoveParticipantResponse{Item: out}), nil
}

// LockSharedItem freezes the amounts of a shared line.
func (s *OrderService) LockSharedItem(ctx context.Context, req *connect.Request[pb.LockSharedItemRequest]) (*connect.Response[pb.LockSharedItemResponse], error) {
	actor, err := actorOf(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateRequest(required("item_id", req.Msg.ItemId)); err != nil {
		return nil, err
	}
	s.logger.Info("LockSharedItem request received", "item_id", req.Msg.ItemId, "force", req.Msg.Force)

	line, err := s.engine.LockSharedItem(ctx, req.Msg.ItemId, actor, req.Msg.Force)
	if err != nil {
		return nil, fail(s.logger, "LockSharedItem", err, "item_id", req.Msg.ItemId)
	}
	out, err := s.item("LockSharedItem", line)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&pb.LockSharedItemResponse{Item: out}), nil
}
