package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/tableround/internal/dining"
	pb "github.com/mmynk/tableround/pkg/proto"
	"github.com/mmynk/tableround/pkg/proto/protoconnect"
)

// MenuService implements the Connect MenuService: the group dish catalog
// and saved restaurant menus.
type MenuService struct {
	engine *dining.Engine
	logger *slog.Logger
}

var _ protoconnect.MenuServiceHandler = (*MenuService)(nil)

// NewMenuService creates a new MenuService backed by the engine.
func NewMenuService(engine *dining.Engine, logger *slog.Logger) *MenuService {
	return &MenuService{engine: engine, logger: logger}
}

// AddDish adds a dish to the group catalog.
func (s *MenuService) AddDish(ctx context.Context, req *connect.Request[pb.AddDishRequest]) (*connect.Response[pb.AddDishResponse], error) {
	actor, err := actorOf(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateRequest(
		required("group_id", req.Msg.GroupId),
		check("name", req.Msg.Name, "required,"+nameTag),
		check("price", req.Msg.Price, priceTag),
		check("resolution", req.Msg.Resolution, "omitempty,oneof=keep overwrite"),
	); err != nil {
		return nil, err
	}
	s.logger.Info("AddDish request received",
		"group_id", req.Msg.GroupId,
		"name", req.Msg.Name,
		"price", req.Msg.Price,
		"resolution", req.Msg.Resolution,
	)

	res, err := s.engine.AddDish(ctx, req.Msg.GroupId, actor, req.Msg.Name, req.Msg.Price, dining.Resolution(req.Msg.Resolution))
	if err != nil {
		return nil, fail(s.logger, "AddDish", err, "group_id", req.Msg.GroupId)
	}
	return connect.NewResponse(&pb.AddDishResponse{
		Dish:         toPBDish(res.Dish),
		Created:      res.Created,
		UpdatedLines: int32(res.UpdatedLines),
	}), nil
}

// RenameDish renames a dish and the lines that refer to it.
func (s *MenuService) RenameDish(ctx context.Context, req *connect.Request[pb.RenameDishRequest]) (*connect.Response[pb.RenameDishResponse], error) {
	actor, err := actorOf(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateRequest(required("dish_id", req.Msg.DishId), check("name", req.Msg.Name, "required,"+nameTag)); err != nil {
		return nil, err
	}

	res, err := s.engine.RenameDish(ctx, req.Msg.DishId, actor, req.Msg.Name)
	if err != nil {
		return nil, fail(s.logger, "RenameDish", err, "dish_id", req.Msg.DishId)
	}
	s.logger.Info("Dish renamed", "dish_id", res.Dish.ID, "name", res.Dish.Name, "lines", res.UpdatedLines)
	return connect.NewResponse(&pb.RenameDishResponse{
		Dish:         toPBDish(res.Dish),
		UpdatedLines: int32(res.UpdatedLines),
	}), nil
}

// DisableDish hides a dish from the catalog.
func (s *MenuService) DisableDish(ctx context.Context, req *connect.Request[pb.DisableDishRequest]) (*connect.Response[pb.DisableDishResponse], error) {
	actor, err := actorOf(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateRequest(required("dish_id", req.Msg.DishId)); err != nil {
		return nil, err
	}

	dish, err := s.engine.DisableDish(ctx, req.Msg.DishId, actor)
	if err != nil {
		return nil, fail(s.logger, "DisableDish", err, "dish_id", req.Msg.DishId)
	}
	return connect.NewResponse(&pb.DisableDishResponse{Dish: toPBDish(dish)}), nil
}

// ListDishes returns the group catalog.
func (s *MenuService) ListDishes(ctx context.Context, req *connect.Request[pb.ListDishesRequest]) (*connect.Response[pb.ListDishesResponse], error) {
	actor, err := actorOf(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateRequest(required("group_id", req.Msg.GroupId)); err != nil {
		return nil, err
	}

	dishes, err := s.engine.ListDishes(ctx, req.Msg.GroupId, actor, req.Msg.IncludeDisabled)
	if err != nil {
		return nil, fail(s.logger, "ListDishes", err, "group_id", req.Msg.GroupId)
	}
	return connect.NewResponse(&pb.ListDishesResponse{Dishes: toPBDishes(dishes)}), nil
}

// SaveAsTemplate saves the dishes of a settled group as a restaurant menu.
func (s *MenuService) SaveAsTemplate(ctx context.Context, req *connect.Request[pb.SaveAsTemplateRequest]) (*connect.Response[pb.SaveAsTemplateResponse], error) {
	actor, err := actorOf(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateRequest(required("group_id", req.Msg.GroupId), check("label", req.Msg.Label, "max=100")); err != nil {
		return nil, err
	}
	s.logger.Info("SaveAsTemplate request received", "group_id", req.Msg.GroupId, "user_id", actor)

	tpl, err := s.engine.SaveAsTemplate(ctx, req.Msg.GroupId, actor, req.Msg.Label)
	if err != nil {
		return nil, fail(s.logger, "SaveAsTemplate", err, "group_id", req.Msg.GroupId)
	}
	return connect.NewResponse(&pb.SaveAsTemplateResponse{Template: toPBTemplate(tpl)}), nil
}

// ListTemplates returns the caller's saved menus, most recently used first.
func (s *MenuService) ListTemplates(ctx context.Context, req *connect.Request[pb.ListTemplatesRequest]) (*connect.Response[pb.ListTemplatesResponse], error) {
	actor, err := actorOf(ctx)
	if err != nil {
		return nil, err
	}

	templates, err := s.engine.ListTemplates(ctx, actor)
	if err != nil {
		return nil, fail(s.logger, "ListTemplates", err, "user_id", actor)
	}
	out := make([]*pb.Template, len(templates))
	for i, tpl := range templates {
		out[i] = toPBTemplate(tpl)
	}
	return connect.NewResponse(&pb.ListTemplatesResponse{Templates: out}), nil
}

// ImportTemplate copies a saved menu into a group catalog.
func (s *MenuService) ImportTemplate(ctx context.Context, req *connect.Request[pb.ImportTemplateRequest]) (*connect.Response[pb.ImportTemplateResponse], error) {
	actor, err := actorOf(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateRequest(required("group_id", req.Msg.GroupId), required("menu_id", req.Msg.MenuId)); err != nil {
		return nil, err
	}

	res, err := s.engine.ImportTemplate(ctx, req.Msg.GroupId, actor, req.Msg.MenuId)
	if err != nil {
		return nil, fail(s.logger, "ImportTemplate", err, "group_id", req.Msg.GroupId, "menu_id", req.Msg.MenuId)
	}
	s.logger.Info("Template imported",
		"group_id", req.Msg.GroupId,
		"menu_id", req.Msg.MenuId,
		"added", len(res.Added),
		"skipped", len(res.Skipped),
	)
	return connect.NewResponse(&pb.ImportTemplateResponse{
		Added:   toPBDishes(res.Added),
		Skipped: res.Skipped,
	}), nil
}
