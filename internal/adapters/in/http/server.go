package http

import (
	"context"
	"net/http"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/customer"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/generated/servers"
	"foodorder/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type (
	PlaceOrderHandler interface {
		Handle(ctx context.Context, cmd commands.PlaceOrderCommand) (commands.PlaceOrderResult, error)
	}
	UpdateOrderStatusHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateOrderStatusCommand) error
	}
	AddMenuItemHandler interface {
		Handle(ctx context.Context, cmd commands.AddMenuItemCommand) (kernel.ID, error)
	}
	UpdateMenuItemHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateMenuItemCommand) error
	}
	CreatePartnerHandler interface {
		Handle(ctx context.Context, cmd commands.CreatePartnerCommand) (kernel.ID, error)
	}
	ListOrdersHandler interface {
		Handle(ctx context.Context, query queries.ListOrdersQuery) ([]queries.ListOrdersQueryResponse, error)
	}
	GetMenuHandler interface {
		Handle(ctx context.Context, query queries.GetMenuQuery) ([]queries.GetMenuQueryResponse, error)
	}
)

var _ servers.ServerInterface = (*Server)(nil)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler        PlaceOrderHandler
	updateOrderStatusHandler UpdateOrderStatusHandler
	addMenuItemHandler       AddMenuItemHandler
	updateMenuItemHandler    UpdateMenuItemHandler
	createPartnerHandler     CreatePartnerHandler

	// Query handlers
	listOrdersHandler ListOrdersHandler
	getMenuHandler    GetMenuHandler

	metrics *Metrics
}

// NewServer creates a new HTTP server with the required command and query handlers.
// metrics may be nil.
func NewServer(
	placeOrderHandler PlaceOrderHandler,
	updateOrderStatusHandler UpdateOrderStatusHandler,
	addMenuItemHandler AddMenuItemHandler,
	updateMenuItemHandler UpdateMenuItemHandler,
	createPartnerHandler CreatePartnerHandler,
	listOrdersHandler ListOrdersHandler,
	getMenuHandler GetMenuHandler,
	metrics *Metrics,
) *Server {
	return &Server{
		placeOrderHandler:        placeOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		addMenuItemHandler:       addMenuItemHandler,
		updateMenuItemHandler:    updateMenuItemHandler,
		createPartnerHandler:     createPartnerHandler,
		listOrdersHandler:        listOrdersHandler,
		getMenuHandler:           getMenuHandler,
		metrics:                  metrics,
	}
}

// PlaceOrder handles POST /place-order - places an order for the calling customer.
func (s *Server) PlaceOrder(ctx echo.Context, params servers.PlaceOrderParams) error {
	principal, err := requireRole(ctx, RoleCustomer)
	if err != nil {
		return err
	}

	var body servers.PlaceOrderJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("body", err)
	}

	restaurantID, err := toID("restaurant_id", body.RestaurantId)
	if err != nil {
		return err
	}
	itemID, err := toID("item_id", body.ItemId)
	if err != nil {
		return err
	}

	cmd, err := commands.NewPlaceOrderCommand(
		principal.ID,
		restaurantID,
		itemID,
		body.Quantity,
		profileCorrection(body.User),
		deref(params.IdempotencyKey),
	)
	if err != nil {
		return err
	}

	result, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	s.metrics.ObservePlacement(err)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, servers.PlaceOrderResponse{
		Success:    true,
		OrderId:    result.OrderID.Int64(),
		PartnerId:  result.PartnerID.Int64(),
		TotalPrice: result.TotalPrice.String(),
	})
}

// UpdateOrderStatus handles PUT /orders/{order_id}/status.
// Partners and restaurants may only move their own orders; admins may move any.
func (s *Server) UpdateOrderStatus(ctx echo.Context, orderId servers.OrderId) error {
	principal, err := requireRole(ctx, RoleAdmin, RolePartner, RoleRestaurant)
	if err != nil {
		return err
	}

	var body servers.UpdateOrderStatusJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("body", err)
	}

	id, err := toID("order_id", orderId)
	if err != nil {
		return err
	}
	status, err := order.ParseStatus(string(body.Status))
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(id, status)
	if err != nil {
		return err
	}
	switch principal.Role {
	case RolePartner:
		cmd = cmd.ForPartner(principal.ID)
	case RoleRestaurant:
		cmd = cmd.ForRestaurant(principal.ID)
	}

	if err = s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, servers.Success{Success: true})
}

// ListAllOrders handles GET /orders - every order, for admins.
func (s *Server) ListAllOrders(ctx echo.Context) error {
	if _, err := requireRole(ctx, RoleAdmin); err != nil {
		return err
	}
	return s.listOrders(ctx, queries.ScopeAll, kernel.ID{})
}

// ListMyOrders handles GET /my-orders.
func (s *Server) ListMyOrders(ctx echo.Context) error {
	principal, err := requireRole(ctx, RoleCustomer)
	if err != nil {
		return err
	}
	return s.listOrders(ctx, queries.ScopeCustomer, principal.ID)
}

// ListPartnerOrders handles GET /partner/me/orders.
func (s *Server) ListPartnerOrders(ctx echo.Context) error {
	principal, err := requireRole(ctx, RolePartner)
	if err != nil {
		return err
	}
	return s.listOrders(ctx, queries.ScopePartner, principal.ID)
}

// ListRestaurantOrders handles GET /restaurant/me/orders.
func (s *Server) ListRestaurantOrders(ctx echo.Context) error {
	principal, err := requireRole(ctx, RoleRestaurant)
	if err != nil {
		return err
	}
	return s.listOrders(ctx, queries.ScopeRestaurant, principal.ID)
}

func (s *Server) listOrders(ctx echo.Context, scope queries.OrderScope, ownerID kernel.ID) error {
	query, err := queries.NewListOrdersQuery(scope, ownerID)
	if err != nil {
		return err
	}

	rows, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]servers.Order, len(rows))
	for i, row := range rows {
		response[i] = servers.Order{
			OrderId:        row.ID,
			CustomerId:     row.CustomerID,
			CustomerName:   optional(row.CustomerName),
			RestaurantId:   row.RestaurantID,
			RestaurantName: optional(row.RestaurantName),
			ItemId:         row.ItemID,
			ItemName:       optional(row.ItemName),
			PartnerId:      row.PartnerID,
			PartnerName:    optional(row.PartnerName),
			Quantity:       row.Quantity,
			TotalPrice:     row.TotalPrice.StringFixed(2),
			Status:         servers.OrderStatus(row.Status),
			CreatedAt:      row.CreatedAt.UTC(),
		}
	}

	return ctx.JSON(http.StatusOK, servers.OrdersResponse{Success: true, Orders: response})
}

// GetMenu handles GET /menu/{restaurant_id} - the items a restaurant has in stock.
func (s *Server) GetMenu(ctx echo.Context, restaurantId servers.RestaurantId) error {
	id, err := toID("restaurant_id", restaurantId)
	if err != nil {
		return err
	}

	query, err := queries.NewGetMenuQuery(id)
	if err != nil {
		return err
	}

	items, err := s.getMenuHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]servers.MenuItem, len(items))
	for i, item := range items {
		response[i] = servers.MenuItem{
			ItemId:   item.ID,
			Name:     item.Name,
			Price:    item.Price.StringFixed(2),
			Quantity: item.Quantity,
		}
	}

	return ctx.JSON(http.StatusOK, servers.MenuResponse{Success: true, Items: response})
}

// AddMenuItem handles POST /restaurant/me/menu.
func (s *Server) AddMenuItem(ctx echo.Context) error {
	principal, err := requireRole(ctx, RoleRestaurant)
	if err != nil {
		return err
	}

	var body servers.AddMenuItemJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("body", err)
	}

	price, err := kernel.NewMoney(decimal.NewFromFloat(body.Price))
	if err != nil {
		return err
	}

	cmd, err := commands.NewAddMenuItemCommand(principal.ID, body.Name, price, body.Quantity)
	if err != nil {
		return err
	}

	id, err := s.addMenuItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, servers.CreateMenuItemResponse{Success: true, ItemId: id.Int64()})
}

// UpdateMenuItem handles PUT /restaurant/me/menu/{item_id}.
func (s *Server) UpdateMenuItem(ctx echo.Context, itemId servers.ItemId) error {
	principal, err := requireRole(ctx, RoleRestaurant)
	if err != nil {
		return err
	}

	var body servers.UpdateMenuItemJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("body", err)
	}

	id, err := toID("item_id", itemId)
	if err != nil {
		return err
	}
	price, err := kernel.NewMoney(decimal.NewFromFloat(body.Price))
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateMenuItemCommand(principal.ID, id, body.Name, price, body.Quantity)
	if err != nil {
		return err
	}

	if err = s.updateMenuItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, servers.Success{Success: true})
}

// CreatePartner handles POST /partners - registers a delivery partner.
func (s *Server) CreatePartner(ctx echo.Context) error {
	if _, err := requireRole(ctx, RoleAdmin); err != nil {
		return err
	}

	var body servers.CreatePartnerJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("body", err)
	}

	cmd, err := commands.NewCreatePartnerCommand(body.Name, deref(body.Phone))
	if err != nil {
		return err
	}

	id, err := s.createPartnerHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, servers.CreatePartnerResponse{Success: true, PartnerId: id.Int64()})
}

func toID(name string, value int64) (kernel.ID, error) {
	id, err := kernel.NewID(value)
	if err != nil {
		return kernel.ID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}

func profileCorrection(profile *servers.CustomerProfile) customer.ProfileCorrection {
	if profile == nil {
		return customer.ProfileCorrection{}
	}
	return customer.ProfileCorrection{
		Name:    deref(profile.Name),
		Phone:   deref(profile.Phone),
		Address: deref(profile.Address),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
