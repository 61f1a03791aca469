// Package http exposes the order use cases over an echo HTTP server.
package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"northwind/internal/core/application/usecases/commands"
	"northwind/internal/core/application/usecases/queries"
	"northwind/internal/core/domain/model/order"
	"northwind/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler commands.CreateOrderCommandHandler
	editOrderHandler   commands.EditOrderCommandHandler
	deleteOrderHandler commands.DeleteOrderCommandHandler

	// Query handlers
	listOrdersHandler              queries.ListOrdersQueryHandler
	getOrderHandler                queries.GetOrderQueryHandler
	getOrderDetailedInfoHandler    queries.GetOrderDetailedInformationQueryHandler
	getNextOrderIDHandler          queries.GetNextOrderIDQueryHandler
	getCustomerOrderHistoryHandler queries.GetCustomerOrderHistoryQueryHandler
	getCustomerOrderDetailHandler  queries.GetCustomerOrderDetailQueryHandler

	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	logger *slog.Logger,
	createOrderHandler commands.CreateOrderCommandHandler,
	editOrderHandler commands.EditOrderCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getOrderDetailedInfoHandler queries.GetOrderDetailedInformationQueryHandler,
	getNextOrderIDHandler queries.GetNextOrderIDQueryHandler,
	getCustomerOrderHistoryHandler queries.GetCustomerOrderHistoryQueryHandler,
	getCustomerOrderDetailHandler queries.GetCustomerOrderDetailQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:             createOrderHandler,
		editOrderHandler:               editOrderHandler,
		deleteOrderHandler:             deleteOrderHandler,
		listOrdersHandler:              listOrdersHandler,
		getOrderHandler:                getOrderHandler,
		getOrderDetailedInfoHandler:    getOrderDetailedInfoHandler,
		getNextOrderIDHandler:          getNextOrderIDHandler,
		getCustomerOrderHistoryHandler: getCustomerOrderHistoryHandler,
		getCustomerOrderDetailHandler:  getCustomerOrderDetailHandler,
		logger:                         logger.With("component", "http_server"),
	}
}

// RegisterRoutes mounts all handlers under /api/v1 plus the health probe.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.GET("/orders", s.ListOrders)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/next-id", s.GetNextOrderID)
	api.GET("/orders/:orderId", s.GetOrder)
	api.PUT("/orders/:orderId", s.EditOrder)
	api.DELETE("/orders/:orderId", s.DeleteOrder)
	api.GET("/orders/:orderId/details", s.GetOrderDetailedInformation)
	api.GET("/orders/:orderId/detail-report", s.GetCustomerOrderDetail)
	api.GET("/customers/:customerId/history", s.GetCustomerOrderHistory)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// ListOrders handles GET /api/v1/orders - retrieves all orders.
func (s *Server) ListOrders(ctx echo.Context) error {
	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), queries.NewListOrdersQuery())
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = fromDomainOrder(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:orderId - retrieves one order.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := s.orderIDParam(ctx)
	if err != nil {
		return s.badRequest(ctx, "Invalid order identifier")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	retrieved, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}
	if retrieved == nil {
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: "Order not found",
		})
	}

	return ctx.JSON(http.StatusOK, fromDomainOrder(retrieved))
}

// CreateOrder handles POST /api/v1/orders - creates a new order.
//
// The returned identifier is the repository's sequence prediction; under
// concurrent creation it can belong to a neighbouring insert.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateOrderCommand(body.CustomerID, order.NewShipmentInfo(
		body.ShipName, body.ShipAddress, body.ShipCity,
		body.ShipRegion, body.ShipPostalCode, body.ShipCountry,
	))
	if err != nil {
		return s.badRequest(ctx, "Invalid order data: "+err.Error())
	}
	if body.EmployeeID != nil {
		cmd.SetEmployeeID(*body.EmployeeID)
	}
	if body.RequiredDate != nil {
		cmd.SetRequiredDate(*body.RequiredDate)
	}
	if body.ShipVia != nil {
		cmd.SetShipVia(*body.ShipVia)
	}
	if body.Freight != nil {
		cmd.SetFreight(*body.Freight)
	}

	orderID, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, OrderCreated{OrderID: orderID})
}

// EditOrder handles PUT /api/v1/orders/:orderId - replaces all order fields.
func (s *Server) EditOrder(ctx echo.Context) error {
	orderID, err := s.orderIDParam(ctx)
	if err != nil {
		return s.badRequest(ctx, "Invalid order identifier")
	}

	var body EditOrder
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewEditOrderCommand(orderID, body.CustomerID, order.NewShipmentInfo(
		body.ShipName, body.ShipAddress, body.ShipCity,
		body.ShipRegion, body.ShipPostalCode, body.ShipCountry,
	))
	if err != nil {
		return s.badRequest(ctx, "Invalid order data: "+err.Error())
	}
	if body.EmployeeID != nil {
		cmd.SetEmployeeID(*body.EmployeeID)
	}
	if body.OrderDate != nil {
		cmd.SetOrderDate(*body.OrderDate)
	}
	if body.RequiredDate != nil {
		cmd.SetRequiredDate(*body.RequiredDate)
	}
	if body.ShippedDate != nil {
		cmd.SetShippedDate(*body.ShippedDate)
	}
	if body.ShipVia != nil {
		cmd.SetShipVia(*body.ShipVia)
	}
	if body.Freight != nil {
		cmd.SetFreight(*body.Freight)
	}

	if err := s.editOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteOrder handles DELETE /api/v1/orders/:orderId - removes an order.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := s.orderIDParam(ctx)
	if err != nil {
		return s.badRequest(ctx, "Invalid order identifier")
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	if err := s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrderDetailedInformation handles GET /api/v1/orders/:orderId/details -
// retrieves the order's line items joined with product names.
func (s *Server) GetOrderDetailedInformation(ctx echo.Context) error {
	orderID, err := s.orderIDParam(ctx)
	if err != nil {
		return s.badRequest(ctx, "Invalid order identifier")
	}

	query, err := queries.NewGetOrderDetailedInformationQuery(orderID)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	infos, err := s.getOrderDetailedInfoHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	response := make([]OrderDetailedInfo, len(infos))
	for i, info := range infos {
		response[i] = OrderDetailedInfo(info)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetNextOrderID handles GET /api/v1/orders/next-id - previews the next
// order identifier. The value is a prediction, not a reservation.
func (s *Server) GetNextOrderID(ctx echo.Context) error {
	nextID, err := s.getNextOrderIDHandler.Handle(ctx.Request().Context(), queries.NewGetNextOrderIDQuery())
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, NextOrderID{NextOrderID: nextID})
}

// GetCustomerOrderHistory handles GET /api/v1/customers/:customerId/history -
// retrieves the customer's per-product order totals.
func (s *Server) GetCustomerOrderHistory(ctx echo.Context) error {
	query, err := queries.NewGetCustomerOrderHistoryQuery(ctx.Param("customerId"))
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	history, err := s.getCustomerOrderHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	response := make([]OrderHistoryElement, len(history))
	for i, element := range history {
		response[i] = OrderHistoryElement(element)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetCustomerOrderDetail handles GET /api/v1/orders/:orderId/detail-report -
// retrieves the priced line items of an order.
func (s *Server) GetCustomerOrderDetail(ctx echo.Context) error {
	orderID, err := s.orderIDParam(ctx)
	if err != nil {
		return s.badRequest(ctx, "Invalid order identifier")
	}

	query, err := queries.NewGetCustomerOrderDetailQuery(orderID)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	details, err := s.getCustomerOrderDetailHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	response := make([]OrderDetailElement, len(details))
	for i, element := range details {
		response[i] = OrderDetailElement(element)
	}

	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) orderIDParam(ctx echo.Context) (int, error) {
	return strconv.Atoi(ctx.Param("orderId"))
}

func (s *Server) badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// errorResponse maps domain errors to HTTP statuses: status gates to 409,
// lifecycle and date-ordering violations to 422, missing objects to 404,
// invalid input to 400, everything else to 500.
func (s *Server) errorResponse(ctx echo.Context, err error) error {
	var notFoundErr *errs.ObjectNotFoundError

	switch {
	case errors.As(err, &notFoundErr):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, order.ErrWrongOrderStatus):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, order.ErrInvalidLifecycleTransition),
		errors.Is(err, order.ErrInvalidDateOrdering):
		return ctx.JSON(http.StatusUnprocessableEntity, Error{
			Code:    http.StatusUnprocessableEntity,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid):
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		s.logger.ErrorContext(ctx.Request().Context(), "Request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}
