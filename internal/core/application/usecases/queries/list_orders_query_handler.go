package queries

import (
	"context"

	"northwind/internal/core/domain/model/order"
	"northwind/internal/core/ports"
)

// ListOrdersQueryHandler retrieves all orders from the store. Each order's
// status is reconstructed from its persisted dates during the load, so a
// malformed historical row fails the read rather than surfacing silently.
type ListOrdersQueryHandler struct {
	orders ports.OrderRepository
}

// NewListOrdersQueryHandler creates a handler for the list-orders query.
func NewListOrdersQueryHandler(orders ports.OrderRepository) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{orders: orders}
}

// Handle executes the query and returns every stored order.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.orders.ListOrders(ctx)
}
