package queries

import (
	"context"

	"northwind/internal/core/domain/model/order"
	"northwind/internal/core/ports"
)

// GetOrderQueryHandler retrieves one order by identifier.
//
// A missing order is an absent value, not an error: Handle returns
// (nil, nil) so callers can distinguish "no such order" from a failing read.
type GetOrderQueryHandler struct {
	orders ports.OrderRepository
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
func NewGetOrderQueryHandler(orders ports.OrderRepository) GetOrderQueryHandler {
	return GetOrderQueryHandler{orders: orders}
}

// Handle executes the query. Returns nil without an error when no order has
// the requested identifier.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.orders.GetOrder(ctx, query.OrderID())
}
