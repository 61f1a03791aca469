package queries

import (
	"context"

	"northwind/internal/core/domain/model/order"
	"northwind/internal/core/ports"
)

// GetCustomerOrderHistoryQueryHandler runs the stored customer order history
// report and returns its flat projections.
type GetCustomerOrderHistoryQueryHandler struct {
	orders ports.OrderRepository
}

// NewGetCustomerOrderHistoryQueryHandler creates a handler for the customer
// order history report.
func NewGetCustomerOrderHistoryQueryHandler(orders ports.OrderRepository) GetCustomerOrderHistoryQueryHandler {
	return GetCustomerOrderHistoryQueryHandler{orders: orders}
}

// Handle executes the report. Returns an empty slice for customers without
// any orders.
func (h GetCustomerOrderHistoryQueryHandler) Handle(
	ctx context.Context, query GetCustomerOrderHistoryQuery,
) ([]order.OrderHistoryElement, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.orders.GetCustomerOrderHistory(ctx, query.CustomerID())
}
