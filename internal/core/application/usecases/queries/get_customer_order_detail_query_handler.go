package queries

import (
	"context"

	"northwind/internal/core/domain/model/order"
	"northwind/internal/core/ports"
)

// GetCustomerOrderDetailQueryHandler runs the stored order detail report and
// returns its flat projections.
type GetCustomerOrderDetailQueryHandler struct {
	orders ports.OrderRepository
}

// NewGetCustomerOrderDetailQueryHandler creates a handler for the order
// detail report.
func NewGetCustomerOrderDetailQueryHandler(orders ports.OrderRepository) GetCustomerOrderDetailQueryHandler {
	return GetCustomerOrderDetailQueryHandler{orders: orders}
}

// Handle executes the report. Returns an empty slice when the order has no
// line items or does not exist.
func (h GetCustomerOrderDetailQueryHandler) Handle(
	ctx context.Context, query GetCustomerOrderDetailQuery,
) ([]order.OrderDetailElement, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.orders.GetCustomerOrderDetail(ctx, query.OrderID())
}
