package queries

import (
	"context"

	"northwind/internal/core/domain/model/order"
	"northwind/internal/core/ports"
)

// GetOrderDetailedInformationQueryHandler retrieves the flat line-item
// projections for one order. No status gating: this is a pure read.
type GetOrderDetailedInformationQueryHandler struct {
	orders ports.OrderRepository
}

// NewGetOrderDetailedInformationQueryHandler creates a handler for the
// order line-item report.
func NewGetOrderDetailedInformationQueryHandler(
	orders ports.OrderRepository,
) GetOrderDetailedInformationQueryHandler {
	return GetOrderDetailedInformationQueryHandler{orders: orders}
}

// Handle executes the query. Returns one projection per line item, and an
// empty slice when the order has no items or does not exist.
func (h GetOrderDetailedInformationQueryHandler) Handle(
	ctx context.Context, query GetOrderDetailedInformationQuery,
) ([]order.OrderDetailedInfo, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.orders.GetOrderDetailedInformation(ctx, query.OrderID())
}
