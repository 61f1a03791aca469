package commands

import (
	"context"

	"northwind/internal/core/domain/model/order"
	"northwind/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Builds a New-status aggregate from the command and persists it through the
// repository, which allocates the identifier.
type CreateOrderCommandHandler struct {
	orders ports.OrderRepository
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(orders ports.OrderRepository) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{orders: orders}
}

// Handle processes the order creation command and returns the identifier the
// store assigned to the new order.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	o, err := order.NewOrder(cmd.CustomerID(), cmd.Shipment())
	if err != nil {
		return 0, err
	}

	if employeeID := cmd.EmployeeID(); employeeID != nil {
		o.SetEmployeeID(*employeeID)
	}
	if requiredDate := cmd.RequiredDate(); requiredDate != nil {
		o.SetRequiredDate(*requiredDate)
	}
	if shipVia := cmd.ShipVia(); shipVia != nil {
		o.SetShipVia(*shipVia)
	}
	if freight := cmd.Freight(); freight != nil {
		o.SetFreight(*freight)
	}

	return h.orders.CreateOrder(ctx, o)
}
