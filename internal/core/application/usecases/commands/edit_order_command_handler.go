package commands

import (
	"context"

	"northwind/internal/core/domain/model/order"
	"northwind/internal/core/ports"
)

// EditOrderCommandHandler handles the business logic for editing orders.
// The replacement aggregate is rebuilt through the domain's restore path, so
// a payload violating the date-ordering invariant is rejected before the
// repository is asked to write anything.
type EditOrderCommandHandler struct {
	orders ports.OrderRepository
}

// NewEditOrderCommandHandler creates a handler for order edits.
func NewEditOrderCommandHandler(orders ports.OrderRepository) EditOrderCommandHandler {
	return EditOrderCommandHandler{orders: orders}
}

// Handle processes the edit command. Status gating against the persisted
// order happens inside the repository; a non-New target yields
// order.WrongOrderStatusError and the row stays unchanged.
func (h EditOrderCommandHandler) Handle(ctx context.Context, cmd EditOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	edited, err := order.RestoreOrder(
		cmd.OrderID(),
		cmd.CustomerID(),
		cmd.EmployeeID(),
		cmd.OrderDate(),
		cmd.RequiredDate(),
		cmd.ShippedDate(),
		cmd.ShipVia(),
		cmd.Freight(),
		cmd.Shipment(),
	)
	if err != nil {
		return err
	}

	return h.orders.EditOrder(ctx, cmd.OrderID(), edited)
}
