package commands

import (
	"context"

	"northwind/internal/core/ports"
)

// DeleteOrderCommandHandler handles the business logic for order deletion.
type DeleteOrderCommandHandler struct {
	orders ports.OrderRepository
}

// NewDeleteOrderCommandHandler creates a handler for order deletion.
func NewDeleteOrderCommandHandler(orders ports.OrderRepository) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{orders: orders}
}

// Handle processes the delete command. The repository reloads the order and
// rejects the deletion with order.WrongOrderStatusError when the persisted
// status is Delivered.
func (h DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.orders.DeleteOrder(ctx, cmd.OrderID())
}
