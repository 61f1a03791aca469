package commands

import (
	"errors"

	"northwind/internal/pkg/guard"
)

var (
	ErrDeleteOrderCommandIsNotConstructed = errors.New(
		"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
	)
)

// DeleteOrderCommand represents a request to remove an order.
// Delivered orders are not deletable; the repository decides against the
// persisted status.
type DeleteOrderCommand struct {
	orderID int

	guard guard.ConstructorGuard
}

// NewDeleteOrderCommand creates a command to delete the identified order.
func NewDeleteOrderCommand(orderID int) (DeleteOrderCommand, error) {
	if orderID <= 0 {
		return DeleteOrderCommand{}, ErrOrderIDIsInvalid
	}

	return DeleteOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDeleteOrderCommandIsNotConstructed if validation fails.
func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to delete.
func (c DeleteOrderCommand) OrderID() int {
	return c.orderID
}
