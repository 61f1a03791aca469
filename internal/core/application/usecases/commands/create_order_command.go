// Package commands contains business operations that modify order state.
// Implements the Command pattern for write operations: each command is a
// constructor-guarded value validated before its handler touches storage.
package commands

import (
	"errors"
	"time"

	"northwind/internal/core/domain/model/order"
	"northwind/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrCustomerIDIsRequired = errors.New("customer identifier is required")
)

// CreateOrderCommand represents a request to register a new order.
// New orders carry no lifecycle dates: they are persisted in New status and
// move through the lifecycle afterwards.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("VINET", shipment)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	cmd.SetEmployeeID(5)
//
//	orderID, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID   string
	employeeID   *int
	requiredDate *time.Time
	shipVia      *int
	freight      *float64
	shipment     order.ShipmentInfo

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order for the
// given customer. The optional fields are supplied through the Set methods.
func NewCreateOrderCommand(customerID string, shipment order.ShipmentInfo) (CreateOrderCommand, error) {
	if customerID == "" {
		return CreateOrderCommand{}, ErrCustomerIDIsRequired
	}

	return CreateOrderCommand{
		customerID: customerID,
		shipment:   shipment,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerID returns the owning customer's identifier.
func (c CreateOrderCommand) CustomerID() string {
	return c.customerID
}

// EmployeeID returns the handling employee, nil if unset.
func (c CreateOrderCommand) EmployeeID() *int {
	return c.employeeID
}

// RequiredDate returns the required-by date, nil if unset.
func (c CreateOrderCommand) RequiredDate() *time.Time {
	return c.requiredDate
}

// ShipVia returns the shipping carrier, nil if unset.
func (c CreateOrderCommand) ShipVia() *int {
	return c.shipVia
}

// Freight returns the freight cost, nil if unset.
func (c CreateOrderCommand) Freight() *float64 {
	return c.freight
}

// Shipment returns the ship-to name and address block.
func (c CreateOrderCommand) Shipment() order.ShipmentInfo {
	return c.shipment
}

// SetEmployeeID assigns the handling employee.
func (c *CreateOrderCommand) SetEmployeeID(employeeID int) {
	c.employeeID = &employeeID
}

// SetRequiredDate assigns the required-by date.
func (c *CreateOrderCommand) SetRequiredDate(date time.Time) {
	c.requiredDate = &date
}

// SetShipVia assigns the shipping carrier.
func (c *CreateOrderCommand) SetShipVia(shipVia int) {
	c.shipVia = &shipVia
}

// SetFreight assigns the freight cost.
func (c *CreateOrderCommand) SetFreight(freight float64) {
	c.freight = &freight
}
