package commands

import (
	"errors"
	"time"

	"northwind/internal/core/domain/model/order"
	"northwind/internal/pkg/guard"
)

var (
	ErrEditOrderCommandIsNotConstructed = errors.New(
		"EditOrderCommand must be created via NewEditOrderCommand constructor",
	)
	ErrOrderIDIsInvalid = errors.New("order identifier must be greater than 0")
)

// EditOrderCommand represents a request to overwrite every field of an
// existing order, lifecycle dates included. The dates are carried raw; the
// repository writes them as given, and the target must still be in New
// status for the edit to be allowed.
type EditOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      int
	customerID   string
	employeeID   *int
	orderDate    *time.Time
	requiredDate *time.Time
	shippedDate  *time.Time
	shipVia      *int
	freight      *float64
	shipment     order.ShipmentInfo

	guard guard.ConstructorGuard
}

// NewEditOrderCommand creates a command carrying the full replacement field
// set for the identified order. Optional fields are supplied through the
// Set methods.
func NewEditOrderCommand(orderID int, customerID string, shipment order.ShipmentInfo) (EditOrderCommand, error) {
	if orderID <= 0 {
		return EditOrderCommand{}, ErrOrderIDIsInvalid
	}
	if customerID == "" {
		return EditOrderCommand{}, ErrCustomerIDIsRequired
	}

	return EditOrderCommand{
		orderID:    orderID,
		customerID: customerID,
		shipment:   shipment,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrEditOrderCommandIsNotConstructed if validation fails.
func (c EditOrderCommand) Validate() error {
	return c.guard.Validate(ErrEditOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to edit.
func (c EditOrderCommand) OrderID() int {
	return c.orderID
}

// CustomerID returns the replacement customer identifier.
func (c EditOrderCommand) CustomerID() string {
	return c.customerID
}

// EmployeeID returns the replacement employee, nil clears the column.
func (c EditOrderCommand) EmployeeID() *int {
	return c.employeeID
}

// OrderDate returns the replacement order date, nil clears the column.
func (c EditOrderCommand) OrderDate() *time.Time {
	return c.orderDate
}

// RequiredDate returns the replacement required-by date, nil clears the column.
func (c EditOrderCommand) RequiredDate() *time.Time {
	return c.requiredDate
}

// ShippedDate returns the replacement shipped date, nil clears the column.
func (c EditOrderCommand) ShippedDate() *time.Time {
	return c.shippedDate
}

// ShipVia returns the replacement shipping carrier, nil clears the column.
func (c EditOrderCommand) ShipVia() *int {
	return c.shipVia
}

// Freight returns the replacement freight cost, nil clears the column.
func (c EditOrderCommand) Freight() *float64 {
	return c.freight
}

// Shipment returns the replacement ship-to name and address block.
func (c EditOrderCommand) Shipment() order.ShipmentInfo {
	return c.shipment
}

// SetEmployeeID assigns the replacement employee.
func (c *EditOrderCommand) SetEmployeeID(employeeID int) {
	c.employeeID = &employeeID
}

// SetOrderDate assigns the replacement order date.
func (c *EditOrderCommand) SetOrderDate(date time.Time) {
	c.orderDate = &date
}

// SetRequiredDate assigns the replacement required-by date.
func (c *EditOrderCommand) SetRequiredDate(date time.Time) {
	c.requiredDate = &date
}

// SetShippedDate assigns the replacement shipped date.
func (c *EditOrderCommand) SetShippedDate(date time.Time) {
	c.shippedDate = &date
}

// SetShipVia assigns the replacement shipping carrier.
func (c *EditOrderCommand) SetShipVia(shipVia int) {
	c.shipVia = &shipVia
}

// SetFreight assigns the replacement freight cost.
func (c *EditOrderCommand) SetFreight(freight float64) {
	c.freight = &freight
}
