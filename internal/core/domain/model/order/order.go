package order

import (
	"errors"
	"time"

	"northwind/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through one of the constructor functions. This ensures all orders are
	// properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root of the order-management domain. It holds the
// order's persisted fields and owns the status invariant.
//
// Order follows these invariants:
//   - status is New iff the order date is absent, Processing iff the order
//     date is present and the shipped date absent, Delivered iff both are present
//   - the shipped date, once set, is never earlier than the order date
//   - the shipped date cannot be set while the order date is absent
//   - the order date and shipped date change only through the lifecycle
//     actions StartProcessing and Deliver
//
// An id of zero marks an order that has not been persisted yet; identifiers
// are assigned by the store.
type Order struct {
	// id is the store-assigned identifier (0 for unpersisted orders)
	id int

	// customerID identifies the owning customer (required)
	customerID string

	// employeeID is the handling employee (nil if unset)
	employeeID *int

	// orderDate is set only via StartProcessing
	orderDate *time.Time

	// requiredDate is the date the customer needs the order by
	requiredDate *time.Time

	// shippedDate is set only via Deliver
	shippedDate *time.Time

	// shipVia is the shipping carrier identifier
	shipVia *int

	// freight is the shipping cost
	freight *float64

	// shipment holds the ship-to name and address block
	shipment ShipmentInfo

	// status is recomputed after every date mutation, never assigned directly
	status Status

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates an unpersisted order in New status with no lifecycle dates.
//
// The customer identifier is the only required field; everything else is
// optional and set through the setter methods or the lifecycle actions.
func NewOrder(customerID string, shipment ShipmentInfo) (*Order, error) {
	return NewOrderWithID(0, customerID, shipment)
}

// NewOrderWithID creates an order carrying a pre-existing store identifier,
// in New status with no lifecycle dates.
func NewOrderWithID(id int, customerID string, shipment ShipmentInfo) (*Order, error) {
	if customerID == "" {
		return nil, errs.NewValueIsRequiredError("customerID")
	}

	return &Order{
		id:            id,
		customerID:    customerID,
		shipment:      shipment,
		status:        New,
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an order from persisted fields by replaying the
// lifecycle actions from the stored dates: StartProcessing when an order date
// is present, then Deliver when a shipped date is present too. A shipped date
// without an order date is skipped, matching how rows are filled from storage.
//
// Replaying means a stored row violating the date-ordering invariant fails
// here, during the load, with the same error a write would produce.
func RestoreOrder(
	id int,
	customerID string,
	employeeID *int,
	orderDate *time.Time,
	requiredDate *time.Time,
	shippedDate *time.Time,
	shipVia *int,
	freight *float64,
	shipment ShipmentInfo,
) (*Order, error) {
	o, err := NewOrderWithID(id, customerID, shipment)
	if err != nil {
		return nil, err
	}

	o.employeeID = copyIntPtr(employeeID)
	o.requiredDate = copyTimePtr(requiredDate)
	o.shipVia = copyIntPtr(shipVia)
	o.freight = copyFloatPtr(freight)

	if orderDate == nil {
		return o, nil
	}
	o.StartProcessing(*orderDate)

	if shippedDate != nil {
		if err := o.Deliver(*shippedDate); err != nil {
			return nil, err
		}
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
// Returns ErrOrderIsNotConstructed otherwise.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// StartProcessing sets the order date and recomputes the status.
//
// There is no precondition on the current status: calling it on an order that
// already processes overwrites the order date and leaves the status at
// Processing (or Delivered when a shipped date is already present).
func (o *Order) StartProcessing(date time.Time) {
	d := date
	o.orderDate = &d
	o.setStatus()
}

// Deliver sets the shipped date and recomputes the status.
//
// Fails with InvalidLifecycleTransitionError when the order has not started
// processing, and with InvalidDateOrderingError when date precedes the order
// date. Delivering exactly on the order date is allowed.
func (o *Order) Deliver(date time.Time) error {
	if o.orderDate == nil {
		return NewInvalidLifecycleTransitionError("deliver", o.status)
	}

	if date.Before(*o.orderDate) {
		return NewInvalidDateOrderingError("shippedDate", date)
	}

	d := date
	o.shippedDate = &d
	o.setStatus()
	return nil
}

// IsEqual compares two orders by content: every field plus the derived
// status. Identifiers are compared only when both are non-zero, so a fresh,
// unpersisted order compares equal to its persisted counterpart.
func (o *Order) IsEqual(other *Order) bool {
	if other == nil {
		return false
	}

	if o.id != 0 && other.id != 0 && o.id != other.id {
		return false
	}

	return o.customerID == other.customerID &&
		intPtrsEqual(o.employeeID, other.employeeID) &&
		timePtrsEqual(o.orderDate, other.orderDate) &&
		timePtrsEqual(o.requiredDate, other.requiredDate) &&
		timePtrsEqual(o.shippedDate, other.shippedDate) &&
		intPtrsEqual(o.shipVia, other.shipVia) &&
		floatPtrsEqual(o.freight, other.freight) &&
		o.shipment.IsEqual(other.shipment) &&
		o.status == other.status
}

// ID returns the store-assigned identifier, 0 for unpersisted orders.
func (o *Order) ID() int {
	return o.id
}

// CustomerID returns the owning customer's identifier.
func (o *Order) CustomerID() string {
	return o.customerID
}

// EmployeeID returns the handling employee's identifier, nil if unset.
func (o *Order) EmployeeID() *int {
	return copyIntPtr(o.employeeID)
}

// OrderDate returns the order date, nil while the order is New.
func (o *Order) OrderDate() *time.Time {
	return copyTimePtr(o.orderDate)
}

// RequiredDate returns the required-by date, nil if unset.
func (o *Order) RequiredDate() *time.Time {
	return copyTimePtr(o.requiredDate)
}

// ShippedDate returns the shipped date, nil until the order is Delivered.
func (o *Order) ShippedDate() *time.Time {
	return copyTimePtr(o.shippedDate)
}

// ShipVia returns the shipping carrier identifier, nil if unset.
func (o *Order) ShipVia() *int {
	return copyIntPtr(o.shipVia)
}

// Freight returns the freight cost, nil if unset.
func (o *Order) Freight() *float64 {
	return copyFloatPtr(o.freight)
}

// Shipment returns the ship-to name and address block.
func (o *Order) Shipment() ShipmentInfo {
	return o.shipment
}

// Status returns the current derived status of the order.
func (o *Order) Status() Status {
	return o.status
}

// SetEmployeeID assigns the handling employee.
func (o *Order) SetEmployeeID(employeeID int) {
	o.employeeID = &employeeID
}

// SetRequiredDate assigns the required-by date.
func (o *Order) SetRequiredDate(date time.Time) {
	d := date
	o.requiredDate = &d
}

// SetShipVia assigns the shipping carrier.
func (o *Order) SetShipVia(shipVia int) {
	o.shipVia = &shipVia
}

// SetFreight assigns the freight cost.
func (o *Order) SetFreight(freight float64) {
	o.freight = &freight
}

// setStatus recomputes the derived status from the lifecycle dates.
// Called after every date mutation.
func (o *Order) setStatus() {
	o.status = DeriveStatus(o.orderDate, o.shippedDate)
}

func copyIntPtr(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func copyFloatPtr(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func copyTimePtr(p *time.Time) *time.Time {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func intPtrsEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func floatPtrsEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func timePtrsEqual(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
