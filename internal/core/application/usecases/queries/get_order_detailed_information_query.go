package queries

import (
	"errors"

	"northwind/internal/pkg/guard"
)

var (
	ErrGetOrderDetailedInformationQueryIsNotConstructed = errors.New(
		"GetOrderDetailedInformationQuery must be created via NewGetOrderDetailedInformationQuery constructor",
	)
)

// GetOrderDetailedInformationQuery retrieves an order's line items joined
// with their product names.
type GetOrderDetailedInformationQuery struct {
	orderID int

	guard guard.ConstructorGuard
}

// NewGetOrderDetailedInformationQuery creates a query for the identified
// order's line items.
func NewGetOrderDetailedInformationQuery(orderID int) (GetOrderDetailedInformationQuery, error) {
	if orderID <= 0 {
		return GetOrderDetailedInformationQuery{}, ErrOrderIDIsInvalid
	}

	return GetOrderDetailedInformationQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderDetailedInformationQueryIsNotConstructed if validation fails.
func (q GetOrderDetailedInformationQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderDetailedInformationQueryIsNotConstructed)
}

// OrderID returns the identifier of the order whose items are requested.
func (q GetOrderDetailedInformationQuery) OrderID() int {
	return q.orderID
}
