package queries

import (
	"errors"

	"northwind/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
	ErrOrderIDIsInvalid = errors.New("order identifier must be greater than 0")
)

// GetOrderQuery retrieves a single order by its identifier.
type GetOrderQuery struct {
	orderID int

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for the identified order.
func NewGetOrderQuery(orderID int) (GetOrderQuery, error) {
	if orderID <= 0 {
		return GetOrderQuery{}, ErrOrderIDIsInvalid
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() int {
	return q.orderID
}
