package queries

import (
	"errors"

	"northwind/internal/pkg/guard"
)

var (
	ErrGetCustomerOrderDetailQueryIsNotConstructed = errors.New(
		"GetCustomerOrderDetailQuery must be created via NewGetCustomerOrderDetailQuery constructor",
	)
)

// GetCustomerOrderDetailQuery retrieves the stored order detail report for
// one order: per line item, product, price, quantity, discount percentage
// and extended price.
type GetCustomerOrderDetailQuery struct {
	orderID int

	guard guard.ConstructorGuard
}

// NewGetCustomerOrderDetailQuery creates a detail-report query for the
// identified order.
func NewGetCustomerOrderDetailQuery(orderID int) (GetCustomerOrderDetailQuery, error) {
	if orderID <= 0 {
		return GetCustomerOrderDetailQuery{}, ErrOrderIDIsInvalid
	}

	return GetCustomerOrderDetailQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCustomerOrderDetailQueryIsNotConstructed if validation fails.
func (q GetCustomerOrderDetailQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrderDetailQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to report on.
func (q GetCustomerOrderDetailQuery) OrderID() int {
	return q.orderID
}
