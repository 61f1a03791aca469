package queries

import (
	"errors"

	"northwind/internal/pkg/guard"
)

var (
	ErrGetCustomerOrderHistoryQueryIsNotConstructed = errors.New(
		"GetCustomerOrderHistoryQuery must be created via NewGetCustomerOrderHistoryQuery constructor",
	)
	ErrCustomerIDIsRequired = errors.New("customer identifier is required")
)

// GetCustomerOrderHistoryQuery retrieves a customer's order history report:
// per product, the total quantity the customer has ever ordered.
type GetCustomerOrderHistoryQuery struct {
	customerID string

	guard guard.ConstructorGuard
}

// NewGetCustomerOrderHistoryQuery creates a history query for the given customer.
func NewGetCustomerOrderHistoryQuery(customerID string) (GetCustomerOrderHistoryQuery, error) {
	if customerID == "" {
		return GetCustomerOrderHistoryQuery{}, ErrCustomerIDIsRequired
	}

	return GetCustomerOrderHistoryQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCustomerOrderHistoryQueryIsNotConstructed if validation fails.
func (q GetCustomerOrderHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrderHistoryQueryIsNotConstructed)
}

// CustomerID returns the customer whose history is requested.
func (q GetCustomerOrderHistoryQuery) CustomerID() string {
	return q.customerID
}
