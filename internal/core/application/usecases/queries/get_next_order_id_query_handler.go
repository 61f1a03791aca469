package queries

import (
	"context"

	"northwind/internal/core/ports"
)

// GetNextOrderIDQueryHandler previews the next order identifier.
//
// The preview reads the identity sequence without reserving anything, so the
// value is only accurate until someone else inserts.
type GetNextOrderIDQueryHandler struct {
	orders ports.OrderRepository
}

// NewGetNextOrderIDQueryHandler creates a handler for the next-identifier
// preview.
func NewGetNextOrderIDQueryHandler(orders ports.OrderRepository) GetNextOrderIDQueryHandler {
	return GetNextOrderIDQueryHandler{orders: orders}
}

// Handle executes the preview query.
func (h GetNextOrderIDQueryHandler) Handle(ctx context.Context, query GetNextOrderIDQuery) (int, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	return h.orders.GetNextOrderID(ctx)
}
