// Package ports defines the contracts between the application core and its
// adapters. The core depends on these interfaces only; the concrete storage
// implementation lives under internal/adapters/out.
package ports

import (
	"context"

	"northwind/internal/core/domain/model/order"
)

// OrderRepository is the persistence contract for orders and the order
// reporting reads. Every operation opens its own round trip: the repository
// holds no cross-call state, and store-level failures propagate to the
// caller unchanged.
//
// The two mutating operations EditOrder and DeleteOrder gate on the order's
// current persisted status (reload, check, then act), never on a status the
// caller supplies.
type OrderRepository interface {
	// ListOrders retrieves all orders with full field mapping. Each order's
	// status is reconstructed from its persisted dates. Rows come back in
	// storage order; no ordering is guaranteed.
	ListOrders(ctx context.Context) ([]*order.Order, error)

	// GetOrder retrieves one order by identifier. A missing row yields
	// (nil, nil): absence is a value here, not an error.
	GetOrder(ctx context.Context, orderID int) (*order.Order, error)

	// GetOrderDetailedInformation joins the order's line items with product
	// names. Returns an empty slice when the order has no items or does not
	// exist.
	GetOrderDetailedInformation(ctx context.Context, orderID int) ([]order.OrderDetailedInfo, error)

	// CreateOrder inserts a new order row and returns the identifier it
	// predicts the store assigned. The prediction reads the identity
	// sequence before the insert without a transaction, so concurrent
	// creators can receive colliding predictions.
	CreateOrder(ctx context.Context, o *order.Order) (int, error)

	// EditOrder overwrites all fields of the identified order, dates
	// included, written raw rather than through the lifecycle actions.
	// Allowed only while the persisted status is New; otherwise fails with
	// WrongOrderStatusError carrying the expected status and leaves the row
	// unchanged.
	EditOrder(ctx context.Context, orderID int, edited *order.Order) error

	// DeleteOrder removes the identified order. Delivered orders may never
	// be deleted; the failure is WrongOrderStatusError without an expected
	// status, raised before any write.
	DeleteOrder(ctx context.Context, orderID int) error

	// GetNextOrderID returns the store's current identity-sequence value for
	// the orders table incremented by one. Pure read, no reservation.
	GetNextOrderID(ctx context.Context) (int, error)

	// GetCustomerOrderHistory runs the customer order history report:
	// per product, the total quantity the customer has ordered.
	GetCustomerOrderHistory(ctx context.Context, customerID string) ([]order.OrderHistoryElement, error)

	// GetCustomerOrderDetail runs the order detail report for one order:
	// per line item, product name, price, quantity, discount percentage and
	// extended price.
	GetCustomerOrderDetail(ctx context.Context, orderID int) ([]order.OrderDetailElement, error)
}
