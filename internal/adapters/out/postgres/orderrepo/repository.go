package orderrepo

import (
	"context"
	"errors"

	"northwind/internal/core/domain/model/order"
	"northwind/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
//
// The repository holds no mutable state of its own: each operation is one or
// more independent round trips against the shared connection pool, and
// store-level failures propagate to the caller unchanged.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// ListOrders retrieves all orders in storage order, reconstructing each
// order's status from its persisted dates.
func (r *GormOrderRepository) ListOrders(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// GetOrder retrieves one order by identifier. A missing row yields
// (nil, nil): not-found is an absent value on this path, not an error.
func (r *GormOrderRepository) GetOrder(ctx context.Context, orderID int) (*order.Order, error) {
	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetOrderDetailedInformation joins the order's line items with their product
// names. Returns an empty slice when the order has no items or does not exist.
func (r *GormOrderRepository) GetOrderDetailedInformation(
	ctx context.Context, orderID int,
) ([]order.OrderDetailedInfo, error) {
	infos := make([]order.OrderDetailedInfo, 0)

	rows, err := r.db.WithContext(ctx).Raw(`
		SELECT
			o.customer_id,
			od.product_id,
			p.product_name,
			od.unit_price,
			od.quantity,
			od.discount
		FROM orders o
		JOIN order_details od ON od.order_id = o.order_id
		JOIN products p ON p.product_id = od.product_id
		WHERE o.order_id = ?
	`, orderID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		info := order.OrderDetailedInfo{OrderID: orderID}

		err = rows.Scan(
			&info.CustomerID,
			&info.ProductID,
			&info.ProductName,
			&info.UnitPrice,
			&info.Quantity,
			&info.Discount,
		)
		if err != nil {
			return nil, err
		}

		infos = append(infos, info)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return infos, nil
}

// CreateOrder inserts a new order row and returns the identifier the store
// is expected to assign.
//
// The identifier is predicted by reading the identity sequence and
// incrementing locally; the insert itself lets the store assign the id.
// Prediction and insert are two independent round trips with no enclosing
// transaction, so concurrent creators can observe the same sequence value
// and receive colliding predictions.
func (r *GormOrderRepository) CreateOrder(ctx context.Context, o *order.Order) (int, error) {
	if err := o.Validate(); err != nil {
		return 0, err
	}

	nextID, err := r.GetNextOrderID(ctx)
	if err != nil {
		return 0, err
	}

	dto := fromDomain(o)
	dto.OrderID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return 0, err
	}

	return nextID, nil
}

// EditOrder overwrites all fields of the identified order with the edited
// order's fields, dates written raw. The current persisted status must be
// New; the reload-then-check keeps the decision off the caller's possibly
// stale copy.
func (r *GormOrderRepository) EditOrder(ctx context.Context, orderID int, edited *order.Order) error {
	if err := edited.Validate(); err != nil {
		return err
	}

	existing, err := r.GetOrder(ctx, orderID)
	if err != nil {
		return err
	}
	if existing == nil {
		return errs.NewObjectNotFoundError("orderId", orderID)
	}

	if existing.Status() != order.New {
		return order.NewWrongOrderStatusErrorWithExpected(order.New)
	}

	dto := fromDomain(edited)
	dto.OrderID = orderID

	return r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("order_id = ?", orderID).
		Select(
			"customer_id", "employee_id", "order_date", "required_date",
			"shipped_date", "ship_via", "freight", "ship_name", "ship_address",
			"ship_city", "ship_region", "ship_postal_code", "ship_country",
		).
		Updates(&dto).Error
}

// DeleteOrder removes the identified order. Delivered orders may never be
// deleted; the check runs against the reloaded persisted status and fails
// before any write.
func (r *GormOrderRepository) DeleteOrder(ctx context.Context, orderID int) error {
	existing, err := r.GetOrder(ctx, orderID)
	if err != nil {
		return err
	}
	if existing == nil {
		return errs.NewObjectNotFoundError("orderId", orderID)
	}

	if existing.Status() == order.Delivered {
		return order.NewWrongOrderStatusError()
	}

	return r.db.WithContext(ctx).Delete(&OrderDTO{}, "order_id = ?", orderID).Error
}

// GetNextOrderID returns the orders identity sequence's current value plus
// one. Pure read: nothing is reserved, so the returned identifier is a
// prediction, not a guarantee.
func (r *GormOrderRepository) GetNextOrderID(ctx context.Context) (int, error) {
	var lastValue int64
	err := r.db.WithContext(ctx).
		Raw("SELECT last_value FROM orders_order_id_seq").
		Row().
		Scan(&lastValue)
	if err != nil {
		return 0, err
	}

	return int(lastValue) + 1, nil
}

// GetCustomerOrderHistory invokes the cust_order_hist stored function and
// maps its rows: per product, the total quantity the customer has ordered.
func (r *GormOrderRepository) GetCustomerOrderHistory(
	ctx context.Context, customerID string,
) ([]order.OrderHistoryElement, error) {
	history := make([]order.OrderHistoryElement, 0)

	rows, err := r.db.WithContext(ctx).
		Raw("SELECT product_name, total FROM cust_order_hist(?)", customerID).
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var element order.OrderHistoryElement
		if err = rows.Scan(&element.ProductName, &element.ProductCount); err != nil {
			return nil, err
		}
		history = append(history, element)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}

// GetCustomerOrderDetail invokes the cust_orders_detail stored function and
// maps its rows: per line item, product name, unit price, quantity, discount
// percentage and extended price.
func (r *GormOrderRepository) GetCustomerOrderDetail(
	ctx context.Context, orderID int,
) ([]order.OrderDetailElement, error) {
	details := make([]order.OrderDetailElement, 0)

	rows, err := r.db.WithContext(ctx).
		Raw("SELECT product_name, unit_price, quantity, discount, extended_price FROM cust_orders_detail(?)", orderID).
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var element order.OrderDetailElement
		err = rows.Scan(
			&element.ProductName,
			&element.UnitPrice,
			&element.Quantity,
			&element.Discount,
			&element.ExtendedPrice,
		)
		if err != nil {
			return nil, err
		}
		details = append(details, element)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return details, nil
}
