// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern over the orders,
// order_details and products tables, handling the conversion between domain
// entities and database rows.
package orderrepo

import (
	"time"

	"northwind/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting orders.
// The identifier is assigned by the store's identity sequence; every other
// column except customer_id is nullable.
type OrderDTO struct {
	OrderID        int     `gorm:"column:order_id;primaryKey;autoIncrement"`
	CustomerID     string  `gorm:"column:customer_id;type:char(5);not null"`
	EmployeeID     *int    `gorm:"column:employee_id"`
	OrderDate      *time.Time
	RequiredDate   *time.Time
	ShippedDate    *time.Time
	ShipVia        *int
	Freight        *float64 `gorm:"type:numeric(10,4)"`
	ShipName       *string
	ShipAddress    *string
	ShipCity       *string
	ShipRegion     *string
	ShipPostalCode *string
	ShipCountry    *string
}

// TableName specifies the database table name for orders.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one line item of an order.
type OrderItemDTO struct {
	OrderID   int     `gorm:"column:order_id;primaryKey"`
	ProductID int     `gorm:"column:product_id;primaryKey"`
	UnitPrice float64 `gorm:"type:numeric(10,4)"`
	Quantity  int     `gorm:"type:smallint"`
	Discount  float32
}

// TableName specifies the database table name for order line items.
func (OrderItemDTO) TableName() string {
	return "order_details"
}

// ProductDTO represents the product catalog row joined into the reporting reads.
type ProductDTO struct {
	ProductID   int    `gorm:"column:product_id;primaryKey;autoIncrement"`
	ProductName string `gorm:"not null"`
}

// TableName specifies the database table name for products.
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts an order aggregate to its database representation.
// Empty shipment strings map to NULL columns.
func fromDomain(o *order.Order) OrderDTO {
	shipment := o.Shipment()

	return OrderDTO{
		OrderID:        o.ID(),
		CustomerID:     o.CustomerID(),
		EmployeeID:     o.EmployeeID(),
		OrderDate:      o.OrderDate(),
		RequiredDate:   o.RequiredDate(),
		ShippedDate:    o.ShippedDate(),
		ShipVia:        o.ShipVia(),
		Freight:        o.Freight(),
		ShipName:       toNullableString(shipment.Name()),
		ShipAddress:    toNullableString(shipment.Address()),
		ShipCity:       toNullableString(shipment.City()),
		ShipRegion:     toNullableString(shipment.Region()),
		ShipPostalCode: toNullableString(shipment.PostalCode()),
		ShipCountry:    toNullableString(shipment.Country()),
	}
}

// toDomain converts a database row to an order aggregate. The status is
// reconstructed by replaying the lifecycle actions from the persisted dates,
// so a row violating the date-ordering invariant fails here.
func toDomain(dto OrderDTO) (*order.Order, error) {
	shipment := order.NewShipmentInfo(
		fromNullableString(dto.ShipName),
		fromNullableString(dto.ShipAddress),
		fromNullableString(dto.ShipCity),
		fromNullableString(dto.ShipRegion),
		fromNullableString(dto.ShipPostalCode),
		fromNullableString(dto.ShipCountry),
	)

	return order.RestoreOrder(
		dto.OrderID,
		dto.CustomerID,
		dto.EmployeeID,
		dto.OrderDate,
		dto.RequiredDate,
		dto.ShippedDate,
		dto.ShipVia,
		dto.Freight,
		shipment,
	)
}

func toNullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func fromNullableString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
