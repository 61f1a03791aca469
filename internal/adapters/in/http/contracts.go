package http

import (
	"time"

	"northwind/internal/core/domain/model/order"
)

// Error is the standard error response body.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Order is the wire representation of an order.
type Order struct {
	OrderID        int        `json:"orderId"`
	CustomerID     string     `json:"customerId"`
	EmployeeID     *int       `json:"employeeId,omitempty"`
	OrderDate      *time.Time `json:"orderDate,omitempty"`
	RequiredDate   *time.Time `json:"requiredDate,omitempty"`
	ShippedDate    *time.Time `json:"shippedDate,omitempty"`
	ShipVia        *int       `json:"shipVia,omitempty"`
	Freight        *float64   `json:"freight,omitempty"`
	ShipName       string     `json:"shipName,omitempty"`
	ShipAddress    string     `json:"shipAddress,omitempty"`
	ShipCity       string     `json:"shipCity,omitempty"`
	ShipRegion     string     `json:"shipRegion,omitempty"`
	ShipPostalCode string     `json:"shipPostalCode,omitempty"`
	ShipCountry    string     `json:"shipCountry,omitempty"`
	Status         string     `json:"status"`
}

// NewOrder is the request body for order creation. Lifecycle dates are
// absent on purpose: a created order always starts out as New.
type NewOrder struct {
	CustomerID     string     `json:"customerId"`
	EmployeeID     *int       `json:"employeeId"`
	RequiredDate   *time.Time `json:"requiredDate"`
	ShipVia        *int       `json:"shipVia"`
	Freight        *float64   `json:"freight"`
	ShipName       string     `json:"shipName"`
	ShipAddress    string     `json:"shipAddress"`
	ShipCity       string     `json:"shipCity"`
	ShipRegion     string     `json:"shipRegion"`
	ShipPostalCode string     `json:"shipPostalCode"`
	ShipCountry    string     `json:"shipCountry"`
}

// EditOrder is the request body for a full order replacement, lifecycle
// dates included.
type EditOrder struct {
	CustomerID     string     `json:"customerId"`
	EmployeeID     *int       `json:"employeeId"`
	OrderDate      *time.Time `json:"orderDate"`
	RequiredDate   *time.Time `json:"requiredDate"`
	ShippedDate    *time.Time `json:"shippedDate"`
	ShipVia        *int       `json:"shipVia"`
	Freight        *float64   `json:"freight"`
	ShipName       string     `json:"shipName"`
	ShipAddress    string     `json:"shipAddress"`
	ShipCity       string     `json:"shipCity"`
	ShipRegion     string     `json:"shipRegion"`
	ShipPostalCode string     `json:"shipPostalCode"`
	ShipCountry    string     `json:"shipCountry"`
}

// OrderCreated is the response body for a successful order creation.
type OrderCreated struct {
	OrderID int `json:"orderId"`
}

// NextOrderID is the response body for the identifier preview.
type NextOrderID struct {
	NextOrderID int `json:"nextOrderId"`
}

// OrderDetailedInfo is one joined line-item row of an order.
type OrderDetailedInfo struct {
	OrderID     int     `json:"orderId"`
	CustomerID  string  `json:"customerId"`
	ProductID   int     `json:"productId"`
	ProductName string  `json:"productName"`
	UnitPrice   float64 `json:"unitPrice"`
	Quantity    int     `json:"quantity"`
	Discount    float32 `json:"discount"`
}

// OrderHistoryElement is one per-product total of a customer's history.
type OrderHistoryElement struct {
	ProductName  string `json:"productName"`
	ProductCount int    `json:"productCount"`
}

// OrderDetailElement is one priced line item of the order detail report.
type OrderDetailElement struct {
	ProductName   string  `json:"productName"`
	UnitPrice     float64 `json:"unitPrice"`
	Quantity      int     `json:"quantity"`
	Discount      int     `json:"discount"`
	ExtendedPrice float64 `json:"extendedPrice"`
}

func fromDomainOrder(o *order.Order) Order {
	shipment := o.Shipment()

	return Order{
		OrderID:        o.ID(),
		CustomerID:     o.CustomerID(),
		EmployeeID:     o.EmployeeID(),
		OrderDate:      o.OrderDate(),
		RequiredDate:   o.RequiredDate(),
		ShippedDate:    o.ShippedDate(),
		ShipVia:        o.ShipVia(),
		Freight:        o.Freight(),
		ShipName:       shipment.Name(),
		ShipAddress:    shipment.Address(),
		ShipCity:       shipment.City(),
		ShipRegion:     shipment.Region(),
		ShipPostalCode: shipment.PostalCode(),
		ShipCountry:    shipment.Country(),
		Status:         o.Status().String(),
	}
}
