package order

// Read models returned by the reporting operations. They carry no behavior
// and no lifecycle: each value is built fresh from a query result row and
// compared by value.

// OrderDetailedInfo is one line item of an order joined with its product
// name, as returned by GetOrderDetailedInformation.
type OrderDetailedInfo struct {
	OrderID     int
	CustomerID  string
	ProductID   int
	ProductName string
	UnitPrice   float64
	Quantity    int
	Discount    float32
}

// OrderHistoryElement is one row of a customer's order history report:
// a product and the total quantity the customer ever ordered of it.
type OrderHistoryElement struct {
	ProductName  string
	ProductCount int
}

// OrderDetailElement is one row of the customer order detail report.
// Discount is a whole percentage and ExtendedPrice the discounted line total,
// both computed by the store.
type OrderDetailElement struct {
	ProductName   string
	UnitPrice     float64
	Quantity      int
	Discount      int
	ExtendedPrice float64
}
