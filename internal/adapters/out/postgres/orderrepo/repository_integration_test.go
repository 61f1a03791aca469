package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"northwind/internal/adapters/out/postgres/orderrepo"
	"northwind/internal/core/domain/model/order"
	"northwind/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OrderRepositoryIntegrationTestSuite provides integration tests for
// GormOrderRepository using PostgreSQL containers to verify persistence,
// status gating and the reporting reads.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Get connection string and connect to database
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Auto-migrate the schema
	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&orderrepo.ProductDTO{},
	))

	// Start order numbering where the classic dataset does. A fresh sequence
	// has not been consumed yet, which would put the first prediction off by
	// one; seeding it also fixes that.
	suite.Require().NoError(db.Exec("SELECT setval('orders_order_id_seq', 10247)").Error)

	// Stored functions backing the reporting reads
	suite.Require().NoError(db.Exec(`
		CREATE OR REPLACE FUNCTION cust_order_hist(customer_id_arg char(5))
		RETURNS TABLE(product_name text, total bigint) AS $$
			SELECT p.product_name, SUM(od.quantity)::bigint
			FROM products p
			JOIN order_details od ON od.product_id = p.product_id
			JOIN orders o ON o.order_id = od.order_id
			WHERE o.customer_id = customer_id_arg
			GROUP BY p.product_name
			ORDER BY p.product_name
		$$ LANGUAGE sql`).Error)

	suite.Require().NoError(db.Exec(`
		CREATE OR REPLACE FUNCTION cust_orders_detail(order_id_arg int)
		RETURNS TABLE(
			product_name text,
			unit_price double precision,
			quantity int,
			discount int,
			extended_price double precision
		) AS $$
			SELECT p.product_name,
				ROUND(od.unit_price::numeric, 2)::double precision,
				od.quantity::int,
				(od.discount * 100)::int,
				ROUND((od.quantity * (1 - od.discount) * od.unit_price)::numeric, 2)::double precision
			FROM products p
			JOIN order_details od ON od.product_id = p.product_id
			WHERE od.order_id = order_id_arg
			ORDER BY p.product_name
		$$ LANGUAGE sql`).Error)
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the tables before each test; the identity sequence keeps advancing
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_details, products").Error)

	suite.repository = orderrepo.NewGormOrderRepository(suite.db)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestCreateOrder_RoundTrip() {
	ctx := context.Background()

	newOrder, err := order.NewOrder("VINET", suite.testShipment())
	suite.Require().NoError(err)
	newOrder.SetFreight(32.5)
	newOrder.SetShipVia(3)

	predicted, err := suite.repository.GetNextOrderID(ctx)
	suite.Require().NoError(err)

	assigned, err := suite.repository.CreateOrder(ctx, newOrder)
	suite.Require().NoError(err)
	suite.Equal(predicted, assigned)

	retrieved, err := suite.repository.GetOrder(ctx, assigned)
	suite.Require().NoError(err)
	suite.Require().NotNil(retrieved)

	suite.Equal(assigned, retrieved.ID())
	suite.Equal(order.New, retrieved.Status())
	suite.True(newOrder.IsEqual(retrieved), "created and retrieved orders should match on all fields")
}

func (suite *OrderRepositoryIntegrationTestSuite) TestCreateOrder_InvalidOrder_Rejected() {
	ctx := context.Background()

	_, err := suite.repository.CreateOrder(ctx, &order.Order{})
	suite.Require().ErrorIs(err, order.ErrOrderIsNotConstructed)

	suite.assertOrderCount(0)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestCreateOrder_PredictionsAdvanceWithInserts() {
	ctx := context.Background()

	firstID := suite.createPersistedOrder("VINET", order.New)
	secondID := suite.createPersistedOrder("TOMSP", order.New)
	suite.Equal(firstID+1, secondID)

	predicted, err := suite.repository.GetNextOrderID(ctx)
	suite.Require().NoError(err)
	suite.Equal(secondID+1, predicted)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestListOrders_ReconstructsStatusFromDates() {
	ctx := context.Background()

	newID := suite.createPersistedOrder("VINET", order.New)
	processingID := suite.createPersistedOrder("TOMSP", order.Processing)
	deliveredID := suite.createPersistedOrder("HANAR", order.Delivered)

	orders, err := suite.repository.ListOrders(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 3)

	statusByID := make(map[int]order.Status, len(orders))
	for _, o := range orders {
		statusByID[o.ID()] = o.Status()
	}

	suite.Equal(order.New, statusByID[newID])
	suite.Equal(order.Processing, statusByID[processingID])
	suite.Equal(order.Delivered, statusByID[deliveredID])
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetOrder_NonExistentOrder_ReturnsNilWithoutError() {
	retrieved, err := suite.repository.GetOrder(context.Background(), 99999)

	suite.Require().NoError(err)
	suite.Nil(retrieved)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestEditOrder_NewOrder_OverwritesAllFields() {
	ctx := context.Background()

	orderID := suite.createPersistedOrderWithFreight("VINET", order.New, 32.5)

	replacement, err := order.NewOrderWithID(orderID, "TOMSP", order.NewShipmentInfo(
		"Toms Spezialitäten",
		"Luisenstr. 48",
		"Münster",
		"",
		"44087",
		"Germany",
	))
	suite.Require().NoError(err)
	replacement.SetEmployeeID(4)
	// Freight deliberately left unset: the edit must clear the column

	err = suite.repository.EditOrder(ctx, orderID, replacement)
	suite.Require().NoError(err)

	retrieved, err := suite.repository.GetOrder(ctx, orderID)
	suite.Require().NoError(err)
	suite.Require().NotNil(retrieved)

	suite.Equal("TOMSP", retrieved.CustomerID())
	suite.Require().NotNil(retrieved.EmployeeID())
	suite.Equal(4, *retrieved.EmployeeID())
	suite.Nil(retrieved.Freight(), "an absent replacement field should null the column")
	suite.Equal("Münster", retrieved.Shipment().City())
	suite.Equal(order.New, retrieved.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestEditOrder_NonNewStatuses_RejectedAndRowUnchanged() {
	testCases := []struct {
		name   string
		status order.Status
	}{
		{name: "processing order", status: order.Processing},
		{name: "delivered order", status: order.Delivered},
	}

	ctx := context.Background()
	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			orderID := suite.createPersistedOrder("VINET", tc.status)

			before, err := suite.repository.GetOrder(ctx, orderID)
			suite.Require().NoError(err)

			replacement, err := order.NewOrderWithID(orderID, "TOMSP", suite.testShipment())
			suite.Require().NoError(err)

			err = suite.repository.EditOrder(ctx, orderID, replacement)

			suite.Require().ErrorIs(err, order.ErrWrongOrderStatus)

			var wrongStatus *order.WrongOrderStatusError
			suite.Require().ErrorAs(err, &wrongStatus)
			suite.Equal(order.New, wrongStatus.Expected)

			after, err := suite.repository.GetOrder(ctx, orderID)
			suite.Require().NoError(err)
			suite.True(before.IsEqual(after), "a rejected edit should leave the row untouched")
		})
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestEditOrder_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	replacement, err := order.NewOrderWithID(99999, "VINET", suite.testShipment())
	suite.Require().NoError(err)

	err = suite.repository.EditOrder(ctx, 99999, replacement)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDeleteOrder_RemovesUndeliveredOrders() {
	testCases := []struct {
		name   string
		status order.Status
	}{
		{name: "new order", status: order.New},
		{name: "processing order", status: order.Processing},
	}

	ctx := context.Background()
	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			orderID := suite.createPersistedOrder("VINET", tc.status)

			err := suite.repository.DeleteOrder(ctx, orderID)
			suite.Require().NoError(err)

			retrieved, err := suite.repository.GetOrder(ctx, orderID)
			suite.Require().NoError(err)
			suite.Nil(retrieved)
		})
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDeleteOrder_DeliveredOrder_RejectedAndRowKept() {
	ctx := context.Background()

	orderID := suite.createPersistedOrder("VINET", order.Delivered)

	err := suite.repository.DeleteOrder(ctx, orderID)

	suite.Require().ErrorIs(err, order.ErrWrongOrderStatus)

	retrieved, err := suite.repository.GetOrder(ctx, orderID)
	suite.Require().NoError(err)
	suite.Require().NotNil(retrieved)
	suite.Equal(order.Delivered, retrieved.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDeleteOrder_NonExistentOrder_ReturnsNotFoundError() {
	err := suite.repository.DeleteOrder(context.Background(), 99999)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetOrderDetailedInformation_ReturnsLineItems() {
	ctx := context.Background()

	orderID := suite.createPersistedOrder("VINET", order.Processing)
	suite.seedProduct(11, "Queso Cabrales")
	suite.seedProduct(42, "Singaporean Hokkien Fried Mee")
	suite.seedProduct(72, "Mozzarella di Giovanni")
	suite.seedLineItem(orderID, 11, 14, 12, 0)
	suite.seedLineItem(orderID, 42, 9.8, 10, 0)
	suite.seedLineItem(orderID, 72, 34.8, 5, 0)

	infos, err := suite.repository.GetOrderDetailedInformation(ctx, orderID)
	suite.Require().NoError(err)
	suite.Require().Len(infos, 3)

	byProduct := make(map[int]order.OrderDetailedInfo, len(infos))
	for _, info := range infos {
		suite.Equal(orderID, info.OrderID)
		suite.Equal("VINET", info.CustomerID)
		byProduct[info.ProductID] = info
	}

	suite.Equal("Queso Cabrales", byProduct[11].ProductName)
	suite.Equal(float64(14), byProduct[11].UnitPrice)
	suite.Equal(12, byProduct[11].Quantity)
	suite.Equal("Singaporean Hokkien Fried Mee", byProduct[42].ProductName)
	suite.Equal("Mozzarella di Giovanni", byProduct[72].ProductName)
	suite.Equal(5, byProduct[72].Quantity)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetOrderDetailedInformation_NoLineItems_ReturnsEmptySlice() {
	ctx := context.Background()

	orderID := suite.createPersistedOrder("VINET", order.New)

	infos, err := suite.repository.GetOrderDetailedInformation(ctx, orderID)
	suite.Require().NoError(err)
	suite.Empty(infos)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetCustomerOrderHistory_SumsQuantitiesAcrossOrders() {
	ctx := context.Background()

	firstID := suite.createPersistedOrder("VINET", order.Delivered)
	secondID := suite.createPersistedOrder("VINET", order.Processing)
	otherID := suite.createPersistedOrder("TOMSP", order.New)

	suite.seedProduct(1, "Chai")
	suite.seedProduct(2, "Chang")
	suite.seedLineItem(firstID, 1, 18, 10, 0)
	suite.seedLineItem(secondID, 1, 18, 30, 0)
	suite.seedLineItem(secondID, 2, 19, 12, 0)
	suite.seedLineItem(otherID, 1, 18, 99, 0)

	history, err := suite.repository.GetCustomerOrderHistory(ctx, "VINET")
	suite.Require().NoError(err)

	suite.Equal([]order.OrderHistoryElement{
		{ProductName: "Chai", ProductCount: 40},
		{ProductName: "Chang", ProductCount: 12},
	}, history)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetCustomerOrderHistory_UnknownCustomer_ReturnsEmptySlice() {
	history, err := suite.repository.GetCustomerOrderHistory(context.Background(), "XXXXX")

	suite.Require().NoError(err)
	suite.Empty(history)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetCustomerOrderDetail_PricesLineItems() {
	ctx := context.Background()

	orderID := suite.createPersistedOrder("VINET", order.Processing)
	suite.seedProduct(1, "Chai")
	suite.seedProduct(2, "Chang")
	suite.seedLineItem(orderID, 1, 18, 10, 0.25)
	suite.seedLineItem(orderID, 2, 19, 5, 0)

	details, err := suite.repository.GetCustomerOrderDetail(ctx, orderID)
	suite.Require().NoError(err)

	suite.Equal([]order.OrderDetailElement{
		{ProductName: "Chai", UnitPrice: 18, Quantity: 10, Discount: 25, ExtendedPrice: 135},
		{ProductName: "Chang", UnitPrice: 19, Quantity: 5, Discount: 0, ExtendedPrice: 95},
	}, details)
}

// createPersistedOrder stores an order whose dates produce the wanted status
// and returns its assigned identifier.
func (suite *OrderRepositoryIntegrationTestSuite) createPersistedOrder(
	customerID string, status order.Status,
) int {
	return suite.createPersistedOrderWithFreight(customerID, status, 32.5)
}

func (suite *OrderRepositoryIntegrationTestSuite) createPersistedOrderWithFreight(
	customerID string, status order.Status, freight float64,
) int {
	testOrder, err := order.NewOrder(customerID, suite.testShipment())
	suite.Require().NoError(err)
	testOrder.SetFreight(freight)

	orderDate := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	switch status {
	case order.Processing:
		testOrder.StartProcessing(orderDate)
	case order.Delivered:
		testOrder.StartProcessing(orderDate)
		suite.Require().NoError(testOrder.Deliver(orderDate.AddDate(0, 0, 5)))
	}

	orderID, err := suite.repository.CreateOrder(context.Background(), testOrder)
	suite.Require().NoError(err)

	return orderID
}

func (suite *OrderRepositoryIntegrationTestSuite) seedProduct(productID int, name string) {
	err := suite.db.Create(&orderrepo.ProductDTO{ProductID: productID, ProductName: name}).Error
	suite.Require().NoError(err)
}

func (suite *OrderRepositoryIntegrationTestSuite) seedLineItem(
	orderID, productID int, unitPrice float64, quantity int, discount float32,
) {
	err := suite.db.Create(&orderrepo.OrderItemDTO{
		OrderID:   orderID,
		ProductID: productID,
		UnitPrice: unitPrice,
		Quantity:  quantity,
		Discount:  discount,
	}).Error
	suite.Require().NoError(err)
}

func (suite *OrderRepositoryIntegrationTestSuite) testShipment() order.ShipmentInfo {
	return order.NewShipmentInfo(
		"Vins et alcools Chevalier",
		"59 rue de l'Abbaye",
		"Reims",
		"",
		"51100",
		"France",
	)
}

// assertOrderCount verifies the number of orders in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
