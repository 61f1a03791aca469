package cmd

import (
	"northwind/internal/adapters/out/postgres/orderrepo"
	"northwind/internal/core/application/usecases/commands"
	"northwind/internal/core/application/usecases/queries"
	"northwind/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB          *gorm.DB
	orderRepository ports.OrderRepository
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:          gormDB,
		orderRepository: orderrepo.NewGormOrderRepository(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderRepository)
}

func (c *CompositionRoot) CreateEditOrderCommandHandler() commands.EditOrderCommandHandler {
	return commands.NewEditOrderCommandHandler(c.orderRepository)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderRepository)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.orderRepository)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.orderRepository)
}

func (c *CompositionRoot) CreateGetOrderDetailedInformationQueryHandler() queries.GetOrderDetailedInformationQueryHandler {
	return queries.NewGetOrderDetailedInformationQueryHandler(c.orderRepository)
}

func (c *CompositionRoot) CreateGetNextOrderIDQueryHandler() queries.GetNextOrderIDQueryHandler {
	return queries.NewGetNextOrderIDQueryHandler(c.orderRepository)
}

func (c *CompositionRoot) CreateGetCustomerOrderHistoryQueryHandler() queries.GetCustomerOrderHistoryQueryHandler {
	return queries.NewGetCustomerOrderHistoryQueryHandler(c.orderRepository)
}

func (c *CompositionRoot) CreateGetCustomerOrderDetailQueryHandler() queries.GetCustomerOrderDetailQueryHandler {
	return queries.NewGetCustomerOrderDetailQueryHandler(c.orderRepository)
}
