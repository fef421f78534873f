package cmd

import (
	httpadapter "seomarket/internal/adapters/in/http"
	"seomarket/internal/adapters/out/metrics"
	"seomarket/internal/adapters/out/postgres"
	"seomarket/internal/core/application/usecases/commands"
	"seomarket/internal/core/application/usecases/queries"
	"seomarket/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	metrics    *metrics.Metrics
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, m *metrics.Metrics) CompositionRoot {
	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		metrics:    m,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.StatusUoWFactory = FuncStatusUoWFactory(func() commands.StatusUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f, c.cfg.KafkaOrderStatusChangedTopic, c.metrics)
}

func (c *CompositionRoot) CreateUpdateOrderPricingCommandHandler() commands.UpdateOrderPricingCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderPricingCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateRelayOutboxCommandHandler(publisher ports.EventPublisher) commands.RelayOutboxCommandHandler {
	var f commands.OutboxUoWFactory = FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRelayOutboxCommandHandler(f, publisher)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderStatusHistoryQueryHandler() queries.GetOrderStatusHistoryQueryHandler {
	return queries.NewGetOrderStatusHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllowedOrderStatusesQueryHandler() queries.GetAllowedOrderStatusesQueryHandler {
	return queries.NewGetAllowedOrderStatusesQueryHandler()
}

// HTTPHandlers collects the use cases served by the REST adapter.
func (c *CompositionRoot) HTTPHandlers() httpadapter.Handlers {
	return httpadapter.Handlers{
		CreateOrder:             c.CreateCreateOrderCommandHandler(),
		ChangeOrderStatus:       c.CreateChangeOrderStatusCommandHandler(),
		UpdateOrderPricing:      c.CreateUpdateOrderPricingCommandHandler(),
		DeleteOrder:             c.CreateDeleteOrderCommandHandler(),
		GetOrder:                c.CreateGetOrderQueryHandler(),
		GetActiveOrders:         c.CreateGetActiveOrdersQueryHandler(),
		GetOrderStatusHistory:   c.CreateGetOrderStatusHistoryQueryHandler(),
		GetAllowedOrderStatuses: c.CreateGetAllowedOrderStatusesQueryHandler(),
	}
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncStatusUoWFactory func() commands.StatusUoW

func (f FuncStatusUoWFactory) Create() commands.StatusUoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}
