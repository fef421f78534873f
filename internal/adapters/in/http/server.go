// Package http is the REST adapter of the order service.
//
// The caller's identity is resolved by the upstream auth gateway and arrives in
// the X-User-ID and X-User-Role headers; every /api/v1 route requires both.
package http

import (
	"context"
	"log/slog"
	"net/http"

	"seomarket/internal/core/application/usecases/commands"
	"seomarket/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// Use case ports of the server. The application handlers satisfy them; tests
// substitute mocks.
type (
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) error
	}

	ChangeOrderStatusHandler interface {
		Handle(ctx context.Context, cmd commands.ChangeOrderStatusCommand) (commands.ChangeOrderStatusResult, error)
	}

	UpdateOrderPricingHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateOrderPricingCommand) error
	}

	DeleteOrderHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteOrderCommand) error
	}

	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.GetOrderQueryResponse, error)
	}

	GetActiveOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetActiveOrdersQuery) ([]queries.GetActiveOrdersQueryResponse, error)
	}

	GetOrderStatusHistoryHandler interface {
		Handle(
			ctx context.Context,
			query queries.GetOrderStatusHistoryQuery,
		) ([]queries.GetOrderStatusHistoryQueryResponse, error)
	}

	GetAllowedOrderStatusesHandler interface {
		Handle(ctx context.Context, query queries.GetAllowedOrderStatusesQuery) ([]queries.StatusOption, error)
	}
)

// Handlers groups the use cases the server exposes.
type Handlers struct {
	CreateOrder             CreateOrderHandler
	ChangeOrderStatus       ChangeOrderStatusHandler
	UpdateOrderPricing      UpdateOrderPricingHandler
	DeleteOrder             DeleteOrderHandler
	GetOrder                GetOrderHandler
	GetActiveOrders         GetActiveOrdersHandler
	GetOrderStatusHistory   GetOrderStatusHistoryHandler
	GetAllowedOrderStatuses GetAllowedOrderStatusesHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger.With("component", "http_server"),
	}
}

// RegisterRoutes mounts the health check and the /api/v1 routes on e.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	api := e.Group("/api/v1", RequireRequester())

	api.GET("/order-statuses", s.GetOrderStatuses)
	api.GET("/order-statuses/allowed", s.GetAllowedOrderStatuses)

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/active", s.GetActiveOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.DELETE("/orders/:id", s.DeleteOrder)
	api.PATCH("/orders/:id/status", s.ChangeOrderStatus)
	api.PATCH("/orders/:id/pricing", s.UpdateOrderPricing)
	api.GET("/orders/:id/history", s.GetOrderStatusHistory)
}
