package http

import (
	"net/http"

	"seomarket/internal/core/application/usecases/queries"
	"seomarket/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// GetOrderStatuses handles GET /api/v1/order-statuses: every status with its
// label, in lifecycle order.
func (s *Server) GetOrderStatuses(c echo.Context) error {
	return c.JSON(http.StatusOK, toStatusOptions(order.AllStatuses()))
}

// GetAllowedOrderStatuses handles GET /api/v1/order-statuses/allowed: the
// statuses the caller's role may request.
func (s *Server) GetAllowedOrderStatuses(c echo.Context) error {
	query, err := queries.NewGetAllowedOrderStatusesQuery(requesterFrom(c).Role())
	if err != nil {
		return s.writeError(c, err)
	}

	options, err := s.handlers.GetAllowedOrderStatuses.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, fromQueryOptions(options))
}
