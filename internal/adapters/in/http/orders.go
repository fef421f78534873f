package http

import (
	"net/http"
	"strconv"

	"seomarket/internal/core/application/usecases/commands"
	"seomarket/internal/core/application/usecases/queries"
	"seomarket/internal/core/domain/model/kernel"
	"seomarket/internal/core/domain/model/order"
	"seomarket/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	var body NewOrder
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	domainID, err := parseUUID("domainId", body.DomainID)
	if err != nil {
		return s.writeError(c, err)
	}
	teamID, err := parseUUID("teamId", body.TeamID)
	if err != nil {
		return s.writeError(c, err)
	}
	price, err := parseMoney("price", body.Price, true)
	if err != nil {
		return s.writeError(c, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(requesterFrom(c), orderID, domainID, teamID, price)
	if err != nil {
		return s.writeError(c, err)
	}

	if err = s.handlers.CreateOrder.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusCreated, CreatedOrder{ID: orderID.String()})
}

// GetActiveOrders handles GET /api/v1/orders/active?limit=N.
func (s *Server) GetActiveOrders(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return badRequest(c, "limit must be an integer")
		}
		limit = parsed
	}

	query, err := queries.NewGetActiveOrdersQuery(limit)
	if err != nil {
		return s.writeError(c, err)
	}

	orders, err := s.handlers.GetActiveOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}

	response := make([]ActiveOrder, 0, len(orders))
	for _, o := range orders {
		response = append(response, toActiveOrder(o))
	}
	return c.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(c echo.Context) error {
	orderID, err := parseUUID("id", c.Param("id"))
	if err != nil {
		return s.writeError(c, err)
	}

	query, err := queries.NewGetOrderQuery(requesterFrom(c), orderID)
	if err != nil {
		return s.writeError(c, err)
	}

	o, err := s.handlers.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, toOrder(o))
}

// DeleteOrder handles DELETE /api/v1/orders/:id.
func (s *Server) DeleteOrder(c echo.Context) error {
	orderID, err := parseUUID("id", c.Param("id"))
	if err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(requesterFrom(c), orderID)
	if err != nil {
		return s.writeError(c, err)
	}

	if err = s.handlers.DeleteOrder.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ChangeOrderStatus handles PATCH /api/v1/orders/:id/status.
func (s *Server) ChangeOrderStatus(c echo.Context) error {
	orderID, err := parseUUID("id", c.Param("id"))
	if err != nil {
		return s.writeError(c, err)
	}

	var body StatusChange
	if err = c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	status, err := order.ParseStatus(body.Status)
	if err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(requesterFrom(c), orderID, status, body.FileURL)
	if err != nil {
		return s.writeError(c, err)
	}

	result, err := s.handlers.ChangeOrderStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, StatusChangeResult{
		Status:          toStatusOption(result.Status),
		AllowedStatuses: toStatusOptions(result.AllowedStatuses),
	})
}

// UpdateOrderPricing handles PATCH /api/v1/orders/:id/pricing.
func (s *Server) UpdateOrderPricing(c echo.Context) error {
	orderID, err := parseUUID("id", c.Param("id"))
	if err != nil {
		return s.writeError(c, err)
	}

	var body PricingChange
	if err = c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	price, err := parseMoney("price", body.Price, true)
	if err != nil {
		return s.writeError(c, err)
	}
	discount, err := parseMoney("discount", body.Discount, false)
	if err != nil {
		return s.writeError(c, err)
	}
	adjustment, err := parseMoney("priceAdjustment", body.PriceAdjustment, false)
	if err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewUpdateOrderPricingCommand(requesterFrom(c), orderID, price, discount, adjustment)
	if err != nil {
		return s.writeError(c, err)
	}

	if err = s.handlers.UpdateOrderPricing.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetOrderStatusHistory handles GET /api/v1/orders/:id/history.
func (s *Server) GetOrderStatusHistory(c echo.Context) error {
	orderID, err := parseUUID("id", c.Param("id"))
	if err != nil {
		return s.writeError(c, err)
	}

	query, err := queries.NewGetOrderStatusHistoryQuery(orderID)
	if err != nil {
		return s.writeError(c, err)
	}

	history, err := s.handlers.GetOrderStatusHistory.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}

	response := make([]HistoryEntry, 0, len(history))
	for _, e := range history {
		response = append(response, toHistoryEntry(e))
	}
	return c.JSON(http.StatusOK, response)
}

func parseUUID(param, raw string) (kernel.UUID, error) {
	if raw == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError(param)
	}
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(param, err)
	}
	return id, nil
}

// parseMoney treats a missing optional amount as zero.
func parseMoney(param string, amount *decimal.Decimal, required bool) (kernel.Money, error) {
	if amount == nil {
		if required {
			return kernel.Money{}, errs.NewValueIsRequiredError(param)
		}
		return kernel.ZeroMoney(), nil
	}

	m, err := kernel.NewMoney(*amount)
	if err != nil {
		return kernel.Money{}, errs.NewValueIsInvalidErrorWithCause(param, err)
	}
	return m, nil
}
