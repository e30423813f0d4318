package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mockshop/commerce-api/internal/api/metrics"
	"github.com/mockshop/commerce-api/internal/api/middleware"
	"github.com/mockshop/commerce-api/internal/core/domain"
	"github.com/mockshop/commerce-api/internal/core/ports"
)

// OrderHandler handles order placement and the caller's order history.
type OrderHandler struct {
	orders ports.OrderService
}

func NewOrderHandler(orders ports.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// Create handles POST /orders.
//
// @Summary      Place an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      orderCreateRequest  true  "Order items"
// @Success      201   {object}  domain.Order
// @Failure      400   {object}  map[string]any
// @Failure      401   {object}  map[string]any
// @Failure      422   {object}  map[string]any
// @Router       /orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	var req orderCreateRequest
	if err := c.Bind(&req); err != nil {
		return malformedBody()
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	sub, _ := c.Get(middleware.CtxSubject).(string)

	order, err := h.orders.Place(c.Request().Context(), sub, req.toItems())
	if err != nil {
		return err
	}

	metrics.OrdersCreatedTotal.Inc()
	metrics.OrderValue.Observe(order.Total)
	return c.JSON(http.StatusCreated, order)
}

// Mine handles GET /orders/me — the caller's orders, oldest first.
//
// @Summary      List my orders
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Order
// @Failure      401  {object}  map[string]any
// @Router       /orders/me [get]
func (h *OrderHandler) Mine(c echo.Context) error {
	sub, _ := c.Get(middleware.CtxSubject).(string)

	orders, err := h.orders.ListForUser(c.Request().Context(), sub)
	if err != nil {
		return err
	}
	if orders == nil {
		orders = []*domain.Order{} // render [] rather than null
	}
	return c.JSON(http.StatusOK, orders)
}
