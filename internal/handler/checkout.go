package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront-checkout-demo/internal/dto"
	"storefront-checkout-demo/internal/middleware"
	"storefront-checkout-demo/internal/service"
)

type CheckoutHandler struct {
	checkout service.CheckoutService
	orders   service.OrderHistoryService
}

func NewCheckoutHandler(checkout service.CheckoutService, orders service.OrderHistoryService) *CheckoutHandler {
	return &CheckoutHandler{
		checkout: checkout,
		orders:   orders,
	}
}

func (h *CheckoutHandler) PlaceOrder(c echo.Context) error {
	ctx := c.Request().Context()
	session := middleware.SessionFromContext(c)

	var req dto.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	result, err := h.checkout.Finalize(ctx, session, req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, result.Order)
}

func (h *CheckoutHandler) ListOrders(c echo.Context) error {
	ctx := c.Request().Context()
	session := middleware.SessionFromContext(c)

	orders, err := h.orders.List(ctx, session.UserID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, &dto.OrderListResponse{Orders: orders})
}
