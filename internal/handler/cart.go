package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront-checkout-demo/internal/dto"
	"storefront-checkout-demo/internal/middleware"
	"storefront-checkout-demo/internal/service"
)

type CartHandler struct {
	cart *service.CartStore
}

func NewCartHandler(cart *service.CartStore) *CartHandler {
	return &CartHandler{
		cart: cart,
	}
}

func (h *CartHandler) GetCart(c echo.Context) error {
	session := middleware.SessionFromContext(c)
	return c.JSON(http.StatusOK, h.cartResponse(session.UserID))
}

func (h *CartHandler) AddItem(c echo.Context) error {
	session := middleware.SessionFromContext(c)

	var req dto.AddCartItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}
	if req.ProductID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "product_id is required")
	}

	qty := req.Quantity
	if qty == 0 {
		qty = 1
	}
	h.cart.Add(session.UserID, service.CartLine{
		ProductID: req.ProductID,
		Name:      req.Name,
		UnitPrice: req.UnitPrice,
		Quantity:  qty,
		Image:     req.Image,
		Category:  req.Category,
	})

	return c.JSON(http.StatusOK, h.cartResponse(session.UserID))
}

func (h *CartHandler) DecreaseItem(c echo.Context) error {
	session := middleware.SessionFromContext(c)
	h.cart.Decrease(session.UserID, c.Param("productID"))
	return c.JSON(http.StatusOK, h.cartResponse(session.UserID))
}

func (h *CartHandler) RemoveItem(c echo.Context) error {
	session := middleware.SessionFromContext(c)
	h.cart.Remove(session.UserID, c.Param("productID"))
	return c.JSON(http.StatusOK, h.cartResponse(session.UserID))
}

func (h *CartHandler) ClearCart(c echo.Context) error {
	session := middleware.SessionFromContext(c)
	h.cart.Clear(session.UserID)
	return c.JSON(http.StatusOK, h.cartResponse(session.UserID))
}

func (h *CartHandler) cartResponse(userID string) *dto.CartResponse {
	lines := h.cart.Lines(userID)
	items := make([]dto.CartLine, len(lines))
	for i, line := range lines {
		items[i] = dto.CartLine{
			ProductID: line.ProductID,
			Name:      line.Name,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
			Image:     line.Image,
			Category:  line.Category,
		}
	}

	subtotal := h.cart.Subtotal(userID)
	return &dto.CartResponse{
		Items:           items,
		Subtotal:        subtotal,
		SubtotalDisplay: dto.Money(subtotal),
	}
}
