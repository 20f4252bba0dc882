package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront-checkout-demo/internal/repository"
	"storefront-checkout-demo/internal/service"
)

// httpError maps the service error taxonomy onto HTTP responses. Persistence
// detail is logged, the user only ever sees a generic retry message.
func httpError(err error) error {
	var vErr *service.ValidationError
	if errors.As(err, &vErr) {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{
			"error": vErr.Message,
			"field": vErr.Field,
		})
	}

	var pErr *service.PersistenceError
	if errors.As(err, &pErr) {
		log.Printf("persistence failure: %v", pErr.Err)
		return echo.NewHTTPError(http.StatusBadGateway, "Failed to place order. Please try again.")
	}

	switch {
	case errors.Is(err, service.ErrUnsupportedPaymentMethod):
		return echo.NewHTTPError(http.StatusConflict, "Card payment is coming soon. Please use Cash on Delivery for now.")
	case errors.Is(err, service.ErrDefaultMethodProtected):
		return echo.NewHTTPError(http.StatusConflict, "Default card cannot be removed.")
	case errors.Is(err, service.ErrDefaultAddressProtected):
		return echo.NewHTTPError(http.StatusConflict, "Default address cannot be removed.")
	case errors.Is(err, service.ErrEmptyCart):
		return echo.NewHTTPError(http.StatusBadRequest, "Your cart is empty.")
	case errors.Is(err, repository.ErrPaymentMethodNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Payment method not found.")
	}

	return err
}
