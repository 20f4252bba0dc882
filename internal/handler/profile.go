package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront-checkout-demo/internal/card"
	"storefront-checkout-demo/internal/dto"
	"storefront-checkout-demo/internal/middleware"
	"storefront-checkout-demo/internal/model"
	"storefront-checkout-demo/internal/service"
)

// ProfileHandler is the profile-management surface: the saved address and the
// payment method vault, both independently mutable from checkout.
type ProfileHandler struct {
	vault   service.VaultService
	address service.AddressService
}

func NewProfileHandler(vault service.VaultService, address service.AddressService) *ProfileHandler {
	return &ProfileHandler{
		vault:   vault,
		address: address,
	}
}

func (h *ProfileHandler) ListPaymentMethods(c echo.Context) error {
	ctx := c.Request().Context()
	session := middleware.SessionFromContext(c)

	methods, err := h.vault.ListCards(ctx, session.UserID)
	if err != nil {
		return httpError(err)
	}

	out := make([]dto.PaymentMethodResponse, len(methods))
	for i, m := range methods {
		out[i] = paymentMethodResponse(m)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProfileHandler) AddPaymentMethod(c echo.Context) error {
	ctx := c.Request().Context()
	session := middleware.SessionFromContext(c)

	var req dto.AddCardRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	method, err := h.vault.AddCard(ctx, session.UserID, req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, paymentMethodResponse(*method))
}

func (h *ProfileHandler) RemovePaymentMethod(c echo.Context) error {
	ctx := c.Request().Context()
	session := middleware.SessionFromContext(c)

	if err := h.vault.RemoveCard(ctx, session.UserID, c.Param("methodID")); err != nil {
		return httpError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// PreviewCard formats card input for display and reports the detected brand.
// Nothing is validated or stored here.
func (h *ProfileHandler) PreviewCard(c echo.Context) error {
	var req dto.CardPreviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	return c.JSON(http.StatusOK, &dto.CardPreviewResponse{
		FormattedNumber: card.FormatNumber(req.CardNumber),
		FormattedExpiry: card.FormatExpiry(req.Expiry),
		Brand:           card.DetectBrand(card.Digits(req.CardNumber)),
	})
}

func (h *ProfileHandler) GetAddress(c echo.Context) error {
	ctx := c.Request().Context()
	session := middleware.SessionFromContext(c)

	profile, err := h.address.Get(ctx, session.UserID)
	if err != nil {
		return httpError(err)
	}

	hasAddress, err := h.address.HasAddress(ctx, session.UserID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, addressResponse(profile, hasAddress))
}

func (h *ProfileHandler) SaveAddress(c echo.Context) error {
	ctx := c.Request().Context()
	session := middleware.SessionFromContext(c)

	var req dto.SaveAddressRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	profile, err := h.address.Save(ctx, session.UserID, req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, addressResponse(profile, true))
}

func (h *ProfileHandler) ClearAddress(c echo.Context) error {
	ctx := c.Request().Context()
	session := middleware.SessionFromContext(c)

	if err := h.address.Clear(ctx, session.UserID); err != nil {
		return httpError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func paymentMethodResponse(m model.PaymentMethod) dto.PaymentMethodResponse {
	return dto.PaymentMethodResponse{
		ID:                m.ID,
		Type:              m.Type,
		HolderName:        m.HolderName,
		Brand:             m.Brand,
		Last4:             m.Last4,
		Expiry:            m.Expiry,
		BillingPostalCode: m.BillingPostalCode,
		IsDefault:         m.IsDefault,
		CreatedAt:         m.CreatedAt,
	}
}

func addressResponse(profile *model.UserProfile, hasAddress bool) *dto.AddressResponse {
	return &dto.AddressResponse{
		Phone:        profile.Phone,
		CountryCode:  profile.CountryCode,
		CountryName:  profile.CountryName,
		ProvinceCode: profile.ProvinceCode,
		ProvinceName: profile.ProvinceName,
		Street:       profile.AddressStreet,
		City:         profile.AddressCity,
		PostalCode:   profile.AddressPostalCode,
		HasAddress:   hasAddress,
	}
}
