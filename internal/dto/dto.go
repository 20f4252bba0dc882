package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Money renders a minor-unit amount as a fixed two-decimal string for display.
func Money(minorUnits int64) string {
	return decimal.NewFromInt(minorUnits).Shift(-2).StringFixed(2)
}

type AddCartItemRequest struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unit_price"` // minor units
	Quantity  int32  `json:"quantity"`
	Image     string `json:"image"`
	Category  string `json:"category"`
}

type CartLine struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unit_price"`
	Quantity  int32  `json:"quantity"`
	Image     string `json:"image"`
	Category  string `json:"category"`
}

type CartResponse struct {
	Items           []CartLine `json:"items"`
	Subtotal        int64      `json:"subtotal"`
	SubtotalDisplay string     `json:"subtotal_display"`
}

type AddCardRequest struct {
	HolderName        string `json:"holder_name"`
	CardNumber        string `json:"card_number"`
	Expiry            string `json:"expiry"`
	CVV               string `json:"cvv"`
	BillingPostalCode string `json:"billing_postal_code"`
}

type CardPreviewRequest struct {
	CardNumber string `json:"card_number"`
	Expiry     string `json:"expiry"`
}

// CardPreviewResponse echoes display-formatted input so the client can show
// the grouped number and detected brand as the user types. Nothing persists.
type CardPreviewResponse struct {
	FormattedNumber string `json:"formatted_number"`
	FormattedExpiry string `json:"formatted_expiry"`
	Brand           string `json:"brand"`
}

type PaymentMethodResponse struct {
	ID                string    `json:"id"`
	Type              string    `json:"type"`
	HolderName        string    `json:"holder_name"`
	Brand             string    `json:"brand"`
	Last4             string    `json:"last4"`
	Expiry            string    `json:"expiry"`
	BillingPostalCode string    `json:"billing_postal_code"`
	IsDefault         bool      `json:"is_default"`
	CreatedAt         time.Time `json:"created_at"`
}

type SaveAddressRequest struct {
	Phone        string `json:"phone"`
	CountryCode  string `json:"country_code"`
	CountryName  string `json:"country_name"`
	ProvinceCode string `json:"province_code"`
	ProvinceName string `json:"province_name"`
	Street       string `json:"street"`
	City         string `json:"city"`
	PostalCode   string `json:"postal_code"`
}

type AddressResponse struct {
	Phone        string `json:"phone"`
	CountryCode  string `json:"country_code"`
	CountryName  string `json:"country_name"`
	ProvinceCode string `json:"province_code"`
	ProvinceName string `json:"province_name"`
	Street       string `json:"street"`
	City         string `json:"city"`
	PostalCode   string `json:"postal_code"`
	HasAddress   bool   `json:"has_address"`
}

// CheckoutRequest is the transient checkout form plus the session override
// flags. A nil UseSavedAddress and an empty PaymentChoice mean "no explicit
// choice this session" and fall back to the computed defaults.
type CheckoutRequest struct {
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`

	CardNumber string `json:"card_number"`
	CardName   string `json:"card_name"`
	CardExpiry string `json:"card_expiry"`
	CardCvc    string `json:"card_cvc"`

	UseSavedAddress *bool  `json:"use_saved_address"`
	PaymentChoice   string `json:"payment_choice"` // saved, new, cash
	SelectedCardID  string `json:"selected_card_id"`
}

type OrderItem struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int32  `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
	Image     string `json:"image"`
}

type OrderCustomer struct {
	FullName      string `json:"full_name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	City          string `json:"city"`
	PostalCode    string `json:"postal_code"`
	Country       string `json:"country"`
	PaymentMethod string `json:"payment_method"`
}

type Order struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Status    string    `json:"status"`

	Subtotal int64 `json:"subtotal"`
	Shipping int64 `json:"shipping"`
	Tax      int64 `json:"tax"`
	Total    int64 `json:"total"`

	SubtotalDisplay string `json:"subtotal_display"`
	TotalDisplay    string `json:"total_display"`

	PaymentMethod   string `json:"payment_method"`
	PaymentMethodID string `json:"payment_method_id,omitempty"`

	Items    []OrderItem   `json:"items"`
	Customer OrderCustomer `json:"customer"`
}

type OrderListResponse struct {
	Orders []Order `json:"orders"`
}
