package service

import (
	"context"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"storefront-checkout-demo/internal/cache"
	"storefront-checkout-demo/internal/dto"
	"storefront-checkout-demo/internal/model"
	"storefront-checkout-demo/internal/repository"
)

// AttemptState tracks a single checkout attempt. Rejected and PersistFailed
// return the session to Idle with form state intact; Confirmed is terminal
// for the attempt and requires a fresh cart to start another.
type AttemptState string

const (
	AttemptIdle              AttemptState = "Idle"
	AttemptValidating        AttemptState = "Validating"
	AttemptRejected          AttemptState = "Rejected"
	AttemptGatedAwaitingCash AttemptState = "GatedAwaitingCash"
	AttemptSubmitting        AttemptState = "Submitting"
	AttemptConfirmed         AttemptState = "Confirmed"
	AttemptPersistFailed     AttemptState = "PersistFailed"
)

func (s AttemptState) IsTerminal() bool {
	return s == AttemptConfirmed
}

func (s AttemptState) String() string {
	return string(s)
}

// CheckoutResult reports where the attempt ended up. Order is set only when
// the attempt confirmed.
type CheckoutResult struct {
	State AttemptState
	Order *dto.Order
}

// CheckoutService reconciles the cart, the saved payment methods, the saved
// address and the transient form into an immutable order, or reports why not.
type CheckoutService interface {
	Finalize(ctx context.Context, session AuthSession, req dto.CheckoutRequest) (*CheckoutResult, error)
}

type checkoutServiceImpl struct {
	cart           *CartStore
	methodRepo     repository.PaymentMethodRepository
	profileRepo    repository.ProfileRepository
	ledger         repository.OrderLedger
	history        cache.OrderHistoryCache
	persistTimeout time.Duration
}

func NewCheckoutService(
	cart *CartStore,
	methodRepo repository.PaymentMethodRepository,
	profileRepo repository.ProfileRepository,
	ledger repository.OrderLedger,
	history cache.OrderHistoryCache,
	persistTimeout time.Duration,
) CheckoutService {
	return &checkoutServiceImpl{
		cart:           cart,
		methodRepo:     methodRepo,
		profileRepo:    profileRepo,
		ledger:         ledger,
		history:        history,
		persistTimeout: persistTimeout,
	}
}

var (
	emailPattern      = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	panPattern        = regexp.MustCompile(`^\d{12,19}$`)
	formExpiryPattern = regexp.MustCompile(`^\d{2}/\d{2}$`)
	formCvcPattern    = regexp.MustCompile(`^\d{3,4}$`)
)

// resolution holds the effective choices after overrides and fallbacks.
type resolution struct {
	fullName string
	email    string
	phone    string

	useSavedAddress bool
	paymentChoice   string // saved, new, cash
	selectedCard    *model.PaymentMethod

	profile *model.UserProfile
}

func (s *checkoutServiceImpl) resolve(ctx context.Context, session AuthSession, req dto.CheckoutRequest) (*resolution, error) {
	profile, err := s.profileRepo.Get(ctx, session.UserID)
	if err != nil {
		return nil, err
	}

	methods, err := s.methodRepo.ListByUser(ctx, session.UserID)
	if err != nil {
		return nil, err
	}

	var savedCards []model.PaymentMethod
	for _, m := range methods {
		if m.Type == "card" {
			savedCards = append(savedCards, m)
		}
	}

	r := &resolution{
		fullName: firstNonEmpty(req.FullName, session.FullName, profile.FullName),
		email:    firstNonEmpty(req.Email, session.Email, profile.Email),
		phone:    firstNonEmpty(req.Phone, session.Phone, profile.Phone),
		profile:  profile,
	}

	if req.UseSavedAddress != nil {
		r.useSavedAddress = *req.UseSavedAddress
	} else {
		r.useSavedAddress = hasSavedAddress(profile)
	}

	switch req.PaymentChoice {
	case "saved", "new", "cash":
		r.paymentChoice = req.PaymentChoice
	default:
		if len(savedCards) > 0 {
			r.paymentChoice = "saved"
		} else {
			r.paymentChoice = "new"
		}
	}

	// explicit selection wins, then the default card, then the first saved
	if req.SelectedCardID != "" {
		for i := range savedCards {
			if savedCards[i].ID == req.SelectedCardID {
				r.selectedCard = &savedCards[i]
				break
			}
		}
	} else {
		for i := range savedCards {
			if savedCards[i].IsDefault {
				r.selectedCard = &savedCards[i]
				break
			}
		}
		if r.selectedCard == nil && len(savedCards) > 0 {
			r.selectedCard = &savedCards[0]
		}
	}

	return r, nil
}

// validate fails fast; the first failing rule decides the reported message.
func validate(r *resolution, req dto.CheckoutRequest) *ValidationError {
	if r.fullName == "" {
		return validationErr("full_name", "Full name is required.")
	}
	if !emailPattern.MatchString(r.email) {
		return validationErr("email", "Please enter a valid email address.")
	}
	if r.phone == "" {
		return validationErr("phone", "Phone number is required.")
	}

	if !r.useSavedAddress {
		if strings.TrimSpace(req.Address) == "" {
			return validationErr("address", "Address is required.")
		}
		if strings.TrimSpace(req.City) == "" {
			return validationErr("city", "City is required.")
		}
		if strings.TrimSpace(req.PostalCode) == "" {
			return validationErr("postal_code", "Postal code is required.")
		}
		if strings.TrimSpace(req.Country) == "" {
			return validationErr("country", "Country is required.")
		}
	}

	if r.paymentChoice == "saved" && r.selectedCard == nil {
		return validationErr("selected_card_id", "Please select a saved card.")
	}

	if r.paymentChoice == "new" {
		if !panPattern.MatchString(strings.ReplaceAll(req.CardNumber, " ", "")) {
			return validationErr("card_number", "Enter a valid card number.")
		}
		if strings.TrimSpace(req.CardName) == "" {
			return validationErr("card_name", "Cardholder name is required.")
		}
		if !formExpiryPattern.MatchString(req.CardExpiry) {
			return validationErr("card_expiry", "Use card expiry format MM/YY.")
		}
		if !formCvcPattern.MatchString(req.CardCvc) {
			return validationErr("card_cvc", "Enter a valid CVC.")
		}
	}

	// cash needs nothing further
	return nil
}

func (s *checkoutServiceImpl) Finalize(ctx context.Context, session AuthSession, req dto.CheckoutRequest) (*CheckoutResult, error) {
	lines := s.cart.Lines(session.UserID)
	if len(lines) == 0 {
		return &CheckoutResult{State: AttemptRejected}, ErrEmptyCart
	}

	r, err := s.resolve(ctx, session, req)
	if err != nil {
		return &CheckoutResult{State: AttemptRejected}, &PersistenceError{Err: err}
	}

	if vErr := validate(r, req); vErr != nil {
		return &CheckoutResult{State: AttemptRejected}, vErr
	}

	// the gate fires after validation so invalid card details report the
	// field error, valid ones the coming-soon notice
	if r.paymentChoice == "saved" || r.paymentChoice == "new" {
		return &CheckoutResult{State: AttemptGatedAwaitingCash}, ErrUnsupportedPaymentMethod
	}

	order, items := s.buildOrder(session, r, req, lines)

	persistCtx, cancel := context.WithTimeout(ctx, s.persistTimeout)
	defer cancel()

	if err := s.ledger.SaveOrder(persistCtx, order, items); err != nil {
		// cart and form stay intact so the user can retry
		return &CheckoutResult{State: AttemptPersistFailed}, &PersistenceError{Err: err}
	}

	s.cart.Clear(session.UserID)

	orderDTO := orderToDTO(*order, itemValues(items))
	if err := s.history.Prepend(ctx, session.UserID, orderDTO); err != nil {
		log.Printf("order history cache prepend error: %v", err)
	}

	return &CheckoutResult{State: AttemptConfirmed, Order: &orderDTO}, nil
}

func (s *checkoutServiceImpl) buildOrder(session AuthSession, r *resolution, req dto.CheckoutRequest, lines []CartLine) (*model.Order, []*model.OrderItem) {
	var subtotal int64
	for _, line := range lines {
		subtotal += line.UnitPrice * int64(line.Quantity)
	}

	// shipping and tax are fixed at zero, pricing engines are out of scope
	var shipping, tax int64
	total := subtotal + shipping + tax

	address, city, postalCode, country := req.Address, req.City, req.PostalCode, req.Country
	if r.useSavedAddress && hasSavedAddress(r.profile) {
		address = r.profile.AddressStreet
		city = r.profile.AddressCity
		postalCode = r.profile.AddressPostalCode
		country = r.profile.CountryName
	}

	order := &model.Order{
		OrderID:            newOrderID(),
		UserID:             session.UserID,
		Status:             "Processing",
		Subtotal:           subtotal,
		Shipping:           shipping,
		Tax:                tax,
		Total:              total,
		PaymentMethod:      "cash",
		CustomerFullName:   r.fullName,
		CustomerEmail:      r.email,
		CustomerPhone:      r.phone,
		CustomerAddress:    address,
		CustomerCity:       city,
		CustomerPostalCode: postalCode,
		CustomerCountry:    country,
		CreatedAt:          time.Now(),
	}

	items := make([]*model.OrderItem, len(lines))
	for i, line := range lines {
		items[i] = &model.OrderItem{
			OrderID:   order.OrderID,
			ProductID: line.ProductID,
			Name:      line.Name,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			Image:     line.Image,
		}
	}

	return order, items
}

// newOrderID keeps the storefront's ORD- prefix but derives the suffix from a
// uuid, no uniqueness check runs against existing orders before the write.
func newOrderID() string {
	return "ORD-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:12])
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

func itemValues(items []*model.OrderItem) []model.OrderItem {
	out := make([]model.OrderItem, len(items))
	for i, item := range items {
		out[i] = *item
	}
	return out
}
