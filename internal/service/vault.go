package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"storefront-checkout-demo/internal/card"
	"storefront-checkout-demo/internal/dto"
	"storefront-checkout-demo/internal/model"
	"storefront-checkout-demo/internal/repository"
)

// VaultService manages a single user's saved payment methods. Only brand and
// last4 survive validation; the full card number is never stored.
type VaultService interface {
	ListCards(ctx context.Context, userID string) ([]model.PaymentMethod, error)
	AddCard(ctx context.Context, userID string, req dto.AddCardRequest) (*model.PaymentMethod, error)
	RemoveCard(ctx context.Context, userID, methodID string) error
}

type vaultServiceImpl struct {
	methodRepo repository.PaymentMethodRepository
}

func NewVaultService(methodRepo repository.PaymentMethodRepository) VaultService {
	return &vaultServiceImpl{
		methodRepo: methodRepo,
	}
}

func (s *vaultServiceImpl) ListCards(ctx context.Context, userID string) ([]model.PaymentMethod, error) {
	methods, err := s.methodRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list payment methods: %w", err)
	}

	return methods, nil
}

// AddCard validates the candidate card field by field, first failure wins.
// The first method a user ever saves becomes their default.
func (s *vaultServiceImpl) AddCard(ctx context.Context, userID string, req dto.AddCardRequest) (*model.PaymentMethod, error) {
	holderName := strings.TrimSpace(req.HolderName)
	if holderName == "" {
		return nil, validationErr("holder_name", "Please enter the cardholder name.")
	}

	digits := card.Digits(req.CardNumber)
	if len(digits) < 12 {
		return nil, validationErr("card_number", "Please enter a valid card number.")
	}

	expiry := card.FormatExpiry(req.Expiry)
	if !card.ValidExpiry(expiry) {
		return nil, validationErr("expiry", "Please use card expiry format MM/YY.")
	}

	if !card.ValidCVV(req.CVV) {
		return nil, validationErr("cvv", "Please enter a valid CVV.")
	}

	billingPostalCode := strings.TrimSpace(req.BillingPostalCode)
	if billingPostalCode == "" {
		return nil, validationErr("billing_postal_code", "Please enter billing postal code.")
	}

	existing, err := s.methodRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count payment methods: %w", err)
	}

	method := &model.PaymentMethod{
		ID:                uuid.NewString(),
		UserID:            userID,
		Type:              "card",
		HolderName:        holderName,
		Brand:             card.DetectBrand(digits),
		Last4:             card.Last4(digits),
		Expiry:            expiry,
		BillingPostalCode: billingPostalCode,
		IsDefault:         existing == 0,
	}

	if err := s.methodRepo.Create(ctx, method); err != nil {
		return nil, fmt.Errorf("store payment method: %w", err)
	}

	return method, nil
}

// RemoveCard deletes a non-default method. The default is never removable;
// there is no promotion of a replacement default.
func (s *vaultServiceImpl) RemoveCard(ctx context.Context, userID, methodID string) error {
	method, err := s.methodRepo.FindByID(ctx, userID, methodID)
	if err != nil {
		return err
	}

	if method.IsDefault {
		return ErrDefaultMethodProtected
	}

	return s.methodRepo.Delete(ctx, userID, methodID)
}
