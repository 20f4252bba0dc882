package service

import (
	"context"
	"fmt"
	"strings"

	"storefront-checkout-demo/internal/dto"
	"storefront-checkout-demo/internal/model"
	"storefront-checkout-demo/internal/repository"
)

// AddressService manages the single saved shipping address on a user profile.
// Profile writes are last-write-wins merges; no concurrency tokens.
type AddressService interface {
	Get(ctx context.Context, userID string) (*model.UserProfile, error)
	Save(ctx context.Context, userID string, req dto.SaveAddressRequest) (*model.UserProfile, error)
	Clear(ctx context.Context, userID string) error
	HasAddress(ctx context.Context, userID string) (bool, error)
}

type addressServiceImpl struct {
	profileRepo repository.ProfileRepository
}

func NewAddressService(profileRepo repository.ProfileRepository) AddressService {
	return &addressServiceImpl{
		profileRepo: profileRepo,
	}
}

func (s *addressServiceImpl) Get(ctx context.Context, userID string) (*model.UserProfile, error) {
	profile, err := s.profileRepo.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}

	return profile, nil
}

func (s *addressServiceImpl) Save(ctx context.Context, userID string, req dto.SaveAddressRequest) (*model.UserProfile, error) {
	if req.CountryCode == "" || req.CountryName == "" {
		return nil, validationErr("country", "Please select a country.")
	}
	if req.ProvinceCode == "" {
		return nil, validationErr("province", "Please select a province.")
	}
	if strings.TrimSpace(req.Street) == "" || strings.TrimSpace(req.City) == "" || strings.TrimSpace(req.PostalCode) == "" {
		return nil, validationErr("address", "Please complete your address (street, city, postal code).")
	}
	if strings.TrimSpace(req.Phone) == "" {
		return nil, validationErr("phone", "Please enter your phone number.")
	}

	profile := &model.UserProfile{
		UserID:            userID,
		Phone:             strings.TrimSpace(req.Phone),
		CountryCode:       req.CountryCode,
		CountryName:       req.CountryName,
		ProvinceCode:      req.ProvinceCode,
		ProvinceName:      req.ProvinceName,
		AddressStreet:     strings.TrimSpace(req.Street),
		AddressCity:       strings.TrimSpace(req.City),
		AddressPostalCode: strings.TrimSpace(req.PostalCode),
	}

	if err := s.profileRepo.UpsertAddress(ctx, profile); err != nil {
		return nil, fmt.Errorf("save address: %w", err)
	}

	return profile, nil
}

// Clear blanks the address fields. A populated street marks the default
// address, which is not removable.
func (s *addressServiceImpl) Clear(ctx context.Context, userID string) error {
	profile, err := s.profileRepo.Get(ctx, userID)
	if err != nil {
		return fmt.Errorf("load profile: %w", err)
	}

	if profile.AddressStreet != "" {
		return ErrDefaultAddressProtected
	}

	return s.profileRepo.ClearAddress(ctx, userID)
}

func (s *addressServiceImpl) HasAddress(ctx context.Context, userID string) (bool, error) {
	profile, err := s.profileRepo.Get(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("load profile: %w", err)
	}

	return hasSavedAddress(profile), nil
}

func hasSavedAddress(profile *model.UserProfile) bool {
	return profile.AddressStreet != "" &&
		profile.AddressCity != "" &&
		profile.AddressPostalCode != "" &&
		profile.CountryName != ""
}
