package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"storefront-checkout-demo/internal/model"
)

type ProfileRepository interface {
	Get(ctx context.Context, userID string) (*model.UserProfile, error)
	UpsertAddress(ctx context.Context, profile *model.UserProfile) error
	ClearAddress(ctx context.Context, userID string) error
}

type profileRepoImpl struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepoImpl{
		db: db,
	}
}

func (r *profileRepoImpl) Get(ctx context.Context, userID string) (*model.UserProfile, error) {
	var profile model.UserProfile
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profile).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		// absent profile reads as an empty one, matching merge-write semantics
		return &model.UserProfile{UserID: userID}, nil
	}
	if err != nil {
		return nil, err
	}

	return &profile, nil
}

func (r *profileRepoImpl) UpsertAddress(ctx context.Context, profile *model.UserProfile) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"phone":               profile.Phone,
			"country_code":        profile.CountryCode,
			"country_name":        profile.CountryName,
			"province_code":       profile.ProvinceCode,
			"province_name":       profile.ProvinceName,
			"address_street":      profile.AddressStreet,
			"address_city":        profile.AddressCity,
			"address_postal_code": profile.AddressPostalCode,
			"updated_at":          time.Now(),
		}),
	}).Create(profile).Error
}

func (r *profileRepoImpl) ClearAddress(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Model(&model.UserProfile{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"address_street":      "",
			"address_city":        "",
			"address_postal_code": "",
			"province_code":       "",
			"province_name":       "",
			"updated_at":          time.Now(),
		}).Error
}
