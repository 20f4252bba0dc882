package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"storefront-checkout-demo/internal/model"
)

var ErrPaymentMethodNotFound = errors.New("payment method not found")

type PaymentMethodRepository interface {
	ListByUser(ctx context.Context, userID string) ([]model.PaymentMethod, error)
	CountByUser(ctx context.Context, userID string) (int64, error)
	FindByID(ctx context.Context, userID, methodID string) (*model.PaymentMethod, error)
	Create(ctx context.Context, method *model.PaymentMethod) error
	Delete(ctx context.Context, userID, methodID string) error
}

type paymentMethodRepoImpl struct {
	db *gorm.DB
}

func NewPaymentMethodRepository(db *gorm.DB) PaymentMethodRepository {
	return &paymentMethodRepoImpl{
		db: db,
	}
}

func (r *paymentMethodRepoImpl) ListByUser(ctx context.Context, userID string) ([]model.PaymentMethod, error) {
	var methods []model.PaymentMethod
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at asc").
		Find(&methods).Error

	if err != nil {
		return nil, err
	}

	return methods, nil
}

func (r *paymentMethodRepoImpl) CountByUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.PaymentMethod{}).
		Where("user_id = ?", userID).
		Count(&count).Error

	return count, err
}

func (r *paymentMethodRepoImpl) FindByID(ctx context.Context, userID, methodID string) (*model.PaymentMethod, error) {
	var method model.PaymentMethod
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, methodID).
		First(&method).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPaymentMethodNotFound
	}
	if err != nil {
		return nil, err
	}

	return &method, nil
}

func (r *paymentMethodRepoImpl) Create(ctx context.Context, method *model.PaymentMethod) error {
	return r.db.WithContext(ctx).Create(method).Error
}

func (r *paymentMethodRepoImpl) Delete(ctx context.Context, userID, methodID string) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, methodID).
		Delete(&model.PaymentMethod{})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("delete payment method %s: %w", methodID, ErrPaymentMethodNotFound)
	}

	return nil
}
