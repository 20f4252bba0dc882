package repository

import (
	"context"

	"gorm.io/gorm"

	"storefront-checkout-demo/internal/model"
)

// OrderLedger is write-once: a finalized order and its items go in together
// or not at all, and nothing updates them afterwards.
type OrderLedger interface {
	SaveOrder(ctx context.Context, order *model.Order, items []*model.OrderItem) error
	ListByUser(ctx context.Context, userID string) ([]model.Order, error)
	GetOrderItems(ctx context.Context, orderID string) ([]model.OrderItem, error)
}

type orderLedgerImpl struct {
	db *gorm.DB
}

func NewOrderLedger(db *gorm.DB) OrderLedger {
	return &orderLedgerImpl{
		db: db,
	}
}

func (r *orderLedgerImpl) SaveOrder(ctx context.Context, order *model.Order, items []*model.OrderItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		return tx.Create(&items).Error
	})
}

func (r *orderLedgerImpl) ListByUser(ctx context.Context, userID string) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&orders).Error

	if err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *orderLedgerImpl) GetOrderItems(ctx context.Context, orderID string) ([]model.OrderItem, error) {
	var items []model.OrderItem
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Find(&items).Error

	if err != nil {
		return nil, err
	}

	return items, nil
}
