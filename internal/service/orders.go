package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"golang.org/x/sync/singleflight"

	"storefront-checkout-demo/internal/cache"
	"storefront-checkout-demo/internal/dto"
	"storefront-checkout-demo/internal/model"
	"storefront-checkout-demo/internal/repository"
)

// OrderHistoryService serves a user's past orders, newest first, reading
// through the best-effort local cache with the ledger as the authority.
type OrderHistoryService interface {
	List(ctx context.Context, userID string) ([]dto.Order, error)
}

type orderHistoryServiceImpl struct {
	ledger repository.OrderLedger
	cache  cache.OrderHistoryCache
	sfg    singleflight.Group // prevents cache stampede
}

func NewOrderHistoryService(ledger repository.OrderLedger, historyCache cache.OrderHistoryCache) OrderHistoryService {
	return &orderHistoryServiceImpl{
		ledger: ledger,
		cache:  historyCache,
	}
}

func (s *orderHistoryServiceImpl) List(ctx context.Context, userID string) ([]dto.Order, error) {
	v, err, _ := s.sfg.Do(userID, func() (interface{}, error) {
		orders, err := s.cache.Get(ctx, userID)
		if err == nil {
			return orders, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			log.Printf("order history cache get error: %v", err)
		}

		records, err := s.ledger.ListByUser(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("list orders: %w", err)
		}

		orders = make([]dto.Order, 0, len(records))
		for _, record := range records {
			items, err := s.ledger.GetOrderItems(ctx, record.OrderID)
			if err != nil {
				return nil, fmt.Errorf("get order items: %w", err)
			}
			orders = append(orders, orderToDTO(record, items))
		}

		go func() {
			if err := s.cache.Set(context.Background(), userID, orders); err != nil {
				log.Printf("order history cache set error: %v", err)
			}
		}()

		return orders, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]dto.Order), nil
}

func orderToDTO(order model.Order, items []model.OrderItem) dto.Order {
	itemDTOs := make([]dto.OrderItem, len(items))
	for i, item := range items {
		itemDTOs[i] = dto.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Image:     item.Image,
		}
	}

	return dto.Order{
		ID:              order.OrderID,
		CreatedAt:       order.CreatedAt,
		Status:          order.Status,
		Subtotal:        order.Subtotal,
		Shipping:        order.Shipping,
		Tax:             order.Tax,
		Total:           order.Total,
		SubtotalDisplay: dto.Money(order.Subtotal),
		TotalDisplay:    dto.Money(order.Total),
		PaymentMethod:   order.PaymentMethod,
		PaymentMethodID: order.PaymentMethodID,
		Items:           itemDTOs,
		Customer: dto.OrderCustomer{
			FullName:      order.CustomerFullName,
			Email:         order.CustomerEmail,
			Phone:         order.CustomerPhone,
			Address:       order.CustomerAddress,
			City:          order.CustomerCity,
			PostalCode:    order.CustomerPostalCode,
			Country:       order.CustomerCountry,
			PaymentMethod: order.PaymentMethod,
		},
	}
}
