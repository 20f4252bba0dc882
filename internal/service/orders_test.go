package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-checkout-demo/internal/dto"
	"storefront-checkout-demo/internal/model"
)

func seedLedger(l *mockLedger) {
	_ = l.SaveOrder(context.Background(), &model.Order{
		OrderID:  "ORD-AAA111BBB222",
		UserID:   "u1",
		Status:   "Processing",
		Subtotal: 2500,
		Total:    2500,
	}, []*model.OrderItem{
		{OrderID: "ORD-AAA111BBB222", ProductID: "a", Name: "Hoodie", Quantity: 2, UnitPrice: 1000},
		{OrderID: "ORD-AAA111BBB222", ProductID: "b", Name: "Cap", Quantity: 1, UnitPrice: 500},
	})
	_ = l.SaveOrder(context.Background(), &model.Order{
		OrderID:  "ORD-CCC333DDD444",
		UserID:   "u1",
		Status:   "Processing",
		Subtotal: 500,
		Total:    500,
	}, []*model.OrderItem{
		{OrderID: "ORD-CCC333DDD444", ProductID: "b", Name: "Cap", Quantity: 1, UnitPrice: 500},
	})
}

func TestOrderHistory_CacheHitSkipsLedger(t *testing.T) {
	ledger := &mockLedger{listErr: fmt.Errorf("should not be reached")}
	historyCache := &mockHistoryCache{}
	require.NoError(t, historyCache.Set(context.Background(), "u1", []dto.Order{{ID: "ORD-AAA111BBB222"}}))

	sut := NewOrderHistoryService(ledger, historyCache)

	orders, err := sut.List(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "ORD-AAA111BBB222", orders[0].ID)
}

func TestOrderHistory_CacheMissReadsLedgerAndBackfills(t *testing.T) {
	ledger := &mockLedger{}
	seedLedger(ledger)
	historyCache := &mockHistoryCache{}

	sut := NewOrderHistoryService(ledger, historyCache)

	orders, err := sut.List(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, orders, 2)

	// newest first
	assert.Equal(t, "ORD-CCC333DDD444", orders[0].ID)
	assert.Equal(t, "ORD-AAA111BBB222", orders[1].ID)
	assert.Equal(t, "25.00", orders[1].TotalDisplay)
	assert.Len(t, orders[1].Items, 2)

	// the backfill write is asynchronous
	require.Eventually(t, func() bool {
		return len(historyCache.cached("u1")) == 2
	}, time.Second, 10*time.Millisecond)
}

func TestOrderHistory_CacheErrorFallsThroughToLedger(t *testing.T) {
	ledger := &mockLedger{}
	seedLedger(ledger)
	historyCache := &mockHistoryCache{getErr: fmt.Errorf("redis down")}

	sut := NewOrderHistoryService(ledger, historyCache)

	orders, err := sut.List(context.Background(), "u1")
	require.NoError(t, err)
	assert.Len(t, orders, 2)
}

func TestOrderHistory_LedgerErrorPropagates(t *testing.T) {
	ledger := &mockLedger{listErr: fmt.Errorf("connection refused")}
	historyCache := &mockHistoryCache{}

	sut := NewOrderHistoryService(ledger, historyCache)

	_, err := sut.List(context.Background(), "u1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list orders")
}

func TestOrderHistory_EmptyHistory(t *testing.T) {
	sut := NewOrderHistoryService(&mockLedger{}, &mockHistoryCache{})

	orders, err := sut.List(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderToDTO(t *testing.T) {
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	order := model.Order{
		OrderID:            "ORD-AAA111BBB222",
		UserID:             "u1",
		Status:             "Processing",
		Subtotal:           1050,
		Total:              1050,
		PaymentMethod:      "cash",
		CustomerFullName:   "Jane Doe",
		CustomerCity:       "Cape Town",
		CustomerCountry:    "South Africa",
		CreatedAt:          created,
		CustomerPostalCode: "8001",
	}
	items := []model.OrderItem{
		{ProductID: "a", Name: "Hoodie", Quantity: 1, UnitPrice: 1050},
	}

	got := orderToDTO(order, items)

	assert.Equal(t, "ORD-AAA111BBB222", got.ID)
	assert.Equal(t, created, got.CreatedAt)
	assert.Equal(t, "10.50", got.SubtotalDisplay)
	assert.Equal(t, "10.50", got.TotalDisplay)
	assert.Equal(t, "cash", got.Customer.PaymentMethod)
	assert.Equal(t, "Jane Doe", got.Customer.FullName)
	require.Len(t, got.Items, 1)
	assert.Equal(t, int32(1), got.Items[0].Quantity)
}
