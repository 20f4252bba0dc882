package service

import (
	"context"
	"sync"

	"storefront-checkout-demo/internal/cache"
	"storefront-checkout-demo/internal/dto"
	"storefront-checkout-demo/internal/model"
	"storefront-checkout-demo/internal/repository"
)

type mockMethodRepo struct {
	m       sync.Mutex
	methods []model.PaymentMethod
	err     error
}

func (r *mockMethodRepo) ListByUser(_ context.Context, userID string) ([]model.PaymentMethod, error) {
	r.m.Lock()
	defer r.m.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	var out []model.PaymentMethod
	for _, method := range r.methods {
		if method.UserID == userID {
			out = append(out, method)
		}
	}
	return out, nil
}

func (r *mockMethodRepo) CountByUser(_ context.Context, userID string) (int64, error) {
	r.m.Lock()
	defer r.m.Unlock()
	if r.err != nil {
		return 0, r.err
	}
	var count int64
	for _, method := range r.methods {
		if method.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (r *mockMethodRepo) FindByID(_ context.Context, userID, methodID string) (*model.PaymentMethod, error) {
	r.m.Lock()
	defer r.m.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	for i := range r.methods {
		if r.methods[i].UserID == userID && r.methods[i].ID == methodID {
			method := r.methods[i]
			return &method, nil
		}
	}
	return nil, repository.ErrPaymentMethodNotFound
}

func (r *mockMethodRepo) Create(_ context.Context, method *model.PaymentMethod) error {
	r.m.Lock()
	defer r.m.Unlock()
	if r.err != nil {
		return r.err
	}
	r.methods = append(r.methods, *method)
	return nil
}

func (r *mockMethodRepo) Delete(_ context.Context, userID, methodID string) error {
	r.m.Lock()
	defer r.m.Unlock()
	if r.err != nil {
		return r.err
	}
	for i, method := range r.methods {
		if method.UserID == userID && method.ID == methodID {
			r.methods = append(r.methods[:i], r.methods[i+1:]...)
			return nil
		}
	}
	return repository.ErrPaymentMethodNotFound
}

type mockProfileRepo struct {
	m       sync.Mutex
	profile *model.UserProfile
	err     error
}

func (r *mockProfileRepo) Get(_ context.Context, userID string) (*model.UserProfile, error) {
	r.m.Lock()
	defer r.m.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	if r.profile == nil {
		return &model.UserProfile{UserID: userID}, nil
	}
	profile := *r.profile
	return &profile, nil
}

func (r *mockProfileRepo) UpsertAddress(_ context.Context, profile *model.UserProfile) error {
	r.m.Lock()
	defer r.m.Unlock()
	if r.err != nil {
		return r.err
	}
	p := *profile
	r.profile = &p
	return nil
}

func (r *mockProfileRepo) ClearAddress(_ context.Context, _ string) error {
	r.m.Lock()
	defer r.m.Unlock()
	if r.err != nil {
		return r.err
	}
	if r.profile != nil {
		r.profile.AddressStreet = ""
		r.profile.AddressCity = ""
		r.profile.AddressPostalCode = ""
		r.profile.ProvinceCode = ""
		r.profile.ProvinceName = ""
	}
	return nil
}

type mockLedger struct {
	m       sync.Mutex
	orders  []model.Order
	items   map[string][]model.OrderItem
	saveErr error
	listErr error
}

func (l *mockLedger) SaveOrder(_ context.Context, order *model.Order, items []*model.OrderItem) error {
	l.m.Lock()
	defer l.m.Unlock()
	if l.saveErr != nil {
		return l.saveErr
	}
	l.orders = append(l.orders, *order)
	if l.items == nil {
		l.items = make(map[string][]model.OrderItem)
	}
	for _, item := range items {
		l.items[order.OrderID] = append(l.items[order.OrderID], *item)
	}
	return nil
}

func (l *mockLedger) ListByUser(_ context.Context, userID string) ([]model.Order, error) {
	l.m.Lock()
	defer l.m.Unlock()
	if l.listErr != nil {
		return nil, l.listErr
	}
	var out []model.Order
	// newest first, mirroring the ledger's created_at ordering
	for i := len(l.orders) - 1; i >= 0; i-- {
		if l.orders[i].UserID == userID {
			out = append(out, l.orders[i])
		}
	}
	return out, nil
}

func (l *mockLedger) GetOrderItems(_ context.Context, orderID string) ([]model.OrderItem, error) {
	l.m.Lock()
	defer l.m.Unlock()
	if l.listErr != nil {
		return nil, l.listErr
	}
	return l.items[orderID], nil
}

func (l *mockLedger) savedOrders() []model.Order {
	l.m.Lock()
	defer l.m.Unlock()
	out := make([]model.Order, len(l.orders))
	copy(out, l.orders)
	return out
}

type mockHistoryCache struct {
	m      sync.Mutex
	lists  map[string][]dto.Order
	getErr error
	setErr error
}

func (c *mockHistoryCache) Get(_ context.Context, userID string) ([]dto.Order, error) {
	c.m.Lock()
	defer c.m.Unlock()
	if c.getErr != nil {
		return nil, c.getErr
	}
	orders, ok := c.lists[userID]
	if !ok {
		return nil, cache.ErrCacheMiss
	}
	return orders, nil
}

func (c *mockHistoryCache) Set(_ context.Context, userID string, orders []dto.Order) error {
	c.m.Lock()
	defer c.m.Unlock()
	if c.setErr != nil {
		return c.setErr
	}
	if c.lists == nil {
		c.lists = make(map[string][]dto.Order)
	}
	c.lists[userID] = orders
	return nil
}

func (c *mockHistoryCache) Prepend(_ context.Context, userID string, order dto.Order) error {
	c.m.Lock()
	defer c.m.Unlock()
	if c.setErr != nil {
		return c.setErr
	}
	if c.lists == nil {
		c.lists = make(map[string][]dto.Order)
	}
	c.lists[userID] = append([]dto.Order{order}, c.lists[userID]...)
	return nil
}

func (c *mockHistoryCache) cached(userID string) []dto.Order {
	c.m.Lock()
	defer c.m.Unlock()
	return c.lists[userID]
}
