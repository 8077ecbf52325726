package usecase_test

import (
	"context"
	"time"

	"marketplace/internal/domain/model"
	repo "marketplace/internal/repository"

	"github.com/stretchr/testify/mock"
)

// =====================
// TxManager / TxRepos mocks
// =====================

// TxManagerMock は WithinTx の中で渡す repos を固定して unit テストを回す
type TxManagerMock struct {
	mock.Mock
	Repos repo.TxRepos
}

func (m *TxManagerMock) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	// 呼ばれた事実だけ記録（ctxの具体値は問わない）
	m.Called(ctx)
	return fn(m.Repos)
}

type TxReposMock struct {
	orders     repo.OrderRepository
	orderItems repo.OrderItemRepository
	products   repo.ProductRepository
	discounts  repo.DiscountRepository
	rates      repo.RateRepository
	stores     repo.StoreRepository
}

func (r *TxReposMock) Orders() repo.OrderRepository         { return r.orders }
func (r *TxReposMock) OrderItems() repo.OrderItemRepository { return r.orderItems }
func (r *TxReposMock) Products() repo.ProductRepository     { return r.products }
func (r *TxReposMock) Discounts() repo.DiscountRepository   { return r.discounts }
func (r *TxReposMock) Rates() repo.RateRepository           { return r.rates }
func (r *TxReposMock) Stores() repo.StoreRepository         { return r.stores }

// =====================
// Repository mocks
// =====================

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) FindByID(ctx context.Context, orderID string) (model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) ListByUserID(ctx context.Context, userID string) ([]model.Order, error) {
	args := m.Called(ctx, userID)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Error(1)
}

func (m *OrderRepoMock) Create(ctx context.Context, order model.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *OrderRepoMock) UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

func (m *OrderRepoMock) UpdateTotalPrice(ctx context.Context, orderID string, total float64) error {
	args := m.Called(ctx, orderID, total)
	return args.Error(0)
}

type OrderItemRepoMock struct{ mock.Mock }

func (m *OrderItemRepoMock) CreateBulk(ctx context.Context, orderID string, items []model.OrderItem) error {
	args := m.Called(ctx, orderID, items)
	return args.Error(0)
}

func (m *OrderItemRepoMock) ListByOrderID(ctx context.Context, orderID string) ([]model.OrderItem, error) {
	args := m.Called(ctx, orderID)
	items, _ := args.Get(0).([]model.OrderItem)
	return items, args.Error(1)
}

func (m *OrderItemRepoMock) ListByOrderIDWithProduct(ctx context.Context, orderID string) ([]model.OrderItem, error) {
	args := m.Called(ctx, orderID)
	items, _ := args.Get(0).([]model.OrderItem)
	return items, args.Error(1)
}

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) FindByID(ctx context.Context, id string) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) FindByIDForUpdate(ctx context.Context, id string) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) UpdateBoughtNum(ctx context.Context, id string, boughtNum int64) error {
	args := m.Called(ctx, id, boughtNum)
	return args.Error(0)
}

func (m *ProductRepoMock) ListStoreIDs(ctx context.Context, productIDs []string) ([]string, error) {
	args := m.Called(ctx, productIDs)
	ids, _ := args.Get(0).([]string)
	return ids, args.Error(1)
}

type DiscountRepoMock struct{ mock.Mock }

func (m *DiscountRepoMock) FindEligible(ctx context.Context, id string, now time.Time) (model.Discount, error) {
	args := m.Called(ctx, id, now)
	d, _ := args.Get(0).(model.Discount)
	return d, args.Error(1)
}

func (m *DiscountRepoMock) ListEligibleByStore(ctx context.Context, storeID string, now time.Time) ([]model.Discount, error) {
	args := m.Called(ctx, storeID, now)
	ds, _ := args.Get(0).([]model.Discount)
	return ds, args.Error(1)
}

type RateRepoMock struct{ mock.Mock }

func (m *RateRepoMock) Create(ctx context.Context, rate model.Rate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

func (m *RateRepoMock) FindByOrderID(ctx context.Context, orderID string) (model.Rate, error) {
	args := m.Called(ctx, orderID)
	r, _ := args.Get(0).(model.Rate)
	return r, args.Error(1)
}

type StoreRepoMock struct{ mock.Mock }

func (m *StoreRepoMock) FindByID(ctx context.Context, id string) (model.Store, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(model.Store)
	return s, args.Error(1)
}

func (m *StoreRepoMock) FindByIDForUpdate(ctx context.Context, id string) (model.Store, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(model.Store)
	return s, args.Error(1)
}

func (m *StoreRepoMock) UpdateRating(ctx context.Context, id string, star float64, rateCount int64) error {
	args := m.Called(ctx, id, star, rateCount)
	return args.Error(0)
}

type NotificationRepoMock struct{ mock.Mock }

func (m *NotificationRepoMock) Create(ctx context.Context, n model.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *NotificationRepoMock) ListByUserID(ctx context.Context, userID string) ([]model.Notification, error) {
	args := m.Called(ctx, userID)
	ns, _ := args.Get(0).([]model.Notification)
	return ns, args.Error(1)
}

func (m *NotificationRepoMock) ListByStoreID(ctx context.Context, storeID string) ([]model.Notification, error) {
	args := m.Called(ctx, storeID)
	ns, _ := args.Get(0).([]model.Notification)
	return ns, args.Error(1)
}

func (m *NotificationRepoMock) MarkSeen(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
