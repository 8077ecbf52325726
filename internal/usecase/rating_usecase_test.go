package usecase_test

import (
	"context"
	"math"
	"testing"

	"marketplace/internal/domain/model"
	repo "marketplace/internal/repository"
	"marketplace/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type ratingDeps struct {
	tx            *TxManagerMock
	orders        *OrderRepoMock
	rates         *RateRepoMock
	stores        *StoreRepoMock
	notifications *NotificationRepoMock
}

func newRatingUsecaseForTest() (*usecase.RatingUsecase, *ratingDeps) {
	d := &ratingDeps{
		orders:        &OrderRepoMock{},
		rates:         &RateRepoMock{},
		stores:        &StoreRepoMock{},
		notifications: &NotificationRepoMock{},
	}
	d.tx = &TxManagerMock{Repos: &TxReposMock{
		orders:     d.orders,
		orderItems: &OrderItemRepoMock{},
		products:   &ProductRepoMock{},
		discounts:  &DiscountRepoMock{},
		rates:      d.rates,
		stores:     d.stores,
	}}

	notifier := usecase.NewNotifier(d.notifications, zap.NewNop())
	return usecase.NewRatingUsecase(d.tx, notifier), d
}

func TestRateOrder_StarOutOfRange(t *testing.T) {
	uc, d := newRatingUsecaseForTest()

	_, err := uc.RateOrder(context.Background(), "user-1", "order-1", usecase.RateOrderInput{Star: 0})
	assert.ErrorIs(t, err, usecase.ErrValidation)

	_, err = uc.RateOrder(context.Background(), "user-1", "order-1", usecase.RateOrderInput{Star: 6})
	assert.ErrorIs(t, err, usecase.ErrValidation)

	d.tx.AssertNotCalled(t, "WithinTx", mock.Anything)
}

func TestRateOrder_OrderNotFound(t *testing.T) {
	uc, d := newRatingUsecaseForTest()

	d.tx.On("WithinTx", mock.Anything).Return()
	d.orders.On("FindByID", mock.Anything, "order-missing").
		Return(model.Order{}, repo.ErrNotFound)

	_, err := uc.RateOrder(context.Background(), "user-1", "order-missing", usecase.RateOrderInput{Star: 5})

	assert.ErrorIs(t, err, usecase.ErrOrderNotFound)
	d.notifications.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// 他人の注文は評価できない
func TestRateOrder_OtherUsersOrderForbidden(t *testing.T) {
	uc, d := newRatingUsecaseForTest()

	d.tx.On("WithinTx", mock.Anything).Return()
	d.orders.On("FindByID", mock.Anything, "order-1").
		Return(model.Order{ID: "order-1", UserID: "someone-else", StoreID: "store-1", Status: model.OrderStatusSuccess}, nil)

	_, err := uc.RateOrder(context.Background(), "user-1", "order-1", usecase.RateOrderInput{Star: 5})

	assert.ErrorIs(t, err, usecase.ErrForbidden)
	d.rates.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// PENDING・CANCELLEDの注文は評価できず、店舗集計も動かない
func TestRateOrder_NotCompletedOrder(t *testing.T) {
	for _, status := range []model.OrderStatus{model.OrderStatusPending, model.OrderStatusCancelled} {
		uc, d := newRatingUsecaseForTest()

		d.tx.On("WithinTx", mock.Anything).Return()
		d.orders.On("FindByID", mock.Anything, "order-1").
			Return(model.Order{ID: "order-1", UserID: "user-1", StoreID: "store-1", Status: status}, nil)

		_, err := uc.RateOrder(context.Background(), "user-1", "order-1", usecase.RateOrderInput{Star: 4})

		assert.ErrorIs(t, err, usecase.ErrOrderNotCompleted, string(status))
		d.stores.AssertNotCalled(t, "FindByIDForUpdate", mock.Anything, mock.Anything)
		d.stores.AssertNotCalled(t, "UpdateRating", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		d.notifications.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	}
}

// rateCount=2 star=4.0 の店に5を付けると (4*2+5)/3 = 4.333...
func TestRateOrder_RecomputesStoreAverage(t *testing.T) {
	uc, d := newRatingUsecaseForTest()

	d.tx.On("WithinTx", mock.Anything).Return()
	d.orders.On("FindByID", mock.Anything, "order-1").
		Return(model.Order{ID: "order-1", UserID: "user-1", StoreID: "store-1", Status: model.OrderStatusSuccess}, nil)
	d.stores.On("FindByIDForUpdate", mock.Anything, "store-1").
		Return(model.Store{ID: "store-1", RateCount: 2, Star: 4.0}, nil)

	d.rates.On("Create", mock.Anything, mock.MatchedBy(func(r model.Rate) bool {
		return r.OrderID == "order-1" && r.Star == 5 && r.Content == "great coffee"
	})).Return(nil)

	d.stores.On("UpdateRating", mock.Anything, "store-1", mock.MatchedBy(func(star float64) bool {
		return math.Abs(star-13.0/3.0) < 1e-9
	}), int64(3)).Return(nil)

	d.notifications.On("Create", mock.Anything, mock.MatchedBy(func(n model.Notification) bool {
		return n.StoreID != nil && *n.StoreID == "store-1" && n.Status == model.NotificationUnseen
	})).Return(nil)

	out, err := uc.RateOrder(context.Background(), "user-1", "order-1", usecase.RateOrderInput{
		Star:    5,
		Content: "great coffee",
		Images:  []string{"https://cdn.example.com/rate-1.jpg"},
	})

	assert.NoError(t, err)
	assert.Equal(t, "order-1", out.OrderID)
	assert.Equal(t, 5, out.Star)

	d.rates.AssertExpectations(t)
	d.stores.AssertExpectations(t)
	d.notifications.AssertExpectations(t)
}

// 同じ注文への2回目の評価は弾かれ、店舗集計は1回分しか動かない
func TestRateOrder_DuplicateRejected(t *testing.T) {
	uc, d := newRatingUsecaseForTest()

	d.tx.On("WithinTx", mock.Anything).Return()
	d.orders.On("FindByID", mock.Anything, "order-1").
		Return(model.Order{ID: "order-1", UserID: "user-1", StoreID: "store-1", Status: model.OrderStatusSuccess}, nil)
	d.stores.On("FindByIDForUpdate", mock.Anything, "store-1").
		Return(model.Store{ID: "store-1", RateCount: 0, Star: 0}, nil)

	//1回目は通り、2回目はunique制約に当たる
	d.rates.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
	d.rates.On("Create", mock.Anything, mock.Anything).Return(repo.ErrDuplicate)

	d.stores.On("UpdateRating", mock.Anything, "store-1", 5.0, int64(1)).Return(nil)
	d.notifications.On("Create", mock.Anything, mock.Anything).Return(nil)

	_, err := uc.RateOrder(context.Background(), "user-1", "order-1", usecase.RateOrderInput{Star: 5})
	assert.NoError(t, err)

	_, err = uc.RateOrder(context.Background(), "user-1", "order-1", usecase.RateOrderInput{Star: 1})
	assert.ErrorIs(t, err, usecase.ErrDuplicateRating)

	//UpdateRatingは最初の1回だけ
	d.stores.AssertNumberOfCalls(t, "UpdateRating", 1)
	d.notifications.AssertNumberOfCalls(t, "Create", 1)
}
