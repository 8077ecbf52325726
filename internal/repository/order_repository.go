package repository

import (
	"context"

	"marketplace/internal/domain/model"
)

type OrderRepository interface {
	FindByID(ctx context.Context, orderID string) (model.Order, error)

	//新しい順
	ListByUserID(ctx context.Context, userID string) ([]model.Order, error)

	Create(ctx context.Context, order model.Order) error
	UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) error

	//明細確定後の合計金額反映
	UpdateTotalPrice(ctx context.Context, orderID string, total float64) error
}
