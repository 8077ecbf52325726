package repository

import (
	"context"

	"marketplace/internal/domain/model"
)

type OrderItemRepository interface {
	CreateBulk(ctx context.Context, orderID string, items []model.OrderItem) error
	ListByOrderID(ctx context.Context, orderID string) ([]model.OrderItem, error)

	//商品を結合して返す（価格・公開状態の再確認用）
	ListByOrderIDWithProduct(ctx context.Context, orderID string) ([]model.OrderItem, error)
}
