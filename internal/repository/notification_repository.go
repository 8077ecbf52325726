package repository

import (
	"context"

	"marketplace/internal/domain/model"
)

// 通知はコミット後に書くのでTxReposには含めない。
type NotificationRepository interface {
	Create(ctx context.Context, n model.Notification) error

	//created_atの新しい順
	ListByUserID(ctx context.Context, userID string) ([]model.Notification, error)
	ListByStoreID(ctx context.Context, storeID string) ([]model.Notification, error)

	//既読化。既にseenでもエラーにしない
	MarkSeen(ctx context.Context, id string) error
}
