package usecase

import (
	"context"
	"errors"

	"marketplace/internal/domain/model"
	"marketplace/internal/repository"
	repo "marketplace/internal/repository"
)

type NotificationUsecase struct {
	notifications repository.NotificationRepository
}

func NewNotificationUsecase(notifications repository.NotificationRepository) *NotificationUsecase {
	return &NotificationUsecase{notifications: notifications}
}

func (u *NotificationUsecase) ListForUser(ctx context.Context, userID string) ([]model.Notification, error) {
	if userID == "" {
		return []model.Notification{}, ErrValidation
	}
	return u.notifications.ListByUserID(ctx, userID)
}

func (u *NotificationUsecase) ListForStore(ctx context.Context, storeID string) ([]model.Notification, error) {
	if storeID == "" {
		return []model.Notification{}, ErrValidation
	}
	return u.notifications.ListByStoreID(ctx, storeID)
}

// MarkSeen は通知を既読にする。既に既読でもエラーにしない。
func (u *NotificationUsecase) MarkSeen(ctx context.Context, id string) error {
	if id == "" {
		return ErrValidation
	}
	err := u.notifications.MarkSeen(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return ErrNotificationNotFound
	}
	return err
}
