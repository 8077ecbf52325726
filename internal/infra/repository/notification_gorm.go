package repository

import (
	"context"

	"marketplace/internal/domain/model"
	repo "marketplace/internal/repository"

	"gorm.io/gorm"
)

type NotificationGormRepository struct {
	db *gorm.DB
}

func NewNotificationGormRepository(db *gorm.DB) *NotificationGormRepository {
	return &NotificationGormRepository{db: db}
}

func (r *NotificationGormRepository) Create(ctx context.Context, n model.Notification) error {
	return r.db.WithContext(ctx).Create(&n).Error
}

func (r *NotificationGormRepository) ListByUserID(ctx context.Context, userID string) ([]model.Notification, error) {
	var items []model.Notification
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&items).Error
	if err != nil {
		return []model.Notification{}, err
	}
	return items, nil
}

func (r *NotificationGormRepository) ListByStoreID(ctx context.Context, storeID string) ([]model.Notification, error) {
	var items []model.Notification
	err := r.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Order("created_at desc").
		Find(&items).Error
	if err != nil {
		return []model.Notification{}, err
	}
	return items, nil
}

// 既読化。既にseenの行に再度当てても結果は同じ
func (r *NotificationGormRepository) MarkSeen(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Model(&model.Notification{}).
		Where("id = ?", id).
		Update("status", model.NotificationSeen)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
