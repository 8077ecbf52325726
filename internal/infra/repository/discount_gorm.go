package repository

import (
	"context"
	"errors"
	"time"

	"marketplace/internal/domain/model"
	repo "marketplace/internal/repository"

	"gorm.io/gorm"
)

type DiscountGormRepository struct {
	db *gorm.DB
}

func NewDiscountGormRepository(db *gorm.DB) *DiscountGormRepository {
	return &DiscountGormRepository{db: db}
}

// ACTIVEかつ期限内のものだけ
func (r *DiscountGormRepository) FindEligible(ctx context.Context, id string, now time.Time) (model.Discount, error) {
	var d model.Discount
	err := r.db.WithContext(ctx).
		Where("id = ? AND status = ? AND \"end\" > ?", id, model.StatusActive, now).
		First(&d).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Discount{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Discount{}, err
	}
	return d, nil
}

func (r *DiscountGormRepository) ListEligibleByStore(ctx context.Context, storeID string, now time.Time) ([]model.Discount, error) {
	var items []model.Discount
	err := r.db.WithContext(ctx).
		Where("store_id = ? AND status = ? AND \"end\" > ?", storeID, model.StatusActive, now).
		Order("\"end\" asc").
		Find(&items).Error
	if err != nil {
		return []model.Discount{}, err
	}
	return items, nil
}
