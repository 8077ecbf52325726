package repository

import (
	"context"
	"errors"

	"marketplace/internal/domain/model"
	repo "marketplace/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StoreGormRepository struct {
	db *gorm.DB
}

func NewStoreGormRepository(db *gorm.DB) *StoreGormRepository {
	return &StoreGormRepository{db: db}
}

func (r *StoreGormRepository) FindByID(ctx context.Context, id string) (model.Store, error) {
	var s model.Store
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Store{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Store{}, err
	}
	return s, nil
}

// SELECT ... FOR UPDATE。同じ店舗への同時評価はここで直列化される
func (r *StoreGormRepository) FindByIDForUpdate(ctx context.Context, id string) (model.Store, error) {
	var s model.Store
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Store{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Store{}, err
	}
	return s, nil
}

func (r *StoreGormRepository) UpdateRating(ctx context.Context, id string, star float64, rateCount int64) error {
	res := r.db.WithContext(ctx).Model(&model.Store{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"star":       star,
			"rate_count": rateCount,
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
