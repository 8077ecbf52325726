package repository

import (
	"context"
	"errors"

	"marketplace/internal/domain/model"
	repo "marketplace/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type RateGormRepository struct {
	db *gorm.DB
}

func NewRateGormRepository(db *gorm.DB) *RateGormRepository {
	return &RateGormRepository{db: db}
}

// order_idのunique制約に当たったらErrDuplicate
func (r *RateGormRepository) Create(ctx context.Context, rate model.Rate) error {
	err := r.db.WithContext(ctx).Create(&rate).Error
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || isUniqueViolation(err) {
		return repo.ErrDuplicate
	}
	return err
}

func (r *RateGormRepository) FindByOrderID(ctx context.Context, orderID string) (model.Rate, error) {
	var rate model.Rate
	err := r.db.WithContext(ctx).Where("order_id = ?", orderID).First(&rate).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Rate{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Rate{}, err
	}
	return rate, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
