package repository

import (
	"context"

	"marketplace/internal/domain/model"
)

type StoreRepository interface {
	FindByID(ctx context.Context, id string) (model.Store, error)

	//行ロック付き取得。star/rate_countの再計算は必ずこれを経由する
	FindByIDForUpdate(ctx context.Context, id string) (model.Store, error)

	UpdateRating(ctx context.Context, id string, star float64, rateCount int64) error
}
