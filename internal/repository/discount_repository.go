package repository

import (
	"context"
	"time"

	"marketplace/internal/domain/model"
)

type DiscountRepository interface {
	//ACTIVEかつ期限内のものだけ返す。該当なしはErrNotFound
	FindEligible(ctx context.Context, id string, now time.Time) (model.Discount, error)

	ListEligibleByStore(ctx context.Context, storeID string, now time.Time) ([]model.Discount, error)
}
