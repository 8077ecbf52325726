package usecase

import (
	"context"
	"time"

	"marketplace/internal/domain/model"
	"marketplace/internal/repository"
)

type DiscountUsecase struct {
	discounts repository.DiscountRepository
}

func NewDiscountUsecase(discounts repository.DiscountRepository) *DiscountUsecase {
	return &DiscountUsecase{discounts: discounts}
}

// ListForStore は今使える割引（ACTIVEかつ期限内）を返す。
func (u *DiscountUsecase) ListForStore(ctx context.Context, storeID string) ([]model.Discount, error) {
	if storeID == "" {
		return []model.Discount{}, ErrValidation
	}
	return u.discounts.ListEligibleByStore(ctx, storeID, time.Now())
}
