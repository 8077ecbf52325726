package repository

import (
	"context"

	"marketplace/internal/domain/model"
)

type RateRepository interface {
	//同じorder_idへの二重登録はErrDuplicate
	Create(ctx context.Context, rate model.Rate) error

	FindByOrderID(ctx context.Context, orderID string) (model.Rate, error)
}
