package repository

import (
	"context"

	"marketplace/internal/domain/model"
)

// 商品の永続化と購入カウンタの更新だけを約束。
type ProductRepository interface {
	FindByID(ctx context.Context, id string) (model.Product, error)

	//行ロック付き取得。bought_numのread-modify-writeは必ずこれを経由する
	FindByIDForUpdate(ctx context.Context, id string) (model.Product, error)

	UpdateBoughtNum(ctx context.Context, id string, boughtNum int64) error

	//指定商品群が属する店舗IDの集合（重複なし）
	ListStoreIDs(ctx context.Context, productIDs []string) ([]string, error)
}
