package repository

import (
	"context"
	"errors"
	"time"

	repo "marketplace/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// 1トランザクションの上限。超えたらErrConflictで呼び出し側へ返す
const txTimeout = 5 * time.Second

type txReposGorm struct {
	orders     repo.OrderRepository
	orderItems repo.OrderItemRepository
	products   repo.ProductRepository
	discounts  repo.DiscountRepository
	rates      repo.RateRepository
	stores     repo.StoreRepository
}

func (r *txReposGorm) Orders() repo.OrderRepository         { return r.orders }
func (r *txReposGorm) OrderItems() repo.OrderItemRepository { return r.orderItems }
func (r *txReposGorm) Products() repo.ProductRepository     { return r.products }
func (r *txReposGorm) Discounts() repo.DiscountRepository   { return r.discounts }
func (r *txReposGorm) Rates() repo.RateRepository           { return r.rates }
func (r *txReposGorm) Stores() repo.StoreRepository         { return r.stores }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	ctx, cancel := context.WithTimeout(ctx, txTimeout)
	defer cancel()

	err := tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		//repoはtxを持ったDBで作り直す
		r := &txReposGorm{
			orders:     NewOrderGormRepository(tx),
			orderItems: NewOrderItemGormRepository(tx),
			products:   NewProductGormRepository(tx),
			discounts:  NewDiscountGormRepository(tx),
			rates:      NewRateGormRepository(tx),
			stores:     NewStoreGormRepository(tx),
		}
		return fn(r)
	})

	if isConflict(err) {
		return repo.ErrConflict
	}
	return err
}

// 直列化失敗・デッドロック・ロック待ちタイムアウト・期限切れを競合扱いにする
func isConflict(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "40001", "40P01", "55P03":
			return true
		}
	}
	return false
}
