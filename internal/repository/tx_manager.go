package repository

import "context"

// トランザクション内で使う約束
type TxRepos interface {
	Orders() OrderRepository
	OrderItems() OrderItemRepository
	Products() ProductRepository
	Discounts() DiscountRepository
	Rates() RateRepository
	Stores() StoreRepository
}

// UsecaseからTxの開始/commit/rollbackを隠す。
// fnがerrorを返したらそのTxの書き込みは全てロールバックされる。
type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(r TxRepos) error) error
}
