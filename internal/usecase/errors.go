package usecase

import "errors"

var (
	//400 入力不足
	ErrValidation = errors.New("validation error")
	//400 複数店舗の商品が混ざった注文
	ErrInvalidBasket = errors.New("you must select products in one store per order")
	//400 割引が存在しないか期限切れ
	ErrDiscountNotFound = errors.New("discount does not exist")
	//400 非公開の商品が含まれる
	ErrProductInactive = errors.New("product inactive")
	//404
	ErrOrderNotFound = errors.New("order not found")
	//400 完了前の注文は評価できない
	ErrOrderNotCompleted = errors.New("can not rate order before it completes")
	//400 評価は1注文1回まで
	ErrDuplicateRating = errors.New("you must rate order once")
	//409 リトライしても解消しなかった競合
	ErrTransientConflict = errors.New("transaction conflict, please retry")
	//403
	ErrForbidden = errors.New("forbidden")
	//404
	ErrNotificationNotFound = errors.New("notification not found")
)
