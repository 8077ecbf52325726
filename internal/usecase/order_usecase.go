package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"marketplace/internal/domain/model"
	"marketplace/internal/repository"
	repo "marketplace/internal/repository"

	"github.com/google/uuid"
)

type OrderUsecase struct {
	tx       repo.TransactionManager
	products repository.ProductRepository
	notifier *Notifier
}

func NewOrderUsecase(tx repo.TransactionManager, products repository.ProductRepository, notifier *Notifier) *OrderUsecase {
	return &OrderUsecase{tx: tx, products: products, notifier: notifier}
}

type OrderItemInput struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

type PlaceOrderInput struct {
	Items       []OrderItemInput
	PaymentType string
	TimeReceive time.Time
	DiscountID  *string
}

type OrderItemOutput struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int64   `json:"quantity"`
}

type OrderOutput struct {
	ID          string            `json:"id"`
	UserID      string            `json:"user_id"`
	StoreID     string            `json:"store_id"`
	Status      string            `json:"status"`
	PaymentType string            `json:"payment_type"`
	IsPayment   bool              `json:"is_payment"`
	TimeReceive time.Time         `json:"time_receive"`
	DiscountID  *string           `json:"discount_id,omitempty"`
	TotalPrice  float64           `json:"total_price"`
	CreatedAt   time.Time         `json:"created_at"`
	Items       []OrderItemOutput `json:"items"`
}

func (u *OrderUsecase) PlaceOrder(ctx context.Context, userID string, in PlaceOrderInput) (OrderOutput, error) {
	if userID == "" {
		return OrderOutput{}, ErrValidation
	}
	if len(in.Items) == 0 {
		return OrderOutput{}, ErrValidation
	}
	productIDs := make([]string, 0, len(in.Items))
	for _, it := range in.Items {
		if it.ProductID == "" || it.Quantity <= 0 {
			return OrderOutput{}, ErrValidation
		}
		productIDs = append(productIDs, it.ProductID)
	}

	//1注文は1店舗の商品だけ
	storeIDs, err := u.products.ListStoreIDs(ctx, productIDs)
	if err != nil {
		return OrderOutput{}, err
	}
	if len(storeIDs) != 1 {
		return OrderOutput{}, ErrInvalidBasket
	}
	storeID := storeIDs[0]

	var out OrderOutput

	//注文の作成〜金額確定まで1トランザクション
	err = runTx(ctx, u.tx, func(r repo.TxRepos) error {
		now := time.Now()

		var discount *model.Discount
		if in.DiscountID != nil {
			d, err := r.Discounts().FindEligible(ctx, *in.DiscountID, now)
			if errors.Is(err, repo.ErrNotFound) {
				return ErrDiscountNotFound
			}
			if err != nil {
				return err
			}
			discount = &d
		}

		order := model.Order{
			ID:          uuid.NewString(),
			UserID:      userID,
			StoreID:     storeID,
			Status:      model.OrderStatusPending,
			PaymentType: in.PaymentType,
			IsPayment:   false,
			TimeReceive: in.TimeReceive,
			DiscountID:  in.DiscountID,
		}
		if err := r.Orders().Create(ctx, order); err != nil {
			return err
		}

		items := make([]model.OrderItem, 0, len(in.Items))
		for _, it := range in.Items {
			items = append(items, model.OrderItem{
				ID:        uuid.NewString(),
				ProductID: it.ProductID,
				Quantity:  it.Quantity,
			})
		}
		if err := r.OrderItems().CreateBulk(ctx, order.ID, items); err != nil {
			return err
		}

		//購入カウンタは同一トランザクションの行ロック下で読み直してから加算する
		for _, it := range in.Items {
			p, err := r.Products().FindByIDForUpdate(ctx, it.ProductID)
			if errors.Is(err, repo.ErrNotFound) {
				//存在しない商品が混ざった注文は受けない
				return ErrInvalidBasket
			}
			if err != nil {
				return err
			}
			if err := r.Products().UpdateBoughtNum(ctx, p.ID, p.BoughtNum+it.Quantity); err != nil {
				return err
			}
		}

		//商品を結合して読み直し、公開状態と合計金額を確定
		detail, err := r.OrderItems().ListByOrderIDWithProduct(ctx, order.ID)
		if err != nil {
			return err
		}
		var total float64
		for _, item := range detail {
			if item.Product.Status == model.StatusInactive {
				return fmt.Errorf("%w: %s", ErrProductInactive, item.Product.Name)
			}
			total += item.Product.Price * float64(item.Quantity)
		}
		if discount != nil {
			total = ApplyDiscount(total, *discount)
		}
		if total < 0 {
			total = 0
		}
		if err := r.Orders().UpdateTotalPrice(ctx, order.ID, total); err != nil {
			return err
		}

		order.TotalPrice = total
		out = toOrderOutput(order, detail)
		return nil
	})
	if err != nil {
		return OrderOutput{}, err
	}

	//コミット後の通知。失敗しても注文は成立したまま
	u.notifier.EmitToStore(ctx, storeID, "You have new order!")

	return out, nil
}

func (u *OrderUsecase) CancelOrder(ctx context.Context, userID string, orderID string) (OrderOutput, error) {
	if userID == "" || orderID == "" {
		return OrderOutput{}, ErrValidation
	}

	var out OrderOutput
	var storeID string

	err := runTx(ctx, u.tx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if errors.Is(err, repo.ErrNotFound) {
			return ErrOrderNotFound
		}
		if err != nil {
			return err
		}
		if o.UserID != userID {
			return ErrForbidden
		}

		if err := u.markCancelled(ctx, r, o.ID); err != nil {
			return err
		}
		o.Status = model.OrderStatusCancelled
		storeID = o.StoreID

		items, err := r.OrderItems().ListByOrderIDWithProduct(ctx, o.ID)
		if err != nil {
			return err
		}
		out = toOrderOutput(o, items)
		return nil
	})
	if err != nil {
		return OrderOutput{}, err
	}

	u.notifier.EmitToStore(ctx, storeID, fmt.Sprintf("order %s was cancelled by user", orderID))

	return out, nil
}

// markCancelled は注文をCANCELLEDへ遷移させる。
// 今はどの状態からでも遷移を受け付ける。状態機械を締める時はここだけ直す。
func (u *OrderUsecase) markCancelled(ctx context.Context, r repo.TxRepos, orderID string) error {
	return r.Orders().UpdateStatus(ctx, orderID, model.OrderStatusCancelled)
}

// HistoryOrder はユーザーの注文を新しい順で返す。
func (u *OrderUsecase) HistoryOrder(ctx context.Context, userID string) ([]OrderOutput, error) {
	if userID == "" {
		return []OrderOutput{}, ErrValidation
	}

	var outs []OrderOutput

	err := runTx(ctx, u.tx, func(r repo.TxRepos) error {
		orders, err := r.Orders().ListByUserID(ctx, userID)
		if err != nil {
			return err
		}

		outs = make([]OrderOutput, 0, len(orders))
		for _, o := range orders {
			items, err := r.OrderItems().ListByOrderIDWithProduct(ctx, o.ID)
			if err != nil {
				return err
			}
			outs = append(outs, toOrderOutput(o, items))
		}
		return nil
	})
	if err != nil {
		return []OrderOutput{}, err
	}
	return outs, nil
}

func toOrderOutput(o model.Order, items []model.OrderItem) OrderOutput {
	outItems := make([]OrderItemOutput, 0, len(items))
	for _, it := range items {
		outItems = append(outItems, OrderItemOutput{
			ProductID: it.ProductID,
			Name:      it.Product.Name,
			Price:     it.Product.Price,
			Quantity:  it.Quantity,
		})
	}

	return OrderOutput{
		ID:          o.ID,
		UserID:      o.UserID,
		StoreID:     o.StoreID,
		Status:      string(o.Status),
		PaymentType: o.PaymentType,
		IsPayment:   o.IsPayment,
		TimeReceive: o.TimeReceive,
		DiscountID:  o.DiscountID,
		TotalPrice:  o.TotalPrice,
		CreatedAt:   o.CreatedAt,
		Items:       outItems,
	}
}
