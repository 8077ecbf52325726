package usecase

import (
	"context"
	"errors"
	"time"

	"marketplace/internal/domain/model"
	repo "marketplace/internal/repository"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type RatingUsecase struct {
	tx       repo.TransactionManager
	notifier *Notifier
}

func NewRatingUsecase(tx repo.TransactionManager, notifier *Notifier) *RatingUsecase {
	return &RatingUsecase{tx: tx, notifier: notifier}
}

type RateOrderInput struct {
	Star    int
	Content string
	Images  []string
}

type RateOutput struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"order_id"`
	Star      int       `json:"star"`
	Content   string    `json:"content"`
	Images    []string  `json:"images,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// RateOrder は注文を評価し、店舗の平均評価を同一トランザクションで作り直す。
func (u *RatingUsecase) RateOrder(ctx context.Context, userID string, orderID string, in RateOrderInput) (RateOutput, error) {
	if userID == "" || orderID == "" {
		return RateOutput{}, ErrValidation
	}
	if in.Star < 1 || in.Star > 5 {
		return RateOutput{}, ErrValidation
	}

	var out RateOutput
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
		if o.Status != model.OrderStatusSuccess {
			return ErrOrderNotCompleted
		}

		//店舗行をロックしてから集計を作り直す。同時評価はここで直列化される
		store, err := r.Stores().FindByIDForUpdate(ctx, o.StoreID)
		if err != nil {
			return err
		}

		rate := model.Rate{
			ID:      uuid.NewString(),
			OrderID: orderID,
			Star:    in.Star,
			Content: in.Content,
		}
		if len(in.Images) > 0 {
			rate.Images = datatypes.NewJSONSlice(in.Images)
		}
		if err := r.Rates().Create(ctx, rate); err != nil {
			if errors.Is(err, repo.ErrDuplicate) {
				return ErrDuplicateRating
			}
			return err
		}

		//starは常に全評価の算術平均に保つ
		newCount := store.RateCount + 1
		newStar := (store.Star*float64(store.RateCount) + float64(in.Star)) / float64(newCount)
		if err := r.Stores().UpdateRating(ctx, store.ID, newStar, newCount); err != nil {
			return err
		}

		storeID = store.ID
		out = RateOutput{
			ID:        rate.ID,
			OrderID:   orderID,
			Star:      in.Star,
			Content:   in.Content,
			Images:    in.Images,
			CreatedAt: rate.CreatedAt,
		}
		return nil
	})
	if err != nil {
		return RateOutput{}, err
	}

	u.notifier.EmitToStore(ctx, storeID, "User has been rated your store!")

	return out, nil
}
