package usecase

import (
	"context"
	"time"

	"marketplace/internal/domain/model"
	"marketplace/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const notifyRetryDelay = 2 * time.Second

// Notifier はコミット後の通知書き込みを担う。
// 失敗しても呼び出し元の処理は巻き戻さない。ログに残して1回だけ再試行する。
type Notifier struct {
	notifications repository.NotificationRepository
	logger        *zap.Logger
}

func NewNotifier(notifications repository.NotificationRepository, logger *zap.Logger) *Notifier {
	return &Notifier{notifications: notifications, logger: logger}
}

func (n *Notifier) EmitToStore(ctx context.Context, storeID string, message string) {
	n.emit(ctx, model.Notification{
		ID:      uuid.NewString(),
		StoreID: &storeID,
		Message: message,
		Status:  model.NotificationUnseen,
	})
}

// 管理者宛も個人宛もuser_idに入る
func (n *Notifier) EmitToUser(ctx context.Context, userID string, message string) {
	n.emit(ctx, model.Notification{
		ID:      uuid.NewString(),
		UserID:  &userID,
		Message: message,
		Status:  model.NotificationUnseen,
	})
}

func (n *Notifier) emit(ctx context.Context, notif model.Notification) {
	//リクエストが切れた後でも書き切る
	ctx = context.WithoutCancel(ctx)

	err := n.notifications.Create(ctx, notif)
	if err == nil {
		return
	}
	n.logger.Error("emit notification failed",
		zap.String("notification_id", notif.ID),
		zap.Error(err))

	go func() {
		time.Sleep(notifyRetryDelay)
		retryCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := n.notifications.Create(retryCtx, notif); err != nil {
			n.logger.Error("emit notification retry failed",
				zap.String("notification_id", notif.ID),
				zap.Error(err))
		}
	}()
}
