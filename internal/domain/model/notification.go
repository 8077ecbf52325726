package model

import "time"

type NotificationStatus string

const (
	NotificationUnseen NotificationStatus = "unseen"
	NotificationSeen   NotificationStatus = "seen"
)

// 追記専用。statusのunseen→seen以外は変更しない。
// 宛先はUserIDかStoreIDのどちらか一方だけを設定する。
type Notification struct {
	ID      string  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID  *string `gorm:"type:uuid;index" json:"user_id,omitempty"`
	StoreID *string `gorm:"type:uuid;index" json:"store_id,omitempty"`
	Message string  `gorm:"type:text;not null" json:"message"`

	Status    NotificationStatus `gorm:"type:varchar(20);not null;default:'unseen'" json:"status"`
	CreatedAt time.Time          `gorm:"not null;autoCreateTime;index" json:"created_at"`
}
