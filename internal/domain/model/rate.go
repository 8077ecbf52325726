package model

import (
	"time"

	"gorm.io/datatypes"
)

// 注文に対する評価。1注文につき1件（order_idのunique制約で担保）。
type Rate struct {
	ID      string `gorm:"type:uuid;primaryKey" json:"id"`
	OrderID string `gorm:"type:uuid;not null;uniqueIndex" json:"order_id"`

	//1〜5
	Star    int    `gorm:"not null" json:"star"`
	Content string `gorm:"type:text" json:"content"`

	//アップロード済み画像のURL一覧
	Images datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"images,omitempty"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
