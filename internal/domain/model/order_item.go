package model

import "time"

// 注文の明細。注文と同時に作成され、以後変更しない。
type OrderItem struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	OrderID   string    `gorm:"type:uuid;not null;index" json:"order_id"`
	ProductID string    `gorm:"type:uuid;not null;index" json:"product_id"`
	Quantity  int64     `gorm:"not null" json:"quantity"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`

	//価格計算用の結合先
	Product Product `gorm:"foreignKey:ProductID;references:ID" json:"product"`
}
