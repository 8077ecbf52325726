package model

import "time"

// 商品・割引共通の公開状態
type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
)

type Product struct {
	ID      string  `gorm:"type:uuid;primaryKey" json:"id"`
	StoreID string  `gorm:"type:uuid;not null;index" json:"store_id"`
	Name    string  `gorm:"type:varchar(255);not null" json:"name"`
	Price   float64 `gorm:"not null" json:"price"`

	//累計購入数。減ることはない
	BoughtNum int64 `gorm:"not null;default:0" json:"bought_num"`

	Status    Status    `gorm:"type:varchar(20);not null;index" json:"status"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
