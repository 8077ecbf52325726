package model

import "time"

type DiscountType string

const (
	DiscountTypePrice   DiscountType = "PRICE"
	DiscountTypePercent DiscountType = "PERCENT"
)

type Discount struct {
	ID           string       `gorm:"type:uuid;primaryKey" json:"id"`
	StoreID      string       `gorm:"type:uuid;not null;index" json:"store_id"`
	DiscountType DiscountType `gorm:"type:varchar(20);not null" json:"discount_type"`

	//定額値引き（PRICE用）
	DiscountPrice float64 `gorm:"not null;default:0" json:"discount_price"`

	//割合値引き（%）
	DiscountPercent float64 `gorm:"not null;default:0" json:"discount_percent"`

	Status Status `gorm:"type:varchar(20);not null;index" json:"status"`

	//有効期間
	Start time.Time `gorm:"not null" json:"start"`
	End   time.Time `gorm:"not null;index" json:"end"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
