package model

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusSuccess   OrderStatus = "SUCCESS"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

type Order struct {
	ID          string      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      string      `gorm:"type:uuid;not null;index" json:"user_id"`
	StoreID     string      `gorm:"type:uuid;not null;index" json:"store_id"`
	Status      OrderStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	PaymentType string      `gorm:"type:varchar(50);not null" json:"payment_type"`
	IsPayment   bool        `gorm:"not null;default:false" json:"is_payment"`

	//受け取り希望日時
	TimeReceive time.Time `gorm:"not null" json:"time_receive"`

	DiscountID *string `gorm:"type:uuid" json:"discount_id,omitempty"`

	//全明細を登録した後に確定する
	TotalPrice float64 `gorm:"not null;default:0" json:"total_price"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
