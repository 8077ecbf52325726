package model

import "time"

// starはコミット済み評価の算術平均、rate_countは評価件数。
// 両方とも評価トランザクションの中でだけ更新する。
type Store struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	RateCount int64     `gorm:"not null;default:0" json:"rate_count"`
	Star      float64   `gorm:"not null;default:0" json:"star"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
