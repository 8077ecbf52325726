package usecase

import "marketplace/internal/domain/model"

// ApplyDiscount は注文合計へ割引を適用する。
// PRICE種別は先に定額を引き、0未満には落とさない。
// percentはその後、種別に関わらず必ず差し引く（現行の確定仕様。変える時はここ1箇所）。
func ApplyDiscount(total float64, d model.Discount) float64 {
	if d.DiscountType == model.DiscountTypePrice {
		total = total - d.DiscountPrice
		if total < 0 {
			total = 0
		}
	}
	total = total - total*(d.DiscountPercent/100)
	if total < 0 {
		total = 0
	}
	return total
}
