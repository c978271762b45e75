package calc

import (
	"github.com/shopmitra/shopmitra/app/models"
	"github.com/shopspring/decimal"
)

// CartTotals recomputes the four cart aggregates from the full item set.
// Totals are never incremented in place; interleaved mutations therefore
// converge on the sums of whatever items survive.
func CartTotals(items []models.CartItem) models.CartTotals {
	totals := models.CartTotals{
		TotalPrice:           decimal.Zero,
		TotalDiscountedPrice: decimal.Zero,
		Discount:             decimal.Zero,
	}

	for _, item := range items {
		qty := decimal.NewFromInt(int64(item.Quantity))
		totals.TotalItem += item.Quantity
		totals.TotalPrice = totals.TotalPrice.Add(item.Price.Mul(qty))
		totals.TotalDiscountedPrice = totals.TotalDiscountedPrice.Add(item.DiscountedPrice.Mul(qty))
	}

	totals.Discount = totals.TotalPrice.Sub(totals.TotalDiscountedPrice)
	return totals
}

// ToMinorUnits converts a major-unit amount to the gateway's minor currency
// unit (paise), truncating sub-paise fractions.
func ToMinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).IntPart()
}
