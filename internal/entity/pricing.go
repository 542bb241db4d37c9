package entity

import (
	"github.com/shopspring/decimal"
)

// moneyScale is the number of decimal places every derived monetary
// figure is rounded to. Rounding happens after each step, not once at
// the end, so intermediate values are exactly what appears on the invoice.
const moneyScale = 1

var oneHundred = decimal.New(100, 0)

// Pricing is the derived breakdown of a single priced item.
type Pricing struct {
	Price          decimal.Decimal
	DiscountValue  decimal.Decimal
	TotalBeforeTax decimal.Decimal
	TaxValue       decimal.Decimal
	Total          decimal.Decimal
}

// ComputePricing derives the price breakdown from a base price and
// percentage rates. Each step rounds half-up to one decimal place:
//
//	discount = round(price * discountPct / 100)
//	totalBeforeTax = round(price - discount)
//	tax = round(totalBeforeTax * taxPct / 100)
//	total = round(totalBeforeTax + tax)
func ComputePricing(price, discountPct, taxPct decimal.Decimal) Pricing {
	discount := price.Mul(discountPct).Div(oneHundred).Round(moneyScale)
	totalBeforeTax := price.Sub(discount).Round(moneyScale)
	tax := totalBeforeTax.Mul(taxPct).Div(oneHundred).Round(moneyScale)
	total := totalBeforeTax.Add(tax).Round(moneyScale)

	return Pricing{
		Price:          price,
		DiscountValue:  discount,
		TotalBeforeTax: totalBeforeTax,
		TaxValue:       tax,
		Total:          total,
	}
}
