package dto

import "github.com/shopspring/decimal"

// Money renders an amount rounded to cents.
func Money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
