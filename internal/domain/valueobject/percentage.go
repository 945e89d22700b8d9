// Package valueobject contains immutable domain value types.
package valueobject

import (
	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)
)

// Percentage returns part as a share of whole in [0, 100], rounded to two
// decimals. A zero whole yields 0.
func Percentage(part, whole decimal.Decimal) float64 {
	if whole.IsZero() {
		return 0
	}

	pct := part.Mul(hundred).Div(whole)
	if pct.IsNegative() {
		pct = decimal.Zero
	}
	if pct.GreaterThan(hundred) {
		pct = hundred
	}

	value, _ := pct.Round(2).Float64()
	return value
}
