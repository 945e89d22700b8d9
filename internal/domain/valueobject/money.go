// Package valueobject contains immutable domain value types.
package valueobject

import "github.com/shopspring/decimal"

// MoneyPlaces is the number of decimal places an amount may carry. Both
// stores keep amounts as DECIMAL(15,2).
const MoneyPlaces = 2

// FitsMoneyScale reports whether amount has no significant digits past
// MoneyPlaces. Trailing zeros are not significant, so 10.500 fits.
func FitsMoneyScale(amount decimal.Decimal) bool {
	return amount.Equal(amount.Truncate(MoneyPlaces))
}
