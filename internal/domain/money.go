package domain

import "github.com/shopspring/decimal"

// MoneyScale is the number of decimal places stored for prices and totals.
const MoneyScale = 2

// RoundMoney rounds v half away from zero to MoneyScale places, the value
// MySQL keeps for a DECIMAL(_,2) column.
func RoundMoney(v float64) float64 {
	return decimal.NewFromFloat(v).Round(MoneyScale).InexactFloat64()
}
