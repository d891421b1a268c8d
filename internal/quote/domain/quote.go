package domain

import "github.com/shopspring/decimal"

type Line struct {
	ProductID string
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}

// Quote prices a cart snapshot. Amounts are exact decimals; rounding to two
// places happens only when a value is formatted for display.
type Quote struct {
	Lines []Line
	Total decimal.Decimal
}
