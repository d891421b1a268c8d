package domain

import "github.com/shopspring/decimal"

// Product is one catalog entry. The catalog is fixed at startup and
// read-only afterwards; Image is an opaque asset reference for the UI.
type Product struct {
	ID    string
	Name  string
	Price decimal.Decimal
	Image string
}
