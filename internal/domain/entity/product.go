package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto almacenado en un Stock (StockID es FK).
// Los precios usan decimal para no perder centavos en NUMERIC.
type Product struct {
	ID             int64
	Name           string
	Description    *string
	StockID        int64
	Quantity       float64
	ExpirationDate time.Time
	PurchasePrice  decimal.Decimal
	SalePrice      decimal.Decimal
}
