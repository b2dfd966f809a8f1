package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductRequest payload de creación/actualización de productos.
type ProductRequest struct {
	ID             *int64          `json:"id"`
	Name           string          `json:"name"`
	Description    *string         `json:"description"`
	StockID        int64           `json:"stock_id"`
	Quantity       float64         `json:"quantity"`
	ExpirationDate time.Time       `json:"expiration_date"`
	PurchasePrice  decimal.Decimal `json:"purchase_price"`
	SalePrice      decimal.Decimal `json:"sale_price"`
}

// ProductResponse producto expuesto por la API.
type ProductResponse struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	Description    *string         `json:"description"`
	StockID        int64           `json:"stock_id"`
	Quantity       float64         `json:"quantity"`
	ExpirationDate time.Time       `json:"expiration_date"`
	PurchasePrice  decimal.Decimal `json:"purchase_price"`
	SalePrice      decimal.Decimal `json:"sale_price"`
}
