package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionRequest payload de creación/actualización de transacciones.
// Type vale exactamente 1 (ingreso) o -1 (egreso).
type TransactionRequest struct {
	ID         *int64          `json:"id"`
	SupplierID int64           `json:"supplier_id"`
	ProductID  int64           `json:"product_id"`
	Date       time.Time       `json:"date"`
	Type       int             `json:"type"`
	Price      decimal.Decimal `json:"price"`
	Quantity   float64         `json:"quantity"`
	Tax        decimal.Decimal `json:"tax"`
	Discount   decimal.Decimal `json:"discount"`
}

// TransactionResponse transacción expuesta por la API.
type TransactionResponse struct {
	ID         int64           `json:"id"`
	SupplierID int64           `json:"supplier_id"`
	ProductID  int64           `json:"product_id"`
	Date       time.Time       `json:"date"`
	Type       int             `json:"type"`
	Price      decimal.Decimal `json:"price"`
	Quantity   float64         `json:"quantity"`
	Tax        decimal.Decimal `json:"tax"`
	Discount   decimal.Decimal `json:"discount"`
}
