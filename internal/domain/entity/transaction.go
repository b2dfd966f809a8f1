package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Signos válidos para Transaction.Type.
const (
	TransactionIncome  = 1
	TransactionOutcome = -1
)

// Transaction representa un movimiento de compra o venta de un Product.
// SupplierID referencia al User que actúa como contraparte; Type vale
// exactamente +1 (ingreso) o -1 (egreso).
type Transaction struct {
	ID         int64
	SupplierID int64
	ProductID  int64
	Date       time.Time
	Type       int
	Price      decimal.Decimal
	Quantity   float64
	Tax        decimal.Decimal
	Discount   decimal.Decimal
}
