package entity

import "time"

// Tipos válidos para Supplier.
const (
	SupplierProvider = "provider"
	SupplierConsumer = "consumer"
	SupplierBoth     = "both"
)

// ValidSupplierType indica si el tipo pertenece al conjunto enumerado.
func ValidSupplierType(t string) bool {
	return t == SupplierProvider || t == SupplierConsumer || t == SupplierBoth
}

// Supplier representa una contraparte comercial. Type determina en qué
// listados alcanzados aparece: providers = provider ∪ both, consumers = consumer ∪ both.
type Supplier struct {
	ID           int64
	Firstname    string
	Lastname     string
	Type         string // provider, consumer, both
	ContractDate time.Time
}
