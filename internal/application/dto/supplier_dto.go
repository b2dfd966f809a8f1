package dto

import "time"

// SupplierRequest payload de creación/actualización de suppliers.
// Type debe ser provider, consumer o both.
type SupplierRequest struct {
	ID           *int64    `json:"id"`
	Firstname    string    `json:"firstname"`
	Lastname     string    `json:"lastname"`
	Type         string    `json:"type"`
	ContractDate time.Time `json:"contract_date"`
}

// SupplierResponse supplier expuesto por la API.
type SupplierResponse struct {
	ID           int64     `json:"id"`
	Firstname    string    `json:"firstname"`
	Lastname     string    `json:"lastname"`
	Type         string    `json:"type"`
	ContractDate time.Time `json:"contract_date"`
}
