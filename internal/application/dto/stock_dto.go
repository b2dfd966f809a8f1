package dto

// StockRequest payload de creación/actualización de almacenes.
type StockRequest struct {
	ID       *int64 `json:"id"`
	Name     string `json:"name"`
	City     string `json:"city"`
	Address  string `json:"address"`
	CenterID int64  `json:"center_id"`
}

// StockResponse almacén expuesto por la API.
type StockResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	City     string `json:"city"`
	Address  string `json:"address"`
	CenterID int64  `json:"center_id"`
}
