package dto

// CenterRequest payload de creación/actualización de centros.
// Phone y Email son opcionales.
type CenterRequest struct {
	ID      *int64  `json:"id"`
	Name    string  `json:"name"`
	City    string  `json:"city"`
	Address string  `json:"address"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
}

// CenterResponse centro expuesto por la API.
type CenterResponse struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	City    string  `json:"city"`
	Address string  `json:"address"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
}
