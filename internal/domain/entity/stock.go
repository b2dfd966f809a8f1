package entity

// Stock representa un almacén que pertenece a un Center (CenterID es FK).
type Stock struct {
	ID       int64
	Name     string
	City     string
	Address  string
	CenterID int64
}
