package entity

// Center representa un centro de distribución. Phone y Email son opcionales
// (NULL en la tabla), el resto de los campos de negocio son obligatorios.
type Center struct {
	ID      int64
	Name    string
	City    string
	Address string
	Phone   *string
	Email   *string
}
