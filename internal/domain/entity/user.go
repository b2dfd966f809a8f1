package entity

// Rangos válidos para User. El administrador sembrado usa RankMax.
const (
	RankMin = 0
	RankMax = 3
)

// User representa un usuario del sistema. Password guarda siempre el hash
// bcrypt, nunca el texto plano después de persistir.
type User struct {
	ID       int64
	Name     string
	Username string // único en toda la tabla
	Password string
	Rank     int // 0..3
}
