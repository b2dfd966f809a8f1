package dto

// UserRequest payload de creación/actualización de usuarios. ID solo es
// obligatorio para actualizar. Password llega en claro y se hashea con
// bcrypt antes de persistir.
type UserRequest struct {
	ID       *int64 `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`
	Rank     int    `json:"rank"`
}

// UserResponse usuario expuesto por la API. Nunca incluye el hash del password.
type UserResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Rank     int    `json:"rank"`
}

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse token emitido, con el prefijo "Bearer " ya incluido para
// colocarlo directo en el header Authorization.
type LoginResponse struct {
	Token string `json:"token"`
}
