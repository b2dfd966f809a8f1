package domain

import "fmt"

// Errores de dominio (sin dependencias externas). A diferencia de un simple
// sentinel, cada tipo carga el contexto necesario para que la capa HTTP
// identifique entidad, identificador o campo afectado.

// ValidationError entrada malformada o fuera de rango, detectada antes de persistir.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validación: campo %q %s", e.Field, e.Reason)
}

// NotFoundError el identificador no corresponde a ninguna fila existente.
type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s con ID %d no encontrado", e.Entity, e.ID)
}

// ReferenceError la clave foránea apunta a un padre inexistente.
type ReferenceError struct {
	Relation string // ej. "stocks.center_id -> centers.id"
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("referencia inválida: %s", e.Relation)
}

// PreconditionError falta el identificador requerido para una actualización.
type PreconditionError struct {
	Entity string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("se requiere el ID de %s para actualizar", e.Entity)
}

// AuthKind clasifica los fallos de autenticación.
type AuthKind string

const (
	AuthCredentials AuthKind = "credentials" // usuario inexistente o password incorrecto (indistinguibles)
	AuthMalformed   AuthKind = "malformed"
	AuthExpired     AuthKind = "expired"
	AuthInvalid     AuthKind = "invalid"
)

// AuthError fallo de credenciales o de token.
type AuthError struct {
	Kind    AuthKind
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

// ErrInvalidCredentials respuesta única para usuario inexistente y password
// incorrecto: ambos casos deben ser indistinguibles para el llamador.
func ErrInvalidCredentials() *AuthError {
	return &AuthError{Kind: AuthCredentials, Message: "usuario o password inválidos"}
}

// StoreError fallo de persistencia no clasificado (conexión, constraint inesperado).
// No corrompe operaciones posteriores: el handle del store sigue siendo usable.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
