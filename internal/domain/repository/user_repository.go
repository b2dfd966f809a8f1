package repository

import (
	"context"

	"github.com/gestion-erp/erp-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User.
// GetByID y GetByUsername devuelven (nil, nil) cuando la fila no existe:
// la ausencia es un resultado normal, no un error.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	// Update sobreescribe todos los campos mutables; devuelve las filas afectadas (0 = no existe).
	Update(ctx context.Context, user *entity.User) (int64, error)
	// Delete devuelve false si no había fila que borrar.
	Delete(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context, p ListParams) (int64, []*entity.User, error)
}
