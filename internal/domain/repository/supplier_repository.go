package repository

import (
	"context"

	"github.com/gestion-erp/erp-api/internal/domain/entity"
)

// SupplierRepository define el puerto de persistencia para Supplier.
// List compone el alcance por tipo con el filtro de subcadena: ambos
// predicados se aplican en AND, nunca uno en lugar del otro.
type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) (int64, error)
	GetByID(ctx context.Context, id int64) (*entity.Supplier, error)
	Update(ctx context.Context, supplier *entity.Supplier) (int64, error)
	Delete(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context, p ListParams, scope SupplierScope) (int64, []*entity.Supplier, error)
}
