package repository

import (
	"context"

	"github.com/gestion-erp/erp-api/internal/domain/entity"
)

// CenterRepository define el puerto de persistencia para Center.
type CenterRepository interface {
	Create(ctx context.Context, center *entity.Center) (int64, error)
	GetByID(ctx context.Context, id int64) (*entity.Center, error)
	Update(ctx context.Context, center *entity.Center) (int64, error)
	Delete(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context, p ListParams) (int64, []*entity.Center, error)
}
