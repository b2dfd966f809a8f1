package repository

import (
	"context"

	"github.com/gestion-erp/erp-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) (int64, error)
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) (int64, error)
	Delete(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context, p ListParams) (int64, []*entity.Product, error)
}
