package repository

import (
	"context"

	"github.com/gestion-erp/erp-api/internal/domain/entity"
)

// StockRepository define el puerto de persistencia para Stock.
type StockRepository interface {
	Create(ctx context.Context, stock *entity.Stock) (int64, error)
	GetByID(ctx context.Context, id int64) (*entity.Stock, error)
	Update(ctx context.Context, stock *entity.Stock) (int64, error)
	Delete(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context, p ListParams) (int64, []*entity.Stock, error)
}
