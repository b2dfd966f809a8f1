package repository

import (
	"context"

	"github.com/gestion-erp/erp-api/internal/domain/entity"
)

// TransactionRepository define el puerto de persistencia para Transaction.
type TransactionRepository interface {
	Create(ctx context.Context, transaction *entity.Transaction) (int64, error)
	GetByID(ctx context.Context, id int64) (*entity.Transaction, error)
	Update(ctx context.Context, transaction *entity.Transaction) (int64, error)
	Delete(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context, p ListParams, scope TransactionScope) (int64, []*entity.Transaction, error)
}
