package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gestion-erp/erp-api/internal/domain/entity"
	"github.com/gestion-erp/erp-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

const transactionColumns = "id, supplier_id, date, product_id, type, price, quantity, tax, discount"

// El filtro busca también sobre columnas numéricas y de fecha, por eso los casts.
const transactionSearch = "concat_ws(' ', supplier_id::text, product_id::text, date::text, type::text, price::text, quantity::text, tax::text, discount::text)"

// TransactionRepo implementación del puerto TransactionRepository sobre PostgreSQL.
type TransactionRepo struct {
	pool *pgxpool.Pool
}

// NewTransactionRepository construye el adaptador de persistencia para transacciones.
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepo {
	return &TransactionRepo{pool: pool}
}

// Create inserta una transacción y devuelve el ID generado.
func (r *TransactionRepo) Create(ctx context.Context, transaction *entity.Transaction) (int64, error) {
	query := `
		INSERT INTO transactions (supplier_id, date, product_id, type, price, quantity, tax, discount)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	var id int64
	err := r.pool.QueryRow(ctx, query,
		transaction.SupplierID, transaction.Date, transaction.ProductID, transaction.Type,
		transaction.Price, transaction.Quantity, transaction.Tax, transaction.Discount,
	).Scan(&id)
	if err != nil {
		return 0, translate("insert transaction", err)
	}
	return id, nil
}

// GetByID obtiene una transacción por ID; (nil, nil) si no existe.
func (r *TransactionRepo) GetByID(ctx context.Context, id int64) (*entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`
	t, err := scanTransaction(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, translate("get transaction", err)
	}
	return t, nil
}

// Update sobreescribe todos los campos mutables; devuelve las filas afectadas.
func (r *TransactionRepo) Update(ctx context.Context, transaction *entity.Transaction) (int64, error) {
	query := `
		UPDATE transactions
		SET supplier_id = $2, date = $3, product_id = $4, type = $5,
		    price = $6, quantity = $7, tax = $8, discount = $9
		WHERE id = $1`
	cmd, err := r.pool.Exec(ctx, query,
		transaction.ID, transaction.SupplierID, transaction.Date, transaction.ProductID,
		transaction.Type, transaction.Price, transaction.Quantity, transaction.Tax, transaction.Discount,
	)
	if err != nil {
		return 0, translate("update transaction", err)
	}
	return cmd.RowsAffected(), nil
}

// Delete elimina una transacción; false si no había fila.
func (r *TransactionRepo) Delete(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return false, translate("delete transaction", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// List devuelve (total, página). El alcance por signo (ingresos type = 1,
// egresos type = -1) se compone en AND con el filtro de subcadena.
func (r *TransactionRepo) List(ctx context.Context, p repository.ListParams, scope repository.TransactionScope) (int64, []*entity.Transaction, error) {
	q := listQuery{table: "transactions", columns: transactionColumns, search: transactionSearch}
	switch scope {
	case repository.ScopeIncomes:
		q.conds = []string{"type = $1"}
		q.args = []any{entity.TransactionIncome}
	case repository.ScopeOutcomes:
		q.conds = []string{"type = $1"}
		q.args = []any{entity.TransactionOutcome}
	}
	return listRows(ctx, r.pool, q, p, func(rows pgx.Rows) (*entity.Transaction, error) {
		return scanTransaction(rows)
	})
}

func scanTransaction(row pgx.Row) (*entity.Transaction, error) {
	var t entity.Transaction
	err := row.Scan(&t.ID, &t.SupplierID, &t.Date, &t.ProductID, &t.Type,
		&t.Price, &t.Quantity, &t.Tax, &t.Discount)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
