package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gestion-erp/erp-api/internal/domain/entity"
	"github.com/gestion-erp/erp-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

const supplierColumns = "id, firstname, lastname, type, contract_date"

const supplierSearch = "concat_ws(' ', firstname, lastname, type)"

// SupplierRepo implementación del puerto SupplierRepository sobre PostgreSQL.
type SupplierRepo struct {
	pool *pgxpool.Pool
}

// NewSupplierRepository construye el adaptador de persistencia para suppliers.
func NewSupplierRepository(pool *pgxpool.Pool) *SupplierRepo {
	return &SupplierRepo{pool: pool}
}

// Create inserta un supplier y devuelve el ID generado.
func (r *SupplierRepo) Create(ctx context.Context, supplier *entity.Supplier) (int64, error) {
	query := `
		INSERT INTO suppliers (firstname, lastname, type, contract_date)
		VALUES ($1, $2, $3, $4) RETURNING id`
	var id int64
	err := r.pool.QueryRow(ctx, query,
		supplier.Firstname, supplier.Lastname, supplier.Type, supplier.ContractDate,
	).Scan(&id)
	if err != nil {
		return 0, translate("insert supplier", err)
	}
	return id, nil
}

// GetByID obtiene un supplier por ID; (nil, nil) si no existe.
func (r *SupplierRepo) GetByID(ctx context.Context, id int64) (*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE id = $1`
	s, err := scanSupplier(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, translate("get supplier", err)
	}
	return s, nil
}

// Update sobreescribe todos los campos mutables; devuelve las filas afectadas.
func (r *SupplierRepo) Update(ctx context.Context, supplier *entity.Supplier) (int64, error) {
	query := `
		UPDATE suppliers
		SET firstname = $2, lastname = $3, type = $4, contract_date = $5
		WHERE id = $1`
	cmd, err := r.pool.Exec(ctx, query,
		supplier.ID, supplier.Firstname, supplier.Lastname, supplier.Type, supplier.ContractDate,
	)
	if err != nil {
		return 0, translate("update supplier", err)
	}
	return cmd.RowsAffected(), nil
}

// Delete elimina un supplier; false si no había fila.
func (r *SupplierRepo) Delete(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		return false, translate("delete supplier", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// List devuelve (total, página). El alcance por tipo es un predicado de
// pertenencia (provider/consumer ∪ both) que se compone en AND con el filtro
// de subcadena.
func (r *SupplierRepo) List(ctx context.Context, p repository.ListParams, scope repository.SupplierScope) (int64, []*entity.Supplier, error) {
	q := listQuery{table: "suppliers", columns: supplierColumns, search: supplierSearch}
	switch scope {
	case repository.ScopeProviders:
		q.conds = []string{"type IN ($1, $2)"}
		q.args = []any{entity.SupplierProvider, entity.SupplierBoth}
	case repository.ScopeConsumers:
		q.conds = []string{"type IN ($1, $2)"}
		q.args = []any{entity.SupplierConsumer, entity.SupplierBoth}
	}
	return listRows(ctx, r.pool, q, p, func(rows pgx.Rows) (*entity.Supplier, error) {
		return scanSupplier(rows)
	})
}

func scanSupplier(row pgx.Row) (*entity.Supplier, error) {
	var s entity.Supplier
	err := row.Scan(&s.ID, &s.Firstname, &s.Lastname, &s.Type, &s.ContractDate)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
