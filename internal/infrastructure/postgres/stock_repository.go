package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gestion-erp/erp-api/internal/domain/entity"
	"github.com/gestion-erp/erp-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

const stockColumns = "id, name, city, address, center_id"

const stockSearch = "concat_ws(' ', name, city, address)"

// StockRepo implementación del puerto StockRepository sobre PostgreSQL.
type StockRepo struct {
	pool *pgxpool.Pool
}

// NewStockRepository construye el adaptador de persistencia para almacenes.
func NewStockRepository(pool *pgxpool.Pool) *StockRepo {
	return &StockRepo{pool: pool}
}

// Create inserta un almacén y devuelve el ID generado. Un center_id que no
// referencia un centro existente sale como ReferenceError.
func (r *StockRepo) Create(ctx context.Context, stock *entity.Stock) (int64, error) {
	query := `
		INSERT INTO stocks (name, city, address, center_id)
		VALUES ($1, $2, $3, $4) RETURNING id`
	var id int64
	err := r.pool.QueryRow(ctx, query,
		stock.Name, stock.City, stock.Address, stock.CenterID,
	).Scan(&id)
	if err != nil {
		return 0, translate("insert stock", err)
	}
	return id, nil
}

// GetByID obtiene un almacén por ID; (nil, nil) si no existe.
func (r *StockRepo) GetByID(ctx context.Context, id int64) (*entity.Stock, error) {
	query := `SELECT ` + stockColumns + ` FROM stocks WHERE id = $1`
	s, err := scanStock(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, translate("get stock", err)
	}
	return s, nil
}

// Update sobreescribe todos los campos mutables; devuelve las filas afectadas.
func (r *StockRepo) Update(ctx context.Context, stock *entity.Stock) (int64, error) {
	query := `
		UPDATE stocks
		SET name = $2, city = $3, address = $4, center_id = $5
		WHERE id = $1`
	cmd, err := r.pool.Exec(ctx, query,
		stock.ID, stock.Name, stock.City, stock.Address, stock.CenterID,
	)
	if err != nil {
		return 0, translate("update stock", err)
	}
	return cmd.RowsAffected(), nil
}

// Delete elimina un almacén; false si no había fila.
func (r *StockRepo) Delete(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM stocks WHERE id = $1`, id)
	if err != nil {
		return false, translate("delete stock", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// List devuelve (total, página) aplicando filtro de subcadena y paginación.
func (r *StockRepo) List(ctx context.Context, p repository.ListParams) (int64, []*entity.Stock, error) {
	q := listQuery{table: "stocks", columns: stockColumns, search: stockSearch}
	return listRows(ctx, r.pool, q, p, func(rows pgx.Rows) (*entity.Stock, error) {
		return scanStock(rows)
	})
}

func scanStock(row pgx.Row) (*entity.Stock, error) {
	var s entity.Stock
	err := row.Scan(&s.ID, &s.Name, &s.City, &s.Address, &s.CenterID)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
