package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gestion-erp/erp-api/internal/domain/entity"
	"github.com/gestion-erp/erp-api/internal/domain/repository"
)

var _ repository.CenterRepository = (*CenterRepo)(nil)

const centerColumns = "id, name, city, address, phone, email"

// Campos buscables del filtro de subcadena, igual para count y select.
const centerSearch = "concat_ws(' ', name, city, address, phone, email)"

// CenterRepo implementación del puerto CenterRepository sobre PostgreSQL.
type CenterRepo struct {
	pool *pgxpool.Pool
}

// NewCenterRepository construye el adaptador de persistencia para centros.
func NewCenterRepository(pool *pgxpool.Pool) *CenterRepo {
	return &CenterRepo{pool: pool}
}

// Create inserta un centro y devuelve el ID generado por el store.
func (r *CenterRepo) Create(ctx context.Context, center *entity.Center) (int64, error) {
	query := `
		INSERT INTO centers (name, city, address, phone, email)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`
	var id int64
	err := r.pool.QueryRow(ctx, query,
		center.Name, center.City, center.Address, center.Phone, center.Email,
	).Scan(&id)
	if err != nil {
		return 0, translate("insert center", err)
	}
	return id, nil
}

// GetByID obtiene un centro por ID; (nil, nil) si no existe.
func (r *CenterRepo) GetByID(ctx context.Context, id int64) (*entity.Center, error) {
	query := `SELECT ` + centerColumns + ` FROM centers WHERE id = $1`
	c, err := scanCenter(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, translate("get center", err)
	}
	return c, nil
}

// Update sobreescribe todos los campos mutables; devuelve las filas afectadas.
func (r *CenterRepo) Update(ctx context.Context, center *entity.Center) (int64, error) {
	query := `
		UPDATE centers
		SET name = $2, city = $3, address = $4, phone = $5, email = $6
		WHERE id = $1`
	cmd, err := r.pool.Exec(ctx, query,
		center.ID, center.Name, center.City, center.Address, center.Phone, center.Email,
	)
	if err != nil {
		return 0, translate("update center", err)
	}
	return cmd.RowsAffected(), nil
}

// Delete elimina un centro; false si no había fila.
func (r *CenterRepo) Delete(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM centers WHERE id = $1`, id)
	if err != nil {
		return false, translate("delete center", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// List devuelve (total, página) aplicando filtro de subcadena y paginación.
func (r *CenterRepo) List(ctx context.Context, p repository.ListParams) (int64, []*entity.Center, error) {
	q := listQuery{table: "centers", columns: centerColumns, search: centerSearch}
	return listRows(ctx, r.pool, q, p, func(rows pgx.Rows) (*entity.Center, error) {
		return scanCenter(rows)
	})
}

func scanCenter(row pgx.Row) (*entity.Center, error) {
	var c entity.Center
	err := row.Scan(&c.ID, &c.Name, &c.City, &c.Address, &c.Phone, &c.Email)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
