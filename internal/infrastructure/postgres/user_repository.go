package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gestion-erp/erp-api/internal/domain/entity"
	"github.com/gestion-erp/erp-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = "id, name, username, password, rank"

const userSearch = "concat_ws(' ', name, rank::text)"

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

// Create inserta un usuario y devuelve el ID generado. Un username repetido
// sale como ValidationError sobre el campo username.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) (int64, error) {
	query := `
		INSERT INTO users (name, username, password, rank)
		VALUES ($1, $2, $3, $4) RETURNING id`
	var id int64
	err := r.pool.QueryRow(ctx, query,
		user.Name, user.Username, user.Password, user.Rank,
	).Scan(&id)
	if err != nil {
		return 0, translate("insert user", err)
	}
	return id, nil
}

// GetByID obtiene un usuario por ID; (nil, nil) si no existe.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	u, err := scanUser(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, translate("get user", err)
	}
	return u, nil
}

// GetByUsername obtiene un usuario por username; (nil, nil) si no existe.
// Es el lookup del login.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	u, err := scanUser(r.pool.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, translate("get user by username", err)
	}
	return u, nil
}

// Update sobreescribe todos los campos mutables del esquema (name, username,
// password, rank); devuelve las filas afectadas.
func (r *UserRepo) Update(ctx context.Context, user *entity.User) (int64, error) {
	query := `
		UPDATE users
		SET name = $2, username = $3, password = $4, rank = $5
		WHERE id = $1`
	cmd, err := r.pool.Exec(ctx, query,
		user.ID, user.Name, user.Username, user.Password, user.Rank,
	)
	if err != nil {
		return 0, translate("update user", err)
	}
	return cmd.RowsAffected(), nil
}

// Delete elimina un usuario; false si no había fila.
func (r *UserRepo) Delete(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return false, translate("delete user", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// List devuelve (total, página) aplicando filtro de subcadena y paginación.
func (r *UserRepo) List(ctx context.Context, p repository.ListParams) (int64, []*entity.User, error) {
	q := listQuery{table: "users", columns: userColumns, search: userSearch}
	return listRows(ctx, r.pool, q, p, func(rows pgx.Rows) (*entity.User, error) {
		return scanUser(rows)
	})
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(&u.ID, &u.Name, &u.Username, &u.Password, &u.Rank)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
