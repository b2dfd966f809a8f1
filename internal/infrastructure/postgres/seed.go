package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/gestion-erp/erp-api/internal/domain/entity"
	"github.com/gestion-erp/erp-api/pkg/config"
)

// EnsureDefaultAdmin siembra el administrador por defecto (rank máximo) solo
// cuando la tabla users está vacía. Devuelve true si lo creó.
func EnsureDefaultAdmin(ctx context.Context, pool *pgxpool.Pool, admin config.AdminConfig) (bool, error) {
	var count int64
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return false, translate("count users", err)
	}
	if count > 0 {
		return false, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO users (name, username, password, rank)
		VALUES ($1, $2, $3, $4)`,
		admin.Name, admin.Username, string(hash), entity.RankMax,
	)
	if err != nil {
		return false, translate("seed admin", err)
	}
	return true, nil
}
