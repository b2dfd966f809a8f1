package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/gestion-erp/erp-api/internal/domain"
)

// translate convierte un error de Postgres en el error de dominio que
// corresponde: 23503 (FK rota) -> ReferenceError con la relación violada,
// 23505 sobre username -> ValidationError de campo. Todo lo demás es StoreError.
func translate(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23503": // foreign_key_violation
			return &domain.ReferenceError{Relation: relationFor(pgErr.ConstraintName)}
		case "23505": // unique_violation
			if pgErr.ConstraintName == "users_username_key" {
				return &domain.ValidationError{Field: "username", Reason: "ya está registrado"}
			}
		}
	}
	return &domain.StoreError{Op: op, Err: err}
}

// relationFor traduce el nombre del constraint a la relación legible que
// viaja en el ReferenceError.
func relationFor(constraint string) string {
	switch constraint {
	case "stocks_center_id_fkey":
		return "stocks.center_id -> centers.id"
	case "products_stock_id_fkey":
		return "products.stock_id -> stocks.id"
	case "transactions_supplier_id_fkey":
		return "transactions.supplier_id -> users.id"
	case "transactions_product_id_fkey":
		return "transactions.product_id -> products.id"
	}
	return constraint
}
