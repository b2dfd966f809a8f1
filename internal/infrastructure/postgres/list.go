package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gestion-erp/erp-api/internal/domain"
	"github.com/gestion-erp/erp-api/internal/domain/repository"
)

// listQuery describe un listado genérico: tabla, columnas del SELECT, la
// expresión de campos buscables y los predicados de alcance ya parametrizados
// ($1..$n sobre args). El filtro de subcadena y la paginación se componen
// encima en buildListSQL; los predicados nunca reemplazan al filtro.
type listQuery struct {
	table   string
	columns string
	search  string   // ej. "concat_ws(' ', name, city, address)"
	conds   []string // predicados de alcance, en AND con el filtro
	args    []any
}

// buildListSQL arma el par count/data para un listado. El count ignora la
// paginación; el data ordena por id ascendente para que la paginación sea un
// cursor estable, y solo aplica LIMIT/OFFSET cuando Limit >= 0 (el centinela
// repository.NoLimit devuelve todas las filas).
func buildListSQL(q listQuery, p repository.ListParams) (countSQL, dataSQL string, countArgs, dataArgs []any) {
	conds := append([]string(nil), q.conds...)
	args := append([]any(nil), q.args...)

	if p.Filter != "" {
		conds = append(conds, fmt.Sprintf("%s ILIKE $%d", q.search, len(args)+1))
		args = append(args, "%"+p.Filter+"%")
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	countSQL = "SELECT COUNT(*) FROM " + q.table + where
	countArgs = args

	dataSQL = "SELECT " + q.columns + " FROM " + q.table + where + " ORDER BY id ASC"
	dataArgs = args
	if p.Limit >= 0 {
		dataSQL += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
		dataArgs = append(append([]any(nil), args...), p.Limit, p.Offset)
	}
	return countSQL, dataSQL, countArgs, dataArgs
}

// listRows ejecuta count + select dentro de una única transacción REPEATABLE
// READ de solo lectura, de modo que total y body salen del mismo snapshot
// aunque haya escritores concurrentes.
func listRows[T any](ctx context.Context, pool *pgxpool.Pool, q listQuery, p repository.ListParams, scan func(rows pgx.Rows) (T, error)) (int64, []T, error) {
	countSQL, dataSQL, countArgs, dataArgs := buildListSQL(q, p)

	tx, err := pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return 0, nil, &domain.StoreError{Op: "begin list " + q.table, Err: err}
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var total int64
	if err := tx.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return 0, nil, translate("count "+q.table, err)
	}

	rows, err := tx.Query(ctx, dataSQL, dataArgs...)
	if err != nil {
		return 0, nil, translate("list "+q.table, err)
	}
	defer rows.Close()

	list := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return 0, nil, translate("scan "+q.table, err)
		}
		list = append(list, item)
	}
	if err := rows.Err(); err != nil {
		return 0, nil, translate("list "+q.table, err)
	}
	rows.Close()

	if err := tx.Commit(ctx); err != nil {
		return 0, nil, &domain.StoreError{Op: "commit list " + q.table, Err: err}
	}
	return total, list, nil
}
