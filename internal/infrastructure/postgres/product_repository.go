package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gestion-erp/erp-api/internal/domain/entity"
	"github.com/gestion-erp/erp-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = "id, name, description, stock_id, quantity, expiration_date, purchase_price, sale_price"

const productSearch = "concat_ws(' ', name, description)"

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(pool *pgxpool.Pool) *ProductRepo {
	return &ProductRepo{pool: pool}
}

// Create inserta un producto y devuelve el ID generado.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) (int64, error) {
	query := `
		INSERT INTO products (name, description, stock_id, quantity, expiration_date, purchase_price, sale_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	var id int64
	err := r.pool.QueryRow(ctx, query,
		product.Name, product.Description, product.StockID, product.Quantity,
		product.ExpirationDate, product.PurchasePrice, product.SalePrice,
	).Scan(&id)
	if err != nil {
		return 0, translate("insert product", err)
	}
	return id, nil
}

// GetByID obtiene un producto por ID; (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	p, err := scanProduct(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, translate("get product", err)
	}
	return p, nil
}

// Update sobreescribe todos los campos mutables; devuelve las filas afectadas.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) (int64, error) {
	query := `
		UPDATE products
		SET name = $2, description = $3, stock_id = $4, quantity = $5,
		    expiration_date = $6, purchase_price = $7, sale_price = $8
		WHERE id = $1`
	cmd, err := r.pool.Exec(ctx, query,
		product.ID, product.Name, product.Description, product.StockID, product.Quantity,
		product.ExpirationDate, product.PurchasePrice, product.SalePrice,
	)
	if err != nil {
		return 0, translate("update product", err)
	}
	return cmd.RowsAffected(), nil
}

// Delete elimina un producto; false si no había fila.
func (r *ProductRepo) Delete(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return false, translate("delete product", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// List devuelve (total, página) aplicando filtro de subcadena y paginación.
func (r *ProductRepo) List(ctx context.Context, p repository.ListParams) (int64, []*entity.Product, error) {
	q := listQuery{table: "products", columns: productColumns, search: productSearch}
	return listRows(ctx, r.pool, q, p, func(rows pgx.Rows) (*entity.Product, error) {
		return scanProduct(rows)
	})
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.StockID, &p.Quantity,
		&p.ExpirationDate, &p.PurchasePrice, &p.SalePrice)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
