package http_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/gestion-erp/erp-api/internal/domain"
	"github.com/gestion-erp/erp-api/internal/domain/entity"
	"github.com/gestion-erp/erp-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios fake en memoria para los tests end-to-end: mismo contrato
// que los adaptadores postgres (filtro por subcadena sin mayúsculas sobre
// los campos buscables, orden por ID, total antes de paginar, (nil, nil)
// para filas ausentes, ReferenceError cuando la FK no existe).
// ──────────────────────────────────────────────────────────────────────────────

func applyLimit[T any](rows []T, p repository.ListParams) []T {
	if p.Limit == repository.NoLimit {
		return rows
	}
	if p.Offset >= len(rows) {
		return []T{}
	}
	end := p.Offset + p.Limit
	if end > len(rows) {
		end = len(rows)
	}
	return rows[p.Offset:end]
}

func matches(filter string, fields ...string) bool {
	if filter == "" {
		return true
	}
	joined := strings.ToLower(strings.Join(fields, " "))
	return strings.Contains(joined, strings.ToLower(filter))
}

// ─── centros ─────────────────────────────────────────────────────────────────

type memCenterRepo struct {
	nextID int64
	rows   map[int64]*entity.Center
}

func newMemCenterRepo() *memCenterRepo {
	return &memCenterRepo{nextID: 1, rows: map[int64]*entity.Center{}}
}

func (r *memCenterRepo) Create(_ context.Context, c *entity.Center) (int64, error) {
	clone := *c
	clone.ID = r.nextID
	r.rows[clone.ID] = &clone
	r.nextID++
	return clone.ID, nil
}

func (r *memCenterRepo) GetByID(_ context.Context, id int64) (*entity.Center, error) {
	c, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	clone := *c
	return &clone, nil
}

func (r *memCenterRepo) Update(_ context.Context, c *entity.Center) (int64, error) {
	if _, ok := r.rows[c.ID]; !ok {
		return 0, nil
	}
	clone := *c
	r.rows[c.ID] = &clone
	return 1, nil
}

func (r *memCenterRepo) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := r.rows[id]; !ok {
		return false, nil
	}
	delete(r.rows, id)
	return true, nil
}

func (r *memCenterRepo) List(_ context.Context, p repository.ListParams) (int64, []*entity.Center, error) {
	selected := make([]*entity.Center, 0)
	for id := int64(1); id < r.nextID; id++ {
		c, ok := r.rows[id]
		if !ok {
			continue
		}
		phone, email := "", ""
		if c.Phone != nil {
			phone = *c.Phone
		}
		if c.Email != nil {
			email = *c.Email
		}
		if matches(p.Filter, c.Name, c.City, c.Address, phone, email) {
			selected = append(selected, c)
		}
	}
	return int64(len(selected)), applyLimit(selected, p), nil
}

// ─── almacenes ───────────────────────────────────────────────────────────────

// memStockRepo valida la FK contra el repo de centros, igual que la
// constraint stocks.center_id -> centers.id.
type memStockRepo struct {
	nextID  int64
	rows    map[int64]*entity.Stock
	centers *memCenterRepo
}

func newMemStockRepo(centers *memCenterRepo) *memStockRepo {
	return &memStockRepo{nextID: 1, rows: map[int64]*entity.Stock{}, centers: centers}
}

func (r *memStockRepo) fkViolated(s *entity.Stock) bool {
	_, ok := r.centers.rows[s.CenterID]
	return !ok
}

func (r *memStockRepo) Create(_ context.Context, s *entity.Stock) (int64, error) {
	if r.fkViolated(s) {
		return 0, &domain.ReferenceError{Relation: "stocks.center_id -> centers.id"}
	}
	clone := *s
	clone.ID = r.nextID
	r.rows[clone.ID] = &clone
	r.nextID++
	return clone.ID, nil
}

func (r *memStockRepo) GetByID(_ context.Context, id int64) (*entity.Stock, error) {
	s, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	clone := *s
	return &clone, nil
}

func (r *memStockRepo) Update(_ context.Context, s *entity.Stock) (int64, error) {
	if _, ok := r.rows[s.ID]; !ok {
		return 0, nil
	}
	if r.fkViolated(s) {
		return 0, &domain.ReferenceError{Relation: "stocks.center_id -> centers.id"}
	}
	clone := *s
	r.rows[s.ID] = &clone
	return 1, nil
}

func (r *memStockRepo) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := r.rows[id]; !ok {
		return false, nil
	}
	delete(r.rows, id)
	return true, nil
}

func (r *memStockRepo) List(_ context.Context, p repository.ListParams) (int64, []*entity.Stock, error) {
	selected := make([]*entity.Stock, 0)
	for id := int64(1); id < r.nextID; id++ {
		s, ok := r.rows[id]
		if !ok {
			continue
		}
		if matches(p.Filter, s.Name, s.City, s.Address) {
			selected = append(selected, s)
		}
	}
	return int64(len(selected)), applyLimit(selected, p), nil
}

// ─── suppliers ───────────────────────────────────────────────────────────────

type memSupplierRepo struct {
	nextID int64
	rows   map[int64]*entity.Supplier
}

func newMemSupplierRepo() *memSupplierRepo {
	return &memSupplierRepo{nextID: 1, rows: map[int64]*entity.Supplier{}}
}

func (r *memSupplierRepo) Create(_ context.Context, s *entity.Supplier) (int64, error) {
	clone := *s
	clone.ID = r.nextID
	r.rows[clone.ID] = &clone
	r.nextID++
	return clone.ID, nil
}

func (r *memSupplierRepo) GetByID(_ context.Context, id int64) (*entity.Supplier, error) {
	s, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	clone := *s
	return &clone, nil
}

func (r *memSupplierRepo) Update(_ context.Context, s *entity.Supplier) (int64, error) {
	if _, ok := r.rows[s.ID]; !ok {
		return 0, nil
	}
	clone := *s
	r.rows[s.ID] = &clone
	return 1, nil
}

func (r *memSupplierRepo) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := r.rows[id]; !ok {
		return false, nil
	}
	delete(r.rows, id)
	return true, nil
}

func (r *memSupplierRepo) List(_ context.Context, p repository.ListParams, scope repository.SupplierScope) (int64, []*entity.Supplier, error) {
	selected := make([]*entity.Supplier, 0)
	for id := int64(1); id < r.nextID; id++ {
		s, ok := r.rows[id]
		if !ok {
			continue
		}
		switch scope {
		case repository.ScopeProviders:
			if s.Type != entity.SupplierProvider && s.Type != entity.SupplierBoth {
				continue
			}
		case repository.ScopeConsumers:
			if s.Type != entity.SupplierConsumer && s.Type != entity.SupplierBoth {
				continue
			}
		}
		if matches(p.Filter, s.Firstname, s.Lastname, s.Type) {
			selected = append(selected, s)
		}
	}
	return int64(len(selected)), applyLimit(selected, p), nil
}

// ─── usuarios ────────────────────────────────────────────────────────────────

type memUserRepo struct {
	nextID int64
	rows   map[int64]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{nextID: 1, rows: map[int64]*entity.User{}}
}

func (r *memUserRepo) Create(_ context.Context, u *entity.User) (int64, error) {
	for _, existing := range r.rows {
		if existing.Username == u.Username {
			return 0, &domain.ValidationError{Field: "username", Reason: "ya existe"}
		}
	}
	clone := *u
	clone.ID = r.nextID
	r.rows[clone.ID] = &clone
	r.nextID++
	return clone.ID, nil
}

func (r *memUserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	u, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	clone := *u
	return &clone, nil
}

func (r *memUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	for id := int64(1); id < r.nextID; id++ {
		if u, ok := r.rows[id]; ok && u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) Update(_ context.Context, u *entity.User) (int64, error) {
	if _, ok := r.rows[u.ID]; !ok {
		return 0, nil
	}
	clone := *u
	r.rows[u.ID] = &clone
	return 1, nil
}

func (r *memUserRepo) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := r.rows[id]; !ok {
		return false, nil
	}
	delete(r.rows, id)
	return true, nil
}

func (r *memUserRepo) List(_ context.Context, p repository.ListParams) (int64, []*entity.User, error) {
	selected := make([]*entity.User, 0)
	for id := int64(1); id < r.nextID; id++ {
		u, ok := r.rows[id]
		if !ok {
			continue
		}
		if matches(p.Filter, u.Name, fmt.Sprintf("%d", u.Rank)) {
			selected = append(selected, u)
		}
	}
	return int64(len(selected)), applyLimit(selected, p), nil
}

// ─── productos ───────────────────────────────────────────────────────────────

type memProductRepo struct {
	nextID int64
	rows   map[int64]*entity.Product
	stocks *memStockRepo
}

func newMemProductRepo(stocks *memStockRepo) *memProductRepo {
	return &memProductRepo{nextID: 1, rows: map[int64]*entity.Product{}, stocks: stocks}
}

func (r *memProductRepo) Create(_ context.Context, p *entity.Product) (int64, error) {
	if _, ok := r.stocks.rows[p.StockID]; !ok {
		return 0, &domain.ReferenceError{Relation: "products.stock_id -> stocks.id"}
	}
	clone := *p
	clone.ID = r.nextID
	r.rows[clone.ID] = &clone
	r.nextID++
	return clone.ID, nil
}

func (r *memProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	p, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	clone := *p
	return &clone, nil
}

func (r *memProductRepo) Update(_ context.Context, p *entity.Product) (int64, error) {
	if _, ok := r.rows[p.ID]; !ok {
		return 0, nil
	}
	clone := *p
	r.rows[p.ID] = &clone
	return 1, nil
}

func (r *memProductRepo) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := r.rows[id]; !ok {
		return false, nil
	}
	delete(r.rows, id)
	return true, nil
}

func (r *memProductRepo) List(_ context.Context, p repository.ListParams) (int64, []*entity.Product, error) {
	selected := make([]*entity.Product, 0)
	for id := int64(1); id < r.nextID; id++ {
		prod, ok := r.rows[id]
		if !ok {
			continue
		}
		desc := ""
		if prod.Description != nil {
			desc = *prod.Description
		}
		if matches(p.Filter, prod.Name, desc) {
			selected = append(selected, prod)
		}
	}
	return int64(len(selected)), applyLimit(selected, p), nil
}

// ─── transacciones ───────────────────────────────────────────────────────────

type memTransactionRepo struct {
	nextID int64
	rows   map[int64]*entity.Transaction
}

func newMemTransactionRepo() *memTransactionRepo {
	return &memTransactionRepo{nextID: 1, rows: map[int64]*entity.Transaction{}}
}

func (r *memTransactionRepo) Create(_ context.Context, t *entity.Transaction) (int64, error) {
	clone := *t
	clone.ID = r.nextID
	r.rows[clone.ID] = &clone
	r.nextID++
	return clone.ID, nil
}

func (r *memTransactionRepo) GetByID(_ context.Context, id int64) (*entity.Transaction, error) {
	t, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	clone := *t
	return &clone, nil
}

func (r *memTransactionRepo) Update(_ context.Context, t *entity.Transaction) (int64, error) {
	if _, ok := r.rows[t.ID]; !ok {
		return 0, nil
	}
	clone := *t
	r.rows[t.ID] = &clone
	return 1, nil
}

func (r *memTransactionRepo) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := r.rows[id]; !ok {
		return false, nil
	}
	delete(r.rows, id)
	return true, nil
}

func (r *memTransactionRepo) List(_ context.Context, p repository.ListParams, scope repository.TransactionScope) (int64, []*entity.Transaction, error) {
	selected := make([]*entity.Transaction, 0)
	for id := int64(1); id < r.nextID; id++ {
		t, ok := r.rows[id]
		if !ok {
			continue
		}
		switch scope {
		case repository.ScopeIncomes:
			if t.Type != entity.TransactionIncome {
				continue
			}
		case repository.ScopeOutcomes:
			if t.Type != entity.TransactionOutcome {
				continue
			}
		}
		searchable := fmt.Sprintf("%d %d %d %s %d", t.ID, t.SupplierID, t.ProductID, t.Date.Format("2006-01-02"), t.Type)
		if matches(p.Filter, searchable) {
			selected = append(selected, t)
		}
	}
	return int64(len(selected)), applyLimit(selected, p), nil
}
