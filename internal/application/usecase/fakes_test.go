package usecase_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/gestion-erp/erp-api/internal/domain/entity"
	"github.com/gestion-erp/erp-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios fake en memoria. Reproducen el contrato de los puertos:
// filtro por subcadena (sin mayúsculas) sobre los campos buscables
// concatenados, orden por ID ascendente, total antes de paginar y
// (nil, nil) cuando la fila no existe.
// ──────────────────────────────────────────────────────────────────────────────

// applyLimit recorta rows según p (Offset/Limit); Limit NoLimit devuelve todo.
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

type fakeCenterRepo struct {
	nextID int64
	rows   map[int64]*entity.Center
	err    error // si está seteado, todas las operaciones fallan con él
}

func newFakeCenterRepo() *fakeCenterRepo {
	return &fakeCenterRepo{nextID: 1, rows: map[int64]*entity.Center{}}
}

func (r *fakeCenterRepo) Create(_ context.Context, c *entity.Center) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	clone := *c
	clone.ID = r.nextID
	r.rows[clone.ID] = &clone
	r.nextID++
	return clone.ID, nil
}

func (r *fakeCenterRepo) GetByID(_ context.Context, id int64) (*entity.Center, error) {
	if r.err != nil {
		return nil, r.err
	}
	c, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	clone := *c
	return &clone, nil
}

func (r *fakeCenterRepo) Update(_ context.Context, c *entity.Center) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	if _, ok := r.rows[c.ID]; !ok {
		return 0, nil
	}
	clone := *c
	r.rows[c.ID] = &clone
	return 1, nil
}

func (r *fakeCenterRepo) Delete(_ context.Context, id int64) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	if _, ok := r.rows[id]; !ok {
		return false, nil
	}
	delete(r.rows, id)
	return true, nil
}

func (r *fakeCenterRepo) List(_ context.Context, p repository.ListParams) (int64, []*entity.Center, error) {
	if r.err != nil {
		return 0, nil, r.err
	}
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

// ─── suppliers ───────────────────────────────────────────────────────────────

type fakeSupplierRepo struct {
	nextID int64
	rows   map[int64]*entity.Supplier
}

func newFakeSupplierRepo() *fakeSupplierRepo {
	return &fakeSupplierRepo{nextID: 1, rows: map[int64]*entity.Supplier{}}
}

func (r *fakeSupplierRepo) Create(_ context.Context, s *entity.Supplier) (int64, error) {
	clone := *s
	clone.ID = r.nextID
	r.rows[clone.ID] = &clone
	r.nextID++
	return clone.ID, nil
}

func (r *fakeSupplierRepo) GetByID(_ context.Context, id int64) (*entity.Supplier, error) {
	s, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	clone := *s
	return &clone, nil
}

func (r *fakeSupplierRepo) Update(_ context.Context, s *entity.Supplier) (int64, error) {
	if _, ok := r.rows[s.ID]; !ok {
		return 0, nil
	}
	clone := *s
	r.rows[s.ID] = &clone
	return 1, nil
}

func (r *fakeSupplierRepo) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := r.rows[id]; !ok {
		return false, nil
	}
	delete(r.rows, id)
	return true, nil
}

func (r *fakeSupplierRepo) List(_ context.Context, p repository.ListParams, scope repository.SupplierScope) (int64, []*entity.Supplier, error) {
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

// ─── transacciones ───────────────────────────────────────────────────────────

type fakeTransactionRepo struct {
	nextID int64
	rows   map[int64]*entity.Transaction
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{nextID: 1, rows: map[int64]*entity.Transaction{}}
}

func (r *fakeTransactionRepo) Create(_ context.Context, t *entity.Transaction) (int64, error) {
	clone := *t
	clone.ID = r.nextID
	r.rows[clone.ID] = &clone
	r.nextID++
	return clone.ID, nil
}

func (r *fakeTransactionRepo) GetByID(_ context.Context, id int64) (*entity.Transaction, error) {
	t, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	clone := *t
	return &clone, nil
}

func (r *fakeTransactionRepo) Update(_ context.Context, t *entity.Transaction) (int64, error) {
	if _, ok := r.rows[t.ID]; !ok {
		return 0, nil
	}
	clone := *t
	r.rows[t.ID] = &clone
	return 1, nil
}

func (r *fakeTransactionRepo) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := r.rows[id]; !ok {
		return false, nil
	}
	delete(r.rows, id)
	return true, nil
}

func (r *fakeTransactionRepo) List(_ context.Context, p repository.ListParams, scope repository.TransactionScope) (int64, []*entity.Transaction, error) {
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

// ─── usuarios ────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	nextID int64
	rows   map[int64]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1, rows: map[int64]*entity.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) (int64, error) {
	clone := *u
	clone.ID = r.nextID
	r.rows[clone.ID] = &clone
	r.nextID++
	return clone.ID, nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	u, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	clone := *u
	return &clone, nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	for id := int64(1); id < r.nextID; id++ {
		if u, ok := r.rows[id]; ok && u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *entity.User) (int64, error) {
	if _, ok := r.rows[u.ID]; !ok {
		return 0, nil
	}
	clone := *u
	r.rows[u.ID] = &clone
	return 1, nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := r.rows[id]; !ok {
		return false, nil
	}
	delete(r.rows, id)
	return true, nil
}

func (r *fakeUserRepo) List(_ context.Context, p repository.ListParams) (int64, []*entity.User, error) {
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
