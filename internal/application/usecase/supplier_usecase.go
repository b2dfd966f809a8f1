package usecase

import (
	"context"

	"github.com/gestion-erp/erp-api/internal/application/dto"
	"github.com/gestion-erp/erp-api/internal/domain"
	"github.com/gestion-erp/erp-api/internal/domain/entity"
	"github.com/gestion-erp/erp-api/internal/domain/repository"
)

// SupplierUseCase casos de uso CRUD + listados alcanzados para suppliers.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

// Create valida y persiste un supplier nuevo; devuelve el ID generado.
func (uc *SupplierUseCase) Create(ctx context.Context, in dto.SupplierRequest) (int64, error) {
	if err := validateSupplier(in); err != nil {
		return 0, err
	}
	return uc.repo.Create(ctx, supplierFromRequest(in))
}

// Get obtiene un supplier por ID.
func (uc *SupplierUseCase) Get(ctx context.Context, id int64) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, &domain.NotFoundError{Entity: "supplier", ID: id}
	}
	return toSupplierResponse(supplier), nil
}

// Update sobreescribe todos los campos mutables del supplier identificado.
func (uc *SupplierUseCase) Update(ctx context.Context, in dto.SupplierRequest) (int64, error) {
	if in.ID == nil {
		return 0, &domain.PreconditionError{Entity: "supplier"}
	}
	if err := validateSupplier(in); err != nil {
		return 0, err
	}
	supplier := supplierFromRequest(in)
	supplier.ID = *in.ID
	affected, err := uc.repo.Update(ctx, supplier)
	if err != nil {
		return 0, err
	}
	if affected == 0 {
		return 0, &domain.NotFoundError{Entity: "supplier", ID: *in.ID}
	}
	return affected, nil
}

// Delete elimina un supplier por ID.
func (uc *SupplierUseCase) Delete(ctx context.Context, id int64) error {
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return &domain.NotFoundError{Entity: "supplier", ID: id}
	}
	return nil
}

// List devuelve la página pedida con su total, restringida por el alcance:
// ScopeProviders = provider ∪ both, ScopeConsumers = consumer ∪ both,
// ScopeAllSuppliers sin restricción.
func (uc *SupplierUseCase) List(ctx context.Context, page, filter string, scope repository.SupplierScope) (*dto.ListResponse[dto.SupplierResponse], error) {
	total, rows, err := uc.repo.List(ctx, dto.ParsePage(page, filter), scope)
	if err != nil {
		return nil, err
	}
	body := make([]dto.SupplierResponse, 0, len(rows))
	for _, s := range rows {
		body = append(body, *toSupplierResponse(s))
	}
	return &dto.ListResponse[dto.SupplierResponse]{Total: total, Body: body}, nil
}

func validateSupplier(in dto.SupplierRequest) error {
	if len(in.Firstname) < 2 || len(in.Firstname) > 50 {
		return &domain.ValidationError{Field: "firstname", Reason: "debe tener entre 2 y 50 caracteres"}
	}
	if len(in.Lastname) < 2 || len(in.Lastname) > 50 {
		return &domain.ValidationError{Field: "lastname", Reason: "debe tener entre 2 y 50 caracteres"}
	}
	if !entity.ValidSupplierType(in.Type) {
		return &domain.ValidationError{Field: "type", Reason: "debe ser provider, consumer o both"}
	}
	if in.ContractDate.IsZero() {
		return &domain.ValidationError{Field: "contract_date", Reason: "es requerida"}
	}
	return nil
}

func supplierFromRequest(in dto.SupplierRequest) *entity.Supplier {
	return &entity.Supplier{
		Firstname:    in.Firstname,
		Lastname:     in.Lastname,
		Type:         in.Type,
		ContractDate: in.ContractDate,
	}
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{
		ID:           s.ID,
		Firstname:    s.Firstname,
		Lastname:     s.Lastname,
		Type:         s.Type,
		ContractDate: s.ContractDate,
	}
}
