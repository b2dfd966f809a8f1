package usecase

import (
	"context"

	"github.com/gestion-erp/erp-api/internal/application/dto"
	"github.com/gestion-erp/erp-api/internal/domain"
	"github.com/gestion-erp/erp-api/internal/domain/entity"
	"github.com/gestion-erp/erp-api/internal/domain/repository"
)

// StockUseCase casos de uso CRUD + listado para almacenes. La validez del
// center_id la garantiza la FK del store (sale como ReferenceError).
type StockUseCase struct {
	repo repository.StockRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(repo repository.StockRepository) *StockUseCase {
	return &StockUseCase{repo: repo}
}

// Create valida y persiste un almacén nuevo; devuelve el ID generado.
func (uc *StockUseCase) Create(ctx context.Context, in dto.StockRequest) (int64, error) {
	if err := validateStock(in); err != nil {
		return 0, err
	}
	return uc.repo.Create(ctx, stockFromRequest(in))
}

// Get obtiene un almacén por ID.
func (uc *StockUseCase) Get(ctx context.Context, id int64) (*dto.StockResponse, error) {
	stock, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if stock == nil {
		return nil, &domain.NotFoundError{Entity: "stock", ID: id}
	}
	return toStockResponse(stock), nil
}

// Update sobreescribe todos los campos mutables del almacén identificado.
func (uc *StockUseCase) Update(ctx context.Context, in dto.StockRequest) (int64, error) {
	if in.ID == nil {
		return 0, &domain.PreconditionError{Entity: "stock"}
	}
	if err := validateStock(in); err != nil {
		return 0, err
	}
	stock := stockFromRequest(in)
	stock.ID = *in.ID
	affected, err := uc.repo.Update(ctx, stock)
	if err != nil {
		return 0, err
	}
	if affected == 0 {
		return 0, &domain.NotFoundError{Entity: "stock", ID: *in.ID}
	}
	return affected, nil
}

// Delete elimina un almacén por ID.
func (uc *StockUseCase) Delete(ctx context.Context, id int64) error {
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return &domain.NotFoundError{Entity: "stock", ID: id}
	}
	return nil
}

// List devuelve la página pedida con su total.
func (uc *StockUseCase) List(ctx context.Context, page, filter string) (*dto.ListResponse[dto.StockResponse], error) {
	total, rows, err := uc.repo.List(ctx, dto.ParsePage(page, filter))
	if err != nil {
		return nil, err
	}
	body := make([]dto.StockResponse, 0, len(rows))
	for _, s := range rows {
		body = append(body, *toStockResponse(s))
	}
	return &dto.ListResponse[dto.StockResponse]{Total: total, Body: body}, nil
}

func validateStock(in dto.StockRequest) error {
	if len(in.Name) < 2 || len(in.Name) > 100 {
		return &domain.ValidationError{Field: "name", Reason: "debe tener entre 2 y 100 caracteres"}
	}
	if len(in.City) < 2 || len(in.City) > 50 {
		return &domain.ValidationError{Field: "city", Reason: "debe tener entre 2 y 50 caracteres"}
	}
	if in.Address == "" || len(in.Address) > 255 {
		return &domain.ValidationError{Field: "address", Reason: "es requerido, máximo 255 caracteres"}
	}
	if in.CenterID < 1 {
		return &domain.ValidationError{Field: "center_id", Reason: "debe ser un ID válido (>= 1)"}
	}
	return nil
}

func stockFromRequest(in dto.StockRequest) *entity.Stock {
	return &entity.Stock{
		Name:     in.Name,
		City:     in.City,
		Address:  in.Address,
		CenterID: in.CenterID,
	}
}

func toStockResponse(s *entity.Stock) *dto.StockResponse {
	return &dto.StockResponse{
		ID:       s.ID,
		Name:     s.Name,
		City:     s.City,
		Address:  s.Address,
		CenterID: s.CenterID,
	}
}
