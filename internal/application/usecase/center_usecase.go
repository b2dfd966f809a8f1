package usecase

import (
	"context"

	"github.com/gestion-erp/erp-api/internal/application/dto"
	"github.com/gestion-erp/erp-api/internal/domain"
	"github.com/gestion-erp/erp-api/internal/domain/entity"
	"github.com/gestion-erp/erp-api/internal/domain/repository"
)

// CenterUseCase casos de uso CRUD + listado para centros. Valida la forma de
// la entrada antes de tocar el store y traduce sus señales de ausencia a
// NotFoundError.
type CenterUseCase struct {
	repo repository.CenterRepository
}

// NewCenterUseCase construye el caso de uso.
func NewCenterUseCase(repo repository.CenterRepository) *CenterUseCase {
	return &CenterUseCase{repo: repo}
}

// Create valida y persiste un centro nuevo; devuelve el ID generado.
func (uc *CenterUseCase) Create(ctx context.Context, in dto.CenterRequest) (int64, error) {
	if err := validateCenter(in); err != nil {
		return 0, err
	}
	return uc.repo.Create(ctx, centerFromRequest(in))
}

// Get obtiene un centro por ID.
func (uc *CenterUseCase) Get(ctx context.Context, id int64) (*dto.CenterResponse, error) {
	center, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if center == nil {
		return nil, &domain.NotFoundError{Entity: "center", ID: id}
	}
	return toCenterResponse(center), nil
}

// Update sobreescribe todos los campos mutables del centro identificado.
// Sin ID no hay mutación; 0 filas afectadas se reporta como NotFound.
func (uc *CenterUseCase) Update(ctx context.Context, in dto.CenterRequest) (int64, error) {
	if in.ID == nil {
		return 0, &domain.PreconditionError{Entity: "center"}
	}
	if err := validateCenter(in); err != nil {
		return 0, err
	}
	center := centerFromRequest(in)
	center.ID = *in.ID
	affected, err := uc.repo.Update(ctx, center)
	if err != nil {
		return 0, err
	}
	if affected == 0 {
		return 0, &domain.NotFoundError{Entity: "center", ID: *in.ID}
	}
	return affected, nil
}

// Delete elimina un centro por ID.
func (uc *CenterUseCase) Delete(ctx context.Context, id int64) error {
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return &domain.NotFoundError{Entity: "center", ID: id}
	}
	return nil
}

// List devuelve la página pedida con su total.
func (uc *CenterUseCase) List(ctx context.Context, page, filter string) (*dto.ListResponse[dto.CenterResponse], error) {
	total, rows, err := uc.repo.List(ctx, dto.ParsePage(page, filter))
	if err != nil {
		return nil, err
	}
	body := make([]dto.CenterResponse, 0, len(rows))
	for _, c := range rows {
		body = append(body, *toCenterResponse(c))
	}
	return &dto.ListResponse[dto.CenterResponse]{Total: total, Body: body}, nil
}

func validateCenter(in dto.CenterRequest) error {
	if len(in.Name) < 2 || len(in.Name) > 100 {
		return &domain.ValidationError{Field: "name", Reason: "debe tener entre 2 y 100 caracteres"}
	}
	if len(in.City) < 2 || len(in.City) > 50 {
		return &domain.ValidationError{Field: "city", Reason: "debe tener entre 2 y 50 caracteres"}
	}
	if in.Address == "" || len(in.Address) > 255 {
		return &domain.ValidationError{Field: "address", Reason: "es requerido, máximo 255 caracteres"}
	}
	if in.Phone != nil && len(*in.Phone) > 20 {
		return &domain.ValidationError{Field: "phone", Reason: "máximo 20 caracteres"}
	}
	if in.Email != nil && len(*in.Email) > 100 {
		return &domain.ValidationError{Field: "email", Reason: "máximo 100 caracteres"}
	}
	return nil
}

func centerFromRequest(in dto.CenterRequest) *entity.Center {
	return &entity.Center{
		Name:    in.Name,
		City:    in.City,
		Address: in.Address,
		Phone:   in.Phone,
		Email:   in.Email,
	}
}

func toCenterResponse(c *entity.Center) *dto.CenterResponse {
	return &dto.CenterResponse{
		ID:      c.ID,
		Name:    c.Name,
		City:    c.City,
		Address: c.Address,
		Phone:   c.Phone,
		Email:   c.Email,
	}
}
