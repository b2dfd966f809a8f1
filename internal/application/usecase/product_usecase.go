package usecase

import (
	"context"

	"github.com/gestion-erp/erp-api/internal/application/dto"
	"github.com/gestion-erp/erp-api/internal/domain"
	"github.com/gestion-erp/erp-api/internal/domain/entity"
	"github.com/gestion-erp/erp-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD + listado para productos.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create valida y persiste un producto nuevo; devuelve el ID generado.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.ProductRequest) (int64, error) {
	if err := validateProduct(in); err != nil {
		return 0, err
	}
	return uc.repo.Create(ctx, productFromRequest(in))
}

// Get obtiene un producto por ID.
func (uc *ProductUseCase) Get(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, &domain.NotFoundError{Entity: "product", ID: id}
	}
	return toProductResponse(product), nil
}

// Update sobreescribe todos los campos mutables del producto identificado.
func (uc *ProductUseCase) Update(ctx context.Context, in dto.ProductRequest) (int64, error) {
	if in.ID == nil {
		return 0, &domain.PreconditionError{Entity: "product"}
	}
	if err := validateProduct(in); err != nil {
		return 0, err
	}
	product := productFromRequest(in)
	product.ID = *in.ID
	affected, err := uc.repo.Update(ctx, product)
	if err != nil {
		return 0, err
	}
	if affected == 0 {
		return 0, &domain.NotFoundError{Entity: "product", ID: *in.ID}
	}
	return affected, nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return &domain.NotFoundError{Entity: "product", ID: id}
	}
	return nil
}

// List devuelve la página pedida con su total.
func (uc *ProductUseCase) List(ctx context.Context, page, filter string) (*dto.ListResponse[dto.ProductResponse], error) {
	total, rows, err := uc.repo.List(ctx, dto.ParsePage(page, filter))
	if err != nil {
		return nil, err
	}
	body := make([]dto.ProductResponse, 0, len(rows))
	for _, p := range rows {
		body = append(body, *toProductResponse(p))
	}
	return &dto.ListResponse[dto.ProductResponse]{Total: total, Body: body}, nil
}

func validateProduct(in dto.ProductRequest) error {
	if len(in.Name) < 2 || len(in.Name) > 100 {
		return &domain.ValidationError{Field: "name", Reason: "debe tener entre 2 y 100 caracteres"}
	}
	if in.StockID < 1 {
		return &domain.ValidationError{Field: "stock_id", Reason: "debe ser un ID válido (>= 1)"}
	}
	if in.Quantity < 0 {
		return &domain.ValidationError{Field: "quantity", Reason: "no puede ser negativa"}
	}
	if in.ExpirationDate.IsZero() {
		return &domain.ValidationError{Field: "expiration_date", Reason: "es requerida"}
	}
	if in.PurchasePrice.IsNegative() {
		return &domain.ValidationError{Field: "purchase_price", Reason: "no puede ser negativo"}
	}
	if in.SalePrice.IsNegative() {
		return &domain.ValidationError{Field: "sale_price", Reason: "no puede ser negativo"}
	}
	return nil
}

func productFromRequest(in dto.ProductRequest) *entity.Product {
	return &entity.Product{
		Name:           in.Name,
		Description:    in.Description,
		StockID:        in.StockID,
		Quantity:       in.Quantity,
		ExpirationDate: in.ExpirationDate,
		PurchasePrice:  in.PurchasePrice,
		SalePrice:      in.SalePrice,
	}
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		StockID:        p.StockID,
		Quantity:       p.Quantity,
		ExpirationDate: p.ExpirationDate,
		PurchasePrice:  p.PurchasePrice,
		SalePrice:      p.SalePrice,
	}
}
