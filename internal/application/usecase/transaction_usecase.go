package usecase

import (
	"context"

	"github.com/gestion-erp/erp-api/internal/application/dto"
	"github.com/gestion-erp/erp-api/internal/domain"
	"github.com/gestion-erp/erp-api/internal/domain/entity"
	"github.com/gestion-erp/erp-api/internal/domain/repository"
)

// TransactionUseCase casos de uso CRUD + listados alcanzados para transacciones.
type TransactionUseCase struct {
	repo repository.TransactionRepository
}

// NewTransactionUseCase construye el caso de uso.
func NewTransactionUseCase(repo repository.TransactionRepository) *TransactionUseCase {
	return &TransactionUseCase{repo: repo}
}

// Create valida y persiste una transacción nueva; devuelve el ID generado.
func (uc *TransactionUseCase) Create(ctx context.Context, in dto.TransactionRequest) (int64, error) {
	if err := validateTransaction(in); err != nil {
		return 0, err
	}
	return uc.repo.Create(ctx, transactionFromRequest(in))
}

// Get obtiene una transacción por ID.
func (uc *TransactionUseCase) Get(ctx context.Context, id int64) (*dto.TransactionResponse, error) {
	transaction, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if transaction == nil {
		return nil, &domain.NotFoundError{Entity: "transaction", ID: id}
	}
	return toTransactionResponse(transaction), nil
}

// Update sobreescribe todos los campos mutables de la transacción identificada.
func (uc *TransactionUseCase) Update(ctx context.Context, in dto.TransactionRequest) (int64, error) {
	if in.ID == nil {
		return 0, &domain.PreconditionError{Entity: "transaction"}
	}
	if err := validateTransaction(in); err != nil {
		return 0, err
	}
	transaction := transactionFromRequest(in)
	transaction.ID = *in.ID
	affected, err := uc.repo.Update(ctx, transaction)
	if err != nil {
		return 0, err
	}
	if affected == 0 {
		return 0, &domain.NotFoundError{Entity: "transaction", ID: *in.ID}
	}
	return affected, nil
}

// Delete elimina una transacción por ID.
func (uc *TransactionUseCase) Delete(ctx context.Context, id int64) error {
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return &domain.NotFoundError{Entity: "transaction", ID: id}
	}
	return nil
}

// List devuelve la página pedida con su total, restringida por el signo:
// ScopeIncomes = type 1, ScopeOutcomes = type -1, ScopeAllTransactions sin restricción.
func (uc *TransactionUseCase) List(ctx context.Context, page, filter string, scope repository.TransactionScope) (*dto.ListResponse[dto.TransactionResponse], error) {
	total, rows, err := uc.repo.List(ctx, dto.ParsePage(page, filter), scope)
	if err != nil {
		return nil, err
	}
	body := make([]dto.TransactionResponse, 0, len(rows))
	for _, t := range rows {
		body = append(body, *toTransactionResponse(t))
	}
	return &dto.ListResponse[dto.TransactionResponse]{Total: total, Body: body}, nil
}

func validateTransaction(in dto.TransactionRequest) error {
	if in.SupplierID < 1 {
		return &domain.ValidationError{Field: "supplier_id", Reason: "debe ser un ID válido (>= 1)"}
	}
	if in.ProductID < 1 {
		return &domain.ValidationError{Field: "product_id", Reason: "debe ser un ID válido (>= 1)"}
	}
	if in.Date.IsZero() {
		return &domain.ValidationError{Field: "date", Reason: "es requerida"}
	}
	if in.Type != entity.TransactionIncome && in.Type != entity.TransactionOutcome {
		return &domain.ValidationError{Field: "type", Reason: "debe ser 1 (ingreso) o -1 (egreso)"}
	}
	if in.Price.IsNegative() {
		return &domain.ValidationError{Field: "price", Reason: "no puede ser negativo"}
	}
	if in.Quantity < 0 {
		return &domain.ValidationError{Field: "quantity", Reason: "no puede ser negativa"}
	}
	if in.Tax.IsNegative() {
		return &domain.ValidationError{Field: "tax", Reason: "no puede ser negativo"}
	}
	if in.Discount.IsNegative() {
		return &domain.ValidationError{Field: "discount", Reason: "no puede ser negativo"}
	}
	return nil
}

func transactionFromRequest(in dto.TransactionRequest) *entity.Transaction {
	return &entity.Transaction{
		SupplierID: in.SupplierID,
		ProductID:  in.ProductID,
		Date:       in.Date,
		Type:       in.Type,
		Price:      in.Price,
		Quantity:   in.Quantity,
		Tax:        in.Tax,
		Discount:   in.Discount,
	}
}

func toTransactionResponse(t *entity.Transaction) *dto.TransactionResponse {
	return &dto.TransactionResponse{
		ID:         t.ID,
		SupplierID: t.SupplierID,
		ProductID:  t.ProductID,
		Date:       t.Date,
		Type:       t.Type,
		Price:      t.Price,
		Quantity:   t.Quantity,
		Tax:        t.Tax,
		Discount:   t.Discount,
	}
}
