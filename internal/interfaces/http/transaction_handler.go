package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestion-erp/erp-api/internal/application/dto"
	"github.com/gestion-erp/erp-api/internal/application/usecase"
	"github.com/gestion-erp/erp-api/internal/domain/repository"
)

// TransactionHandler maneja las peticiones HTTP para Transaction (protegido).
// Además del listado completo expone /incomes (type 1) y /outcomes (type -1).
type TransactionHandler struct {
	uc *usecase.TransactionUseCase
}

// NewTransactionHandler construye el handler.
func NewTransactionHandler(uc *usecase.TransactionUseCase) *TransactionHandler {
	return &TransactionHandler{uc: uc}
}

func (h *TransactionHandler) List(c *fiber.Ctx) error {
	return h.list(c, repository.ScopeAllTransactions)
}

// Incomes lista las transacciones con type 1.
func (h *TransactionHandler) Incomes(c *fiber.Ctx) error {
	return h.list(c, repository.ScopeIncomes)
}

// Outcomes lista las transacciones con type -1.
func (h *TransactionHandler) Outcomes(c *fiber.Ctx) error {
	return h.list(c, repository.ScopeOutcomes)
}

func (h *TransactionHandler) list(c *fiber.Ctx, scope repository.TransactionScope) error {
	out, err := h.uc.List(c.Context(), c.Query("page"), c.Query("filter"), scope)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *TransactionHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	var in dto.TransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	id, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(id)
}

func (h *TransactionHandler) Update(c *fiber.Ctx) error {
	var in dto.TransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	affected, err := h.uc.Update(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(affected)
}

func (h *TransactionHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
