package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestion-erp/erp-api/internal/application/dto"
	"github.com/gestion-erp/erp-api/internal/application/usecase"
	"github.com/gestion-erp/erp-api/internal/domain/repository"
)

// SupplierHandler maneja las peticiones HTTP para Supplier (protegido).
// Además del listado completo expone /providers (provider ∪ both) y
// /consumers (consumer ∪ both).
type SupplierHandler struct {
	uc *usecase.SupplierUseCase
}

// NewSupplierHandler construye el handler.
func NewSupplierHandler(uc *usecase.SupplierUseCase) *SupplierHandler {
	return &SupplierHandler{uc: uc}
}

func (h *SupplierHandler) List(c *fiber.Ctx) error {
	return h.list(c, repository.ScopeAllSuppliers)
}

// Providers lista los suppliers con type provider o both.
func (h *SupplierHandler) Providers(c *fiber.Ctx) error {
	return h.list(c, repository.ScopeProviders)
}

// Consumers lista los suppliers con type consumer o both.
func (h *SupplierHandler) Consumers(c *fiber.Ctx) error {
	return h.list(c, repository.ScopeConsumers)
}

func (h *SupplierHandler) list(c *fiber.Ctx, scope repository.SupplierScope) error {
	out, err := h.uc.List(c.Context(), c.Query("page"), c.Query("filter"), scope)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *SupplierHandler) GetByID(c *fiber.Ctx) error {
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

func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	var in dto.SupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	id, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(id)
}

func (h *SupplierHandler) Update(c *fiber.Ctx) error {
	var in dto.SupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	affected, err := h.uc.Update(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(affected)
}

func (h *SupplierHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
