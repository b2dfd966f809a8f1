package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestion-erp/erp-api/internal/application/dto"
	"github.com/gestion-erp/erp-api/internal/application/usecase"
)

// CenterHandler maneja las peticiones HTTP para Center (protegido).
type CenterHandler struct {
	uc *usecase.CenterUseCase
}

// NewCenterHandler construye el handler.
func NewCenterHandler(uc *usecase.CenterUseCase) *CenterHandler {
	return &CenterHandler{uc: uc}
}

// List responde {total, body} según page ("<página>-<tamaño>") y filter.
func (h *CenterHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), c.Query("page"), c.Query("filter"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID responde el centro con el ID de la ruta.
func (h *CenterHandler) GetByID(c *fiber.Ctx) error {
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

// Create persiste un centro nuevo y responde 201 con el ID generado.
func (h *CenterHandler) Create(c *fiber.Ctx) error {
	var in dto.CenterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	id, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(id)
}

// Update sobreescribe el centro identificado por el ID del cuerpo y
// responde las filas afectadas.
func (h *CenterHandler) Update(c *fiber.Ctx) error {
	var in dto.CenterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	affected, err := h.uc.Update(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(affected)
}

// Delete elimina el centro y responde 204.
func (h *CenterHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
