package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/gestion-erp/erp-api/internal/application/dto"
	"github.com/gestion-erp/erp-api/internal/domain"
)

// respondError traduce la taxonomía de errores del dominio a HTTP:
// Validation/Precondition → 400, Reference → 409, NotFound → 404,
// Auth → 401 y cualquier otra cosa (StoreError incluido) → 500.
func respondError(c *fiber.Ctx, err error) error {
	var (
		ve *domain.ValidationError
		pe *domain.PreconditionError
		re *domain.ReferenceError
		nf *domain.NotFoundError
		ae *domain.AuthError
	)
	switch {
	case errors.As(err, &ve):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: ve.Error()})
	case errors.As(err, &pe):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: pe.Error()})
	case errors.As(err, &re):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INVALID_REFERENCE", Message: re.Error()})
	case errors.As(err, &nf):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: nf.Error()})
	case errors.As(err, &ae):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: authCode(ae.Kind), Message: ae.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

func authCode(kind domain.AuthKind) string {
	switch kind {
	case domain.AuthCredentials:
		return "INVALID_CREDENTIALS"
	case domain.AuthExpired:
		return "TOKEN_EXPIRED"
	case domain.AuthMalformed:
		return "TOKEN_MALFORMED"
	default:
		return "INVALID_TOKEN"
	}
}

// parseID interpreta el parámetro de ruta :id como entero positivo.
func parseID(c *fiber.Ctx) (int64, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return 0, &domain.ValidationError{Field: "id", Reason: "debe ser un entero positivo"}
	}
	return int64(id), nil
}
