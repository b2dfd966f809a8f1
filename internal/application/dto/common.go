package dto

import (
	"strconv"
	"strings"

	"github.com/gestion-erp/erp-api/internal/domain/repository"
)

// ListResponse envoltorio uniforme de todo listado: total de filas que
// satisfacen el filtro (ignorando la paginación) más la página pedida.
type ListResponse[T any] struct {
	Total int64 `json:"total"`
	Body  []T   `json:"body"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ParsePage decodifica el descriptor de página "<página>-<tamaño>" y lo
// convierte a (offset, limit) con offset = página × tamaño. Un descriptor
// ausente o imposible de parsear cae a listado completo (sin paginación),
// igual que el filtro vacío cae a "sin filtro".
func ParsePage(page, filter string) repository.ListParams {
	p := repository.Unpaginated(filter)

	parts := strings.SplitN(page, "-", 2)
	if len(parts) != 2 {
		return p
	}
	num, err := strconv.Atoi(parts[0])
	if err != nil || num < 0 {
		return p
	}
	size, err := strconv.Atoi(parts[1])
	if err != nil || size < 0 {
		return p
	}

	p.Offset = num * size
	p.Limit = size
	return p
}
