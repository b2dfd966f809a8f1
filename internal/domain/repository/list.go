package repository

// NoLimit desactiva la paginación: se devuelven todas las filas que
// satisfacen el filtro, ignorando Offset.
const NoLimit = -1

// ListParams parámetros comunes de todos los listados.
// Filter, cuando no está vacío, se compara como subcadena (%filter%,
// sin distinguir mayúsculas) contra la concatenación de los campos
// buscables de cada entidad. Total siempre se calcula antes de paginar.
type ListParams struct {
	Offset int
	Limit  int // NoLimit (-1) = sin paginación
	Filter string
}

// Unpaginated parámetros para un listado completo.
func Unpaginated(filter string) ListParams {
	return ListParams{Offset: 0, Limit: NoLimit, Filter: filter}
}

// SupplierScope restringe un listado de suppliers por tipo.
// ScopeProviders selecciona type ∈ {provider, both}; ScopeConsumers,
// type ∈ {consumer, both}; ScopeAllSuppliers no restringe.
type SupplierScope string

const (
	ScopeAllSuppliers SupplierScope = ""
	ScopeProviders    SupplierScope = "provider"
	ScopeConsumers    SupplierScope = "consumer"
)

// TransactionScope restringe un listado de transacciones por signo.
type TransactionScope string

const (
	ScopeAllTransactions TransactionScope = ""
	ScopeIncomes         TransactionScope = "income"
	ScopeOutcomes        TransactionScope = "outcome"
)
