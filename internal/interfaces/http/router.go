package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestion-erp/erp-api/internal/application/auth"
	"github.com/gestion-erp/erp-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	UserUC        *usecase.UserUseCase
	CenterUC      *usecase.CenterUseCase
	StockUC       *usecase.StockUseCase
	ProductUC     *usecase.ProductUseCase
	SupplierUC    *usecase.SupplierUseCase
	TransactionUC *usecase.TransactionUseCase
	JWTSecret     string
}

// Router registra las rutas de la API. Solo POST /api/login es público;
// todo lo demás exige Bearer Token, incluido GET /api/login (verificación).
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	authMW := AuthMiddleware(deps.JWTSecret)

	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/login", authHandler.Login)
	api.Get("/login", authMW, authHandler.Verify)

	protected := api.Group("/", authMW)

	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Post("/", userHandler.Create)
	users.Put("/", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	centers := protected.Group("/centers")
	centerHandler := NewCenterHandler(deps.CenterUC)
	centers.Get("/", centerHandler.List)
	centers.Get("/:id", centerHandler.GetByID)
	centers.Post("/", centerHandler.Create)
	centers.Put("/", centerHandler.Update)
	centers.Delete("/:id", centerHandler.Delete)

	stocks := protected.Group("/stocks")
	stockHandler := NewStockHandler(deps.StockUC)
	stocks.Get("/", stockHandler.List)
	stocks.Get("/:id", stockHandler.GetByID)
	stocks.Post("/", stockHandler.Create)
	stocks.Put("/", stockHandler.Update)
	stocks.Delete("/:id", stockHandler.Delete)

	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", productHandler.Create)
	products.Put("/", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Los listados alcanzados van antes de /:id para que Fiber no los
	// capture como parámetro.
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/providers", supplierHandler.Providers)
	suppliers.Get("/consumers", supplierHandler.Consumers)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Put("/", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	transactions := protected.Group("/transactions")
	transactionHandler := NewTransactionHandler(deps.TransactionUC)
	transactions.Get("/", transactionHandler.List)
	transactions.Get("/incomes", transactionHandler.Incomes)
	transactions.Get("/outcomes", transactionHandler.Outcomes)
	transactions.Get("/:id", transactionHandler.GetByID)
	transactions.Post("/", transactionHandler.Create)
	transactions.Put("/", transactionHandler.Update)
	transactions.Delete("/:id", transactionHandler.Delete)
}
