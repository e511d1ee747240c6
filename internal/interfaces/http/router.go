package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Concesionaria-api/internal/application/auth"
	"github.com/jhoicas/Concesionaria-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SaleUC     *usecase.SaleUseCase
	EmployeeUC *usecase.EmployeeUseCase
	CatalogUC  *usecase.CatalogUseCase
	AuthUC     *auth.AuthUseCase
}

// Router registra las rutas de la API. Cada handler invoca exactamente una operación.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/singup", authHandler.Register)
	api.Post("/signup", authHandler.Register)
	api.Post("/login", authHandler.Login)

	saleHandler := NewSaleHandler(deps.SaleUC)
	api.Get("/ventas", saleHandler.ListByBranch)
	api.Post("/ventascarros", saleHandler.Create)

	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	api.Get("/empleados", employeeHandler.ListByBranch)

	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	api.Get("/sucursales", catalogHandler.Branches)
	api.Get("/autos", catalogHandler.Cars)
	api.Get("/clientes", catalogHandler.Customers)
}
