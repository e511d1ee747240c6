package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Concesionaria-api/internal/application/usecase"
)

// CatalogHandler listados de solo lectura. Una lectura fallida responde 200 con lista vacía.
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// Customers GET /api/clientes
func (h *CatalogHandler) Customers(c *fiber.Ctx) error {
	return c.JSON(h.uc.ListCustomers(c.UserContext()).Rows)
}

// Cars GET /api/autos
func (h *CatalogHandler) Cars(c *fiber.Ctx) error {
	return c.JSON(h.uc.ListCars(c.UserContext()).Rows)
}

// Branches GET /api/sucursales
func (h *CatalogHandler) Branches(c *fiber.Ctx) error {
	return c.JSON(h.uc.ListBranches(c.UserContext()).Rows)
}
