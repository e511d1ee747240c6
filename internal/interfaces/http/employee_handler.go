package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Concesionaria-api/internal/application/dto"
	"github.com/jhoicas/Concesionaria-api/internal/application/usecase"
)

// EmployeeHandler consulta de empleados por sucursal.
type EmployeeHandler struct {
	uc *usecase.EmployeeUseCase
}

// NewEmployeeHandler construye el handler.
func NewEmployeeHandler(uc *usecase.EmployeeUseCase) *EmployeeHandler {
	return &EmployeeHandler{uc: uc}
}

// ListByBranch GET /api/empleados?sucursal=North (CEO = todas)
func (h *EmployeeHandler) ListByBranch(c *fiber.Ctx) error {
	branch := c.Query("sucursal")
	if branch == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "Falta el nombre de la sucursal"})
	}
	return c.JSON(h.uc.ListByBranch(c.UserContext(), branch).Rows)
}
