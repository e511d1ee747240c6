package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Concesionaria-api/internal/application/dto"
	"github.com/jhoicas/Concesionaria-api/internal/application/usecase"
)

// SaleHandler maneja alta y consulta de ventas.
type SaleHandler struct {
	uc *usecase.SaleUseCase
}

// NewSaleHandler construye el handler de ventas.
func NewSaleHandler(uc *usecase.SaleUseCase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar venta
// @Tags         ventas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "venta completa"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/ventascarros [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := parseAndValidate(c, &in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "Faltan datos de la venta"})
	}
	if err := h.uc.Record(c.UserContext(), in); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Error al insertar la venta"})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "Venta insertada exitosamente"})
}

// ListByBranch godoc
// @Summary      Ventas por sucursal (CEO = todas)
// @Tags         ventas
// @Produce      json
// @Param        sucursal  query  string  true  "nombre de la sucursal o CEO"
// @Success      200   {array}   entity.Sale
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/ventas [get]
func (h *SaleHandler) ListByBranch(c *fiber.Ctx) error {
	branch := c.Query("sucursal")
	if branch == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "Falta el parámetro sucursal"})
	}
	return c.JSON(h.uc.ListByBranch(c.UserContext(), branch).Rows)
}
