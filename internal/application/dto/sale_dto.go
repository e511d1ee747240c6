package dto

import "github.com/shopspring/decimal"

// CreateSaleRequest entrada para registrar una venta. Los nombres JSON son los
// que ya envían los clientes existentes. El formato de fecha y precio lo valida el almacén.
type CreateSaleRequest struct {
	Fecha            string           `json:"Fecha" validate:"required"`
	Marca            string           `json:"Marca" validate:"required"`
	Modelo           string           `json:"Modelo" validate:"required"`
	Year             int              `json:"Year" validate:"required"`
	NombreCliente    string           `json:"Nombre_cliente" validate:"required"`
	ApellidoCliente  string           `json:"Apellido_cliente" validate:"required"`
	EmailCliente     string           `json:"Email_cliente" validate:"required"`
	NombreEmpleado   string           `json:"Nombre_empleado" validate:"required"`
	ApellidoEmpleado string           `json:"Apellido_empleado" validate:"required"`
	Sucursal         string           `json:"Sucursal" validate:"required"`
	PrecioVenta      *decimal.Decimal `json:"Precio_venta" validate:"required"`
}
