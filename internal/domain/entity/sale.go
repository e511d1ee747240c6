package entity

import "github.com/shopspring/decimal"

// Sale representa una venta de un vehículo en una sucursal. Solo se inserta, nunca se modifica.
type Sale struct {
	Date              string          `json:"fecha"` // formato del almacén (date CQL, "2006-01-02")
	Brand             string          `json:"marca"`
	Model             string          `json:"modelo"`
	Year              int             `json:"year"`
	CustomerFirstName string          `json:"nombre_cliente"`
	CustomerLastName  string          `json:"apellido_cliente"`
	CustomerEmail     string          `json:"email_cliente"`
	EmployeeFirstName string          `json:"nombre_empleado"`
	EmployeeLastName  string          `json:"apellido_empleado"`
	Branch            string          `json:"sucursal"`
	Price             decimal.Decimal `json:"precio_venta"`
}
