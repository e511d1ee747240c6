package dto

// RegisterEmployeeRequest entrada para el alta de un empleado (signup).
type RegisterEmployeeRequest struct {
	Nombre         string `json:"nombre" validate:"required"`
	Apellido       string `json:"apellido" validate:"required"`
	Puesto         string `json:"puesto" validate:"required"`
	NombreSucursal string `json:"nombre_sucursal" validate:"required"`
	Usuario        string `json:"usuario" validate:"required"`
	Password       string `json:"password" validate:"required"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Usuario  string `json:"usuario" validate:"required"`
	Password string `json:"password" validate:"required"`
}
