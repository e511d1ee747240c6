package entity

// Employee representa un empleado de una sucursal. Username es único.
type Employee struct {
	FirstName  string `json:"nombre"`
	LastName   string `json:"apellido"`
	Role       string `json:"puesto"`
	BranchName string `json:"nombre_sucursal"`
	Username   string `json:"usuario"`
	Password   string `json:"-"` // nunca se serializa
}

// Profile datos públicos de un empleado autenticado.
type Profile struct {
	FirstName  string `json:"nombre"`
	LastName   string `json:"apellido"`
	BranchName string `json:"nombre_sucursal"`
	Role       string `json:"puesto"`
}

// Profile devuelve la vista pública del empleado.
func (e *Employee) Profile() *Profile {
	return &Profile{
		FirstName:  e.FirstName,
		LastName:   e.LastName,
		BranchName: e.BranchName,
		Role:       e.Role,
	}
}
