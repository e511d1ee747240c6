package cassandra

import (
	"context"
	"fmt"

	"github.com/jhoicas/Concesionaria-api/internal/domain"
	"github.com/jhoicas/Concesionaria-api/internal/domain/entity"
	"github.com/jhoicas/Concesionaria-api/internal/domain/repository"
)

const (
	employeeColumns = `nombre, apellido, puesto, nombre_sucursal, usuario, password`

	// usuario es la clave primaria; IF NOT EXISTS evita sobrescribir un usuario existente.
	insertEmployeeCQL = `INSERT INTO empleados (` + employeeColumns + `)
		VALUES (?, ?, ?, ?, ?, ?) IF NOT EXISTS`
	selectEmployeesCQL          = `SELECT ` + employeeColumns + ` FROM empleados`
	selectEmployeeByUsernameCQL = selectEmployeesCQL + ` WHERE usuario = ?`
	selectEmployeesByBranchCQL  = selectEmployeesCQL + ` WHERE nombre_sucursal = ? ALLOW FILTERING`
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación de EmployeeRepository sobre Cassandra.
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository construye el adaptador de persistencia para empleados.
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

// Insert crea un empleado. Devuelve domain.ErrUsernameExists si el usuario ya estaba registrado.
func (r *EmployeeRepo) Insert(ctx context.Context, e *entity.Employee) error {
	applied, err := r.q.ExecCAS(ctx, insertEmployeeCQL,
		e.FirstName, e.LastName, e.Role, e.BranchName, e.Username, e.Password,
	)
	if err != nil {
		return fmt.Errorf("insert employee: %w", err)
	}
	if !applied {
		return domain.ErrUsernameExists
	}
	return nil
}

// FindByUsername busca un empleado por usuario con parámetro enlazado. (nil, nil) si no existe.
func (r *EmployeeRepo) FindByUsername(ctx context.Context, username string) (*entity.Employee, error) {
	rows, err := r.q.Select(ctx, selectEmployeeByUsernameCQL, username)
	if err != nil {
		return nil, fmt.Errorf("get employee by username: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	e := toEmployee(rows[0])
	return &e, nil
}

// ListAll lee los empleados de todas las sucursales.
func (r *EmployeeRepo) ListAll(ctx context.Context) ([]entity.Employee, error) {
	return r.list(ctx, selectEmployeesCQL)
}

// ListByBranch lee los empleados de una sucursal (recorrido con ALLOW FILTERING).
func (r *EmployeeRepo) ListByBranch(ctx context.Context, branch string) ([]entity.Employee, error) {
	return r.list(ctx, selectEmployeesByBranchCQL, branch)
}

func (r *EmployeeRepo) list(ctx context.Context, stmt string, values ...any) ([]entity.Employee, error) {
	rows, err := r.q.Select(ctx, stmt, values...)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	out := make([]entity.Employee, 0, len(rows))
	for _, row := range rows {
		out = append(out, toEmployee(row))
	}
	return out, nil
}
