package repository

import (
	"context"

	"github.com/jhoicas/Concesionaria-api/internal/domain/entity"
)

// EmployeeRepository define el puerto de persistencia para empleados.
type EmployeeRepository interface {
	// Insert crea el empleado; devuelve domain.ErrUsernameExists si el usuario ya existe.
	Insert(ctx context.Context, employee *entity.Employee) error
	// FindByUsername devuelve (nil, nil) si no existe.
	FindByUsername(ctx context.Context, username string) (*entity.Employee, error)
	ListAll(ctx context.Context) ([]entity.Employee, error)
	ListByBranch(ctx context.Context, branch string) ([]entity.Employee, error)
}
