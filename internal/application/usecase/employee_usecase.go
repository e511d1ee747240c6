package usecase

import (
	"context"

	"github.com/jhoicas/Concesionaria-api/internal/domain/entity"
	"github.com/jhoicas/Concesionaria-api/internal/domain/repository"
)

// EmployeeUseCase lecturas de empleados por sucursal.
type EmployeeUseCase struct {
	repo repository.EmployeeRepository
	obs  *Observer
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository, obs *Observer) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo, obs: obs}
}

// ListByBranch lee los empleados de una sucursal, o de todas si branch es el puesto privilegiado.
func (uc *EmployeeUseCase) ListByBranch(ctx context.Context, branch string) ReadResult[entity.Employee] {
	if entity.ScopeFor(branch) == entity.ScopeOrganization {
		return ReadAll(ctx, uc.obs, OpListEmployees, uc.repo.ListAll)
	}
	return ReadAll(ctx, uc.obs, OpListEmployees, func(ctx context.Context) ([]entity.Employee, error) {
		return uc.repo.ListByBranch(ctx, branch)
	})
}
