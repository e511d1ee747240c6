package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/Concesionaria-api/internal/application/dto"
	"github.com/jhoicas/Concesionaria-api/internal/application/usecase"
	"github.com/jhoicas/Concesionaria-api/internal/domain"
	"github.com/jhoicas/Concesionaria-api/internal/domain/entity"
	"github.com/jhoicas/Concesionaria-api/internal/domain/repository"
	"github.com/jhoicas/Concesionaria-api/pkg/metrics"
)

// MsgEmployeeCreated confirmación de alta de empleado.
const MsgEmployeeCreated = "Empleado insertado exitosamente"

// AuthUseCase casos de uso de autenticación: alta de empleado y verificación de credenciales.
type AuthUseCase struct {
	employees repository.EmployeeRepository
	passwords PasswordVerifier
	obs       *usecase.Observer
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(employees repository.EmployeeRepository, passwords PasswordVerifier, obs *usecase.Observer) *AuthUseCase {
	return &AuthUseCase{employees: employees, passwords: passwords, obs: obs}
}

// Register crea un empleado. Devuelve domain.ErrUsernameExists si el usuario ya existe
// (el registro existente no se sobrescribe), domain.ErrInvalidInput si la contraseña no
// se puede guardar (p. ej. más de 72 bytes en modo bcrypt) y *domain.DataError ante fallos del almacén.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterEmployeeRequest) (string, error) {
	stored, err := uc.passwords.Hash(in.Password)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	employee := &entity.Employee{
		FirstName:  in.Nombre,
		LastName:   in.Apellido,
		Role:       in.Puesto,
		BranchName: in.NombreSucursal,
		Username:   in.Usuario,
		Password:   stored,
	}
	start := time.Now()
	err = uc.employees.Insert(ctx, employee)
	switch {
	case errors.Is(err, domain.ErrUsernameExists):
		uc.obs.Done(usecase.OpRegisterEmployee, metrics.OutcomeConflict, start, nil)
		return "", domain.ErrUsernameExists
	case err != nil:
		uc.obs.Done(usecase.OpRegisterEmployee, metrics.OutcomeError, start, err)
		return "", domain.NewDataError(usecase.OpRegisterEmployee, err)
	}
	uc.obs.Done(usecase.OpRegisterEmployee, metrics.OutcomeOK, start, nil)
	return MsgEmployeeCreated, nil
}

// VerifyCredentials busca al empleado por usuario y compara la contraseña.
// Resultados: perfil, domain.ErrUserNotFound, domain.ErrWrongPassword o *domain.DataError.
func (uc *AuthUseCase) VerifyCredentials(ctx context.Context, username, password string) (*entity.Profile, error) {
	start := time.Now()
	employee, err := uc.employees.FindByUsername(ctx, username)
	if err != nil {
		uc.obs.Done(usecase.OpVerifyCredentials, metrics.OutcomeError, start, err)
		return nil, domain.NewDataError(usecase.OpVerifyCredentials, err)
	}
	uc.obs.Done(usecase.OpVerifyCredentials, metrics.OutcomeOK, start, nil)
	if employee == nil {
		return nil, domain.ErrUserNotFound
	}
	if !uc.passwords.Matches(employee.Password, password) {
		return nil, domain.ErrWrongPassword
	}
	return employee.Profile(), nil
}
