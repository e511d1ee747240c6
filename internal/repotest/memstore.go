// Package repotest provee un almacén en memoria que implementa los puertos de
// repositorio con la misma semántica que el adaptador Cassandra. Solo para tests.
package repotest

import (
	"context"
	"sync"

	"github.com/jhoicas/Concesionaria-api/internal/domain"
	"github.com/jhoicas/Concesionaria-api/internal/domain/entity"
	"github.com/jhoicas/Concesionaria-api/internal/domain/repository"
)

var (
	_ repository.SaleRepository    = (*MemStore)(nil)
	_ repository.CatalogRepository = (*MemStore)(nil)
)

// MemStore almacén en memoria. Con Fail distinto de nil toda operación falla con ese error.
type MemStore struct {
	mu        sync.Mutex
	Fail      error
	sales     []entity.Sale
	employees []entity.Employee
	Customers []entity.Record
	Cars      []entity.Record
	Branches  []entity.Record
}

// New crea un almacén vacío.
func New() *MemStore {
	return &MemStore{}
}

// SetFail cambia el error devuelto por todas las operaciones.
func (m *MemStore) SetFail(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Fail = err
}

func (m *MemStore) Insert(_ context.Context, s *entity.Sale) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Fail != nil {
		return m.Fail
	}
	m.sales = append(m.sales, *s)
	return nil
}

func (m *MemStore) ListAll(_ context.Context) ([]entity.Sale, error) {
	return m.filterSales(func(entity.Sale) bool { return true })
}

func (m *MemStore) ListByBranch(_ context.Context, branch string) ([]entity.Sale, error) {
	return m.filterSales(func(s entity.Sale) bool { return s.Branch == branch })
}

func (m *MemStore) filterSales(keep func(entity.Sale) bool) ([]entity.Sale, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Fail != nil {
		return nil, m.Fail
	}
	var out []entity.Sale
	for _, s := range m.sales {
		if keep(s) {
			out = append(out, s)
		}
	}
	return out, nil
}

// Employees expone el repositorio de empleados del almacén.
func (m *MemStore) Employees() *EmployeeStore {
	return &EmployeeStore{m: m}
}

// EmployeeStore vista de empleados de MemStore (los métodos List colisionan con los de ventas).
type EmployeeStore struct {
	m *MemStore
}

var _ repository.EmployeeRepository = (*EmployeeStore)(nil)

func (e *EmployeeStore) Insert(_ context.Context, emp *entity.Employee) error {
	e.m.mu.Lock()
	defer e.m.mu.Unlock()
	if e.m.Fail != nil {
		return e.m.Fail
	}
	for _, existing := range e.m.employees {
		if existing.Username == emp.Username {
			return domain.ErrUsernameExists
		}
	}
	e.m.employees = append(e.m.employees, *emp)
	return nil
}

func (e *EmployeeStore) FindByUsername(_ context.Context, username string) (*entity.Employee, error) {
	e.m.mu.Lock()
	defer e.m.mu.Unlock()
	if e.m.Fail != nil {
		return nil, e.m.Fail
	}
	for _, existing := range e.m.employees {
		if existing.Username == username {
			found := existing
			return &found, nil
		}
	}
	return nil, nil
}

func (e *EmployeeStore) ListAll(_ context.Context) ([]entity.Employee, error) {
	return e.filter(func(entity.Employee) bool { return true })
}

func (e *EmployeeStore) ListByBranch(_ context.Context, branch string) ([]entity.Employee, error) {
	return e.filter(func(emp entity.Employee) bool { return emp.BranchName == branch })
}

func (e *EmployeeStore) filter(keep func(entity.Employee) bool) ([]entity.Employee, error) {
	e.m.mu.Lock()
	defer e.m.mu.Unlock()
	if e.m.Fail != nil {
		return nil, e.m.Fail
	}
	var out []entity.Employee
	for _, emp := range e.m.employees {
		if keep(emp) {
			out = append(out, emp)
		}
	}
	return out, nil
}

func (m *MemStore) ListCustomers(_ context.Context) ([]entity.Record, error) {
	return m.records(m.Customers)
}

func (m *MemStore) ListCars(_ context.Context) ([]entity.Record, error) {
	return m.records(m.Cars)
}

func (m *MemStore) ListBranches(_ context.Context) ([]entity.Record, error) {
	return m.records(m.Branches)
}

func (m *MemStore) records(src []entity.Record) ([]entity.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Fail != nil {
		return nil, m.Fail
	}
	return append([]entity.Record(nil), src...), nil
}
