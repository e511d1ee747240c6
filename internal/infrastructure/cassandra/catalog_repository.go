package cassandra

import (
	"context"
	"fmt"

	"github.com/jhoicas/Concesionaria-api/internal/domain/entity"
	"github.com/jhoicas/Concesionaria-api/internal/domain/repository"
)

const (
	selectCustomersCQL = `SELECT * FROM clientes`
	selectCarsCQL      = `SELECT * FROM autos`
	selectBranchesCQL  = `SELECT * FROM sucursales`
)

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

// CatalogRepo lecturas completas de clientes, autos y sucursales.
type CatalogRepo struct {
	q Querier
}

// NewCatalogRepository construye el adaptador.
func NewCatalogRepository(q Querier) *CatalogRepo {
	return &CatalogRepo{q: q}
}

// ListCustomers lee todas las filas de clientes.
func (r *CatalogRepo) ListCustomers(ctx context.Context) ([]entity.Record, error) {
	return r.list(ctx, "customers", selectCustomersCQL)
}

// ListCars lee todas las filas de autos.
func (r *CatalogRepo) ListCars(ctx context.Context) ([]entity.Record, error) {
	return r.list(ctx, "cars", selectCarsCQL)
}

// ListBranches lee todas las filas de sucursales.
func (r *CatalogRepo) ListBranches(ctx context.Context) ([]entity.Record, error) {
	return r.list(ctx, "branches", selectBranchesCQL)
}

func (r *CatalogRepo) list(ctx context.Context, name, stmt string) ([]entity.Record, error) {
	rows, err := r.q.Select(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", name, err)
	}
	return toRecords(rows), nil
}
