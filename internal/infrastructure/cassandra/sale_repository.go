package cassandra

import (
	"context"
	"fmt"

	"github.com/jhoicas/Concesionaria-api/internal/domain/entity"
	"github.com/jhoicas/Concesionaria-api/internal/domain/repository"
)

const (
	saleColumns = `fecha, marca, modelo, year, nombre_cliente, apellido_cliente, email_cliente,
		nombre_empleado, apellido_empleado, sucursal, precio_venta`

	insertSaleCQL = `INSERT INTO ventas (` + saleColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	selectSalesCQL = `SELECT ` + saleColumns + ` FROM ventas`
	// sucursal es la partition key en deployments/schema.cql; ALLOW FILTERING no cambia esa
	// lectura y permite que la consulta funcione en clústeres con un esquema sin esa clave.
	selectSalesByBranchCQL = selectSalesCQL + ` WHERE sucursal = ? ALLOW FILTERING`
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository sobre Cassandra.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de persistencia para ventas.
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Insert persiste una venta enlazando los once campos por posición.
func (r *SaleRepo) Insert(ctx context.Context, s *entity.Sale) error {
	err := r.q.Exec(ctx, insertSaleCQL,
		s.Date, s.Brand, s.Model, s.Year,
		s.CustomerFirstName, s.CustomerLastName, s.CustomerEmail,
		s.EmployeeFirstName, s.EmployeeLastName,
		s.Branch, toInfDec(s.Price),
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// ListAll lee todas las ventas de todas las sucursales.
func (r *SaleRepo) ListAll(ctx context.Context) ([]entity.Sale, error) {
	return r.list(ctx, selectSalesCQL)
}

// ListByBranch lee las ventas cuya sucursal coincide exactamente.
func (r *SaleRepo) ListByBranch(ctx context.Context, branch string) ([]entity.Sale, error) {
	return r.list(ctx, selectSalesByBranchCQL, branch)
}

func (r *SaleRepo) list(ctx context.Context, stmt string, values ...any) ([]entity.Sale, error) {
	rows, err := r.q.Select(ctx, stmt, values...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	out := make([]entity.Sale, 0, len(rows))
	for _, row := range rows {
		out = append(out, toSale(row))
	}
	return out, nil
}
