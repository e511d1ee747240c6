package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Concesionaria-api/internal/application/dto"
	"github.com/jhoicas/Concesionaria-api/internal/domain"
	"github.com/jhoicas/Concesionaria-api/internal/domain/entity"
	"github.com/jhoicas/Concesionaria-api/internal/domain/repository"
	"github.com/jhoicas/Concesionaria-api/pkg/metrics"
)

// SaleUseCase casos de uso de ventas.
type SaleUseCase struct {
	repo repository.SaleRepository
	obs  *Observer
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(repo repository.SaleRepository, obs *Observer) *SaleUseCase {
	return &SaleUseCase{repo: repo, obs: obs}
}

// Record inserta una venta. Los fallos del almacén se devuelven como *domain.DataError.
func (uc *SaleUseCase) Record(ctx context.Context, in dto.CreateSaleRequest) error {
	price := decimal.Zero
	if in.PrecioVenta != nil {
		price = *in.PrecioVenta
	}
	sale := &entity.Sale{
		Date:              in.Fecha,
		Brand:             in.Marca,
		Model:             in.Modelo,
		Year:              in.Year,
		CustomerFirstName: in.NombreCliente,
		CustomerLastName:  in.ApellidoCliente,
		CustomerEmail:     in.EmailCliente,
		EmployeeFirstName: in.NombreEmpleado,
		EmployeeLastName:  in.ApellidoEmpleado,
		Branch:            in.Sucursal,
		Price:             price,
	}
	start := time.Now()
	if err := uc.repo.Insert(ctx, sale); err != nil {
		uc.obs.Done(OpRecordSale, metrics.OutcomeError, start, err)
		return domain.NewDataError(OpRecordSale, err)
	}
	uc.obs.Done(OpRecordSale, metrics.OutcomeOK, start, nil)
	return nil
}

// ListByBranch lee las ventas de una sucursal, o de todas si branch es el puesto privilegiado.
func (uc *SaleUseCase) ListByBranch(ctx context.Context, branch string) ReadResult[entity.Sale] {
	if entity.ScopeFor(branch) == entity.ScopeOrganization {
		return ReadAll(ctx, uc.obs, OpListSales, uc.repo.ListAll)
	}
	return ReadAll(ctx, uc.obs, OpListSales, func(ctx context.Context) ([]entity.Sale, error) {
		return uc.repo.ListByBranch(ctx, branch)
	})
}
