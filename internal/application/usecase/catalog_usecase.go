package usecase

import (
	"context"

	"github.com/jhoicas/Concesionaria-api/internal/domain/entity"
	"github.com/jhoicas/Concesionaria-api/internal/domain/repository"
)

// CatalogUseCase lecturas completas de clientes, autos y sucursales.
type CatalogUseCase struct {
	repo repository.CatalogRepository
	obs  *Observer
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(repo repository.CatalogRepository, obs *Observer) *CatalogUseCase {
	return &CatalogUseCase{repo: repo, obs: obs}
}

func (uc *CatalogUseCase) ListCustomers(ctx context.Context) ReadResult[entity.Record] {
	return ReadAll(ctx, uc.obs, OpListCustomers, uc.repo.ListCustomers)
}

func (uc *CatalogUseCase) ListCars(ctx context.Context) ReadResult[entity.Record] {
	return ReadAll(ctx, uc.obs, OpListCars, uc.repo.ListCars)
}

func (uc *CatalogUseCase) ListBranches(ctx context.Context) ReadResult[entity.Record] {
	return ReadAll(ctx, uc.obs, OpListBranches, uc.repo.ListBranches)
}
