package repository

import (
	"context"

	"github.com/jhoicas/Concesionaria-api/internal/domain/entity"
)

// CatalogRepository lecturas completas de las tablas pobladas externamente.
type CatalogRepository interface {
	ListCustomers(ctx context.Context) ([]entity.Record, error)
	ListCars(ctx context.Context) ([]entity.Record, error)
	ListBranches(ctx context.Context) ([]entity.Record, error)
}
