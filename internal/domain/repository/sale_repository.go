package repository

import (
	"context"

	"github.com/jhoicas/Concesionaria-api/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para ventas.
type SaleRepository interface {
	Insert(ctx context.Context, sale *entity.Sale) error
	ListAll(ctx context.Context) ([]entity.Sale, error)
	ListByBranch(ctx context.Context, branch string) ([]entity.Sale, error)
}
