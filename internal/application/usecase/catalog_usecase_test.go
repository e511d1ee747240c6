package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Concesionaria-api/internal/application/usecase"
	"github.com/jhoicas/Concesionaria-api/internal/domain"
	"github.com/jhoicas/Concesionaria-api/internal/domain/entity"
	"github.com/jhoicas/Concesionaria-api/internal/repotest"
)

func TestCatalogUseCase_Lecturas(t *testing.T) {
	ctx := context.Background()
	store := repotest.New()
	store.Customers = []entity.Record{{"email": "ana@x.com"}}
	store.Cars = []entity.Record{{"marca": "Toyota"}, {"marca": "Mazda"}}
	store.Branches = []entity.Record{{"nombre": "North"}}
	uc := usecase.NewCatalogUseCase(store, nil)

	assert.Len(t, uc.ListCustomers(ctx).Rows, 1)
	assert.Len(t, uc.ListCars(ctx).Rows, 2)
	assert.Len(t, uc.ListBranches(ctx).Rows, 1)
}

// Con el almacén inaccesible las cinco lecturas puras devuelven vacío en vez de error.
func TestLecturasPuras_DegradanAVacio(t *testing.T) {
	ctx := context.Background()
	store := repotest.New()
	store.Cars = []entity.Record{{"marca": "Toyota"}}
	store.SetFail(errUnreachable)

	catalog := usecase.NewCatalogUseCase(store, nil)
	sales := usecase.NewSaleUseCase(store, nil)
	employees := usecase.NewEmployeeUseCase(store.Employees(), nil)

	type outcome struct {
		name     string
		rows     int
		degraded bool
		err      error
	}
	results := []outcome{
		func() outcome { r := catalog.ListCustomers(ctx); return outcome{"customers", len(r.Rows), r.Degraded(), r.Err} }(),
		func() outcome { r := catalog.ListCars(ctx); return outcome{"cars", len(r.Rows), r.Degraded(), r.Err} }(),
		func() outcome { r := catalog.ListBranches(ctx); return outcome{"branches", len(r.Rows), r.Degraded(), r.Err} }(),
		func() outcome { r := sales.ListByBranch(ctx, "North"); return outcome{"sales", len(r.Rows), r.Degraded(), r.Err} }(),
		func() outcome {
			r := employees.ListByBranch(ctx, "North")
			return outcome{"employees", len(r.Rows), r.Degraded(), r.Err}
		}(),
	}
	for _, o := range results {
		assert.Zero(t, o.rows, o.name)
		assert.True(t, o.degraded, o.name)
		require.Error(t, o.err, o.name)
		assert.True(t, domain.IsDataError(o.err), o.name)
		assert.ErrorIs(t, o.err, errUnreachable, o.name)
	}
}
