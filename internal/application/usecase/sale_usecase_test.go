package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Concesionaria-api/internal/application/dto"
	"github.com/jhoicas/Concesionaria-api/internal/application/usecase"
	"github.com/jhoicas/Concesionaria-api/internal/domain"
	"github.com/jhoicas/Concesionaria-api/internal/domain/entity"
	"github.com/jhoicas/Concesionaria-api/internal/repotest"
	"github.com/jhoicas/Concesionaria-api/pkg/metrics"
)

var errUnreachable = errors.New("gocql: no hosts available in the pool")

func saleRequest(branch string) dto.CreateSaleRequest {
	price := decimal.NewFromInt(25000)
	return dto.CreateSaleRequest{
		Fecha: "2024-01-01", Marca: "Toyota", Modelo: "Corolla", Year: 2024,
		NombreCliente: "Ana", ApellidoCliente: "Diaz", EmailCliente: "ana@x.com",
		NombreEmpleado: "Luis", ApellidoEmpleado: "Paz",
		Sucursal: branch, PrecioVenta: &price,
	}
}

// Escenario: una venta en North aparece para North y CEO, no para South.
func TestSaleUseCase_EscenarioNorthSouthCEO(t *testing.T) {
	ctx := context.Background()
	store := repotest.New()
	uc := usecase.NewSaleUseCase(store, usecase.NewObserver(nil, nil))

	require.NoError(t, uc.Record(ctx, saleRequest("North")))

	north := uc.ListByBranch(ctx, "North")
	require.False(t, north.Degraded())
	require.Len(t, north.Rows, 1)
	got := north.Rows[0]
	assert.Equal(t, "2024-01-01", got.Date)
	assert.Equal(t, "Toyota", got.Brand)
	assert.Equal(t, "Corolla", got.Model)
	assert.Equal(t, 2024, got.Year)
	assert.Equal(t, "ana@x.com", got.CustomerEmail)
	assert.Equal(t, "North", got.Branch)
	assert.True(t, decimal.NewFromInt(25000).Equal(got.Price))

	south := uc.ListByBranch(ctx, "South")
	assert.False(t, south.Degraded())
	assert.Empty(t, south.Rows)

	ceo := uc.ListByBranch(ctx, entity.RoleCEO)
	assert.Len(t, ceo.Rows, 1)
}

func TestSaleUseCase_CEOLeeTodasLasSucursales(t *testing.T) {
	ctx := context.Background()
	store := repotest.New()
	uc := usecase.NewSaleUseCase(store, nil)
	for _, b := range []string{"North", "South", "East"} {
		require.NoError(t, uc.Record(ctx, saleRequest(b)))
	}

	all := uc.ListByBranch(ctx, "CEO")
	branches := map[string]bool{}
	for _, s := range all.Rows {
		branches[s.Branch] = true
	}
	assert.Equal(t, map[string]bool{"North": true, "South": true, "East": true}, branches)

	for _, s := range uc.ListByBranch(ctx, "South").Rows {
		assert.Equal(t, "South", s.Branch)
	}
	assert.Empty(t, uc.ListByBranch(ctx, "ceo").Rows, "solo el valor exacto CEO omite el filtro")
}

func TestSaleUseCase_AlmacenCaido(t *testing.T) {
	ctx := context.Background()
	store := repotest.New()
	store.SetFail(errUnreachable)
	reg := prometheus.NewRegistry()
	uc := usecase.NewSaleUseCase(store, usecase.NewObserver(nil, metrics.NewQueryMetrics(reg)))

	err := uc.Record(ctx, saleRequest("North"))
	require.Error(t, err)
	assert.True(t, domain.IsDataError(err))
	assert.ErrorIs(t, err, errUnreachable)

	for _, branch := range []string{"North", "CEO"} {
		res := uc.ListByBranch(ctx, branch)
		assert.NotNil(t, res.Rows)
		assert.Empty(t, res.Rows)
		assert.True(t, res.Degraded())
		assert.True(t, domain.IsDataError(res.Err))
	}

	count, err := testutil.GatherAndCount(reg, "gateway_query_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count, "series error y degraded")
}

func TestSaleUseCase_SinFilasNoEsDegradado(t *testing.T) {
	uc := usecase.NewSaleUseCase(repotest.New(), nil)
	res := uc.ListByBranch(context.Background(), "North")
	assert.NotNil(t, res.Rows)
	assert.Empty(t, res.Rows)
	assert.False(t, res.Degraded())
	assert.NoError(t, res.Err)
}
