package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Concesionaria-api/internal/domain"
	"github.com/jhoicas/Concesionaria-api/pkg/logger"
	"github.com/jhoicas/Concesionaria-api/pkg/metrics"
)

// Nombres de operación usados en DataError, logs y métricas.
const (
	OpRecordSale        = "record_sale"
	OpListSales         = "list_sales"
	OpListEmployees     = "list_employees"
	OpRegisterEmployee  = "register_employee"
	OpVerifyCredentials = "verify_credentials"
	OpListCustomers     = "list_customers"
	OpListCars          = "list_cars"
	OpListBranches      = "list_branches"
)

// Observer registra en log y métricas el resultado de cada operación.
type Observer struct {
	log     *logger.Logger
	metrics *metrics.QueryMetrics
}

// NewObserver construye el observer. Ambos argumentos pueden ser nil.
func NewObserver(log *logger.Logger, m *metrics.QueryMetrics) *Observer {
	if log == nil {
		log = logger.Nop()
	}
	return &Observer{log: log, metrics: m}
}

// Done registra una operación terminada. err se registra en log si no es nil.
func (o *Observer) Done(op, outcome string, start time.Time, err error) {
	if o == nil {
		return
	}
	o.metrics.Observe(op, outcome, time.Since(start))
	switch outcome {
	case metrics.OutcomeError:
		o.log.Error().Err(err).Str("operation", op).Msg("fallo del almacén")
	case metrics.OutcomeDegraded:
		o.log.Warn().Err(err).Str("operation", op).Msg("lectura degradada a vacío")
	}
}

// ReadAll ejecuta una lectura pura aplicando la política de degradar a vacío.
func ReadAll[T any](ctx context.Context, o *Observer, op string, read func(context.Context) ([]T, error)) ReadResult[T] {
	start := time.Now()
	rows, err := read(ctx)
	if err != nil {
		o.Done(op, metrics.OutcomeDegraded, start, err)
		return ReadResult[T]{Rows: []T{}, Err: domain.NewDataError(op, err)}
	}
	if rows == nil {
		rows = []T{}
	}
	o.Done(op, metrics.OutcomeOK, start, nil)
	return ReadResult[T]{Rows: rows}
}
