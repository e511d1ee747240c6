package cassandra

import "context"

// Querier ejecuta sentencias CQL parametrizadas. Lo implementa *Session sobre gocql;
// los tests usan un doble en memoria.
type Querier interface {
	// Exec ejecuta una sentencia sin filas de retorno.
	Exec(ctx context.Context, stmt string, values ...any) error
	// ExecCAS ejecuta una transacción ligera (IF NOT EXISTS) e informa si se aplicó.
	ExecCAS(ctx context.Context, stmt string, values ...any) (bool, error)
	// Select devuelve todas las filas como mapas columna -> valor.
	Select(ctx context.Context, stmt string, values ...any) ([]map[string]any, error)
}
