package cassandra

import "context"

type call struct {
	stmt   string
	values []any
}

// fakeQuerier registra cada sentencia y devuelve respuestas preparadas.
type fakeQuerier struct {
	calls   []call
	rows    []map[string]any
	applied bool
	err     error
}

func (f *fakeQuerier) Exec(_ context.Context, stmt string, values ...any) error {
	f.calls = append(f.calls, call{stmt, values})
	return f.err
}

func (f *fakeQuerier) ExecCAS(_ context.Context, stmt string, values ...any) (bool, error) {
	f.calls = append(f.calls, call{stmt, values})
	if f.err != nil {
		return false, f.err
	}
	return f.applied, nil
}

func (f *fakeQuerier) Select(_ context.Context, stmt string, values ...any) ([]map[string]any, error) {
	f.calls = append(f.calls, call{stmt, values})
	if f.err != nil {
		return nil, f.err
	}
	return f.rows, nil
}

func (f *fakeQuerier) last() call {
	return f.calls[len(f.calls)-1]
}
