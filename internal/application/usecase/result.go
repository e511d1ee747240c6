package usecase

// ReadResult resultado de una lectura pura. Si la consulta falla, Rows queda vacío
// y Err conserva el fallo: quien solo mira Rows no distingue "sin filas" de "falló".
type ReadResult[T any] struct {
	Rows []T
	Err  error
}

// Degraded indica que Rows está vacío por un fallo del almacén y no por falta de filas.
func (r ReadResult[T]) Degraded() bool {
	return r.Err != nil
}
