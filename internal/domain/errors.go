package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrUserNotFound   = errors.New("usuario no encontrado")
	ErrWrongPassword  = errors.New("contraseña incorrecta")
	ErrUsernameExists = errors.New("el usuario ya existe")
	ErrInvalidInput   = errors.New("entrada inválida")
)

// DataError envuelve un fallo del almacén de datos. El mensaje solo expone la
// operación lógica; el texto de la consulta nunca forma parte del error.
type DataError struct {
	Op  string
	Err error
}

// NewDataError construye un DataError para la operación indicada.
func NewDataError(op string, err error) *DataError {
	return &DataError{Op: op, Err: err}
}

func (e *DataError) Error() string {
	return "error de datos en " + e.Op
}

func (e *DataError) Unwrap() error { return e.Err }

// IsDataError indica si err (o alguno de sus envueltos) es un DataError.
func IsDataError(err error) bool {
	var de *DataError
	return errors.As(err, &de)
}
