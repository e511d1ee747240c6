package entity

// Record fila opaca (columna -> valor) de las tablas de solo lectura:
// clientes, autos y sucursales. Se poblan fuera de este sistema.
type Record map[string]any
