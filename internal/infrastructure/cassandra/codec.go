package cassandra

import (
	"fmt"
	"math/big"
	"strconv"
	"time"

	"github.com/gocql/gocql"
	"github.com/shopspring/decimal"
	"gopkg.in/inf.v0"

	"github.com/jhoicas/Concesionaria-api/internal/domain/entity"
)

// cqlDateLayout formato de las columnas date de CQL.
const cqlDateLayout = "2006-01-02"

// toInfDec convierte un monto al tipo que gocql serializa como decimal CQL.
func toInfDec(d decimal.Decimal) *inf.Dec {
	return inf.NewDecBig(d.Coefficient(), inf.Scale(-d.Exponent()))
}

func fromInfDec(x *inf.Dec) decimal.Decimal {
	if x == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(x.UnscaledBig(), -int32(x.Scale()))
}

func asString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case time.Time:
		if t.IsZero() {
			return ""
		}
		return t.UTC().Format(cqlDateLayout)
	case gocql.UUID:
		return t.String()
	case []byte:
		return string(t)
	default:
		return fmt.Sprint(t)
	}
}

func asInt(v any) int {
	switch t := v.(type) {
	case int:
		return t
	case int8:
		return int(t)
	case int16:
		return int(t)
	case int32:
		return int(t)
	case int64:
		return int(t)
	case *big.Int:
		if t == nil {
			return 0
		}
		return int(t.Int64())
	case string:
		n, _ := strconv.Atoi(t)
		return n
	default:
		return 0
	}
}

func asDecimal(v any) decimal.Decimal {
	switch t := v.(type) {
	case *inf.Dec:
		return fromInfDec(t)
	case decimal.Decimal:
		return t
	case float64:
		return decimal.NewFromFloat(t)
	case float32:
		return decimal.NewFromFloat32(t)
	case int:
		return decimal.NewFromInt(int64(t))
	case int32:
		return decimal.NewFromInt32(t)
	case int64:
		return decimal.NewFromInt(t)
	case string:
		d, err := decimal.NewFromString(t)
		if err != nil {
			return decimal.Zero
		}
		return d
	default:
		return decimal.Zero
	}
}

// normalizeValue deja cada valor de una fila opaca en una forma serializable a JSON.
func normalizeValue(v any) any {
	switch t := v.(type) {
	case *inf.Dec:
		return fromInfDec(t)
	case gocql.UUID:
		return t.String()
	default:
		return v
	}
}

func toRecord(row map[string]any) entity.Record {
	rec := make(entity.Record, len(row))
	for k, v := range row {
		rec[k] = normalizeValue(v)
	}
	return rec
}

func toRecords(rows []map[string]any) []entity.Record {
	out := make([]entity.Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, toRecord(row))
	}
	return out
}

func toSale(row map[string]any) entity.Sale {
	return entity.Sale{
		Date:              asString(row["fecha"]),
		Brand:             asString(row["marca"]),
		Model:             asString(row["modelo"]),
		Year:              asInt(row["year"]),
		CustomerFirstName: asString(row["nombre_cliente"]),
		CustomerLastName:  asString(row["apellido_cliente"]),
		CustomerEmail:     asString(row["email_cliente"]),
		EmployeeFirstName: asString(row["nombre_empleado"]),
		EmployeeLastName:  asString(row["apellido_empleado"]),
		Branch:            asString(row["sucursal"]),
		Price:             asDecimal(row["precio_venta"]),
	}
}

func toEmployee(row map[string]any) entity.Employee {
	return entity.Employee{
		FirstName:  asString(row["nombre"]),
		LastName:   asString(row["apellido"]),
		Role:       asString(row["puesto"]),
		BranchName: asString(row["nombre_sucursal"]),
		Username:   asString(row["usuario"]),
		Password:   asString(row["password"]),
	}
}
