package entity

// RoleCEO es el único puesto con visibilidad de toda la organización.
const RoleCEO = "CEO"

// Scope alcance de una lectura filtrable por sucursal.
type Scope int

const (
	// ScopeBranch restringe la lectura a una sucursal exacta.
	ScopeBranch Scope = iota
	// ScopeOrganization lee todas las sucursales.
	ScopeOrganization
)

// ScopeFor resuelve el alcance para el valor recibido como sucursal.
// Solo RoleCEO, comparado de forma exacta, obtiene ScopeOrganization.
func ScopeFor(branch string) Scope {
	if branch == RoleCEO {
		return ScopeOrganization
	}
	return ScopeBranch
}

func (s Scope) String() string {
	switch s {
	case ScopeOrganization:
		return "organization"
	default:
		return "branch"
	}
}
