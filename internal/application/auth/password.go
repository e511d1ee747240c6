package auth

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Concesionaria-api/pkg/config"
)

// PasswordVerifier define cómo se guarda y se compara la contraseña de un empleado.
type PasswordVerifier interface {
	Hash(plain string) (string, error)
	Matches(stored, supplied string) bool
}

// NewPasswordVerifier devuelve el verificador del modo configurado.
func NewPasswordVerifier(mode string) (PasswordVerifier, error) {
	switch mode {
	case config.PasswordModePlain, "":
		return PlainPasswords{}, nil
	case config.PasswordModeBcrypt:
		return BcryptPasswords{Cost: bcrypt.DefaultCost}, nil
	default:
		return nil, fmt.Errorf("modo de contraseña desconocido: %q", mode)
	}
}

// PlainPasswords guarda la contraseña tal cual y compara por igualdad.
// Es el formato de los registros existentes.
type PlainPasswords struct{}

func (PlainPasswords) Hash(plain string) (string, error) { return plain, nil }

func (PlainPasswords) Matches(stored, supplied string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) == 1
}

// BcryptPasswords guarda un hash bcrypt y compara con bcrypt.
type BcryptPasswords struct {
	Cost int
}

func (b BcryptPasswords) Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), b.Cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (BcryptPasswords) Matches(stored, supplied string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
}
