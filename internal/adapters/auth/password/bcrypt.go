package password

import (
	"errors"
	"fmt"

	"animal-training/internal/ports/auth"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost equivale a 10 rondas, igual que el servicio original.
const DefaultCost = 10

// BcryptHasher implementa auth.PasswordHasher.
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher(cost int) *BcryptHasher {
	if cost == 0 {
		cost = DefaultCost
	}
	if cost < bcrypt.MinCost {
		cost = bcrypt.MinCost
	}
	if cost > bcrypt.MaxCost {
		cost = bcrypt.MaxCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash genera un digest con salt aleatorio: dos llamadas con el mismo
// plaintext producen digests distintos.
func (h *BcryptHasher) Hash(plain string) (string, error) {
	if plain == "" {
		return "", auth.ErrEmptyPassword
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", auth.ErrPasswordTooLong
		}
		return "", fmt.Errorf("bcrypt hash: %w", err)
	}
	return string(b), nil
}

func (h *BcryptHasher) Verify(plain, digest string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		// hash corto, prefijo o versión inválida, costo fuera de rango
		return false, fmt.Errorf("%w: %v", auth.ErrMalformedDigest, err)
	}
}
