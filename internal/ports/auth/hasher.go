package auth

import "errors"

var (
	ErrEmptyPassword   = errors.New("password is empty")
	ErrPasswordTooLong = errors.New("password is too long")
	ErrMalformedDigest = errors.New("malformed password digest")
)

// PasswordHasher hashea y verifica passwords.
// Verify devuelve (false, nil) ante un password incorrecto y solo falla
// cuando el digest guardado no es válido (ErrMalformedDigest).
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, digest string) (bool, error)
}
