package users

import (
	"time"

	"animal-training/internal/ports/auth"
)

// User es la identidad registrada. No se modifica una vez creada.
type User struct {
	ID    string
	Name  string
	Email string // única, case-sensitive tal como se guardó

	PasswordHash string

	Role auth.Role

	CreatedAt time.Time
}
