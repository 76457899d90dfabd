package animals

import "time"

// Animal pertenece a un único usuario. OwnerID no cambia después de crearse:
// no existe endpoint para transferir dueño y el chequeo de training depende de eso.
type Animal struct {
	ID      string
	OwnerID string

	Name    string
	Species string

	CreatedAt time.Time
}
