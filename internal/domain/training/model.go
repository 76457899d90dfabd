package training

import "time"

// Log es una sesión de entrenamiento de un usuario con uno de sus animales.
type Log struct {
	ID       string
	UserID   string
	AnimalID string

	Description string

	// Date es cuándo ocurrió la sesión; CreatedAt cuándo se registró.
	Date      time.Time
	CreatedAt time.Time
}
