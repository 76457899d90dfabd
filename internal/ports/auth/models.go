package auth

// Role distingue usuarios comunes de administradores.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Claims representa la información extraída del token.
type Claims struct {
	UserID string
	Email  string
	Role   Role
}

func (c Claims) HasRole(r Role) bool {
	return c.Role == r
}
