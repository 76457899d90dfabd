package postgres

import (
	"context"
	"errors"

	"animal-training/internal/domain/users"
	"animal-training/internal/platform/pagination"
	"animal-training/internal/ports/auth"
	"animal-training/internal/ports/store"

	"github.com/jackc/pgx/v5"
	"github.com/samber/oops"
)

type UsersRepo struct {
	db DB
}

func NewUsersRepo(db DB) *UsersRepo {
	return &UsersRepo{db: db}
}

const userColumns = `id, name, email, password_hash, role, created_at`

func (r *UsersRepo) Create(ctx context.Context, u users.User) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO users (id, name, email, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`,
		u.ID,
		u.Name,
		u.Email,
		u.PasswordHash,
		string(u.Role),
		u.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return store.ErrDuplicateKey
		}
		return oops.Code("USER_CREATE_FAILED").With("email", u.Email).Wrap(err)
	}
	return nil
}

func (r *UsersRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	if !validID(id) {
		return users.User{}, store.ErrNotFound
	}
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	u, err := scanUser(row)
	if err != nil {
		return users.User{}, notFoundOr(err, "USER_GET_FAILED", "id", id)
	}
	return u, nil
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	u, err := scanUser(row)
	if err != nil {
		return users.User{}, notFoundOr(err, "USER_GET_FAILED", "email", email)
	}
	return u, nil
}

func (r *UsersRepo) List(ctx context.Context, page pagination.Page) ([]users.User, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+userColumns+`
		FROM users
		ORDER BY seq
		LIMIT $1 OFFSET $2
	`, page.Limit, page.Offset())
	if err != nil {
		return nil, oops.Code("USER_LIST_FAILED").Wrap(err)
	}
	defer rows.Close()

	out := []users.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, oops.Code("USER_LIST_FAILED").Wrap(err)
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, oops.Code("USER_LIST_FAILED").Wrap(err)
	}
	return out, nil
}

func scanUser(row pgx.Row) (users.User, error) {
	var (
		u    users.User
		role string
	)
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &role, &u.CreatedAt); err != nil {
		return users.User{}, err
	}
	u.Role = auth.Role(role)
	return u, nil
}

// notFoundOr traduce pgx.ErrNoRows al sentinel del store; el resto se envuelve con oops.
func notFoundOr(err error, code, key string, value any) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return store.ErrNotFound
	}
	return oops.Code(code).With(key, value).Wrap(err)
}
