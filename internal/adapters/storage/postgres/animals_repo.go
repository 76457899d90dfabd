package postgres

import (
	"context"
	"errors"

	"animal-training/internal/domain/animals"
	"animal-training/internal/platform/pagination"
	"animal-training/internal/ports/store"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/samber/oops"
)

type AnimalsRepo struct {
	db DB
}

func NewAnimalsRepo(db DB) *AnimalsRepo {
	return &AnimalsRepo{db: db}
}

const animalColumns = `id, owner_id, name, species, created_at`

func (r *AnimalsRepo) Create(ctx context.Context, a animals.Animal) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO animals (id, owner_id, name, species, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`,
		a.ID,
		a.OwnerID,
		a.Name,
		a.Species,
		a.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		switch {
		case isUniqueViolation(err):
			return store.ErrDuplicateKey
		case errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation:
			return animals.ErrUnknownOwner
		}
		return oops.Code("ANIMAL_CREATE_FAILED").With("owner_id", a.OwnerID).Wrap(err)
	}
	return nil
}

func (r *AnimalsRepo) GetByID(ctx context.Context, id string) (animals.Animal, error) {
	if !validID(id) {
		return animals.Animal{}, store.ErrNotFound
	}
	row := r.db.QueryRow(ctx, `SELECT `+animalColumns+` FROM animals WHERE id = $1`, id)
	a, err := scanAnimal(row)
	if err != nil {
		return animals.Animal{}, notFoundOr(err, "ANIMAL_GET_FAILED", "id", id)
	}
	return a, nil
}

func (r *AnimalsRepo) List(ctx context.Context, page pagination.Page) ([]animals.Animal, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+animalColumns+`
		FROM animals
		ORDER BY seq
		LIMIT $1 OFFSET $2
	`, page.Limit, page.Offset())
	if err != nil {
		return nil, oops.Code("ANIMAL_LIST_FAILED").Wrap(err)
	}
	defer rows.Close()

	out := []animals.Animal{}
	for rows.Next() {
		a, err := scanAnimal(rows)
		if err != nil {
			return nil, oops.Code("ANIMAL_LIST_FAILED").Wrap(err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, oops.Code("ANIMAL_LIST_FAILED").Wrap(err)
	}
	return out, nil
}

func scanAnimal(row pgx.Row) (animals.Animal, error) {
	var a animals.Animal
	if err := row.Scan(&a.ID, &a.OwnerID, &a.Name, &a.Species, &a.CreatedAt); err != nil {
		return animals.Animal{}, err
	}
	return a, nil
}
