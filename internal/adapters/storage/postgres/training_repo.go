package postgres

import (
	"context"

	"animal-training/internal/domain/training"
	"animal-training/internal/platform/pagination"
	"animal-training/internal/ports/store"

	"github.com/jackc/pgx/v5"
	"github.com/samber/oops"
)

type TrainingRepo struct {
	db DB
}

func NewTrainingRepo(db DB) *TrainingRepo {
	return &TrainingRepo{db: db}
}

const trainingColumns = `id, user_id, animal_id, description, date, created_at`

// Create inserta solo si el animal sigue perteneciendo al usuario en el
// momento de la escritura; 0 filas => ErrOwnershipMismatch.
func (r *TrainingRepo) Create(ctx context.Context, l training.Log) error {
	tag, err := r.db.Exec(ctx, `
		INSERT INTO training_logs (id, user_id, animal_id, description, date, created_at)
		SELECT $1::text, $2::text, $3::text, $4::text, $5::timestamptz, $6::timestamptz
		WHERE EXISTS (
			SELECT 1 FROM animals WHERE id = $3::text AND owner_id = $2::text
		)
	`,
		l.ID,
		l.UserID,
		l.AnimalID,
		l.Description,
		l.Date,
		l.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return store.ErrDuplicateKey
		}
		return oops.Code("TRAINING_CREATE_FAILED").
			With("user_id", l.UserID).
			With("animal_id", l.AnimalID).
			Wrap(err)
	}
	if tag.RowsAffected() == 0 {
		return training.ErrOwnershipMismatch
	}
	return nil
}

func (r *TrainingRepo) GetByID(ctx context.Context, id string) (training.Log, error) {
	if !validID(id) {
		return training.Log{}, store.ErrNotFound
	}
	row := r.db.QueryRow(ctx, `SELECT `+trainingColumns+` FROM training_logs WHERE id = $1`, id)
	l, err := scanTraining(row)
	if err != nil {
		return training.Log{}, notFoundOr(err, "TRAINING_GET_FAILED", "id", id)
	}
	return l, nil
}

func (r *TrainingRepo) List(ctx context.Context, page pagination.Page) ([]training.Log, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+trainingColumns+`
		FROM training_logs
		ORDER BY seq
		LIMIT $1 OFFSET $2
	`, page.Limit, page.Offset())
	if err != nil {
		return nil, oops.Code("TRAINING_LIST_FAILED").Wrap(err)
	}
	defer rows.Close()

	out := []training.Log{}
	for rows.Next() {
		l, err := scanTraining(rows)
		if err != nil {
			return nil, oops.Code("TRAINING_LIST_FAILED").Wrap(err)
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, oops.Code("TRAINING_LIST_FAILED").Wrap(err)
	}
	return out, nil
}

func scanTraining(row pgx.Row) (training.Log, error) {
	var l training.Log
	if err := row.Scan(&l.ID, &l.UserID, &l.AnimalID, &l.Description, &l.Date, &l.CreatedAt); err != nil {
		return training.Log{}, err
	}
	return l, nil
}
