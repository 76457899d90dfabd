//go:build integration

package postgres

import (
	"context"
	"fmt"
	"testing"
	"time"

	"animal-training/internal/domain/animals"
	"animal-training/internal/domain/training"
	"animal-training/internal/domain/users"
	"animal-training/internal/platform/pagination"
	"animal-training/internal/ports/auth"
	"animal-training/internal/ports/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupPostgres(t *testing.T) DB {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("animal_training_test"),
		tcpostgres.WithUsername("training"),
		tcpostgres.WithPassword("training"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	m, err := NewMigrator(dsn)
	require.NoError(t, err)
	require.NoError(t, m.Up())
	require.NoError(t, m.Close())

	pool, err := Open(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return pool
}

func TestPostgres_EndToEnd(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	usersRepo := NewUsersRepo(db)
	animalsRepo := NewAnimalsRepo(db)
	trainingRepo := NewTrainingRepo(db)

	owner := users.User{ID: uuid.NewString(), Name: "Ana", Email: "ana@x.com", PasswordHash: "h", Role: auth.RoleUser, CreatedAt: now}
	other := users.User{ID: uuid.NewString(), Name: "Bob", Email: "bob@x.com", PasswordHash: "h", Role: auth.RoleUser, CreatedAt: now}
	require.NoError(t, usersRepo.Create(ctx, owner))
	require.NoError(t, usersRepo.Create(ctx, other))

	dup := owner
	dup.ID = uuid.NewString()
	assert.ErrorIs(t, usersRepo.Create(ctx, dup), store.ErrDuplicateKey)

	err := animalsRepo.Create(ctx, animals.Animal{ID: uuid.NewString(), OwnerID: uuid.NewString(), Name: "Ghost", Species: "cat", CreatedAt: now})
	assert.ErrorIs(t, err, animals.ErrUnknownOwner)

	rex := animals.Animal{ID: uuid.NewString(), OwnerID: owner.ID, Name: "Rex", Species: "dog", CreatedAt: now}
	require.NoError(t, animalsRepo.Create(ctx, rex))

	ok := training.Log{ID: uuid.NewString(), UserID: owner.ID, AnimalID: rex.ID, Description: "sit", Date: now, CreatedAt: now}
	require.NoError(t, trainingRepo.Create(ctx, ok))

	bad := training.Log{ID: uuid.NewString(), UserID: other.ID, AnimalID: rex.ID, Description: "sit", Date: now, CreatedAt: now}
	assert.ErrorIs(t, trainingRepo.Create(ctx, bad), training.ErrOwnershipMismatch)

	got, err := trainingRepo.GetByID(ctx, ok.ID)
	require.NoError(t, err)
	assert.True(t, got.Date.Equal(now))

	_, err = trainingRepo.GetByID(ctx, bad.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestPostgres_ListPagination(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()
	repo := NewUsersRepo(db)

	for i := 1; i <= 12; i++ {
		require.NoError(t, repo.Create(ctx, users.User{
			ID:           uuid.NewString(),
			Name:         fmt.Sprintf("user-%02d", i),
			Email:        fmt.Sprintf("u%02d@x.com", i),
			PasswordHash: "h",
			Role:         auth.RoleUser,
			CreatedAt:    time.Now(),
		}))
	}

	p, err := pagination.New(2, 5)
	require.NoError(t, err)

	got, err := repo.List(ctx, p)
	require.NoError(t, err)
	require.Len(t, got, 5)
	assert.Equal(t, "user-06", got[0].Name)
	assert.Equal(t, "user-10", got[4].Name)
}
