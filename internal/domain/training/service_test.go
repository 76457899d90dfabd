package training

import (
	"context"
	"errors"
	"testing"
	"time"

	"animal-training/internal/platform/pagination"
	"animal-training/internal/ports/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -------------------------
// Test doubles
// -------------------------

type testRepo struct {
	byID      map[string]Log
	createErr error
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Log{}}
}

func (r *testRepo) Create(_ context.Context, l Log) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.byID[l.ID] = l
	return nil
}

func (r *testRepo) GetByID(_ context.Context, id string) (Log, error) {
	l, ok := r.byID[id]
	if !ok {
		return Log{}, store.ErrNotFound
	}
	return l, nil
}

func (r *testRepo) List(context.Context, pagination.Page) ([]Log, error) {
	return nil, nil
}

type fakeUsers map[string]bool

func (f fakeUsers) UserExists(_ context.Context, id string) (bool, error) {
	return f[id], nil
}

// fakeAnimals: animalID => ownerID
type fakeAnimals map[string]string

func (f fakeAnimals) OwnerOf(_ context.Context, animalID string) (string, error) {
	owner, ok := f[animalID]
	if !ok {
		return "", store.ErrNotFound
	}
	return owner, nil
}

type brokenAnimals struct{}

func (brokenAnimals) OwnerOf(context.Context, string) (string, error) {
	return "", errors.New("connection reset")
}

var fixedNow = time.Date(2026, 5, 10, 9, 30, 0, 0, time.UTC)

func newTestService(repo Repository, users UserLookup, animals AnimalLookup) *Service {
	svc := NewService(repo, users, animals)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

// -------------------------
// Tests
// -------------------------

func TestService_Create_OwnerMatches(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo, fakeUsers{"u1": true}, fakeAnimals{"x": "u1"})

	l, err := svc.Create(context.Background(), CreateInput{UserID: "u1", AnimalID: "x", Description: "sit"})
	require.NoError(t, err)

	assert.Equal(t, fixedNow, l.Date, "date defaults to creation time")
	assert.Equal(t, fixedNow, l.CreatedAt)
	assert.Contains(t, repo.byID, l.ID)
}

func TestService_Create_ExplicitDate(t *testing.T) {
	svc := newTestService(newTestRepo(), fakeUsers{"u1": true}, fakeAnimals{"x": "u1"})
	when := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	l, err := svc.Create(context.Background(), CreateInput{UserID: "u1", AnimalID: "x", Description: "stay", Date: &when})
	require.NoError(t, err)
	assert.Equal(t, when, l.Date)
}

func TestService_Create_OwnershipMismatch(t *testing.T) {
	repo := newTestRepo()
	users := fakeUsers{"u1": true, "u2": true}
	animals := fakeAnimals{"x": "u1", "y": "u2"}
	svc := newTestService(repo, users, animals)

	_, err := svc.Create(context.Background(), CreateInput{UserID: "u1", AnimalID: "y", Description: "heel"})
	assert.ErrorIs(t, err, ErrOwnershipMismatch)
	assert.Empty(t, repo.byID, "nothing must be written on mismatch")
}

func TestService_Create_MissingReferencesNeverReportMismatch(t *testing.T) {
	users := fakeUsers{"u1": true, "u2": true}
	animals := fakeAnimals{"x": "u1", "y": "u2"}

	cases := []struct {
		name     string
		userID   string
		animalID string
	}{
		{"unknown user, animal of someone else", "ghost", "y"},
		{"unknown user, any animal", "ghost", "x"},
		{"known user, unknown animal", "u1", "nope"},
		{"both unknown", "ghost", "nope"},
		{"empty ids", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := newTestService(newTestRepo(), users, animals)
			_, err := svc.Create(context.Background(), CreateInput{UserID: tc.userID, AnimalID: tc.animalID, Description: "d"})
			assert.ErrorIs(t, err, ErrInvalidReference)
			assert.NotErrorIs(t, err, ErrOwnershipMismatch)
		})
	}
}

func TestService_Create_RequiresDescription(t *testing.T) {
	svc := newTestService(newTestRepo(), fakeUsers{"u1": true}, fakeAnimals{"x": "u1"})

	_, err := svc.Create(context.Background(), CreateInput{UserID: "u1", AnimalID: "x", Description: "   "})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Create_StoreGuardMismatch(t *testing.T) {
	// el adapter detectó el cambio de dueño en la escritura condicional
	repo := newTestRepo()
	repo.createErr = ErrOwnershipMismatch
	svc := newTestService(repo, fakeUsers{"u1": true}, fakeAnimals{"x": "u1"})

	_, err := svc.Create(context.Background(), CreateInput{UserID: "u1", AnimalID: "x", Description: "d"})
	assert.ErrorIs(t, err, ErrOwnershipMismatch)
}

func TestService_Create_LookupFailureIsNotAReferenceError(t *testing.T) {
	svc := newTestService(newTestRepo(), fakeUsers{"u1": true}, brokenAnimals{})

	_, err := svc.Create(context.Background(), CreateInput{UserID: "u1", AnimalID: "x", Description: "d"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidReference)
	assert.NotErrorIs(t, err, ErrOwnershipMismatch)
}
