package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getplanner/backend/internal/domain"
	"github.com/getplanner/backend/internal/repo"
	"github.com/getplanner/backend/testutil"
)

// newTestTx opens a transaction against the test database. The transaction is
// automatically rolled back when the test finishes, giving free per-test
// isolation. All repos under test share this transaction.
//
// Requires TEST_DATABASE_URL to be set and all migrations to be applied
// (TestMain takes care of the latter).
func newTestTx(t *testing.T) pgx.Tx {
	t.Helper()
	pool := testutil.NewPool(t)

	tx, err := pool.Begin(context.Background())
	require.NoError(t, err, "begin transaction")

	t.Cleanup(func() {
		// Rollback discards all changes made during the test — no cleanup SQL needed.
		_ = tx.Rollback(context.Background())
	})

	return tx
}

// tripFixture returns a domain.Trip with sensible defaults for use in tests.
// Callers can override individual fields after calling this function.
func tripFixture() domain.Trip {
	return domain.Trip{
		Destination: "Lisbon, Portugal",
		StartsAt:    time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC),
		EndsAt:      time.Date(2030, 6, 5, 0, 0, 0, 0, time.UTC),
	}
}

// ownerFixture returns the owner participant created alongside a trip.
func ownerFixture() domain.Participant {
	name := "Ada Lovelace"
	return domain.Participant{
		Name:        &name,
		Email:       "ada@example.com",
		IsOwner:     true,
		IsConfirmed: true,
	}
}

func TestTripRepo_CreateWithParticipants(t *testing.T) {
	tx := newTestTx(t)
	trips := repo.NewTripRepo(tx)
	participants := repo.NewParticipantRepo(tx)
	ctx := context.Background()

	// The same address twice: both rows must be kept.
	invitees := []string{"grace@example.com", "grace@example.com"}

	got, err := trips.CreateWithParticipants(ctx, tripFixture(), ownerFixture(), invitees)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.UUID{}, got.ID, "ID should be DB-generated")
	assert.Equal(t, "Lisbon, Portugal", got.Destination)
	assert.False(t, got.IsConfirmed, "trips start unconfirmed")
	assert.False(t, got.CreatedAt.IsZero(), "CreatedAt should be set by DB")

	all, err := participants.ListByTripID(ctx, got.ID)
	require.NoError(t, err)
	require.Len(t, all, 3, "owner plus one row per invite, duplicates included")

	owner := all[0]
	require.NotNil(t, owner.Name)
	assert.Equal(t, "Ada Lovelace", *owner.Name)
	assert.True(t, owner.IsOwner)
	assert.True(t, owner.IsConfirmed)

	for _, invitee := range all[1:] {
		assert.Equal(t, "grace@example.com", invitee.Email)
		assert.Nil(t, invitee.Name, "invitees have no name")
		assert.False(t, invitee.IsOwner)
		assert.False(t, invitee.IsConfirmed)
	}
}

func TestTripRepo_GetByID(t *testing.T) {
	tx := newTestTx(t)
	trips := repo.NewTripRepo(tx)
	ctx := context.Background()

	created, err := trips.CreateWithParticipants(ctx, tripFixture(), ownerFixture(), nil)
	require.NoError(t, err)

	got, err := trips.GetByID(ctx, created.ID)

	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.True(t, got.StartsAt.Equal(created.StartsAt), "StartsAt mismatch")
	assert.True(t, got.EndsAt.Equal(created.EndsAt), "EndsAt mismatch")
}

func TestTripRepo_GetByID_NotFound(t *testing.T) {
	tx := newTestTx(t)
	trips := repo.NewTripRepo(tx)

	_, err := trips.GetByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripRepo_Confirm_SwapsExactlyOnce(t *testing.T) {
	tx := newTestTx(t)
	trips := repo.NewTripRepo(tx)
	ctx := context.Background()

	created, err := trips.CreateWithParticipants(ctx, tripFixture(), ownerFixture(), nil)
	require.NoError(t, err)

	swapped, err := trips.Confirm(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, swapped, "first confirmation performs the transition")

	got, err := trips.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, got.IsConfirmed)

	swapped, err = trips.Confirm(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, swapped, "second confirmation must not match any row")
}

func TestTripRepo_Confirm_MissingTrip(t *testing.T) {
	tx := newTestTx(t)
	trips := repo.NewTripRepo(tx)

	swapped, err := trips.Confirm(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.False(t, swapped)
}
