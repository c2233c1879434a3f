package repo_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getplanner/backend/internal/domain"
	"github.com/getplanner/backend/internal/repo"
)

// createTrip persists a fixture trip (owner included) and returns it.
func createTrip(t *testing.T, trips repo.TripRepo) domain.Trip {
	t.Helper()
	created, err := trips.CreateWithParticipants(context.Background(), tripFixture(), ownerFixture(), nil)
	require.NoError(t, err)
	return created
}

func TestParticipantRepo_Create(t *testing.T) {
	tx := newTestTx(t)
	trips := repo.NewTripRepo(tx)
	participants := repo.NewParticipantRepo(tx)
	ctx := context.Background()

	trip := createTrip(t, trips)

	got, err := participants.Create(ctx, domain.Participant{
		TripID: trip.ID,
		Email:  "grace@example.com",
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.UUID{}, got.ID)
	assert.Equal(t, trip.ID, got.TripID)
	assert.Nil(t, got.Name)
	assert.False(t, got.IsOwner)
	assert.False(t, got.IsConfirmed)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestParticipantRepo_GetByID_NotFound(t *testing.T) {
	tx := newTestTx(t)
	participants := repo.NewParticipantRepo(tx)

	_, err := participants.GetByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestParticipantRepo_ListByTripID_CreationOrder(t *testing.T) {
	tx := newTestTx(t)
	trips := repo.NewTripRepo(tx)
	participants := repo.NewParticipantRepo(tx)
	ctx := context.Background()

	trip := createTrip(t, trips)
	for _, email := range []string{"first@example.com", "second@example.com"} {
		_, err := participants.Create(ctx, domain.Participant{TripID: trip.ID, Email: email})
		require.NoError(t, err)
	}

	got, err := participants.ListByTripID(ctx, trip.ID)

	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.True(t, got[0].IsOwner, "owner was created first")
	assert.Equal(t, "first@example.com", got[1].Email)
	assert.Equal(t, "second@example.com", got[2].Email)
}

func TestParticipantRepo_ListInviteesByTripID_ExcludesOwner(t *testing.T) {
	tx := newTestTx(t)
	trips := repo.NewTripRepo(tx)
	participants := repo.NewParticipantRepo(tx)
	ctx := context.Background()

	trip := createTrip(t, trips)
	invitee, err := participants.Create(ctx, domain.Participant{TripID: trip.ID, Email: "grace@example.com"})
	require.NoError(t, err)

	got, err := participants.ListInviteesByTripID(ctx, trip.ID)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, invitee.ID, got[0].ID)
}

func TestParticipantRepo_Confirm_TouchesOnlyTheAddressedRow(t *testing.T) {
	tx := newTestTx(t)
	trips := repo.NewTripRepo(tx)
	participants := repo.NewParticipantRepo(tx)
	ctx := context.Background()

	trip := createTrip(t, trips)
	first, err := participants.Create(ctx, domain.Participant{TripID: trip.ID, Email: "first@example.com"})
	require.NoError(t, err)
	second, err := participants.Create(ctx, domain.Participant{TripID: trip.ID, Email: "second@example.com"})
	require.NoError(t, err)

	swapped, err := participants.Confirm(ctx, first.ID)
	require.NoError(t, err)
	assert.True(t, swapped)

	got, err := participants.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.True(t, got.IsConfirmed)

	other, err := participants.GetByID(ctx, second.ID)
	require.NoError(t, err)
	assert.False(t, other.IsConfirmed, "confirming one participant must not affect another")

	swapped, err = participants.Confirm(ctx, first.ID)
	require.NoError(t, err)
	assert.False(t, swapped, "second confirmation is a no-op")
}
