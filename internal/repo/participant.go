package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/getplanner/backend/internal/domain"
)

// ParticipantRepo defines the persistence operations for Participants.
type ParticipantRepo interface {
	// Create inserts a new participant and returns the persisted record.
	// No uniqueness check on email — the same address may be invited twice
	// and each invite gets its own row.
	Create(ctx context.Context, p domain.Participant) (domain.Participant, error)

	// GetByID retrieves a single participant by its UUID primary key.
	// Returns domain.ErrNotFound if no participant with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Participant, error)

	// ListByTripID returns all participants of a trip ordered by creation.
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error)

	// ListInviteesByTripID returns the non-owner participants of a trip
	// ordered by creation, regardless of their confirmation state.
	ListInviteesByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error)

	// Confirm flips is_confirmed from false to true for a single participant
	// as a compare-and-swap. It reports whether this call performed the
	// transition; it never touches any other participant.
	Confirm(ctx context.Context, id uuid.UUID) (bool, error)
}

// pgParticipantRepo is the Postgres implementation of ParticipantRepo.
type pgParticipantRepo struct {
	db db
}

// NewParticipantRepo constructs a ParticipantRepo backed by the provided db
// connection. In production pass *pgxpool.Pool; in tests pass a pgx.Tx for
// rollback isolation.
func NewParticipantRepo(db db) ParticipantRepo {
	return &pgParticipantRepo{db: db}
}

func (r *pgParticipantRepo) Create(ctx context.Context, p domain.Participant) (domain.Participant, error) {
	const q = `
		INSERT INTO participants (trip_id, name, email, is_owner, is_confirmed)
		VALUES (@trip_id, @name, @email, @is_owner, @is_confirmed)
		RETURNING id, trip_id, name, email, is_owner, is_confirmed, created_at`

	args := pgx.NamedArgs{
		"trip_id":      p.TripID,
		"name":         p.Name, // nil becomes NULL
		"email":        p.Email,
		"is_owner":     p.IsOwner,
		"is_confirmed": p.IsConfirmed,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanParticipant(row)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("repo.ParticipantRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgParticipantRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Participant, error) {
	const q = `
		SELECT id, trip_id, name, email, is_owner, is_confirmed, created_at
		FROM participants
		WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanParticipant(row)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("repo.ParticipantRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgParticipantRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error) {
	return r.list(ctx, tripID, false)
}

func (r *pgParticipantRepo) ListInviteesByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error) {
	return r.list(ctx, tripID, true)
}

func (r *pgParticipantRepo) list(ctx context.Context, tripID uuid.UUID, inviteesOnly bool) ([]domain.Participant, error) {
	q := `
		SELECT id, trip_id, name, email, is_owner, is_confirmed, created_at
		FROM participants
		WHERE trip_id = @trip_id`
	if inviteesOnly {
		q += ` AND is_owner = false`
	}
	q += `
		ORDER BY created_at ASC, id ASC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.ParticipantRepo.list: %w", err)
	}
	defer rows.Close()

	var participants []domain.Participant
	for rows.Next() {
		p, err := scanParticipant(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ParticipantRepo.list: scan: %w", err)
		}
		participants = append(participants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ParticipantRepo.list: rows: %w", err)
	}

	return participants, nil
}

// Confirm flips a single participant's confirmation flag. Scoped by id only —
// the WHERE clause can never affect another participant's row.
func (r *pgParticipantRepo) Confirm(ctx context.Context, id uuid.UUID) (bool, error) {
	const q = `
		UPDATE participants
		SET is_confirmed = true
		WHERE id = @id AND is_confirmed = false`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return false, fmt.Errorf("repo.ParticipantRepo.Confirm: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// scanParticipant maps a single database row into a domain.Participant.
// It handles the UUID and nullable name conversions.
func scanParticipant(s scanner) (domain.Participant, error) {
	var (
		p      domain.Participant
		id     pgtype.UUID
		tripID pgtype.UUID
		name   pgtype.Text
	)

	err := s.Scan(&id, &tripID, &name, &p.Email, &p.IsOwner, &p.IsConfirmed, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Participant{}, domain.ErrNotFound
		}
		return domain.Participant{}, err
	}

	p.ID = uuid.UUID(id.Bytes)
	p.TripID = uuid.UUID(tripID.Bytes)
	if name.Valid {
		n := name.String
		p.Name = &n
	}
	return p, nil
}
