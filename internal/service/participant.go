package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/getplanner/backend/internal/domain"
	"github.com/getplanner/backend/internal/repo"
)

// ParticipantService implements the invitation workflow and per-participant
// confirmation.
type ParticipantService struct {
	trips        repo.TripRepo
	participants repo.ParticipantRepo
	mailer       Mailer
	baseURL      string
}

// NewParticipantService constructs a ParticipantService backed by the
// provided repos and mailer.
func NewParticipantService(trips repo.TripRepo, participants repo.ParticipantRepo, mailer Mailer, baseURL string) *ParticipantService {
	return &ParticipantService{
		trips:        trips,
		participants: participants,
		mailer:       mailer,
		baseURL:      baseURL,
	}
}

// Invite adds one unconfirmed, nameless participant to the trip and emails
// them their confirmation link. No deduplication: inviting the same address
// twice creates two participants. Inviting to an already-confirmed trip is
// legal and never touches the trip's own flag.
//
// Returns domain.ErrNotFound if the trip does not exist.
func (s *ParticipantService) Invite(ctx context.Context, tripID uuid.UUID, email string) (domain.Participant, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("service.ParticipantService.Invite: %w", err)
	}

	participant, err := s.participants.Create(ctx, domain.Participant{
		TripID: tripID,
		Email:  email,
	})
	if err != nil {
		return domain.Participant{}, fmt.Errorf("service.ParticipantService.Invite: %w", err)
	}

	link := fmt.Sprintf("%s/participants/%s/confirm", s.baseURL, participant.ID)
	subject, body := participantConfirmationEmail(trip, link)
	if err := s.mailer.Send(ctx, participant.Email, subject, body); err != nil {
		return domain.Participant{}, fmt.Errorf("service.ParticipantService.Invite: notify participant: %w", err)
	}

	return participant, nil
}

// Confirm flips a single participant's confirmation flag and returns the URL
// of their trip's detail page as the redirect target. Idempotent: a second
// call writes nothing. Only the addressed participant is ever affected.
//
// Returns domain.ErrNotFound if the participant does not exist.
func (s *ParticipantService) Confirm(ctx context.Context, participantID uuid.UUID) (string, error) {
	participant, err := s.participants.GetByID(ctx, participantID)
	if err != nil {
		return "", fmt.Errorf("service.ParticipantService.Confirm: %w", err)
	}

	target := fmt.Sprintf("%s/trips/%s", s.baseURL, participant.TripID)
	if participant.IsConfirmed {
		return target, nil
	}

	if _, err := s.participants.Confirm(ctx, participantID); err != nil {
		return "", fmt.Errorf("service.ParticipantService.Confirm: %w", err)
	}
	return target, nil
}

// ListByTripID returns all participants of a trip in creation order.
// Always returns a non-nil slice so callers can safely range over it.
//
// Returns domain.ErrNotFound if the trip does not exist.
func (s *ParticipantService) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return nil, fmt.Errorf("service.ParticipantService.ListByTripID: %w", err)
	}

	participants, err := s.participants.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ParticipantService.ListByTripID: %w", err)
	}
	if participants == nil {
		return []domain.Participant{}, nil
	}
	return participants, nil
}
