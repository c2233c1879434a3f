// Package service contains the business logic for the trip planner API.
// Services validate inputs, enforce business rules, and orchestrate repo and
// mailer calls. No SQL lives here — services depend on repo interfaces, not
// implementations.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/getplanner/backend/internal/domain"
	"github.com/getplanner/backend/internal/repo"
)

// CreateTripInput carries the validated fields for trip creation.
// EmailsToInvite is taken as-is: duplicate addresses each produce their own
// participant row.
type CreateTripInput struct {
	Destination    string
	StartsAt       time.Time
	EndsAt         time.Time
	OwnerName      string
	OwnerEmail     string
	EmailsToInvite []string
}

// TripService implements the trip creation and confirmation workflows.
type TripService struct {
	trips        repo.TripRepo
	participants repo.ParticipantRepo
	mailer       Mailer
	baseURL      string
	now          func() time.Time
}

// NewTripService constructs a TripService backed by the provided repos and
// mailer. baseURL is the public URL confirmation links are built against.
func NewTripService(trips repo.TripRepo, participants repo.ParticipantRepo, mailer Mailer, baseURL string) *TripService {
	return &TripService{
		trips:        trips,
		participants: participants,
		mailer:       mailer,
		baseURL:      baseURL,
		now:          time.Now,
	}
}

// Create validates the date range, atomically persists the trip with its
// owner and invitee participants, then emails the owner a confirmation link.
//
// Validation happens before any write, so a rejected trip leaves no partial
// state. A mail failure after the commit surfaces as an error even though the
// trip exists — delivery is at-most-once with no retry.
func (s *TripService) Create(ctx context.Context, in CreateTripInput) (domain.Trip, error) {
	if err := validateTripDates(in.StartsAt, in.EndsAt, s.now()); err != nil {
		return domain.Trip{}, err
	}

	ownerName := in.OwnerName
	owner := domain.Participant{
		Name:        &ownerName,
		Email:       in.OwnerEmail,
		IsOwner:     true,
		IsConfirmed: true,
	}
	trip := domain.Trip{
		Destination: in.Destination,
		StartsAt:    in.StartsAt,
		EndsAt:      in.EndsAt,
	}

	created, err := s.trips.CreateWithParticipants(ctx, trip, owner, in.EmailsToInvite)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}

	subject, body := ownerConfirmationEmail(created, s.tripConfirmURL(created.ID))
	if err := s.mailer.Send(ctx, in.OwnerEmail, subject, body); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: notify owner: %w", err)
	}

	return created, nil
}

// GetByID returns a single trip by ID.
// Returns domain.ErrNotFound if no trip with that ID exists.
func (s *TripService) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	trip, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	return trip, nil
}

// Confirm transitions the trip to confirmed and sends one reminder email to
// every non-owner participant, concurrently. It returns the URL of the trip's
// detail page, which is the redirect target on every path.
//
// Confirming twice is side-effect-free after the first time: if the trip is
// already confirmed — or a concurrent request wins the compare-and-swap —
// no state is written and no mail is sent.
//
// The flag is committed before any mail goes out, so a delivery failure here
// leaves a confirmed trip with incomplete notifications; the first failure
// aborts the remaining sends and fails the request.
func (s *TripService) Confirm(ctx context.Context, id uuid.UUID) (string, error) {
	trip, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return "", fmt.Errorf("service.TripService.Confirm: %w", err)
	}

	target := s.tripURL(id)
	if trip.IsConfirmed {
		return target, nil
	}

	swapped, err := s.trips.Confirm(ctx, id)
	if err != nil {
		return "", fmt.Errorf("service.TripService.Confirm: %w", err)
	}
	if !swapped {
		// Lost the race to a concurrent confirmation; that request notifies.
		return target, nil
	}

	invitees, err := s.participants.ListInviteesByTripID(ctx, id)
	if err != nil {
		return "", fmt.Errorf("service.TripService.Confirm: %w", err)
	}

	// Every non-owner participant gets exactly one reminder, including those
	// already confirmed. Sends run concurrently with no ordering guarantee;
	// the group context cancels pending sends once one fails.
	g, gctx := errgroup.WithContext(ctx)
	for _, p := range invitees {
		p := p
		g.Go(func() error {
			subject, body := participantConfirmationEmail(trip, s.participantConfirmURL(p.ID))
			return s.mailer.Send(gctx, p.Email, subject, body)
		})
	}
	if err := g.Wait(); err != nil {
		return "", fmt.Errorf("service.TripService.Confirm: notify participants: %w", err)
	}

	return target, nil
}

// validateTripDates applies the temporal business rules for trip creation.
// It is a pure function of its inputs; the caller supplies the wall clock.
//   - The trip must not start strictly before now.
//   - The trip must not end strictly before it starts; zero-length trips are fine.
func validateTripDates(startsAt, endsAt, now time.Time) error {
	if startsAt.Before(now) {
		return domain.ErrInvalidStartDate
	}
	if endsAt.Before(startsAt) {
		return domain.ErrInvalidEndDate
	}
	return nil
}

func (s *TripService) tripURL(tripID uuid.UUID) string {
	return fmt.Sprintf("%s/trips/%s", s.baseURL, tripID)
}

func (s *TripService) tripConfirmURL(tripID uuid.UUID) string {
	return fmt.Sprintf("%s/trips/%s/confirm", s.baseURL, tripID)
}

func (s *TripService) participantConfirmURL(participantID uuid.UUID) string {
	return fmt.Sprintf("%s/participants/%s/confirm", s.baseURL, participantID)
}
