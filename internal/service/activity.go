package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/getplanner/backend/internal/domain"
	"github.com/getplanner/backend/internal/repo"
)

// ActivityService implements activity creation and the per-day schedule query.
type ActivityService struct {
	trips      repo.TripRepo
	activities repo.ActivityRepo
}

// NewActivityService constructs an ActivityService backed by the provided repos.
func NewActivityService(trips repo.TripRepo, activities repo.ActivityRepo) *ActivityService {
	return &ActivityService{trips: trips, activities: activities}
}

// Create validates and persists a new activity on the trip.
// Returns domain.ErrNotFound if the trip does not exist and
// domain.ErrValidation if the title is blank or occurs_at falls outside the
// trip's date range.
func (s *ActivityService) Create(ctx context.Context, tripID uuid.UUID, title string, occursAt time.Time) (domain.Activity, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}

	if strings.TrimSpace(title) == "" {
		return domain.Activity{}, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if occursAt.Before(trip.StartsAt) || occursAt.After(trip.EndsAt) {
		return domain.Activity{}, fmt.Errorf("%w: occurs_at must fall within the trip dates", domain.ErrValidation)
	}

	created, err := s.activities.Create(ctx, domain.Activity{
		TripID:   tripID,
		Title:    title,
		OccursAt: occursAt,
	})
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}
	return created, nil
}

// Schedule returns the trip's activities partitioned into one bucket per
// calendar day, covering every day from starts_at to ends_at inclusive.
// Read-only: the computation happens over whatever is currently stored.
//
// Returns domain.ErrNotFound if the trip does not exist.
func (s *ActivityService) Schedule(ctx context.Context, tripID uuid.UUID) ([]domain.DaySchedule, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ActivityService.Schedule: %w", err)
	}

	activities, err := s.activities.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ActivityService.Schedule: %w", err)
	}

	return domain.BuildSchedule(trip.StartsAt, trip.EndsAt, activities), nil
}
