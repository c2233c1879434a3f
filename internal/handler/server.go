// Package handler implements the HTTP handlers for the trip planner API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (trip.go, participant.go, activity.go) but all share the same Server
// struct so they can access its dependencies.
package handler

import (
	"context"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/getplanner/backend/internal/domain"
	"github.com/getplanner/backend/internal/service"
)

// TripServicer defines the business operations the trip handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type TripServicer interface {
	Create(ctx context.Context, in service.CreateTripInput) (domain.Trip, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	Confirm(ctx context.Context, id uuid.UUID) (string, error)
}

// ParticipantServicer defines the business operations the participant
// handlers depend on.
type ParticipantServicer interface {
	Invite(ctx context.Context, tripID uuid.UUID, email string) (domain.Participant, error)
	Confirm(ctx context.Context, participantID uuid.UUID) (string, error)
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error)
}

// ActivityServicer defines the business operations the activity handlers
// depend on.
type ActivityServicer interface {
	Create(ctx context.Context, tripID uuid.UUID, title string, occursAt time.Time) (domain.Activity, error)
	Schedule(ctx context.Context, tripID uuid.UUID) ([]domain.DaySchedule, error)
}

// Server holds the handlers for all API endpoints.
type Server struct {
	trips        TripServicer
	participants ParticipantServicer
	activities   ActivityServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(trips TripServicer, participants ParticipantServicer, activities ActivityServicer) *Server {
	return &Server{trips: trips, participants: participants, activities: activities}
}

// Routes registers every endpoint on the given router.
func (s *Server) Routes(r chi.Router) {
	r.Get("/healthz", s.GetHealth)

	r.Post("/trips", s.CreateTrip)
	r.Get("/trips/{tripID}", s.GetTrip)
	r.Get("/trips/{tripID}/confirm", s.ConfirmTrip)
	r.Post("/trips/{tripID}/invites", s.CreateInvite)
	r.Get("/trips/{tripID}/participants", s.ListParticipants)
	r.Post("/trips/{tripID}/activities", s.CreateActivity)
	r.Get("/trips/{tripID}/activities", s.ListActivities)

	r.Get("/participants/{participantID}/confirm", s.ConfirmParticipant)
}
