// Package domain contains the core data types for the trip planner API.
// This package has no dependencies beyond uuid and is imported by every
// other internal package (repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Trip is the root aggregate: a planned journey with a date range and a
// participant set. Participants and activities belong to a trip and are
// destroyed with it.
//
// IsConfirmed starts false and transitions to true exactly once; every
// other field is set at creation and read-only afterwards.
type Trip struct {
	ID          uuid.UUID `json:"id"`
	Destination string    `json:"destination"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	IsConfirmed bool      `json:"is_confirmed"`
	CreatedAt   time.Time `json:"created_at"`
}
