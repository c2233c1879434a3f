package domain

import (
	"time"

	"github.com/google/uuid"
)

// Activity is a scheduled event within a trip, anchored to a point in time.
// OccursAt is expected to fall within the trip's date range; activities
// outside it are dropped from the generated schedule rather than erroring.
type Activity struct {
	ID       uuid.UUID `json:"id"`
	TripID   uuid.UUID `json:"trip_id"`
	Title    string    `json:"title"`
	OccursAt time.Time `json:"occurs_at"`
}
