package domain

import (
	"time"

	"github.com/google/uuid"
)

// Participant is a person associated with a trip: either its owner or an
// invitee. Name is nil for invitees added by email only.
//
// Exactly one participant per trip has IsOwner set — the one created at
// trip-creation time, which also starts confirmed. Invitees start
// unconfirmed and flip via their own confirmation link, never anyone
// else's.
type Participant struct {
	ID          uuid.UUID `json:"id"`
	TripID      uuid.UUID `json:"trip_id"`
	Name        *string   `json:"name"`
	Email       string    `json:"email"`
	IsOwner     bool      `json:"is_owner"`
	IsConfirmed bool      `json:"is_confirmed"`
	CreatedAt   time.Time `json:"created_at"`
}
