package handler

import (
	"encoding/json"
	"net/http"
	"net/mail"
	"time"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/getplanner/backend/internal/domain"
	"github.com/getplanner/backend/internal/service"
)

// createTripRequest is the POST /trips body.
type createTripRequest struct {
	Destination    string    `json:"destination"`
	StartsAt       time.Time `json:"starts_at"`
	EndsAt         time.Time `json:"ends_at"`
	OwnerName      string    `json:"owner_name"`
	OwnerEmail     string    `json:"owner_email"`
	EmailsToInvite []string  `json:"emails_to_invite"`
}

// validate checks field shape only; temporal business rules live in the
// service layer. Returns one FieldError per offending field.
func (req createTripRequest) validate() []FieldError {
	var fields []FieldError
	if utf8.RuneCountInString(req.Destination) < 4 {
		fields = append(fields, FieldError{Field: "destination", Message: "must be at least 4 characters"})
	}
	if req.StartsAt.IsZero() {
		fields = append(fields, FieldError{Field: "starts_at", Message: "is required"})
	}
	if req.EndsAt.IsZero() {
		fields = append(fields, FieldError{Field: "ends_at", Message: "is required"})
	}
	if req.OwnerName == "" {
		fields = append(fields, FieldError{Field: "owner_name", Message: "is required"})
	}
	if !validEmail(req.OwnerEmail) {
		fields = append(fields, FieldError{Field: "owner_email", Message: "must be a valid email address"})
	}
	for _, email := range req.EmailsToInvite {
		if !validEmail(email) {
			fields = append(fields, FieldError{Field: "emails_to_invite", Message: "must contain only valid email addresses"})
			break
		}
	}
	return fields
}

// CreateTrip handles POST /trips.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var req createTripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}
	if fields := req.validate(); len(fields) > 0 {
		respondInvalidInput(w, fields)
		return
	}

	trip, err := s.trips.Create(r.Context(), service.CreateTripInput{
		Destination:    req.Destination,
		StartsAt:       req.StartsAt,
		EndsAt:         req.EndsAt,
		OwnerName:      req.OwnerName,
		OwnerEmail:     req.OwnerEmail,
		EmailsToInvite: req.EmailsToInvite,
	})
	if err != nil {
		respondServiceError(w, r, err, "trip not found")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{"tripId": trip.ID})
}

// GetTrip handles GET /trips/{tripID}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	tripID, ok := uuidParam(w, r, "tripID")
	if !ok {
		return
	}

	trip, err := s.trips.GetByID(r.Context(), tripID)
	if err != nil {
		respondServiceError(w, r, err, "trip not found")
		return
	}

	respondJSON(w, http.StatusOK, map[string]domain.Trip{"trip": trip})
}

// ConfirmTrip handles GET /trips/{tripID}/confirm.
// Both the fresh and the already-confirmed path redirect to the trip's
// detail page.
func (s *Server) ConfirmTrip(w http.ResponseWriter, r *http.Request) {
	tripID, ok := uuidParam(w, r, "tripID")
	if !ok {
		return
	}

	target, err := s.trips.Confirm(r.Context(), tripID)
	if err != nil {
		respondServiceError(w, r, err, "trip not found")
		return
	}

	http.Redirect(w, r, target, http.StatusFound)
}

// uuidParam parses the named chi route parameter as a UUID. On failure it
// writes a 400 response and reports false.
func uuidParam(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		respondError(w, http.StatusBadRequest, "bad_request", name+" must be a valid UUID")
		return uuid.UUID{}, false
	}
	return id, true
}

// validEmail reports whether addr parses as a bare RFC 5322 address.
func validEmail(addr string) bool {
	if addr == "" {
		return false
	}
	parsed, err := mail.ParseAddress(addr)
	return err == nil && parsed.Address == addr
}
