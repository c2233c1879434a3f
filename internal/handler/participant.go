package handler

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
)

// createInviteRequest is the POST /trips/{tripID}/invites body.
type createInviteRequest struct {
	Email string `json:"email"`
}

func (req createInviteRequest) validate() []FieldError {
	if !validEmail(req.Email) {
		return []FieldError{{Field: "email", Message: "must be a valid email address"}}
	}
	return nil
}

// participantResponse is the per-participant shape of the participants list.
type participantResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        *string   `json:"name"`
	Email       string    `json:"email"`
	IsConfirmed bool      `json:"is_confirmed"`
}

// CreateInvite handles POST /trips/{tripID}/invites.
func (s *Server) CreateInvite(w http.ResponseWriter, r *http.Request) {
	tripID, ok := uuidParam(w, r, "tripID")
	if !ok {
		return
	}

	var req createInviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}
	if fields := req.validate(); len(fields) > 0 {
		respondInvalidInput(w, fields)
		return
	}

	participant, err := s.participants.Invite(r.Context(), tripID, req.Email)
	if err != nil {
		respondServiceError(w, r, err, "trip not found")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{"participant": participant.ID})
}

// ListParticipants handles GET /trips/{tripID}/participants.
func (s *Server) ListParticipants(w http.ResponseWriter, r *http.Request) {
	tripID, ok := uuidParam(w, r, "tripID")
	if !ok {
		return
	}

	participants, err := s.participants.ListByTripID(r.Context(), tripID)
	if err != nil {
		respondServiceError(w, r, err, "trip not found")
		return
	}

	out := make([]participantResponse, len(participants))
	for i, p := range participants {
		out[i] = participantResponse{
			ID:          p.ID,
			Name:        p.Name,
			Email:       p.Email,
			IsConfirmed: p.IsConfirmed,
		}
	}
	respondJSON(w, http.StatusOK, map[string]any{"participants": out})
}

// ConfirmParticipant handles GET /participants/{participantID}/confirm.
// Confirms exactly the addressed participant, then redirects to their trip.
func (s *Server) ConfirmParticipant(w http.ResponseWriter, r *http.Request) {
	participantID, ok := uuidParam(w, r, "participantID")
	if !ok {
		return
	}

	target, err := s.participants.Confirm(r.Context(), participantID)
	if err != nil {
		respondServiceError(w, r, err, "participant not found")
		return
	}

	http.Redirect(w, r, target, http.StatusFound)
}
