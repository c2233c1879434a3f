package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"
)

// createActivityRequest is the POST /trips/{tripID}/activities body.
type createActivityRequest struct {
	Title    string    `json:"title"`
	OccursAt time.Time `json:"occurs_at"`
}

func (req createActivityRequest) validate() []FieldError {
	var fields []FieldError
	if strings.TrimSpace(req.Title) == "" {
		fields = append(fields, FieldError{Field: "title", Message: "is required"})
	}
	if req.OccursAt.IsZero() {
		fields = append(fields, FieldError{Field: "occurs_at", Message: "is required"})
	}
	return fields
}

// CreateActivity handles POST /trips/{tripID}/activities.
func (s *Server) CreateActivity(w http.ResponseWriter, r *http.Request) {
	tripID, ok := uuidParam(w, r, "tripID")
	if !ok {
		return
	}

	var req createActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}
	if fields := req.validate(); len(fields) > 0 {
		respondInvalidInput(w, fields)
		return
	}

	activity, err := s.activities.Create(r.Context(), tripID, req.Title, req.OccursAt)
	if err != nil {
		respondServiceError(w, r, err, "trip not found")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{"activityId": activity.ID})
}

// ListActivities handles GET /trips/{tripID}/activities.
// The response covers every calendar day of the trip, including days with
// no activities.
func (s *Server) ListActivities(w http.ResponseWriter, r *http.Request) {
	tripID, ok := uuidParam(w, r, "tripID")
	if !ok {
		return
	}

	schedule, err := s.activities.Schedule(r.Context(), tripID)
	if err != nil {
		respondServiceError(w, r, err, "trip not found")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"activities": schedule})
}
