package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/voyago/voyago-api/internal/domain"
)

// CreateTrip handles POST /api/trips.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title       string                  `json:"title"`
		Destination string                  `json:"destination"`
		Dates       string                  `json:"dates"`
		Image       string                  `json:"image"`
		Description string                  `json:"description"`
		Itinerary   []domain.ItineraryEntry `json:"itinerary"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := s.trips.Create(r.Context(), mustUser(r), domain.Trip{
		Title:       req.Title,
		Destination: req.Destination,
		Dates:       req.Dates,
		Image:       req.Image,
		Description: req.Description,
		Itinerary:   req.Itinerary,
	})
	if err != nil {
		serviceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// ListTrips handles GET /api/trips, scoped to trips the caller owns or
// collaborates on.
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	trips, err := s.trips.List(r.Context(), mustUser(r))
	if err != nil {
		serviceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, trips)
}

// GetTrip handles GET /api/trips/{id}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	trip, err := s.trips.Get(r.Context(), mustUser(r), chi.URLParam(r, "id"))
	if err != nil {
		serviceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, trip)
}

// UpdateTrip handles PUT /api/trips/{id} as an allow-listed merge-patch.
func (s *Server) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	var patch domain.TripPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := s.trips.Update(r.Context(), mustUser(r), chi.URLParam(r, "id"), patch)
	if err != nil {
		serviceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

// DeleteTrip handles DELETE /api/trips/{id}. Owner only.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	if err := s.trips.Delete(r.Context(), mustUser(r), chi.URLParam(r, "id")); err != nil {
		serviceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Trip deleted"})
}

// InviteCollaborator handles POST /api/trips/{id}/collaborators. Owner only;
// inviting an existing collaborator is a no-op.
func (s *Server) InviteCollaborator(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if _, err := s.trips.Invite(r.Context(), mustUser(r), chi.URLParam(r, "id"), req.Username); err != nil {
		serviceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Collaborator added"})
}
