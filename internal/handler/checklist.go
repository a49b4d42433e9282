package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/voyago/voyago-api/internal/domain"
)

// ListChecklist handles GET /api/checklists/{id}, where the id names the
// parent trip. Access follows the trip's access policy.
func (s *Server) ListChecklist(w http.ResponseWriter, r *http.Request) {
	items, err := s.checklists.ListByTrip(r.Context(), mustUser(r), chi.URLParam(r, "id"))
	if err != nil {
		serviceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

// AddChecklistItem handles POST /api/checklists/{id}, where the id names the
// parent trip.
func (s *Server) AddChecklistItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := s.checklists.Add(r.Context(), mustUser(r), chi.URLParam(r, "id"), req.Text)
	if err != nil {
		serviceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, item)
}

// UpdateChecklistItem handles PUT /api/checklists/{id}, where the id names
// the item. Text and completion state are patchable.
func (s *Server) UpdateChecklistItem(w http.ResponseWriter, r *http.Request) {
	var patch domain.ChecklistPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := s.checklists.UpdateItem(r.Context(), mustUser(r), chi.URLParam(r, "id"), patch)
	if err != nil {
		serviceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, item)
}

// DeleteChecklistItem handles DELETE /api/checklists/{id}, where the id
// names the item.
func (s *Server) DeleteChecklistItem(w http.ResponseWriter, r *http.Request) {
	if err := s.checklists.DeleteItem(r.Context(), mustUser(r), chi.URLParam(r, "id")); err != nil {
		serviceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Item deleted"})
}
