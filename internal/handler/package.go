package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/voyago/voyago-api/internal/domain"
)

// ListPackages handles GET /api/packages. Public — no authentication.
func (s *Server) ListPackages(w http.ResponseWriter, r *http.Request) {
	pkgs, err := s.packages.List(r.Context())
	if err != nil {
		serviceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, pkgs)
}

// CreatePackage handles POST /api/packages. Admin only.
func (s *Server) CreatePackage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title       string   `json:"title"`
		Destination string   `json:"destination"`
		Price       float64  `json:"price"`
		Duration    string   `json:"duration"`
		Description string   `json:"description"`
		Image       string   `json:"image"`
		Activities  []string `json:"activities"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := s.packages.Create(r.Context(), domain.Package{
		Title:       req.Title,
		Destination: req.Destination,
		Price:       req.Price,
		Duration:    req.Duration,
		Description: req.Description,
		Image:       req.Image,
		Activities:  req.Activities,
	})
	if err != nil {
		serviceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// DeletePackage handles DELETE /api/packages/{id}. Admin only; existing
// bookings and trips referencing the package are unaffected.
func (s *Server) DeletePackage(w http.ResponseWriter, r *http.Request) {
	if err := s.packages.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		serviceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Package deleted"})
}
