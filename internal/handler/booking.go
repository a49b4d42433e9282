package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/voyago/voyago-api/internal/domain"
)

// CreateBooking handles POST /api/bookings. New bookings start pending and
// wait for an admin decision.
func (s *Server) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PackageID   string `json:"packageId"`
		CustomNotes string `json:"customNotes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := s.bookings.Create(r.Context(), mustUser(r), req.PackageID, req.CustomNotes)
	if err != nil {
		serviceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// ListBookings handles GET /api/bookings. Admin only — returns everything.
func (s *Server) ListBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := s.bookings.ListAll(r.Context())
	if err != nil {
		serviceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, bookings)
}

// ListMyBookings handles GET /api/bookings/my-bookings.
func (s *Server) ListMyBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := s.bookings.ListMine(r.Context(), mustUser(r))
	if err != nil {
		serviceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, bookings)
}

// UpdateBooking handles PUT /api/bookings/{id}. Admin only. Approving a
// booking materializes its trip exactly once.
func (s *Server) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status        string `json:"status"`
		AdminResponse string `json:"adminResponse"`
		AdminNotes    string `json:"adminNotes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := s.bookings.SetStatus(r.Context(), chi.URLParam(r, "id"),
		domain.BookingStatus(req.Status), req.AdminResponse, req.AdminNotes)
	if err != nil {
		serviceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}
