package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// ListUsers handles GET /api/admin/users. Admin only; password hashes are
// stripped by the service.
func (s *Server) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.users.List(r.Context())
	if err != nil {
		serviceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, users)
}

// CreateAdmin handles POST /api/admin/create-admin. Super-admin only; the
// created account is an ordinary admin.
func (s *Server) CreateAdmin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
		Email    string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	admin, err := s.users.CreateAdmin(r.Context(), mustUser(r), req.Username, req.Password, req.Email)
	if err != nil {
		serviceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]any{
		"message": "New admin created",
		"admin":   map[string]string{"username": admin.Username},
	})
}

// DeleteUser handles DELETE /api/admin/users/{id}. Admin only; super-admin
// targets are always refused.
func (s *Server) DeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := s.users.Delete(r.Context(), mustUser(r), chi.URLParam(r, "id")); err != nil {
		serviceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "User deleted successfully"})
}
