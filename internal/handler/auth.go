package handler

import (
	"encoding/json"
	"net/http"

	"github.com/voyago/voyago-api/internal/domain"
)

// authUserResponse is the trimmed user shape returned by register and login.
type authUserResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Register handles POST /api/auth/register.
func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
		Email    string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := s.auth.Register(r.Context(), req.Username, req.Password, req.Email)
	if err != nil {
		serviceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{
		"message": "User registered successfully",
		"user":    authUserResponse{Username: user.Username, Role: user.Role},
	})
}

// Login handles POST /api/auth/login. The username field accepts a username
// or an email.
func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	login := req.Username
	if login == "" {
		login = req.Email
	}

	user, tok, err := s.auth.Login(r.Context(), login, req.Password)
	if err != nil {
		serviceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"token": tok,
		"user":  authUserResponse{Username: user.Username, Role: user.Role},
	})
}

// GetMe handles GET /api/auth/me. The middleware already re-read the user
// from the store, so the context copy is current.
func (s *Server) GetMe(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, mustUser(r).Public())
}

// UpdateMe handles PUT /api/auth/me with the allow-listed profile patch.
func (s *Server) UpdateMe(w http.ResponseWriter, r *http.Request) {
	var patch domain.ProfilePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := s.auth.UpdateProfile(r.Context(), mustUser(r).ID, patch)
	if err != nil {
		serviceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, updated.Public())
}
