package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/voyago/voyago-api/internal/domain"
)

// errorResponse is the uniform error body: {"error": "..."}.
type errorResponse struct {
	Error string `json:"error"`
}

// respondJSON writes v as a JSON response with the given status.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		json.NewEncoder(w).Encode(v) //nolint:errcheck // headers already sent
	}
}

// respondError writes the uniform error body.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorResponse{Error: message})
}

// serviceError maps a service-layer error to an HTTP response. Sentinel
// errors become their status with the human-readable message the service
// attached; anything else is logged and reported as an opaque 500, so no
// internal detail ever leaks to clients.
func serviceError(w http.ResponseWriter, r *http.Request, err error) {
	for _, m := range []struct {
		sentinel error
		status   int
	}{
		{domain.ErrValidation, http.StatusBadRequest},
		{domain.ErrUnauthorized, http.StatusUnauthorized},
		{domain.ErrForbidden, http.StatusForbidden},
		{domain.ErrNotFound, http.StatusNotFound},
		{domain.ErrConflict, http.StatusConflict},
	} {
		if errors.Is(err, m.sentinel) {
			respondError(w, m.status, unwrapMessage(err, m.sentinel))
			return
		}
	}

	slog.ErrorContext(r.Context(), "unhandled service error", "error", err)
	respondError(w, http.StatusInternalServerError, "internal server error")
}

// unwrapMessage extracts the human-readable tail from a wrapped sentinel
// error, e.g. "service.TripService.Get: not found: trip not found" →
// "trip not found". A bare sentinel falls back to its own text.
func unwrapMessage(err error, sentinel error) string {
	msg := err.Error()
	marker := sentinel.Error() + ": "
	if i := strings.LastIndex(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return sentinel.Error()
}
