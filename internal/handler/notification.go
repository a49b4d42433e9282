package handler

import (
	"net/http"
	"time"
)

// ListNotifications handles GET /api/notifications. The feed is derived
// fresh per request; nothing is stored or marked read.
func (s *Server) ListNotifications(w http.ResponseWriter, r *http.Request) {
	feed, err := s.notifications.ForUser(r.Context(), mustUser(r), time.Now())
	if err != nil {
		serviceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, feed)
}
