package handler

import "net/http"

// GetHealth handles GET /health.
// It returns HTTP 200 with {"status":"OK"} when the server is running.
func (s *Server) GetHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "OK"})
}

// GetOpenAPI serves the embedded API description.
func (s *Server) GetOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	w.Write(s.openapi) //nolint:errcheck // headers already sent
}
