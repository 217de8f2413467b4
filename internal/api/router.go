// internal/api/router.go
package api

import "net/http"

// RegisterRoutes mounts the interview endpoints on mux.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("POST /start", h.startInterview)
	mux.HandleFunc("POST /answer", h.submitAnswer)
	mux.HandleFunc("GET /sessions/{sessionID}", h.getSession)
}
