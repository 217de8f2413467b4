// internal/api/handler.go
package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/ai-interviewer/backend/internal/domain/interview"
	"github.com/ai-interviewer/backend/internal/generator"
	"github.com/ai-interviewer/backend/internal/service"
)

// maxBodyBytes caps request bodies; answers are free text but not essays.
const maxBodyBytes = 1 << 20

// Interviewer is the orchestrator surface the handlers need.
type Interviewer interface {
	StartInterview(ctx context.Context, sessionID, topic string) (string, error)
	SubmitAnswer(ctx context.Context, sessionID, answer string) (service.AnswerResult, error)
	Session(ctx context.Context, sessionID string) (*interview.Session, error)
	RoundLimit() int
}

// Handler holds all dependencies needed by HTTP handlers.
type Handler struct {
	interviews Interviewer
	logger     *slog.Logger
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(interviews Interviewer, logger *slog.Logger) *Handler {
	return &Handler{
		interviews: interviews,
		logger:     logger,
	}
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// validator is implemented by request types that check their own fields.
type validator interface {
	Validate() error
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, ErrorResponse{Error: msg})
}

// decodeAndValidate decodes the JSON body into v and runs its Validate
// method. It writes a 400 and returns false on failure.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v validator) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	if err := v.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// handleServiceError maps orchestrator errors to HTTP responses. Returns true
// if an error was handled (caller should return).
func (h *Handler) handleServiceError(w http.ResponseWriter, err error, sessionID string) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, service.ErrSessionNotFound) {
		respondError(w, http.StatusNotFound, "Session not found")
		return true
	}

	var genErr *generator.GenerationError
	if errors.As(err, &genErr) {
		respondError(w, http.StatusBadGateway, "text generation failed: "+genErr.Reason)
		return true
	}

	h.logger.Error("interview error", "error", err, "session_id", sessionID)
	respondError(w, http.StatusInternalServerError, "internal error")
	return true
}
