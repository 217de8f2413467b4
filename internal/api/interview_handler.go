package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/ai-interviewer/backend/internal/domain/interview"
)

// ── Request / Response types ────────────────────────────────────────────────

type StartRequest struct {
	SessionID string `json:"session_id"`
	Topic     string `json:"topic"`
}

func (r *StartRequest) Validate() error {
	if r.SessionID == "" {
		return errors.New("session_id is required")
	}
	return nil
}

type StartResponse struct {
	Question string `json:"question"`
}

type AnswerRequest struct {
	SessionID string `json:"session_id"`
	Answer    string `json:"answer"`
}

func (r *AnswerRequest) Validate() error {
	if r.SessionID == "" {
		return errors.New("session_id is required")
	}
	return nil
}

// AnswerResponse carries either NextQuestion or Summary, never both.
type AnswerResponse struct {
	Feedback     string `json:"feedback"`
	NextQuestion string `json:"next_question,omitempty"`
	Summary      string `json:"summary,omitempty"`
}

type TurnResponse struct {
	Question string  `json:"question"`
	Answer   string  `json:"answer"`
	Feedback string  `json:"feedback"`
	Score    float64 `json:"score"`
}

type SessionResponse struct {
	SessionID       string         `json:"session_id"`
	Topic           string         `json:"topic"`
	State           string         `json:"state"`
	CurrentQuestion string         `json:"current_question"`
	TurnCount       int            `json:"turn_count"`
	TotalScore      float64        `json:"total_score"`
	MaxScore        int            `json:"max_score"`
	History         []TurnResponse `json:"history"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// startInterview godoc
// @Summary  Start an interview
// @Tags     interview
// @Accept   json
// @Produce  json
// @Param    request body     StartRequest true "session id and topic"
// @Success  200     {object} StartResponse
// @Failure  400     {object} ErrorResponse
// @Failure  502     {object} ErrorResponse
// @Router   /start [post]
func (h *Handler) startInterview(w http.ResponseWriter, r *http.Request) {
	var req StartRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	question, err := h.interviews.StartInterview(r.Context(), req.SessionID, req.Topic)
	if h.handleServiceError(w, err, req.SessionID) {
		return
	}

	respondJSON(w, http.StatusOK, StartResponse{Question: question})
}

// submitAnswer godoc
// @Summary  Answer the current question
// @Tags     interview
// @Accept   json
// @Produce  json
// @Param    request body     AnswerRequest true "session id and answer"
// @Success  200     {object} AnswerResponse
// @Failure  400     {object} ErrorResponse
// @Failure  404     {object} ErrorResponse
// @Failure  502     {object} ErrorResponse
// @Router   /answer [post]
func (h *Handler) submitAnswer(w http.ResponseWriter, r *http.Request) {
	var req AnswerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.interviews.SubmitAnswer(r.Context(), req.SessionID, req.Answer)
	if h.handleServiceError(w, err, req.SessionID) {
		return
	}

	respondJSON(w, http.StatusOK, AnswerResponse{
		Feedback:     result.Feedback,
		NextQuestion: result.NextQuestion,
		Summary:      result.Summary,
	})
}

// getSession godoc
// @Summary  Show a session transcript
// @Tags     interview
// @Produce  json
// @Param    sessionID path     string true "session id"
// @Success  200       {object} SessionResponse
// @Failure  404       {object} ErrorResponse
// @Router   /sessions/{sessionID} [get]
func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionID")

	sess, err := h.interviews.Session(r.Context(), sessionID)
	if h.handleServiceError(w, err, sessionID) {
		return
	}

	cfg := interview.Config{RoundLimit: h.interviews.RoundLimit()}
	history := make([]TurnResponse, len(sess.History))
	for i, t := range sess.History {
		history[i] = TurnResponse{
			Question: t.Question,
			Answer:   t.Answer,
			Feedback: t.Feedback,
			Score:    t.Score,
		}
	}

	respondJSON(w, http.StatusOK, SessionResponse{
		SessionID:       sess.ID,
		Topic:           sess.Topic,
		State:           string(sess.State(cfg.RoundLimit)),
		CurrentQuestion: sess.CurrentQuestion,
		TurnCount:       sess.TurnCount,
		TotalScore:      sess.TotalScore,
		MaxScore:        cfg.MaxTotalScore(),
		History:         history,
		CreatedAt:       sess.CreatedAt,
		UpdatedAt:       sess.UpdatedAt,
	})
}
