// internal/service/interview.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ai-interviewer/backend/internal/domain/interview"
	"github.com/ai-interviewer/backend/internal/generator"
	"github.com/ai-interviewer/backend/internal/metrics"
	"github.com/ai-interviewer/backend/internal/prompt"
	"github.com/ai-interviewer/backend/internal/store"
)

// ErrSessionNotFound is returned when an operation names a session id that
// was never started.
var ErrSessionNotFound = errors.New("session not found")

// Config tunes the interview loop.
type Config struct {
	Interview         interview.Config
	GenerationTimeout time.Duration // bound on each generation call
}

func DefaultConfig() Config {
	return Config{
		Interview:         interview.DefaultConfig(),
		GenerationTimeout: 120 * time.Second,
	}
}

// AnswerResult is the outcome of one submitted answer. Exactly one of
// NextQuestion and Summary is set.
type AnswerResult struct {
	Feedback     string
	Score        float64
	NextQuestion string
	Summary      string
	Completed    bool
}

// InterviewService runs the question/answer loop. It owns the per-session
// locks so the store stays a plain map.
type InterviewService struct {
	store     store.Store
	generator generator.Generator
	metrics   *metrics.Metrics
	logger    *slog.Logger
	cfg       Config

	locks *sessionLocks
}

// NewInterviewService creates an InterviewService.
func NewInterviewService(s store.Store, g generator.Generator, m *metrics.Metrics, logger *slog.Logger, cfg Config) *InterviewService {
	return &InterviewService{
		store:     s,
		generator: g,
		metrics:   m,
		logger:    logger,
		cfg:       cfg,
		locks:     newSessionLocks(),
	}
}

// StartInterview asks for a first question on topic and stores a fresh
// session under sessionID, replacing any previous one. If generation fails
// nothing is stored.
func (is *InterviewService) StartInterview(ctx context.Context, sessionID, topic string) (string, error) {
	ctx = context.WithoutCancel(ctx)

	question, err := is.generate(ctx, metrics.KindQuestion, prompt.Question(topic))
	if err != nil {
		is.logger.Error("question generation failed", "session_id", sessionID, "topic", topic, "error", err)
		return "", err
	}

	unlock := is.locks.lock(sessionID)
	defer unlock()

	if err := is.store.Put(ctx, interview.New(sessionID, topic, question)); err != nil {
		return "", fmt.Errorf("save session: %w", err)
	}

	is.metrics.InterviewsStarted.Inc()
	is.logger.Info("interview started", "session_id", sessionID, "topic", topic)
	return question, nil
}

// SubmitAnswer evaluates answer against the session's current question and
// records the turn. It then either returns the next question or, once the
// round limit is passed, a summary.
//
// The turn is committed before the next question is requested, so a failure
// of that second generation still leaves the answer recorded.
//
// Answers sent after completion are evaluated against the last (stale)
// question, recorded, and answered with a fresh summary.
func (is *InterviewService) SubmitAnswer(ctx context.Context, sessionID, answer string) (AnswerResult, error) {
	ctx = context.WithoutCancel(ctx)
	limit := is.cfg.Interview.RoundLimit

	sess, err := is.load(ctx, sessionID)
	if err != nil {
		return AnswerResult{}, err
	}
	question := sess.CurrentQuestion
	if sess.Completed(limit) {
		is.logger.Warn("answer submitted to completed interview, evaluating stale question",
			"session_id", sessionID,
			"turn_count", sess.TurnCount,
		)
	}

	feedback, err := is.generate(ctx, metrics.KindEvaluation, prompt.Evaluation(question, answer))
	if err != nil {
		is.logger.Error("evaluation failed", "session_id", sessionID, "error", err)
		return AnswerResult{}, err
	}

	var (
		turn    interview.Turn
		updated *interview.Session
	)
	err = is.update(ctx, sessionID, func(s *interview.Session) {
		turn = s.RecordAnswer(question, answer, feedback)
		updated = s
	})
	if err != nil {
		return AnswerResult{}, err
	}
	is.metrics.AnswersTotal.Inc()

	if updated.Completed(limit) {
		if updated.TurnCount == limit+1 {
			is.metrics.InterviewsCompleted.Inc()
			is.logger.Info("interview completed",
				"session_id", sessionID,
				"total_score", updated.TotalScore,
			)
		}
		return AnswerResult{
			Feedback:  feedback,
			Score:     turn.Score,
			Summary:   interview.Summary(updated.TotalScore, is.cfg.Interview),
			Completed: true,
		}, nil
	}

	next, err := is.generate(ctx, metrics.KindQuestion, prompt.Question(updated.Topic))
	if err != nil {
		is.logger.Error("next question generation failed", "session_id", sessionID, "error", err)
		return AnswerResult{}, err
	}

	if err := is.update(ctx, sessionID, func(s *interview.Session) { s.AskNext(next) }); err != nil {
		return AnswerResult{}, err
	}

	return AnswerResult{
		Feedback:     feedback,
		Score:        turn.Score,
		NextQuestion: next,
	}, nil
}

// Session returns a copy of the session's current state.
func (is *InterviewService) Session(ctx context.Context, sessionID string) (*interview.Session, error) {
	return is.load(ctx, sessionID)
}

// RoundLimit is the number of answers after which an interview completes.
func (is *InterviewService) RoundLimit() int {
	return is.cfg.Interview.RoundLimit
}

func (is *InterviewService) load(ctx context.Context, sessionID string) (*interview.Session, error) {
	sess, err := is.store.Get(ctx, sessionID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("%w: %q", ErrSessionNotFound, sessionID)
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	return sess, nil
}

// update applies fn to the stored session as one read-modify-write under
// the session's lock. The lock is never held across a generation call.
func (is *InterviewService) update(ctx context.Context, sessionID string, fn func(*interview.Session)) error {
	unlock := is.locks.lock(sessionID)
	defer unlock()

	sess, err := is.load(ctx, sessionID)
	if err != nil {
		return err
	}
	fn(sess)
	if err := is.store.Put(ctx, sess); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// generate makes one bounded generation call and normalises failures to
// *generator.GenerationError.
func (is *InterviewService) generate(ctx context.Context, kind, p string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, is.cfg.GenerationTimeout)
	defer cancel()

	started := time.Now()
	text, err := is.generator.Generate(ctx, p)
	is.metrics.ObserveGeneration(kind, started, err)
	if err != nil {
		var genErr *generator.GenerationError
		if !errors.As(err, &genErr) {
			err = &generator.GenerationError{Provider: "unknown", Reason: kind + " generation", Wrapped: err}
		}
		return "", err
	}
	return text, nil
}
