package interview

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// State is the position of a session in the question/answer cycle.
type State string

const (
	StateAwaitingFirstQuestion State = "awaiting_first_question"
	StateAwaitingAnswer        State = "awaiting_answer"
	StateCompleted             State = "completed"
)

// Turn is one answered question.
type Turn struct {
	Question string
	Answer   string
	Feedback string
	Score    float64
}

// Session is the state of one candidate's interview.
//
// TurnCount is the number of questions issued so far, so it equals
// len(History)+1 until the interview completes. TotalScore is always the sum
// of History scores.
type Session struct {
	ID              string
	Topic           string
	CurrentQuestion string
	History         []Turn
	TotalScore      float64
	TurnCount       int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// New creates a session whose first question has just been issued.
func New(id, topic, firstQuestion string) *Session {
	now := time.Now().UTC()
	return &Session{
		ID:              id,
		Topic:           topic,
		CurrentQuestion: firstQuestion,
		History:         []Turn{},
		TurnCount:       1,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// RecordAnswer appends a turn for the evaluated question (normally
// CurrentQuestion), scores it from the feedback and advances the question
// counter.
func (s *Session) RecordAnswer(question, answer, feedback string) Turn {
	turn := Turn{
		Question: question,
		Answer:   answer,
		Feedback: feedback,
		Score:    ExtractScore(feedback),
	}
	s.History = append(s.History, turn)
	s.TotalScore += turn.Score
	s.TurnCount++
	s.UpdatedAt = time.Now().UTC()
	return turn
}

// AskNext sets the question the candidate should answer next.
func (s *Session) AskNext(question string) {
	s.CurrentQuestion = question
	s.UpdatedAt = time.Now().UTC()
}

// Completed reports whether more than roundLimit questions have been issued.
func (s *Session) Completed(roundLimit int) bool {
	return s.TurnCount > roundLimit
}

func (s *Session) State(roundLimit int) State {
	if s.Completed(roundLimit) {
		return StateCompleted
	}
	return StateAwaitingAnswer
}

// Clone returns a deep copy.
func (s *Session) Clone() *Session {
	c := *s
	c.History = make([]Turn, len(s.History))
	copy(c.History, s.History)
	return &c
}

// Summary is the closing message returned with the final feedback.
func Summary(totalScore float64, cfg Config) string {
	return fmt.Sprintf(
		"Interview complete! You answered %d questions.\n\nFinal Score: %s/%d\n\nThanks for participating!",
		cfg.RoundLimit, FormatScore(totalScore), cfg.MaxTotalScore(),
	)
}

// FormatScore prints whole scores without a fraction ("7") and keeps
// halves and the like ("6.5").
func FormatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', -1, 64)
}

// scorePattern matches the first "<number>/10" in free text, tolerating
// spaces around the slash.
var scorePattern = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*/\s*10`)

// ExtractScore pulls the rating out of model feedback. Feedback without a
// recognisable rating scores 0.
func ExtractScore(feedback string) float64 {
	m := scorePattern.FindStringSubmatch(feedback)
	if m == nil {
		return 0
	}
	score, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0
	}
	return score
}
