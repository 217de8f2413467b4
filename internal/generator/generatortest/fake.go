// Package generatortest provides a scripted Generator for tests.
package generatortest

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/ai-interviewer/backend/internal/generator"
)

// DefaultFeedback is returned for evaluations once Feedback is exhausted.
const DefaultFeedback = "Thanks for the answer."

// Fake answers question prompts with "Question 1", "Question 2", ... and
// evaluation prompts with the Feedback entries in order.
type Fake struct {
	mu sync.Mutex

	Feedback []string

	questionErr   error
	evaluationErr error

	questions   int
	evaluations int
	prompts     []string
}

var _ generator.Generator = (*Fake)(nil)

func (f *Fake) Generate(_ context.Context, prompt string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.prompts = append(f.prompts, prompt)

	if IsEvaluation(prompt) {
		if f.evaluationErr != nil {
			return "", f.evaluationErr
		}
		f.evaluations++
		if f.evaluations <= len(f.Feedback) {
			return f.Feedback[f.evaluations-1], nil
		}
		return DefaultFeedback, nil
	}

	if f.questionErr != nil {
		return "", f.questionErr
	}
	f.questions++
	return fmt.Sprintf("Question %d", f.questions), nil
}

// FailQuestions makes question prompts fail with err (nil restores success).
func (f *Fake) FailQuestions(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.questionErr = err
}

// FailEvaluations makes evaluation prompts fail with err (nil restores success).
func (f *Fake) FailEvaluations(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.evaluationErr = err
}

// Prompts returns every prompt received so far.
func (f *Fake) Prompts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.prompts...)
}

// LastPrompt returns the most recent prompt or "".
func (f *Fake) LastPrompt() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.prompts) == 0 {
		return ""
	}
	return f.prompts[len(f.prompts)-1]
}

// IsEvaluation reports whether prompt asks for an answer evaluation.
func IsEvaluation(prompt string) bool {
	return strings.Contains(prompt, "technical evaluator")
}
