package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ai-interviewer/backend/internal/api"
	"github.com/ai-interviewer/backend/internal/generator/generatortest"
	"github.com/ai-interviewer/backend/internal/metrics"
	"github.com/ai-interviewer/backend/internal/service"
	"github.com/ai-interviewer/backend/internal/store"
)

func newTestServer(t *testing.T, gen *generatortest.Fake) *httptest.Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.NewInterviewService(store.NewMemory(), gen, metrics.New(), logger, service.DefaultConfig())

	mux := http.NewServeMux()
	api.RegisterRoutes(mux, api.NewHandler(svc, logger))
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestRunChat_FullInterview(t *testing.T) {
	srv := newTestServer(t, &generatortest.Fake{Feedback: []string{"7/10", "8/10", "6/10", "9/10", "10/10"}})

	in := strings.NewReader("Go\nfirst\n\nsecond\nthird\nfourth\nfifth\nignored\n")
	var out bytes.Buffer

	err := runChat(context.Background(), NewClient(srv.URL), in, &out, "sess-1", "")
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "Type your topic")
	assert.Contains(t, text, "Question 1")
	assert.Contains(t, text, "Question 5")
	assert.NotContains(t, text, "Question 6")
	assert.Contains(t, text, "Feedback: 10/10")
	assert.Contains(t, text, "Final Score: 40/50")
}

func TestRunChat_InputEndsEarly(t *testing.T) {
	srv := newTestServer(t, &generatortest.Fake{})
	var out bytes.Buffer

	err := runChat(context.Background(), NewClient(srv.URL), strings.NewReader("only one\n"), &out, "sess-1", "Rust")

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Question 2")
}

func TestRunChat_StartFailure(t *testing.T) {
	gen := &generatortest.Fake{}
	gen.FailQuestions(errors.New("down"))
	srv := newTestServer(t, gen)

	err := runChat(context.Background(), NewClient(srv.URL), strings.NewReader(""), io.Discard, "sess-1", "Go")

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
}

func TestClient_AnswerUnknownSession(t *testing.T) {
	srv := newTestServer(t, &generatortest.Fake{})

	_, err := NewClient(srv.URL).Answer(context.Background(), "missing", "x")

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "Session not found", apiErr.Message)
}

func TestTranscriptCommand(t *testing.T) {
	srv := newTestServer(t, &generatortest.Fake{Feedback: []string{"Decent, 6.5/10"}})
	c := NewClient(srv.URL)
	ctx := context.Background()

	_, err := c.Start(ctx, "sess-1", "Go")
	require.NoError(t, err)
	_, err = c.Answer(ctx, "sess-1", "channels")
	require.NoError(t, err)

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--server", srv.URL, "transcript", "sess-1"})
	require.NoError(t, cmd.Execute())

	text := out.String()
	assert.Contains(t, text, "Session sess-1: Go (awaiting_answer)")
	assert.Contains(t, text, "Answer:   channels")
	assert.Contains(t, text, "Score:    6.5/10")
	assert.Contains(t, text, "Total: 6.5/50")
}
