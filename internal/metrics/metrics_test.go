package metrics_test

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ai-interviewer/backend/internal/metrics"
)

func TestObserveGeneration(t *testing.T) {
	m := metrics.New()

	m.ObserveGeneration(metrics.KindQuestion, time.Now(), nil)
	m.ObserveGeneration(metrics.KindQuestion, time.Now(), errors.New("down"))
	m.ObserveGeneration(metrics.KindEvaluation, time.Now(), nil)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.GenerationsTotal.WithLabelValues("question", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.GenerationsTotal.WithLabelValues("question", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.GenerationsTotal.WithLabelValues("evaluation", "ok")))
}

func TestHandler_ExposesMetrics(t *testing.T) {
	m := metrics.New()
	m.InterviewsStarted.Inc()
	m.SessionsStored.Set(3)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "interviews_started_total 1")
	assert.Contains(t, string(body), "sessions_stored 3")
}
