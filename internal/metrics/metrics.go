package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Generation kinds used as the "kind" label.
const (
	KindQuestion   = "question"
	KindEvaluation = "evaluation"
)

// Metrics holds all Prometheus metrics for the interviewer.
type Metrics struct {
	registry *prometheus.Registry

	GenerationsTotal   *prometheus.CounterVec
	GenerationDuration *prometheus.HistogramVec

	InterviewsStarted   prometheus.Counter
	InterviewsCompleted prometheus.Counter
	AnswersTotal        prometheus.Counter
	SessionsStored      prometheus.Gauge
}

// New creates and registers all metrics on a private registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,

		GenerationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "generations_total",
				Help: "Total number of text generation calls",
			},
			[]string{"kind", "status"},
		),
		GenerationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "generation_duration_seconds",
				Help:    "Duration of text generation calls in seconds",
				Buckets: []float64{0.5, 1, 2.5, 5, 10, 20, 40, 80, 120},
			},
			[]string{"kind"},
		),
		InterviewsStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "interviews_started_total",
			Help: "Total number of interviews started",
		}),
		InterviewsCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "interviews_completed_total",
			Help: "Total number of answers that completed an interview",
		}),
		AnswersTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "answers_total",
			Help: "Total number of answers recorded",
		}),
		SessionsStored: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "sessions_stored",
			Help: "Number of sessions held by the session store",
		}),
	}

	registry.MustRegister(
		m.GenerationsTotal,
		m.GenerationDuration,
		m.InterviewsStarted,
		m.InterviewsCompleted,
		m.AnswersTotal,
		m.SessionsStored,
	)

	return m
}

// ObserveGeneration records the outcome and duration of one generation call.
func (m *Metrics) ObserveGeneration(kind string, started time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.GenerationsTotal.WithLabelValues(kind, status).Inc()
	m.GenerationDuration.WithLabelValues(kind).Observe(time.Since(started).Seconds())
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
