package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/ai-interviewer/backend/internal/api"
	"github.com/ai-interviewer/backend/internal/domain/interview"
	"github.com/ai-interviewer/backend/internal/generator"
	"github.com/ai-interviewer/backend/internal/infrastructure/config"
	"github.com/ai-interviewer/backend/internal/metrics"
	"github.com/ai-interviewer/backend/internal/service"
	"github.com/ai-interviewer/backend/internal/store"

	_ "github.com/ai-interviewer/backend/docs"
)

// @title           AI Interviewer API
// @version         1.0
// @description     Technical interview simulator: ask a question on a topic, grade free-text answers with a language model, summarise after five rounds.

// @host      localhost:8000
// @BasePath  /

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	// ── Dependencies ────────────────────────────────────────────────
	st, err := openStore(cfg)
	if err != nil {
		logger.Error("failed to open session store", "driver", cfg.StoreDriver, "error", err)
		os.Exit(1)
	}
	defer st.Close()

	gen, err := generator.New(generator.Config{
		Provider: cfg.LLMProvider,
		URL:      cfg.LLMURL,
		Model:    cfg.LLMModel,
		APIKey:   cfg.LLMAPIKey,
	})
	if err != nil {
		logger.Error("failed to configure text generator", "error", err)
		os.Exit(1)
	}

	m := metrics.New()
	interviews := service.NewInterviewService(st, gen, m, logger, service.Config{
		Interview:         interview.Config{RoundLimit: cfg.RoundLimit},
		GenerationTimeout: cfg.GenerationTimeout,
	})
	handler := api.NewHandler(interviews, logger)

	// ── Background jobs ─────────────────────────────────────────────
	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.StatsSchedule, storeStatsJob(st, m, logger)); err != nil {
		logger.Error("invalid stats schedule", "schedule", cfg.StatsSchedule, "error", err)
		os.Exit(1)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// ── Routes ──────────────────────────────────────────────────────
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok"}`))
	})

	api.RegisterRoutes(mux, handler)

	mux.Handle("GET /metrics", m.Handler())

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// ── Middleware chain: Logging → CORS → mux ──────────────────────
	logged := api.Logging(logger)(api.CORS(mux))

	// ── Server ──────────────────────────────────────────────────────
	// WriteTimeout leaves room for the two generation calls an answer can make.
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           logged,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      2*cfg.GenerationTimeout + 10*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
	}()

	logger.Info("starting server",
		"address", cfg.ServerAddress,
		"llm_provider", cfg.LLMProvider,
		"llm_model", cfg.LLMModel,
		"store", cfg.StoreDriver,
	)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed to start", "error", err)
		os.Exit(1)
	}
}

func openStore(cfg *config.Config) (store.Store, error) {
	if cfg.StoreDriver == "sqlite" {
		return store.NewSQLite(cfg.SQLiteDSN)
	}
	return store.NewMemory(), nil
}

// storeStatsJob publishes the session count. Sessions are never evicted, so
// this is the place to watch growth.
func storeStatsJob(st store.Store, m *metrics.Metrics, logger *slog.Logger) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		n, err := st.Count(ctx)
		if err != nil {
			logger.Error("failed to count sessions", "error", err)
			return
		}
		m.SessionsStored.Set(float64(n))
		logger.Info("session store stats", "sessions", n)
	}
}
