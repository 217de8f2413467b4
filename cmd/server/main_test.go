package main

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ai-interviewer/backend/internal/domain/interview"
	"github.com/ai-interviewer/backend/internal/infrastructure/config"
	"github.com/ai-interviewer/backend/internal/metrics"
	"github.com/ai-interviewer/backend/internal/store"
)

func TestOpenStore(t *testing.T) {
	mem, err := openStore(&config.Config{StoreDriver: "memory"})
	require.NoError(t, err)
	assert.IsType(t, &store.MemoryStore{}, mem)

	sqlite, err := openStore(&config.Config{StoreDriver: "sqlite", SQLiteDSN: ":memory:"})
	require.NoError(t, err)
	defer sqlite.Close()
	assert.IsType(t, &store.SQLiteStore{}, sqlite)
}

func TestStoreStatsJob_PublishesSessionCount(t *testing.T) {
	st := store.NewMemory()
	ctx := context.Background()
	require.NoError(t, st.Put(ctx, interview.New("a", "Go", "Q")))
	require.NoError(t, st.Put(ctx, interview.New("b", "Go", "Q")))

	m := metrics.New()
	storeStatsJob(st, m, slog.New(slog.NewTextHandler(io.Discard, nil)))()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.SessionsStored))
}
