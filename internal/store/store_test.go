package store_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ai-interviewer/backend/internal/domain/interview"
	"github.com/ai-interviewer/backend/internal/store"
)

func backends(t *testing.T) map[string]store.Store {
	t.Helper()

	sqlite, err := store.NewSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { sqlite.Close() })

	return map[string]store.Store{
		"memory": store.NewMemory(),
		"sqlite": sqlite,
	}
}

func TestStore_GetUnknown(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, err := s.Get(ctx, "missing")
			assert.True(t, errors.Is(err, store.ErrNotFound))

			ok, err := s.Contains(ctx, "missing")
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestStore_PutGetRoundTrip(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			sess := interview.New("s1", "Go", "Q1")
			sess.RecordAnswer("Q1", "A1", "Nice, 7/10")
			sess.AskNext("Q2")
			sess.RecordAnswer("Q2", "A2", "Score: 6.5/10")
			sess.AskNext("Q3")
			require.NoError(t, s.Put(ctx, sess))

			got, err := s.Get(ctx, "s1")
			require.NoError(t, err)

			assert.Equal(t, "Go", got.Topic)
			assert.Equal(t, "Q3", got.CurrentQuestion)
			assert.Equal(t, 13.5, got.TotalScore)
			assert.Equal(t, 3, got.TurnCount)
			assert.Equal(t, sess.History, got.History)
			assert.True(t, sess.CreatedAt.Equal(got.CreatedAt))

			ok, err := s.Contains(ctx, "s1")
			require.NoError(t, err)
			assert.True(t, ok)
		})
	}
}

func TestStore_PutOverwrites(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			first := interview.New("s1", "Go", "Q1")
			first.RecordAnswer("Q1", "A1", "9/10")
			require.NoError(t, s.Put(ctx, first))

			require.NoError(t, s.Put(ctx, interview.New("s1", "Rust", "R1")))

			got, err := s.Get(ctx, "s1")
			require.NoError(t, err)
			assert.Equal(t, "Rust", got.Topic)
			assert.Empty(t, got.History)
			assert.Zero(t, got.TotalScore)

			n, err := s.Count(ctx)
			require.NoError(t, err)
			assert.Equal(t, 1, n)
		})
	}
}

func TestStore_ReturnsCopies(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, s.Put(ctx, interview.New("s1", "Go", "Q1")))

			got, err := s.Get(ctx, "s1")
			require.NoError(t, err)
			got.RecordAnswer("Q1", "A", "10/10")

			again, err := s.Get(ctx, "s1")
			require.NoError(t, err)
			assert.Empty(t, again.History, "mutating a returned session must not change the store")
		})
	}
}

func TestStore_ConcurrentDistinctSessions(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			var wg sync.WaitGroup
			for i := 0; i < 20; i++ {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					assert.NoError(t, s.Put(ctx, interview.New(fmt.Sprintf("s%d", i), "Go", "Q")))
				}(i)
			}
			wg.Wait()

			n, err := s.Count(ctx)
			require.NoError(t, err)
			assert.Equal(t, 20, n)
		})
	}
}
