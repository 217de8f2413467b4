package store

import (
	"context"
	"errors"

	"github.com/ai-interviewer/backend/internal/domain/interview"
)

var (
	ErrNotFound = errors.New("not found")
)

// Store maps session ids to sessions. Put replaces the whole session as one
// unit; Get returns a copy the caller may modify freely.
//
// Entries are never evicted: a session lives until the process (or, for a
// file-backed SQLite DSN, the database) goes away.
type Store interface {
	Put(ctx context.Context, s *interview.Session) error
	Get(ctx context.Context, id string) (*interview.Session, error)
	Contains(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int, error)
	Close() error
}
