// internal/store/sqlite.go
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/ai-interviewer/backend/internal/domain/interview"
)

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
    id TEXT PRIMARY KEY,
    topic TEXT NOT NULL,
    current_question TEXT NOT NULL,
    total_score REAL NOT NULL,
    turn_count INTEGER NOT NULL,
    created_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS turns (
    session_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    question TEXT NOT NULL,
    answer TEXT NOT NULL,
    feedback TEXT NOT NULL,
    score REAL NOT NULL,
    PRIMARY KEY (session_id, position),
    FOREIGN KEY (session_id) REFERENCES sessions(id) ON DELETE CASCADE
);
`

// SQLiteStore keeps sessions in SQLite. With an in-memory DSN it behaves like
// MemoryStore; with a file DSN sessions outlive the process.
type SQLiteStore struct {
	db *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// Every connection to an in-memory database sees its own empty database,
	// so the pool is pinned to one connection.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Put replaces the session row and all of its turns in one transaction.
func (s *SQLiteStore) Put(ctx context.Context, sess *interview.Session) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO sessions (id, topic, current_question, total_score, turn_count, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			topic = excluded.topic,
			current_question = excluded.current_question,
			total_score = excluded.total_score,
			turn_count = excluded.turn_count,
			created_at = excluded.created_at,
			updated_at = excluded.updated_at`,
		sess.ID, sess.Topic, sess.CurrentQuestion, sess.TotalScore, sess.TurnCount,
		sess.CreatedAt.UnixNano(), sess.UpdatedAt.UnixNano(),
	); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM turns WHERE session_id = ?", sess.ID); err != nil {
		return fmt.Errorf("clear turns: %w", err)
	}

	for i, t := range sess.History {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO turns (session_id, position, question, answer, feedback, score) VALUES (?, ?, ?, ?, ?, ?)",
			sess.ID, i, t.Question, t.Answer, t.Feedback, t.Score,
		); err != nil {
			return fmt.Errorf("save turn %d: %w", i, err)
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) Get(ctx context.Context, id string) (*interview.Session, error) {
	sess := &interview.Session{ID: id}
	var createdAt, updatedAt int64

	err := s.db.QueryRowContext(ctx,
		"SELECT topic, current_question, total_score, turn_count, created_at, updated_at FROM sessions WHERE id = ?", id,
	).Scan(&sess.Topic, &sess.CurrentQuestion, &sess.TotalScore, &sess.TurnCount, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	sess.CreatedAt = time.Unix(0, createdAt).UTC()
	sess.UpdatedAt = time.Unix(0, updatedAt).UTC()

	rows, err := s.db.QueryContext(ctx,
		"SELECT question, answer, feedback, score FROM turns WHERE session_id = ? ORDER BY position", id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sess.History = []interview.Turn{}
	for rows.Next() {
		var t interview.Turn
		if err := rows.Scan(&t.Question, &t.Answer, &t.Feedback, &t.Score); err != nil {
			return nil, err
		}
		sess.History = append(sess.History, t)
	}

	return sess, rows.Err()
}

func (s *SQLiteStore) Contains(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM sessions WHERE id = ?)", id).Scan(&exists)
	return exists, err
}

func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM sessions").Scan(&n)
	return n, err
}
