// Package quizstore persists per-session quiz state: uploaded test decks and
// the questions a session answered incorrectly.
package quizstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/hazyhaar/examdeck/dbopen"
	"github.com/hazyhaar/examdeck/examparse"
)

const schema = `
CREATE TABLE IF NOT EXISTS uploads (
	session_id TEXT NOT NULL,
	test_id    TEXT NOT NULL,
	payload    TEXT NOT NULL,
	created_at INTEGER NOT NULL,
	PRIMARY KEY (session_id, test_id)
);

CREATE TABLE IF NOT EXISTS missed (
	session_id  TEXT NOT NULL,
	test_id     TEXT NOT NULL,
	question_id TEXT NOT NULL,
	missed_at   INTEGER NOT NULL,
	PRIMARY KEY (session_id, test_id, question_id)
);

CREATE INDEX IF NOT EXISTS idx_uploads_created ON uploads(created_at);
CREATE INDEX IF NOT EXISTS idx_missed_at ON missed(missed_at);
`

// Store persists uploaded tests and missed-question lists keyed by session.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
	now    func() time.Time
}

// NewStore wraps an open database. Call Init before first use.
func NewStore(db *sql.DB, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{db: db, logger: logger, now: time.Now}
}

// Init creates the backing tables if they do not exist.
func (s *Store) Init(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("quizstore: init schema: %w", err)
	}
	return nil
}

// SaveUpload stores a parsed test for a session, replacing any previous
// upload with the same test ID.
func (s *Store) SaveUpload(ctx context.Context, sessionID string, test *examparse.Test) error {
	payload, err := json.Marshal(test)
	if err != nil {
		return fmt.Errorf("quizstore: marshal test %s: %w", test.ID, err)
	}
	_, err = dbopen.Exec(ctx, s.db,
		`INSERT INTO uploads (session_id, test_id, payload, created_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(session_id, test_id) DO UPDATE SET payload = excluded.payload, created_at = excluded.created_at`,
		sessionID, test.ID, string(payload), s.now().Unix())
	if err != nil {
		return fmt.Errorf("quizstore: save upload %s: %w", test.ID, err)
	}
	return nil
}

// Uploads returns all tests uploaded by a session, newest first.
func (s *Store) Uploads(ctx context.Context, sessionID string) ([]*examparse.Test, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT payload FROM uploads WHERE session_id = ? ORDER BY created_at DESC`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("quizstore: query uploads: %w", err)
	}
	defer rows.Close()

	var tests []*examparse.Test
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("quizstore: scan upload: %w", err)
		}
		var t examparse.Test
		if err := json.Unmarshal([]byte(payload), &t); err != nil {
			s.logger.Warn("skipping corrupt upload payload", "session", sessionID, "error", err)
			continue
		}
		tests = append(tests, &t)
	}
	return tests, rows.Err()
}

// Upload returns one uploaded test for a session, or sql.ErrNoRows.
func (s *Store) Upload(ctx context.Context, sessionID, testID string) (*examparse.Test, error) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM uploads WHERE session_id = ? AND test_id = ?`,
		sessionID, testID).Scan(&payload)
	if err != nil {
		return nil, err
	}
	var t examparse.Test
	if err := json.Unmarshal([]byte(payload), &t); err != nil {
		return nil, fmt.Errorf("quizstore: unmarshal upload %s: %w", testID, err)
	}
	return &t, nil
}

// RecordMissed replaces the missed-question list for one (session, test)
// pair. An empty list clears it.
func (s *Store) RecordMissed(ctx context.Context, sessionID, testID string, questionIDs []string) error {
	return dbopen.RunTx(ctx, s.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM missed WHERE session_id = ? AND test_id = ?`, sessionID, testID); err != nil {
			return fmt.Errorf("quizstore: clear missed: %w", err)
		}
		now := s.now().Unix()
		for _, qid := range questionIDs {
			if _, err := tx.ExecContext(ctx,
				`INSERT OR REPLACE INTO missed (session_id, test_id, question_id, missed_at) VALUES (?, ?, ?, ?)`,
				sessionID, testID, qid, now); err != nil {
				return fmt.Errorf("quizstore: record missed %s: %w", qid, err)
			}
		}
		return nil
	})
}

// AddMissed records a single missed question without touching the rest of
// the list.
func (s *Store) AddMissed(ctx context.Context, sessionID, testID, questionID string) error {
	_, err := dbopen.Exec(ctx, s.db,
		`INSERT OR REPLACE INTO missed (session_id, test_id, question_id, missed_at) VALUES (?, ?, ?, ?)`,
		sessionID, testID, questionID, s.now().Unix())
	if err != nil {
		return fmt.Errorf("quizstore: add missed %s: %w", questionID, err)
	}
	return nil
}

// MissedQuestions returns the question IDs a session missed on a test.
func (s *Store) MissedQuestions(ctx context.Context, sessionID, testID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT question_id FROM missed WHERE session_id = ? AND test_id = ? ORDER BY question_id`,
		sessionID, testID)
	if err != nil {
		return nil, fmt.Errorf("quizstore: query missed: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("quizstore: scan missed: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Cleanup deletes uploads and missed entries older than age. It returns the
// number of rows removed.
func (s *Store) Cleanup(ctx context.Context, age time.Duration) (int64, error) {
	cutoff := s.now().Add(-age).Unix()

	var total int64
	res, err := dbopen.Exec(ctx, s.db, `DELETE FROM uploads WHERE created_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("quizstore: cleanup uploads: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil {
		total += n
	}

	res, err = dbopen.Exec(ctx, s.db, `DELETE FROM missed WHERE missed_at < ?`, cutoff)
	if err != nil {
		return total, fmt.Errorf("quizstore: cleanup missed: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil {
		total += n
	}

	if total > 0 {
		s.logger.Info("session cleanup", "rows_deleted", total)
	}
	return total, nil
}
