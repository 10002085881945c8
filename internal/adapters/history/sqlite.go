package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"github.com/elvin-babanli/personabot-go/internal/domain/entities"
)

// SQLiteStore implements ports.HistoryStore with on-disk persistence, for
// deployments without a Redis to point at.
type SQLiteStore struct {
	mu sync.Mutex
	db *sql.DB
}

// NewSQLiteStore opens (creating if needed) the history database at path.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if path == "" {
		path = "./data/history.db"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}
	return store, nil
}

// initSchema creates the necessary table.
func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS history (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT NOT NULL,
		role       TEXT NOT NULL,
		content    TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_history_session ON history(session_id);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Append inserts turns and trims the session to the retention cap.
func (s *SQLiteStore) Append(ctx context.Context, sessionID string, turns ...entities.ChatMessage) error {
	if len(turns) == 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, t := range turns {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO history (session_id, role, content) VALUES (?, ?, ?)",
			sessionID, t.Role, t.Content,
		); err != nil {
			return fmt.Errorf("inserting turn: %w", err)
		}
	}

	// Trim to the last maxTurns rows for this session.
	if _, err := tx.ExecContext(ctx, `
		DELETE FROM history WHERE session_id = ? AND id NOT IN (
			SELECT id FROM history WHERE session_id = ? ORDER BY id DESC LIMIT ?
		)`, sessionID, sessionID, maxTurns,
	); err != nil {
		return fmt.Errorf("trimming history: %w", err)
	}

	return tx.Commit()
}

// Recent returns up to n trailing turns, oldest first.
func (s *SQLiteStore) Recent(ctx context.Context, sessionID string, n int) ([]entities.ChatMessage, error) {
	if n <= 0 {
		return nil, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT role, content FROM (
			SELECT id, role, content FROM history WHERE session_id = ? ORDER BY id DESC LIMIT ?
		) ORDER BY id ASC`, sessionID, n)
	if err != nil {
		return nil, fmt.Errorf("reading history: %w", err)
	}
	defer rows.Close()

	var turns []entities.ChatMessage
	for rows.Next() {
		var t entities.ChatMessage
		if err := rows.Scan(&t.Role, &t.Content); err != nil {
			return nil, fmt.Errorf("scanning turn: %w", err)
		}
		turns = append(turns, t)
	}
	return turns, rows.Err()
}

// Clear removes a session's history.
func (s *SQLiteStore) Clear(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.ExecContext(ctx, "DELETE FROM history WHERE session_id = ?", sessionID)
	return err
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
