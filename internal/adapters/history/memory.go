package history

import (
	"context"
	"sync"

	"github.com/elvin-babanli/personabot-go/internal/domain/entities"
)

// MemoryStore is an in-process ports.HistoryStore. Sessions vanish on
// restart; good enough for the CLI and for running without Redis or a
// writable disk.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string][]entities.ChatMessage
}

// NewMemoryStore creates an empty in-memory history store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string][]entities.ChatMessage),
	}
}

// Append adds turns to a session, trimming to the retention cap.
func (s *MemoryStore) Append(ctx context.Context, sessionID string, turns ...entities.ChatMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := append(s.sessions[sessionID], turns...)
	if len(session) > maxTurns {
		session = session[len(session)-maxTurns:]
	}
	s.sessions[sessionID] = session
	return nil
}

// Recent returns up to n trailing turns, oldest first.
func (s *MemoryStore) Recent(ctx context.Context, sessionID string, n int) ([]entities.ChatMessage, error) {
	if n <= 0 {
		return nil, nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	session := s.sessions[sessionID]
	if len(session) > n {
		session = session[len(session)-n:]
	}
	out := make([]entities.ChatMessage, len(session))
	copy(out, session)
	return out, nil
}

// Clear removes a session's history.
func (s *MemoryStore) Clear(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}

// Close is a no-op.
func (s *MemoryStore) Close() error {
	return nil
}
