// Package ports defines interfaces for external dependencies.
// Clean Architecture: These are the boundaries - usecases depend on these abstractions,
// not concrete implementations. Adapters implement these interfaces.
package ports

import (
	"context"

	"github.com/elvin-babanli/personabot-go/internal/domain/entities"
)

// EmbeddingService generates vector embeddings for text.
// Interface Segregation: Only embedding responsibility, nothing else.
type EmbeddingService interface {
	// Embed generates a vector embedding for the given text.
	Embed(ctx context.Context, text string) ([]float64, error)

	// EmbedBatch generates embeddings for multiple texts in one call,
	// one vector per input, same order.
	EmbedBatch(ctx context.Context, texts []string) ([][]float64, error)
}

// CompletionService produces a single reply from a generative model given
// an ordered list of role-tagged messages.
type CompletionService interface {
	Complete(ctx context.Context, messages []entities.ChatMessage, temperature float64) (string, error)
}

// HistoryStore keeps per-session conversation history for transport-layer
// callers. The core pipeline never writes here; it only receives whatever
// window the caller passes in.
type HistoryStore interface {
	// Append adds turns to the end of a session's history.
	Append(ctx context.Context, sessionID string, turns ...entities.ChatMessage) error

	// Recent returns up to n trailing turns, oldest first.
	Recent(ctx context.Context, sessionID string, n int) ([]entities.ChatMessage, error)

	// Clear removes a session's history.
	Clear(ctx context.Context, sessionID string) error

	// Close releases any underlying resources.
	Close() error
}

// WeatherService aggregates current conditions and a daily forecast for a city.
type WeatherService interface {
	Report(ctx context.Context, city string) (*entities.WeatherReport, error)
}

// FactsWatcher monitors the persona facts file for changes.
// Facts are immutable for the process lifetime; the watcher exists so the
// server can tell the operator a restart is needed.
type FactsWatcher interface {
	// Watch starts monitoring the file and emits an event per change.
	Watch(ctx context.Context, path string) (<-chan FactsEvent, error)

	// Stop stops the watcher.
	Stop() error
}

// FactsEvent represents a change to the watched facts file.
type FactsEvent struct {
	Path      string
	Operation FileOperation
}

// FileOperation is the type of file change.
type FileOperation int

const (
	FileCreated FileOperation = iota
	FileModified
	FileDeleted
)
