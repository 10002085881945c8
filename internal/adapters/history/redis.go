// Package history provides conversation-history store adapters for the
// transport layer. The core pipeline never touches these; they exist so
// the HTTP surface can carry a session across calls.
package history

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/elvin-babanli/personabot-go/internal/domain/entities"
)

const (
	// maxTurns caps how much history a session retains.
	maxTurns = 50

	defaultTTL = 24 * time.Hour
)

// RedisStore implements ports.HistoryStore on a Redis list per session.
type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisStore connects to Redis at addr and verifies the connection.
func NewRedisStore(ctx context.Context, addr string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}
	return &RedisStore{
		client: client,
		prefix: "chat",
		ttl:    defaultTTL,
	}, nil
}

func (s *RedisStore) key(sessionID string) string {
	return fmt.Sprintf("%s:history:%s", s.prefix, sessionID)
}

// Append adds turns to the session's list, trims to the retention cap and
// refreshes the TTL.
func (s *RedisStore) Append(ctx context.Context, sessionID string, turns ...entities.ChatMessage) error {
	if len(turns) == 0 {
		return nil
	}
	key := s.key(sessionID)
	values := make([]interface{}, len(turns))
	for i, t := range turns {
		data, err := json.Marshal(t)
		if err != nil {
			return fmt.Errorf("marshaling turn: %w", err)
		}
		values[i] = data
	}
	pipe := s.client.TxPipeline()
	pipe.RPush(ctx, key, values...)
	pipe.LTrim(ctx, key, -maxTurns, -1)
	pipe.Expire(ctx, key, s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("appending history: %w", err)
	}
	return nil
}

// Recent returns up to n trailing turns, oldest first.
func (s *RedisStore) Recent(ctx context.Context, sessionID string, n int) ([]entities.ChatMessage, error) {
	if n <= 0 {
		return nil, nil
	}
	raw, err := s.client.LRange(ctx, s.key(sessionID), int64(-n), -1).Result()
	if err != nil {
		return nil, fmt.Errorf("reading history: %w", err)
	}
	turns := make([]entities.ChatMessage, 0, len(raw))
	for _, item := range raw {
		var t entities.ChatMessage
		if err := json.Unmarshal([]byte(item), &t); err != nil {
			continue // skip malformed entries
		}
		turns = append(turns, t)
	}
	return turns, nil
}

// Clear removes a session's history.
func (s *RedisStore) Clear(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, s.key(sessionID)).Err()
}

// Close releases the underlying connection pool.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
