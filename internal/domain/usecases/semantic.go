package usecases

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/elvin-babanli/personabot-go/internal/domain/entities"
	"github.com/elvin-babanli/personabot-go/internal/domain/persona"
	"github.com/elvin-babanli/personabot-go/internal/domain/ports"
)

// similarityThreshold is the inclusive acceptance bound: a best score of
// exactly this value is a match, anything below falls through to the
// generative stage. Protects against confidently-wrong matches on
// unrelated input.
const similarityThreshold = 0.74

// SemanticMatcher owns the lazily-built embedding index over the curated
// question set. The index is built at most once per process; concurrent
// first use is serialized so every request observes a fully-built index
// or none. A failed build leaves the matcher unbuilt and is retried on a
// later call, so an unavailable embedding service degrades this stage to
// "no match" instead of failing the pipeline.
type SemanticMatcher struct {
	embedder ports.EmbeddingService
	entries  []persona.QAEntry
	logger   *log.Logger

	mu      sync.Mutex
	built   bool
	vectors [][]float64
}

// NewSemanticMatcher validates the corpus and returns an unbuilt matcher.
func NewSemanticMatcher(embedder ports.EmbeddingService, entries []persona.QAEntry, logger *log.Logger) (*SemanticMatcher, error) {
	if err := persona.ValidateCorpus(entries); err != nil {
		return nil, fmt.Errorf("semantic corpus: %w", err)
	}
	if logger == nil {
		logger = log.Default()
	}
	return &SemanticMatcher{
		embedder: embedder,
		entries:  entries,
		logger:   logger,
	}, nil
}

// Match embeds the input, compares it against the cached question vectors
// and returns the best entry's answer for lang if the similarity clears
// the threshold. Any embedding failure is recovered locally as "no match".
func (m *SemanticMatcher) Match(ctx context.Context, text string, lang entities.Language) (string, bool) {
	if err := m.ensureIndex(ctx); err != nil {
		m.logger.Warn("semantic index unavailable", "error", err)
		return "", false
	}

	vec, err := m.embedder.Embed(ctx, text)
	if err != nil {
		m.logger.Warn("embedding query failed", "error", err)
		return "", false
	}

	best := -1
	bestScore := 0.0
	m.mu.Lock()
	vectors := m.vectors
	m.mu.Unlock()
	for i, v := range vectors {
		score := cosineSimilarity(vec, v)
		if best == -1 || score > bestScore {
			best = i
			bestScore = score
		}
	}
	if best == -1 || bestScore < similarityThreshold {
		return "", false
	}
	return m.entries[best].Answer.For(lang), true
}

// ensureIndex embeds every canonical question exactly once per process.
// The lock both serializes the first build and makes the built index
// visible to all callers.
func (m *SemanticMatcher) ensureIndex(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.built {
		return nil
	}

	questions := make([]string, len(m.entries))
	for i, e := range m.entries {
		questions[i] = e.Question
	}

	vectors, err := m.embedder.EmbedBatch(ctx, questions)
	if err != nil {
		return fmt.Errorf("embedding question corpus: %w", err)
	}
	if len(vectors) != len(questions) {
		return fmt.Errorf("embedding question corpus: got %d vectors for %d questions", len(vectors), len(questions))
	}

	m.vectors = vectors
	m.built = true
	m.logger.Debug("semantic index built", "entries", len(vectors))
	return nil
}

// cosineSimilarity is dot(a,b)/(|a||b|), defined as 0 when either norm is
// zero rather than a division fault.
func cosineSimilarity(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += a[i] * b[i]
	}
	for _, x := range a {
		normA += x * x
	}
	for _, y := range b {
		normB += y * y
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
