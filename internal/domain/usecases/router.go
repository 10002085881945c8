package usecases

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/elvin-babanli/personabot-go/internal/domain/entities"
)

// Router composes the pipeline in strict priority order: language
// detection, deterministic intent matching, embedding-based semantic
// retrieval, generative fallback. It short-circuits at the first stage
// that produces a reply.
type Router struct {
	intents   *IntentMatcher
	semantic  *SemanticMatcher
	generator *Generator
	logger    *log.Logger
}

// NewRouter wires the three answer stages behind one entry point.
func NewRouter(intents *IntentMatcher, semantic *SemanticMatcher, generator *Generator, logger *log.Logger) *Router {
	if logger == nil {
		logger = log.Default()
	}
	return &Router{
		intents:   intents,
		semantic:  semantic,
		generator: generator,
		logger:    logger,
	}
}

// Answer resolves a single query. Matched is true iff the reply came from
// a curated stage; only a generative-stage failure surfaces as an error,
// with the detected language still populated so callers can phrase the
// failure.
func (r *Router) Answer(ctx context.Context, text string, history []entities.ChatMessage) (entities.Reply, error) {
	lang := DetectLanguage(text)

	if resp, ok := r.intents.Match(text, lang); ok {
		r.logger.Debug("intent matched", "lang", lang)
		return entities.Reply{Text: resp, Matched: true, Lang: lang}, nil
	}

	if resp, ok := r.semantic.Match(ctx, text, lang); ok {
		r.logger.Debug("semantic matched", "lang", lang)
		return entities.Reply{Text: resp, Matched: true, Lang: lang}, nil
	}

	resp, err := r.generator.Generate(ctx, text, lang, history)
	if err != nil {
		return entities.Reply{Lang: lang}, err
	}
	return entities.Reply{Text: resp, Matched: false, Lang: lang}, nil
}
