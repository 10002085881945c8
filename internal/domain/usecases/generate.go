package usecases

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/elvin-babanli/personabot-go/internal/domain/entities"
	"github.com/elvin-babanli/personabot-go/internal/domain/persona"
	"github.com/elvin-babanli/personabot-go/internal/domain/ports"
)

const (
	// historyWindow bounds how many trailing conversation turns are sent
	// to the model.
	historyWindow = 6

	// generationTemperature keeps replies close to deterministic.
	generationTemperature = 0.25
)

var (
	bulletPrefix   = regexp.MustCompile(`^[\-•*]\s*`)
	whitespaceRuns = regexp.MustCompile(`\s{2,}`)
)

// Generator is the terminal pipeline stage: it always produces a reply or
// surfaces an error, since there is nothing left to fall through to.
type Generator struct {
	llm   ports.CompletionService
	facts *persona.Facts
}

// NewGenerator creates the generative fallback stage.
func NewGenerator(llm ports.CompletionService, facts *persona.Facts) *Generator {
	return &Generator{llm: llm, facts: facts}
}

// Generate assembles the persona prompt plus a bounded history window and
// invokes the model. Service errors propagate: callers present them as a
// visible failure because no later stage can recover.
func (g *Generator) Generate(ctx context.Context, text string, lang entities.Language, history []entities.ChatMessage) (string, error) {
	system, err := g.systemPrompt()
	if err != nil {
		return "", fmt.Errorf("building system prompt: %w", err)
	}

	messages := []entities.ChatMessage{{Role: "system", Content: system}}
	if n := len(history); n > historyWindow {
		history = history[n-historyWindow:]
	}
	for _, turn := range history {
		role := turn.Role
		if role == "" {
			role = "user"
		}
		messages = append(messages, entities.ChatMessage{Role: role, Content: turn.Content})
	}
	messages = append(messages, entities.ChatMessage{
		Role:    "user",
		Content: text + "\n\n---\n" + persona.StyleHints.For(lang),
	})

	raw, err := g.llm.Complete(ctx, messages, generationTemperature)
	if err != nil {
		return "", fmt.Errorf("generating reply: %w", err)
	}

	return postprocess(raw), nil
}

// systemPrompt serializes the persona directive payload: immutable facts,
// the style guide and the hard rules the model must follow.
func (g *Generator) systemPrompt() (string, error) {
	payload := struct {
		Identity string         `json:"identity"`
		Facts    *persona.Facts `json:"facts"`
		Style    string         `json:"style"`
		Rules    []string       `json:"rules"`
	}{
		Identity: "You are ELVIN — the real person's persona (first-person).",
		Facts:    g.facts,
		Style:    persona.StyleGuide,
		Rules: []string{
			"Use only provided facts and safe general knowledge. If something is unknown, say you are not sure.",
			"Answer in the user's language.",
			"No bullet points. 1–3 sentences. Natural, human tone.",
		},
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// postprocess enforces the "no bullet points, short paragraph" contract on
// whatever the model returned: strip list markers, join lines, collapse
// whitespace runs.
func postprocess(text string) string {
	var parts []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(bulletPrefix.ReplaceAllString(strings.TrimSpace(line), ""))
		if line != "" {
			parts = append(parts, line)
		}
	}
	joined := strings.Join(parts, " ")
	return whitespaceRuns.ReplaceAllString(joined, " ")
}
