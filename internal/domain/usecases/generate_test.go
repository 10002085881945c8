package usecases

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/elvin-babanli/personabot-go/internal/domain/entities"
	"github.com/elvin-babanli/personabot-go/internal/domain/persona"
)

// mockCompleter implements ports.CompletionService and records the call.
type mockCompleter struct {
	response    string
	err         error
	messages    []entities.ChatMessage
	temperature float64
}

func (m *mockCompleter) Complete(ctx context.Context, messages []entities.ChatMessage, temperature float64) (string, error) {
	m.messages = messages
	m.temperature = temperature
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

func TestGenerator_SystemPromptFirst(t *testing.T) {
	llm := &mockCompleter{response: "ok"}
	g := NewGenerator(llm, persona.DefaultFacts())

	_, err := g.Generate(context.Background(), "hello", entities.LangEN, nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(llm.messages) == 0 || llm.messages[0].Role != "system" {
		t.Fatal("first message must be the system prompt")
	}
	system := llm.messages[0].Content
	for _, want := range []string{"Elvin Babanlı", "2002-05-28", "identity", "rules"} {
		if !strings.Contains(system, want) {
			t.Errorf("system prompt missing %q", want)
		}
	}
}

func TestGenerator_HistoryWindow(t *testing.T) {
	llm := &mockCompleter{response: "ok"}
	g := NewGenerator(llm, persona.DefaultFacts())

	var history []entities.ChatMessage
	for i := 0; i < 10; i++ {
		history = append(history, entities.ChatMessage{Role: "user", Content: "turn"})
	}

	_, err := g.Generate(context.Background(), "latest", entities.LangEN, history)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	// system + windowed history + current user message
	if got := len(llm.messages); got != 1+historyWindow+1 {
		t.Errorf("sent %d messages, want %d", got, 1+historyWindow+1)
	}
}

func TestGenerator_StyleHintAppended(t *testing.T) {
	llm := &mockCompleter{response: "ok"}
	g := NewGenerator(llm, persona.DefaultFacts())

	_, err := g.Generate(context.Background(), "O seu melhor amigo?", entities.LangAZ, nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	last := llm.messages[len(llm.messages)-1]
	if last.Role != "user" {
		t.Fatalf("last message role = %q, want user", last.Role)
	}
	if !strings.HasPrefix(last.Content, "O seu melhor amigo?\n\n---\n") {
		t.Errorf("user message should carry the query then the style hint separator, got %q", last.Content)
	}
	if !strings.Contains(last.Content, persona.StyleHints.AZ) {
		t.Error("user message missing the Azerbaijani style hint")
	}
}

func TestGenerator_Temperature(t *testing.T) {
	llm := &mockCompleter{response: "ok"}
	g := NewGenerator(llm, persona.DefaultFacts())

	_, _ = g.Generate(context.Background(), "hi", entities.LangEN, nil)
	if llm.temperature != generationTemperature {
		t.Errorf("temperature = %v, want %v", llm.temperature, generationTemperature)
	}
}

func TestGenerator_ErrorPropagates(t *testing.T) {
	llm := &mockCompleter{err: errors.New("model overloaded")}
	g := NewGenerator(llm, persona.DefaultFacts())

	_, err := g.Generate(context.Background(), "hi", entities.LangEN, nil)
	if err == nil {
		t.Fatal("expected the completion error to propagate")
	}
	if !strings.Contains(err.Error(), "model overloaded") {
		t.Errorf("error should wrap the cause, got %v", err)
	}
}

func TestPostprocess(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"- first\n- second", "first second"},
		{"• bullet\n* star", "bullet star"},
		{"line one\n\nline two", "line one line two"},
		{"  spaced    out  ", "spaced out"},
		{"plain reply", "plain reply"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := postprocess(tc.in); got != tc.want {
			t.Errorf("postprocess(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
