package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elvin-babanli/personabot-go/internal/domain/entities"
)

// chatStub answers the chat completions endpoint with a fixed reply.
func chatStub(t *testing.T, reply string, gotBody *map[string]interface{}) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if gotBody != nil {
			*gotBody = body
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(map[string]interface{}{
			"id":     "chatcmpl-test",
			"object": "chat.completion",
			"model":  body["model"],
			"choices": []map[string]interface{}{
				{
					"index":         0,
					"finish_reason": "stop",
					"message": map[string]interface{}{
						"role":    "assistant",
						"content": reply,
					},
				},
			},
		}))
	}))
}

func TestOpenAIAdapter_Complete(t *testing.T) {
	var body map[string]interface{}
	srv := chatStub(t, "Salam! Mən Elvinəm.", &body)
	defer srv.Close()

	adapter := NewOpenAIAdapter("test-key", srv.URL, "")
	messages := []entities.ChatMessage{
		{Role: "system", Content: "persona prompt"},
		{Role: "user", Content: "salam"},
		{Role: "assistant", Content: "əvvəlki cavab"},
		{Role: "user", Content: "necəsən?"},
	}

	reply, err := adapter.Complete(context.Background(), messages, 0.25)
	require.NoError(t, err)
	assert.Equal(t, "Salam! Mən Elvinəm.", reply)

	assert.Equal(t, defaultModel, body["model"])
	assert.InDelta(t, 0.25, body["temperature"], 1e-9)

	sent, ok := body["messages"].([]interface{})
	require.True(t, ok)
	require.Len(t, sent, 4)
	first := sent[0].(map[string]interface{})
	assert.Equal(t, "system", first["role"])
	third := sent[2].(map[string]interface{})
	assert.Equal(t, "assistant", third["role"])
}

func TestOpenAIAdapter_UnknownRoleBecomesUser(t *testing.T) {
	var body map[string]interface{}
	srv := chatStub(t, "ok", &body)
	defer srv.Close()

	adapter := NewOpenAIAdapter("test-key", srv.URL, "")
	_, err := adapter.Complete(context.Background(), []entities.ChatMessage{{Role: "tool", Content: "x"}}, 0.25)
	require.NoError(t, err)

	sent := body["messages"].([]interface{})
	first := sent[0].(map[string]interface{})
	assert.Equal(t, "user", first["role"])
}

func TestOpenAIAdapter_NoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"id":      "chatcmpl-test",
			"object":  "chat.completion",
			"choices": []interface{}{},
		})
	}))
	defer srv.Close()

	adapter := NewOpenAIAdapter("test-key", srv.URL, "")
	_, err := adapter.Complete(context.Background(), []entities.ChatMessage{{Role: "user", Content: "x"}}, 0.25)
	assert.Error(t, err)
}
