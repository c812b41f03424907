package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOpenAIProvider(t *testing.T, handler http.HandlerFunc) *OpenAIProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	config := openai.DefaultConfig("test-key")
	config.BaseURL = server.URL + "/v1"
	return &OpenAIProvider{client: openai.NewClientWithConfig(config), model: "gpt-4o-mini", name: ProviderOpenAI}
}

func openAICompletion(content, finish string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-test",
			"object":  "chat.completion",
			"created": 1234567890,
			"model":   "gpt-4o-mini",
			"choices": []map[string]any{{
				"index":         0,
				"message":       map[string]any{"role": "assistant", "content": content},
				"finish_reason": finish,
			}},
			"usage": map[string]any{"prompt_tokens": 40, "completion_tokens": 25, "total_tokens": 65},
		})
	}
}

func openAIError(status int) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"type": "server_error", "message": http.StatusText(status)},
		})
	}
}

func TestOpenAIProvider_HappyPath(t *testing.T) {
	p := newTestOpenAIProvider(t, openAICompletion(`{"correct_concept":"Troponin rises 3-6h after onset"}`, "stop"))

	resp, err := p.Generate(context.Background(), Request{
		System:    "You are a clinical educator.",
		Messages:  []Message{{Role: RoleUser, Content: "Explain the misconception."}},
		MaxTokens: 256,
	})
	require.NoError(t, err)
	assert.Equal(t, newUsage(40, 25), resp.Usage)
	assert.Equal(t, StopEnd, resp.StopReason)
}

func TestOpenAIProvider_SchemaViolation(t *testing.T) {
	p := newTestOpenAIProvider(t, openAICompletion(`{"correct_concept":"x"}`, "stop"))

	_, err := p.Generate(context.Background(), Request{Schema: feedbackLikeSchema()})
	assert.Equal(t, "invalid_response", ErrorClass(err))
}

func TestOpenAIProvider_LengthCutoff(t *testing.T) {
	p := newTestOpenAIProvider(t, openAICompletion(`{"correct_`, "length"))

	_, err := p.Generate(context.Background(), Request{Schema: feedbackLikeSchema()})
	assert.Equal(t, "truncated", ErrorClass(err))
}

func TestOpenAIProvider_StatusErrors(t *testing.T) {
	tests := []struct {
		status int
		want   string
	}{
		{http.StatusTooManyRequests, "rate_limit"},
		{http.StatusInternalServerError, "unavailable"},
	}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			p := newTestOpenAIProvider(t, openAIError(tt.status))
			_, err := p.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "x"}}})
			assert.Equal(t, tt.want, ErrorClass(err))
		})
	}
}

func TestNewOpenAIProvider(t *testing.T) {
	p, err := NewOpenAIProvider(OpenAIConfig{APIKey: "k", Model: "gpt-4o", BaseURL: "https://gateway.example/v1"})
	require.NoError(t, err)
	assert.Equal(t, ProviderOpenAI, p.Name())
	assert.Equal(t, "gpt-4o", p.ModelID())

	_, err = NewOpenAIProvider(OpenAIConfig{})
	assert.ErrorContains(t, err, "openai API key is required")
}
