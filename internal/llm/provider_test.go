package llm

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockProvider_ReplaysScript(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"a":1}`), Usage: newUsage(10, 5)},
		MockResponse{Content: json.RawMessage(`{"b":2}`), Stop: StopMaxTokens},
	)
	ctx := context.Background()

	first, err := mock.Generate(ctx, Request{System: "sys"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, string(first.Content))
	assert.Equal(t, 15, first.Usage.TotalTokens)
	assert.Equal(t, StopEnd, first.StopReason)
	assert.Equal(t, "mock", first.Model)

	second, err := mock.Generate(ctx, Request{})
	require.NoError(t, err)
	assert.Equal(t, StopMaxTokens, second.StopReason)

	assert.Equal(t, 2, mock.CallCount())
	assert.Equal(t, "sys", mock.Calls[0].System)
}

func TestMockProvider_ExhaustedIsUnavailable(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Generate(context.Background(), Request{})

	var unavail *UnavailableError
	require.ErrorAs(t, err, &unavail)
	assert.Equal(t, "unavailable", ErrorClass(err))

	mock.AddResponse(MockResponse{Content: json.RawMessage(`{}`)})
	_, err = mock.Generate(context.Background(), Request{})
	assert.NoError(t, err)
}

func TestMockProvider_ValidatesAgainstSchema(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{"correct_concept":"x"}`)})
	_, err := mock.Generate(context.Background(), Request{Schema: feedbackLikeSchema()})

	var inv *InvalidResponseError
	assert.ErrorAs(t, err, &inv)
}

func TestMockProvider_Identity(t *testing.T) {
	mock := NewMockProvider()
	assert.Equal(t, "mock", mock.Name())
	assert.Equal(t, "mock", mock.ModelID())
}

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, "unknown", PurposeFrom(ctx))
	assert.Equal(t, "unknown", PurposeFrom(WithPurpose(ctx, "")))
	assert.Equal(t, "corrective-feedback", PurposeFrom(WithPurpose(ctx, "corrective-feedback")))
}

func TestResolveModel(t *testing.T) {
	aliases := map[string]string{"short": "long-model-id"}
	assert.Equal(t, "long-model-id", resolveModel("short", aliases))
	assert.Equal(t, "custom/model", resolveModel("custom/model", aliases))
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "anthropic without key", cfg: Config{Provider: ProviderAnthropic}, wantErr: true},
		{name: "anthropic with key", cfg: Config{Provider: ProviderAnthropic, Anthropic: AnthropicConfig{APIKey: "sk-test"}}},
		{name: "openai without key", cfg: Config{Provider: ProviderOpenAI}, wantErr: true},
		{name: "openai with key", cfg: Config{Provider: ProviderOpenAI, OpenAI: OpenAIConfig{APIKey: "sk-test"}}},
		{name: "gemini without key", cfg: Config{Provider: ProviderGemini}, wantErr: true},
		{name: "openrouter without key", cfg: Config{Provider: ProviderOpenRouter}, wantErr: true},
		{name: "none", cfg: Config{Provider: ProviderNone}},
		{name: "mock needs no key", cfg: Config{Provider: ProviderMock}},
		{name: "negative retries", cfg: Config{Provider: ProviderMock, Retry: RetryConfig{MaxAttempts: -1}}, wantErr: true},
		{name: "unknown provider", cfg: Config{Provider: "unknown"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_ApplyEnv(t *testing.T) {
	t.Setenv("CALIBRA_LLM_PROVIDER", "openrouter")
	t.Setenv("CALIBRA_OPENROUTER_API_KEY", "sk-or-env")
	t.Setenv("CALIBRA_OPENROUTER_MODEL", "meta-llama/llama-3-8b")

	cfg := ConfigFromEnv()
	assert.Equal(t, ProviderOpenRouter, cfg.Provider)
	assert.Equal(t, "sk-or-env", cfg.OpenRouter.APIKey)
	assert.Equal(t, "meta-llama/llama-3-8b", cfg.OpenRouter.Model)
	assert.True(t, cfg.Enabled())
	assert.NoError(t, cfg.Validate())
}

func TestDefaultConfig_Disabled(t *testing.T) {
	assert.False(t, DefaultConfig().Enabled())
}

func TestNewProvider(t *testing.T) {
	ctx := context.Background()

	p, err := NewProvider(ctx, DefaultConfig(), nil, nil)
	require.NoError(t, err)
	assert.Nil(t, p, "generation is off by default")

	_, err = NewProvider(ctx, Config{Provider: ProviderAnthropic}, nil, nil)
	assert.Error(t, err, "missing key")

	cfg := DefaultConfig()
	cfg.Provider = ProviderMock
	p, err = NewProvider(ctx, cfg, &recordingRepo{}, nil)
	require.NoError(t, err)
	assert.Equal(t, ProviderMock, p.Name())
	assert.Equal(t, "mock", p.ModelID())
}

func TestConfig_ResolveAuto(t *testing.T) {
	for _, v := range vendorKeys {
		t.Setenv(v.env, "")
	}
	cfg := DefaultConfig()
	cfg.Provider = ProviderAuto
	assert.Equal(t, ProviderNone, cfg.Resolve().Provider)

	t.Setenv("ANTHROPIC_API_KEY", "sk-ant")
	t.Setenv("OPENAI_API_KEY", "sk-oai")
	got := cfg.Resolve()
	assert.Equal(t, ProviderOpenAI, got.Provider, "openai is checked before anthropic")
	assert.Equal(t, "sk-oai", got.OpenAI.APIKey)

	cfg.OpenAI.APIKey = "sk-configured"
	assert.Equal(t, "sk-configured", cfg.Resolve().OpenAI.APIKey, "configured key wins")

	explicit := Config{Provider: ProviderGemini}
	assert.Equal(t, explicit, explicit.Resolve())
}
