package llm

import (
	"context"
	"fmt"

	"github.com/abhisek/calibra/internal/logging"
	"github.com/abhisek/calibra/internal/store"
)

// NewProvider builds the configured provider. Calls pass through retry
// first and then logging, so every attempt is recorded as its own event.
// It returns nil, nil when generation is switched off or "auto" finds no
// key.
func NewProvider(ctx context.Context, cfg Config, events store.EventRepo, log *logging.Logger) (Provider, error) {
	cfg = cfg.Resolve()
	if !cfg.Enabled() {
		return nil, nil
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var (
		base Provider
		err  error
	)
	switch cfg.Provider {
	case ProviderAnthropic:
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case ProviderOpenAI:
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case ProviderGemini:
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case ProviderOpenRouter:
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case ProviderMock:
		base = NewMockProvider()
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	return WithRetry(WithLogging(base, events, log), cfg.Retry, cfg.Timeout, log), nil
}
