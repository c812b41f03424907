package llm

import (
	"fmt"
	"os"
	"time"
)

// Provider names accepted in Config.Provider.
const (
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
	ProviderMock       = "mock"

	// ProviderNone turns generated feedback off.
	ProviderNone = "none"
	// ProviderAuto picks the first provider whose vendor API key is set
	// in the environment.
	ProviderAuto = "auto"
)

// Config selects and configures the feedback model.
type Config struct {
	Provider string `yaml:"provider"`

	Anthropic  AnthropicConfig  `yaml:"anthropic"`
	OpenAI     OpenAIConfig     `yaml:"openai"`
	Gemini     GeminiConfig     `yaml:"gemini"`
	OpenRouter OpenRouterConfig `yaml:"openrouter"`
	Retry      RetryConfig      `yaml:"retry"`

	// Timeout bounds one generation including retries.
	Timeout time.Duration `yaml:"timeout"`
}

type AnthropicConfig struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
}

type OpenAIConfig struct {
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url"`
}

type GeminiConfig struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
}

type OpenRouterConfig struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
	// BaseURL defaults to https://openrouter.ai/api/v1.
	BaseURL string `yaml:"base_url"`
}

// RetryConfig shapes the backoff between attempts.
type RetryConfig struct {
	MaxAttempts int           `yaml:"max_attempts"`
	InitialWait time.Duration `yaml:"initial_wait"`
	MaxWait     time.Duration `yaml:"max_wait"`
	Multiplier  float64       `yaml:"multiplier"`
}

// DefaultConfig has generation switched off and sensible models picked
// for when it is switched on.
func DefaultConfig() Config {
	return Config{
		Provider:   ProviderNone,
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2,
		},
		Timeout: 30 * time.Second,
	}
}

func (c Config) Enabled() bool {
	return c.Provider != "" && c.Provider != ProviderNone
}

// apiKey points at the key field of the named provider.
func (c *Config) apiKey(provider string) *string {
	switch provider {
	case ProviderAnthropic:
		return &c.Anthropic.APIKey
	case ProviderOpenAI:
		return &c.OpenAI.APIKey
	case ProviderGemini:
		return &c.Gemini.APIKey
	case ProviderOpenRouter:
		return &c.OpenRouter.APIKey
	}
	return nil
}

// ApplyEnv overrides c from CALIBRA_* variables.
func (c *Config) ApplyEnv() {
	for key, dst := range map[string]*string{
		"CALIBRA_LLM_PROVIDER":        &c.Provider,
		"CALIBRA_ANTHROPIC_API_KEY":   &c.Anthropic.APIKey,
		"CALIBRA_ANTHROPIC_MODEL":     &c.Anthropic.Model,
		"CALIBRA_OPENAI_API_KEY":      &c.OpenAI.APIKey,
		"CALIBRA_OPENAI_MODEL":        &c.OpenAI.Model,
		"CALIBRA_OPENAI_BASE_URL":     &c.OpenAI.BaseURL,
		"CALIBRA_GEMINI_API_KEY":      &c.Gemini.APIKey,
		"CALIBRA_GEMINI_MODEL":        &c.Gemini.Model,
		"CALIBRA_OPENROUTER_API_KEY":  &c.OpenRouter.APIKey,
		"CALIBRA_OPENROUTER_MODEL":    &c.OpenRouter.Model,
		"CALIBRA_OPENROUTER_BASE_URL": &c.OpenRouter.BaseURL,
	} {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
}

func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	cfg.ApplyEnv()
	return cfg
}

// vendorKeys is the order in which ProviderAuto checks the vendors' own variables.
var vendorKeys = []struct{ provider, env string }{
	{ProviderGemini, "GEMINI_API_KEY"},
	{ProviderOpenAI, "OPENAI_API_KEY"},
	{ProviderAnthropic, "ANTHROPIC_API_KEY"},
	{ProviderOpenRouter, "OPENROUTER_API_KEY"},
}

// Resolve replaces ProviderAuto with a concrete provider, filling its key
// from the vendor variable. With no key found generation is turned off.
func (c Config) Resolve() Config {
	if c.Provider != ProviderAuto {
		return c
	}
	for _, v := range vendorKeys {
		if k := os.Getenv(v.env); k != "" {
			c.Provider = v.provider
			if dst := c.apiKey(v.provider); *dst == "" {
				*dst = k
			}
			return c
		}
	}
	c.Provider = ProviderNone
	return c
}

// Validate checks the provider name and that it has a key.
func (c Config) Validate() error {
	switch c.Provider {
	case ProviderMock, ProviderNone, ProviderAuto, "":
	default:
		key := c.apiKey(c.Provider)
		if key == nil {
			return fmt.Errorf("unknown LLM provider: %q", c.Provider)
		}
		if *key == "" {
			return fmt.Errorf("%s API key is required (set %s_API_KEY)", c.Provider, envPrefix(c.Provider))
		}
	}
	if c.Retry.MaxAttempts < 0 {
		return fmt.Errorf("retry.max_attempts must not be negative, got %d", c.Retry.MaxAttempts)
	}
	return nil
}

func envPrefix(provider string) string {
	switch provider {
	case ProviderOpenAI:
		return "CALIBRA_OPENAI"
	case ProviderOpenRouter:
		return "CALIBRA_OPENROUTER"
	case ProviderGemini:
		return "CALIBRA_GEMINI"
	default:
		return "CALIBRA_ANTHROPIC"
	}
}
