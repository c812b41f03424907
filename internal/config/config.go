// Package config loads calibra settings from defaults, an optional YAML
// file and CALIBRA_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/calibra/internal/benchmark"
	"github.com/abhisek/calibra/internal/challenge"
	"github.com/abhisek/calibra/internal/llm"
	"github.com/abhisek/calibra/internal/logging"
	"github.com/abhisek/calibra/internal/metrics"
	"github.com/abhisek/calibra/internal/patterns"
)

// Config is the complete runtime configuration.
type Config struct {
	Metrics   metrics.Config   `yaml:"metrics"`
	Patterns  patterns.Config  `yaml:"patterns"`
	Benchmark benchmark.Config `yaml:"benchmark"`
	Challenge ChallengeConfig  `yaml:"challenge"`
	Store     StoreConfig      `yaml:"store"`
	Log       LogConfig        `yaml:"log"`
	LLM       llm.Config       `yaml:"llm"`
}

// ChallengeConfig holds controlled-failure settings.
type ChallengeConfig struct {
	// BankPath points at a YAML challenge bank. Empty uses the built-in bank.
	BankPath string              `yaml:"bank_path"`
	Feedback challenge.LLMConfig `yaml:"feedback"`
}

// StoreConfig holds persistence settings.
type StoreConfig struct {
	// Path is the SQLite database path. Empty resolves to the default
	// data directory.
	Path string `yaml:"path"`
	// SnapshotKeep is how many pool snapshots survive a prune.
	SnapshotKeep int `yaml:"snapshot_keep"`
}

// LogConfig mirrors logging.Options.
type LogConfig struct {
	Mode             string   `yaml:"mode"`
	Level            string   `yaml:"level"`
	OutputPaths      []string `yaml:"output_paths"`
	DisableRedaction bool     `yaml:"disable_redaction"`
	HashSalt         string   `yaml:"hash_salt"`
}

// Options converts the section to logger options.
func (c LogConfig) Options() logging.Options {
	return logging.Options{
		Mode:             c.Mode,
		Level:            c.Level,
		OutputPaths:      c.OutputPaths,
		DisableRedaction: c.DisableRedaction,
		HashSalt:         c.HashSalt,
	}
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Metrics:   metrics.DefaultConfig(),
		Patterns:  patterns.DefaultConfig(),
		Benchmark: benchmark.DefaultConfig(),
		Challenge: ChallengeConfig{Feedback: challenge.DefaultLLMConfig()},
		Store:     StoreConfig{SnapshotKeep: 10},
		Log:       LogConfig{Mode: "dev", Level: "warn"},
		LLM:       llm.DefaultConfig(),
	}
}

// Path resolves the config file location:
//  1. explicit (the --config flag)
//  2. CALIBRA_CONFIG environment variable
//  3. $XDG_CONFIG_HOME/calibra/config.yaml (default: ~/.config/calibra/config.yaml)
//
// The second return value reports whether the path was requested
// explicitly, in which case a missing file is an error.
func Path(explicit string) (string, bool, error) {
	if explicit != "" {
		return explicit, true, nil
	}
	if p := os.Getenv("CALIBRA_CONFIG"); p != "" {
		return p, true, nil
	}
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", false, fmt.Errorf("get home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "calibra", "config.yaml"), false, nil
}

// Load builds the configuration from defaults, the resolved config file
// and environment overrides, then validates it.
func Load(explicit string) (Config, error) {
	cfg := Default()

	path, required, err := Path(explicit)
	if err != nil {
		return cfg, err
	}
	if err := cfg.mergeFile(path, required); err != nil {
		return cfg, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults without consulting the environment.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string, required bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides c with CALIBRA_* environment variables.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("CALIBRA_DB"); v != "" {
		c.Store.Path = v
	}
	if v := os.Getenv("CALIBRA_CHALLENGE_BANK"); v != "" {
		c.Challenge.BankPath = v
	}
	if v := os.Getenv("CALIBRA_LOG_MODE"); v != "" {
		c.Log.Mode = v
	}
	if v := os.Getenv("CALIBRA_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("CALIBRA_LOG_HASH_SALT"); v != "" {
		c.Log.HashSalt = v
	}
	if v := os.Getenv("CALIBRA_LOG_REDACTION"); v != "" {
		on, err := parseBool(v)
		if err != nil {
			return fmt.Errorf("CALIBRA_LOG_REDACTION: %w", err)
		}
		c.Log.DisableRedaction = !on
	}
	if v := os.Getenv("CALIBRA_TREND_POLICY"); v != "" {
		c.Metrics.Trend.Policy = metrics.WindowPolicy(strings.ToLower(v))
	}
	if v := os.Getenv("CALIBRA_TREND_WINDOW"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("CALIBRA_TREND_WINDOW: %w", err)
		}
		c.Metrics.Trend.Window = n
	}
	if v := os.Getenv("CALIBRA_MIN_POOL_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("CALIBRA_MIN_POOL_SIZE: %w", err)
		}
		c.Benchmark.MinPoolSize = n
	}
	if v := os.Getenv("CALIBRA_POOL_REFRESH"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("CALIBRA_POOL_REFRESH: %w", err)
		}
		c.Benchmark.RefreshInterval = d
	}
	c.LLM.ApplyEnv()
	return nil
}

func parseBool(v string) (bool, error) {
	switch strings.TrimSpace(strings.ToLower(v)) {
	case "1", "true", "yes", "on":
		return true, nil
	case "0", "false", "no", "off":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean %q", v)
}

// Validate checks every section.
func (c Config) Validate() error {
	var errs []error
	if err := c.Metrics.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("metrics: %w", err))
	}
	if err := c.Patterns.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("patterns: %w", err))
	}
	if err := c.Benchmark.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("benchmark: %w", err))
	}
	if c.Store.SnapshotKeep < 1 {
		errs = append(errs, fmt.Errorf("store: snapshot_keep must be at least 1, got %d", c.Store.SnapshotKeep))
	}
	if c.Challenge.Feedback.MaxTokens < 1 {
		errs = append(errs, fmt.Errorf("challenge: feedback.max_tokens must be at least 1, got %d", c.Challenge.Feedback.MaxTokens))
	}
	if err := c.LLM.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("llm: %w", err))
	}
	return errors.Join(errs...)
}
