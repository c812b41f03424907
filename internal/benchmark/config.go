package benchmark

import (
	"fmt"
	"time"
)

// Config holds benchmark settings.
type Config struct {
	// MinPoolSize is the fewest other opted-in members a benchmark needs.
	MinPoolSize int `yaml:"min_pool_size"`
	// TopicPrevalenceThreshold is the share of the pool above which a
	// topic counts as commonly overconfident.
	TopicPrevalenceThreshold float64 `yaml:"topic_prevalence_threshold"`
	MaxTopics                int     `yaml:"max_topics"`
	// RefreshInterval is how often the pool is recomputed.
	RefreshInterval time.Duration `yaml:"refresh_interval"`
	// Concurrency bounds parallel member computation during a refresh.
	Concurrency int `yaml:"concurrency"`
}

// DefaultConfig returns the default benchmark settings.
func DefaultConfig() Config {
	return Config{
		MinPoolSize:              50,
		TopicPrevalenceThreshold: 0.2,
		MaxTopics:                5,
		RefreshInterval:          6 * time.Hour,
		Concurrency:              8,
	}
}

// Validate checks the configuration for impossible values.
func (c Config) Validate() error {
	if c.MinPoolSize < 1 {
		return fmt.Errorf("min_pool_size must be at least 1, got %d", c.MinPoolSize)
	}
	if c.TopicPrevalenceThreshold < 0 || c.TopicPrevalenceThreshold >= 1 {
		return fmt.Errorf("topic_prevalence_threshold must be in [0, 1), got %v", c.TopicPrevalenceThreshold)
	}
	if c.MaxTopics < 1 || c.MaxTopics > 5 {
		return fmt.Errorf("max_topics must be between 1 and 5, got %d", c.MaxTopics)
	}
	if c.RefreshInterval <= 0 {
		return fmt.Errorf("refresh_interval must be positive, got %s", c.RefreshInterval)
	}
	if c.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1, got %d", c.Concurrency)
	}
	return nil
}
