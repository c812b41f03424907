package patterns

import "fmt"

// Default detection settings.
const (
	DefaultFailingScore = 60.0
	DefaultMaxPatterns  = 5

	// MaxPatterns caps what any caller can see, regardless of config.
	MaxPatterns = 5
)

// Config holds pattern detection settings.
type Config struct {
	// FailingScore is the score below which an attempt counts as incorrect.
	FailingScore float64 `yaml:"failing_score"`
	MaxPatterns  int     `yaml:"max_patterns"`
}

// DefaultConfig returns the default detection settings.
func DefaultConfig() Config {
	return Config{
		FailingScore: DefaultFailingScore,
		MaxPatterns:  DefaultMaxPatterns,
	}
}

// Validate checks the configuration for impossible values.
func (c Config) Validate() error {
	if c.FailingScore < 0 || c.FailingScore > 100 {
		return fmt.Errorf("failing_score must be between 0 and 100, got %v", c.FailingScore)
	}
	if c.MaxPatterns < 1 || c.MaxPatterns > MaxPatterns {
		return fmt.Errorf("max_patterns must be between 1 and %d, got %d", MaxPatterns, c.MaxPatterns)
	}
	return nil
}

// Options bundles a Config with its external collaborators.
type Options struct {
	Config
	// Topics maps objectives to topics. Objectives without a topic are
	// grouped under their own id.
	Topics TopicLookup
	// Remediator defaults to TemplateRemediator.
	Remediator Remediator
}
