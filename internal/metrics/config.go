package metrics

import "fmt"

// MinCorrelationPairs is the fewest paired observations for which a
// correlation coefficient is reported.
const MinCorrelationPairs = 5

// WindowPolicy selects how responses are split for trend detection.
type WindowPolicy string

const (
	// PolicyHalves compares the earlier half of the window with the later half.
	PolicyHalves WindowPolicy = "halves"
	// PolicyRolling compares the most recent Window responses with up to
	// Window responses before them.
	PolicyRolling WindowPolicy = "rolling"
)

// TrendConfig controls trend detection.
type TrendConfig struct {
	Policy WindowPolicy `yaml:"policy"`
	// Window is the rolling window size. Ignored by PolicyHalves.
	Window int `yaml:"window"`
	// Threshold is the MAE change, in percentage points, that counts as
	// a real improvement or regression.
	Threshold float64 `yaml:"threshold"`
	// MinPerSide is the fewest responses each side of the split needs. A
	// rolling Window must be at least this large.
	MinPerSide int `yaml:"min_per_side"`
}

// Config holds aggregation settings.
type Config struct {
	Trend TrendConfig `yaml:"trend"`
}

// DefaultConfig returns the default aggregation settings.
func DefaultConfig() Config {
	return Config{
		Trend: TrendConfig{
			Policy:     PolicyRolling,
			Window:     5,
			Threshold:  5,
			MinPerSide: 2,
		},
	}
}

// Validate checks the configuration for impossible values.
func (c Config) Validate() error {
	switch c.Trend.Policy {
	case PolicyHalves, PolicyRolling:
	default:
		return fmt.Errorf("unknown trend policy %q", c.Trend.Policy)
	}
	if c.Trend.Policy == PolicyRolling && c.Trend.Window < 1 {
		return fmt.Errorf("trend window must be at least 1, got %d", c.Trend.Window)
	}
	if c.Trend.Threshold < 0 {
		return fmt.Errorf("trend threshold must not be negative, got %v", c.Trend.Threshold)
	}
	if c.Trend.MinPerSide < 1 {
		return fmt.Errorf("trend min_per_side must be at least 1, got %d", c.Trend.MinPerSide)
	}
	if c.Trend.Policy == PolicyRolling && c.Trend.Window < c.Trend.MinPerSide {
		return fmt.Errorf("trend window %d is smaller than min_per_side %d", c.Trend.Window, c.Trend.MinPerSide)
	}
	return nil
}
