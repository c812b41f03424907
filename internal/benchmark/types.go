package benchmark

import "time"

// Band is the interpretation of a percentile rank.
type Band string

const (
	BandExcellent        Band = "EXCELLENT"
	BandVeryGood         Band = "VERY_GOOD"
	BandGood             Band = "GOOD"
	BandAverage          Band = "AVERAGE"
	BandBelowAverage     Band = "BELOW_AVERAGE"
	BandNeedsImprovement Band = "NEEDS_IMPROVEMENT"
	BandNotEnoughData    Band = "NOT_ENOUGH_DATA"
)

// DisplayName returns a human-readable label for the band.
func (b Band) DisplayName() string {
	switch b {
	case BandExcellent:
		return "Excellent"
	case BandVeryGood:
		return "Very Good"
	case BandGood:
		return "Good"
	case BandAverage:
		return "Average"
	case BandBelowAverage:
		return "Below average"
	case BandNeedsImprovement:
		return "Needs improvement"
	case BandNotEnoughData:
		return "Not enough data"
	default:
		return string(b)
	}
}

// BandFor maps a percentile rank to its band.
func BandFor(percentile float64) Band {
	switch {
	case percentile >= 90:
		return BandExcellent
	case percentile >= 70:
		return BandVeryGood
	case percentile >= 55:
		return BandGood
	case percentile >= 45:
		return BandAverage
	case percentile >= 20:
		return BandBelowAverage
	default:
		return BandNeedsImprovement
	}
}

// TopicDelta is one member's average overconfidence on a topic.
type TopicDelta struct {
	Topic    string  `json:"topic"`
	AvgDelta float64 `json:"avgDelta"`
}

// PoolEntry is one opted-in member's contribution to the pool. UserID
// never leaves the process; Key is its salted digest and is what
// snapshots persist.
type PoolEntry struct {
	UserID              string       `json:"-"`
	Key                 string       `json:"key"`
	Correlation         *float64     `json:"correlation"`
	OverconfidentTopics []TopicDelta `json:"overconfidentTopics"`
}

// Distribution summarises the pool's correlation coefficients.
type Distribution struct {
	Correlations []float64  `json:"correlations"`
	Quartiles    [3]float64 `json:"quartiles"`
	Median       float64    `json:"median"`
	Mean         float64    `json:"mean"`
	PoolSize     int        `json:"poolSize"`
}

// TopicStat is a topic the pool is commonly overconfident on.
type TopicStat struct {
	Topic      string  `json:"topic"`
	Prevalence float64 `json:"prevalence"`
	AvgDelta   float64 `json:"avgDelta"`
}

// PeerBenchmark places one learner within the anonymised pool.
type PeerBenchmark struct {
	UserCorrelation           *float64     `json:"userCorrelation"`
	UserPercentile            *float64     `json:"userPercentile"`
	Band                      Band         `json:"band"`
	PeerDistribution          Distribution `json:"peerDistribution"`
	CommonOverconfidentTopics []TopicStat  `json:"commonOverconfidentTopics"`
	PoolRefreshedAt           time.Time    `json:"poolRefreshedAt,omitempty"`
}
