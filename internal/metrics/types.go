package metrics

import "time"

// Trend describes whether calibration quality is moving over time.
type Trend string

const (
	TrendImproving Trend = "IMPROVING"
	TrendStable    Trend = "STABLE"
	TrendWorsening Trend = "WORSENING"
)

// Response is the minimal per-response input to aggregation.
type Response struct {
	ConfidenceNormalized int       `json:"confidenceNormalized"`
	Score                float64   `json:"score"`
	Timestamp            time.Time `json:"timestamp"`
}

// Delta returns normalized confidence minus score.
func (r Response) Delta() float64 {
	return float64(r.ConfidenceNormalized) - r.Score
}

// Metrics is the calibration rollup over a window of responses. It is
// always recomputed from the full window, never patched in place.
type Metrics struct {
	// MeanAbsoluteError is nil for an empty window.
	MeanAbsoluteError *float64 `json:"meanAbsoluteError"`
	// CorrelationCoefficient is nil when there is not enough data.
	CorrelationCoefficient *float64 `json:"correlationCoefficient"`

	OverconfidentCount  int   `json:"overconfidentCount"`
	UnderconfidentCount int   `json:"underconfidentCount"`
	CalibratedCount     int   `json:"calibratedCount"`
	Trend               Trend `json:"trend"`
	ResponseCount       int   `json:"responseCount"`
}
