package metrics

import (
	"fmt"
	"sort"

	"github.com/abhisek/calibra/internal/calibration"
)

// Aggregate computes calibration metrics over a window of responses.
// The input is not modified; responses are ordered by timestamp for the
// trend computation.
func Aggregate(responses []Response, cfg Config) Metrics {
	sorted := make([]Response, len(responses))
	copy(sorted, responses)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	m := Metrics{
		MeanAbsoluteError:      MeanAbsoluteError(sorted),
		CorrelationCoefficient: ResponseCorrelation(sorted),
		Trend:                  DetectTrend(sorted, cfg.Trend),
		ResponseCount:          len(sorted),
	}

	for _, r := range sorted {
		switch calibration.Categorize(r.Delta()) {
		case calibration.CategoryOverconfident:
			m.OverconfidentCount++
		case calibration.CategoryUnderconfident:
			m.UnderconfidentCount++
		default:
			m.CalibratedCount++
		}
	}
	return m
}

// FromAssessments converts assessments into aggregation input.
func FromAssessments(assessments []calibration.Assessment) ([]Response, error) {
	out := make([]Response, 0, len(assessments))
	for _, a := range assessments {
		normalized, err := calibration.NormalizeConfidence(a.PreConfidence)
		if err != nil {
			return nil, fmt.Errorf("assessment %s: %w", a.PromptID, err)
		}
		if err := calibration.ValidateScore(a.Score); err != nil {
			return nil, fmt.Errorf("assessment %s: %w", a.PromptID, err)
		}
		out = append(out, Response{
			ConfidenceNormalized: normalized,
			Score:                a.Score,
			Timestamp:            a.CreatedAt,
		})
	}
	return out, nil
}
