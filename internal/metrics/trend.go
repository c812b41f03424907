package metrics

// DetectTrend compares calibration error between an earlier and a later
// slice of chronologically sorted responses. A drop in MAE larger than the
// threshold is an improvement; a rise larger than it is a regression.
func DetectTrend(sorted []Response, cfg TrendConfig) Trend {
	earlier, later := splitForTrend(sorted, cfg)
	if earlier == nil || later == nil {
		return TrendStable
	}

	before := MeanAbsoluteError(earlier)
	after := MeanAbsoluteError(later)
	improvement := *before - *after

	switch {
	case improvement > cfg.Threshold:
		return TrendImproving
	case improvement < -cfg.Threshold:
		return TrendWorsening
	default:
		return TrendStable
	}
}

func splitForTrend(sorted []Response, cfg TrendConfig) (earlier, later []Response) {
	minSide := cfg.MinPerSide
	if minSide < 1 {
		minSide = 1
	}

	n := len(sorted)
	switch cfg.Policy {
	case PolicyHalves:
		mid := n / 2
		if mid < minSide || n-mid < minSide {
			return nil, nil
		}
		return sorted[:mid], sorted[mid:]
	default:
		w := cfg.Window
		if w < minSide || n < w+minSide {
			return nil, nil
		}
		// The earlier window may be partial once it has minSide responses.
		return sorted[max(0, n-2*w) : n-w], sorted[n-w:]
	}
}
