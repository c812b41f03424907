package metrics

import "math"

// MeanAbsoluteError returns mean(|confidence - score|), or nil when rs is empty.
func MeanAbsoluteError(rs []Response) *float64 {
	if len(rs) == 0 {
		return nil
	}
	sum := 0.0
	for _, r := range rs {
		sum += math.Abs(r.Delta())
	}
	mae := sum / float64(len(rs))
	return &mae
}

// Correlation returns the Pearson correlation of x and y, or nil when the
// series differ in length, have fewer than MinCorrelationPairs points, or
// either has zero variance.
//
// Means are subtracted before any products are summed so large offsets do
// not cancel catastrophically.
func Correlation(x, y []float64) *float64 {
	if len(x) != len(y) || len(x) < MinCorrelationPairs {
		return nil
	}

	mx, my := mean(x), mean(y)
	var sxy, sxx, syy float64
	for i := range x {
		dx := x[i] - mx
		dy := y[i] - my
		sxy += dx * dy
		sxx += dx * dx
		syy += dy * dy
	}
	if sxx == 0 || syy == 0 {
		return nil
	}

	r := sxy / (math.Sqrt(sxx) * math.Sqrt(syy))
	// Rounding can push |r| a hair past 1.
	r = math.Max(-1, math.Min(1, r))
	return &r
}

// ResponseCorrelation correlates normalized confidence with score.
func ResponseCorrelation(rs []Response) *float64 {
	x := make([]float64, len(rs))
	y := make([]float64, len(rs))
	for i, r := range rs {
		x[i] = float64(r.ConfidenceNormalized)
		y[i] = r.Score
	}
	return Correlation(x, y)
}

func mean(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}
