package calibration

import (
	"fmt"
	"math"
	"strconv"
)

func renderFeedback(category Category, normalized int, score float64) string {
	felt := fmt.Sprintf("%d%%", normalized)
	actual := formatPercent(score)

	switch category {
	case CategoryOverconfident:
		return fmt.Sprintf("You felt %s confident but scored %s. Your certainty exceeded accuracy, so check your reasoning before committing to an answer.", felt, actual)
	case CategoryUnderconfident:
		return fmt.Sprintf("You felt %s confident but scored %s. You know more than you think, so trust your understanding.", felt, actual)
	default:
		return fmt.Sprintf("Your confidence matches your performance: you felt %s confident and scored %s. You are well calibrated.", felt, actual)
	}
}

// formatPercent renders a 0-100 score with at most one decimal place.
func formatPercent(score float64) string {
	rounded := math.Round(score*10) / 10
	return strconv.FormatFloat(rounded, 'f', -1, 64) + "%"
}
