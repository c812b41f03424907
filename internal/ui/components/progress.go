package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/calibra/internal/ui/theme"
)

// ProgressBar displays a horizontal 0–100 gauge.
type ProgressBar struct {
	Label string
	// Percent is on the 0–100 scale.
	Percent float64
	Width   int
	Color   lipgloss.Style
}

// NewProgressBar creates a new gauge using the secondary color.
func NewProgressBar(label string, percent float64, width int) ProgressBar {
	return ProgressBar{
		Label:   label,
		Percent: percent,
		Width:   width,
		Color:   lipgloss.NewStyle().Background(theme.Secondary),
	}
}

// View renders the bar with a trailing percentage.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += theme.Body.Render(p.Label) + "  "
	}

	labelWidth := lipgloss.Width(result)
	barWidth := p.Width - labelWidth - 6
	if barWidth < 4 {
		barWidth = 4
	}

	pct := p.Percent
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := int(float64(barWidth) * pct / 100)
	empty := barWidth - filled

	result += p.Color.Render(strings.Repeat(" ", filled))
	result += lipgloss.NewStyle().Background(theme.Border).Render(strings.Repeat(" ", empty))
	result += theme.Muted.Render(fmt.Sprintf("  %3.0f%%", pct))

	return result
}
