package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/calibra/internal/ui/theme"
)

var confidenceLabels = [5]string{
	"Guessing",
	"Unsure",
	"Fairly sure",
	"Confident",
	"Certain",
}

// ConfidenceScale is a 1–5 self-rating selector.
type ConfidenceScale struct {
	Value  int
	Chosen bool
}

// NewConfidenceScale starts at the midpoint.
func NewConfidenceScale() ConfidenceScale {
	return ConfidenceScale{Value: 3}
}

// Update handles digits 1–5, left/right and enter.
func (c ConfidenceScale) Update(msg tea.Msg) (ConfidenceScale, tea.Cmd) {
	if c.Chosen {
		return c, nil
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch key := kmsg.String(); key {
	case "left", "h":
		if c.Value > 1 {
			c.Value--
		}
	case "right", "l":
		if c.Value < 5 {
			c.Value++
		}
	case "enter":
		c.Chosen = true
	case "1", "2", "3", "4", "5":
		c.Value = int(key[0] - '0')
		c.Chosen = true
	}
	return c, nil
}

// Label returns the description of the current value.
func (c ConfidenceScale) Label() string {
	return ConfidenceLabel(c.Value)
}

// ConfidenceLabel describes a 1–5 confidence rating.
func ConfidenceLabel(v int) string {
	if v < 1 || v > 5 {
		return ""
	}
	return confidenceLabels[v-1]
}

// View renders the scale.
func (c ConfidenceScale) View() string {
	parts := make([]string, 0, 5)
	for v := 1; v <= 5; v++ {
		cell := fmt.Sprintf(" %d ", v)
		if v == c.Value {
			parts = append(parts, lipgloss.NewStyle().Background(theme.Primary).Foreground(theme.Text).Bold(true).Render(cell))
		} else {
			parts = append(parts, theme.Muted.Render(cell))
		}
	}
	return strings.Join(parts, " ") + "  " + theme.Body.Render(c.Label())
}
