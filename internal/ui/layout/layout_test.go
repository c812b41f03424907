package layout

import (
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
)

func TestIsTooSmall(t *testing.T) {
	assert.True(t, IsTooSmall(79, 24))
	assert.True(t, IsTooSmall(80, 23))
	assert.False(t, IsTooSmall(80, 24))
}

func TestRenderHeader(t *testing.T) {
	h := RenderHeader("Controlled failure", "2 retries due", 100)
	assert.Contains(t, h, "Calibra")
	assert.Contains(t, h, "Controlled failure")
	assert.Contains(t, h, "2 retries due")
}

func TestRenderFooter(t *testing.T) {
	f := RenderFooter([]KeyHint{{Key: "Enter", Description: "Submit"}}, 80)
	assert.Contains(t, f, "Enter")
	assert.Contains(t, f, "Submit")
}

func TestRenderFrame_FillsHeight(t *testing.T) {
	header := RenderHeader("T", "", 80)
	footer := RenderFooter(nil, 80)
	frame := RenderFrame(header, "body", footer, 80, 30)

	assert.Equal(t, 30, lipgloss.Height(frame))
	assert.Equal(t, 30-lipgloss.Height(header)-lipgloss.Height(footer), ContentHeight(header, footer, 30))
	assert.Zero(t, ContentHeight(header, footer, 2))
}

func TestTooSmall(t *testing.T) {
	msg := TooSmall(60, 20)
	assert.Contains(t, msg, "60x20")
	assert.Contains(t, msg, "80x24")
}
