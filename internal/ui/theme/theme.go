// Package theme holds the palette and shared lipgloss styles.
package theme

import "charm.land/lipgloss/v2"

// Palette: slate backgrounds, a clinical blue for focus, green and rose
// for right and wrong.
var (
	Primary   = lipgloss.Color("#3B82F6")
	Secondary = lipgloss.Color("#14B8A6")
	Accent    = lipgloss.Color("#F59E0B")
	Success   = lipgloss.Color("#22C55E")
	Error     = lipgloss.Color("#F43F5E")
	Text      = lipgloss.Color("#F8FAFC")
	TextDim   = lipgloss.Color("#94A3B8")
	BgCard    = lipgloss.Color("#1E293B")
	Border    = lipgloss.Color("#334155")
)

var (
	Body       = lipgloss.NewStyle().Foreground(Text)
	Subtitle   = lipgloss.NewStyle().Foreground(TextDim)
	Muted      = Subtitle
	Hint       = Subtitle.Italic(true)
	Section    = lipgloss.NewStyle().Foreground(Secondary).Bold(true)
	Selected   = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	Unselected = Body
	Correct    = lipgloss.NewStyle().Foreground(Success).Bold(true)
	Incorrect  = lipgloss.NewStyle().Foreground(Error).Bold(true)

	// Card frames the main content block.
	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)
