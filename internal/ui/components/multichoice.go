package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/calibra/internal/ui/theme"
)

// Choice is one labelled option.
type Choice struct {
	ID   string
	Text string
}

// MultiChoice is a multiple-choice selector. The correct answer is only
// known once Reveal is called, so nothing leaks before grading.
type MultiChoice struct {
	Question string
	Choices  []Choice
	Selected int
	Chosen   bool

	revealed  bool
	correctID string
}

// NewMultiChoice creates a new multiple-choice component.
func NewMultiChoice(question string, choices []Choice) MultiChoice {
	return MultiChoice{Question: question, Choices: choices}
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection. Letter keys pick an
// option by id.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Chosen {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Choices)-1 {
			m.Selected++
		}
	case "enter":
		m.Chosen = len(m.Choices) > 0
	default:
		for i, c := range m.Choices {
			if strings.EqualFold(c.ID, key) {
				m.Selected = i
				m.Chosen = true
				break
			}
		}
	}

	return m, nil
}

// ChosenID returns the id of the chosen option, or "".
func (m MultiChoice) ChosenID() string {
	if !m.Chosen || m.Selected >= len(m.Choices) {
		return ""
	}
	return m.Choices[m.Selected].ID
}

// Reveal marks the correct option after grading.
func (m *MultiChoice) Reveal(correctID string) {
	m.revealed = true
	m.correctID = correctID
}

// View renders the multiple-choice component.
func (m MultiChoice) View() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(m.Question))
	b.WriteString("\n\n")

	for i, c := range m.Choices {
		prefix := "  "
		if i == m.Selected && !m.Chosen {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s)  %s", prefix, strings.ToUpper(c.ID), c.Text)

		var style lipgloss.Style
		switch {
		case m.revealed && strings.EqualFold(c.ID, m.correctID):
			style = theme.Correct
			line += "  ✓"
		case m.revealed && m.Chosen && i == m.Selected:
			style = theme.Incorrect
			line += "  ✗"
		case m.revealed:
			style = theme.Muted
		case i == m.Selected:
			style = theme.Selected
		default:
			style = theme.Unselected
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	return b.String()
}
