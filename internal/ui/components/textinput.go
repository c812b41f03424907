package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// TextInput is a focused single-line field for free text such as
// personal notes.
type TextInput struct {
	Model textinput.Model
}

// NewTextInput returns a focused field. A positive limit caps its length.
func NewTextInput(placeholder string, limit int) TextInput {
	m := textinput.New()
	m.Placeholder = placeholder
	if limit > 0 {
		m.CharLimit = limit
	}
	m.Focus()
	return TextInput{Model: m}
}

// Focus re-focuses the field when a screen switches to it.
func (t *TextInput) Focus() tea.Cmd { return t.Model.Focus() }

func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	m, cmd := t.Model.Update(msg)
	t.Model = m
	return t, cmd
}

func (t TextInput) View() string { return t.Model.View() }

// Value is the entered text without surrounding space.
func (t TextInput) Value() string { return strings.TrimSpace(t.Model.Value()) }
