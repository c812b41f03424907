package components

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
)

func key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestMultiChoice_PickByID(t *testing.T) {
	m := NewMultiChoice("Q", []Choice{{ID: "a", Text: "one"}, {ID: "b", Text: "two"}})
	assert.Empty(t, m.ChosenID())

	m, _ = m.Update(key('B'))
	assert.True(t, m.Chosen)
	assert.Equal(t, "b", m.ChosenID())

	m, _ = m.Update(key('a'))
	assert.Equal(t, "b", m.ChosenID(), "chosen answer is locked")
}

func TestMultiChoice_Navigate(t *testing.T) {
	m := NewMultiChoice("Q", []Choice{{ID: "a"}, {ID: "b"}, {ID: "c"}})
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 2, m.Selected)

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Equal(t, "c", m.ChosenID())
}

func TestMultiChoice_Reveal(t *testing.T) {
	m := NewMultiChoice("Q", []Choice{{ID: "a", Text: "one"}, {ID: "b", Text: "two"}})
	m, _ = m.Update(key('a'))
	assert.NotContains(t, m.View(), "✓")

	m.Reveal("b")
	view := m.View()
	assert.Contains(t, view, "✓")
	assert.Contains(t, view, "✗")
}

func TestConfidenceScale(t *testing.T) {
	c := NewConfidenceScale()
	assert.Equal(t, 3, c.Value)

	c, _ = c.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	c, _ = c.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	c, _ = c.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	assert.Equal(t, 5, c.Value)
	assert.False(t, c.Chosen)

	c, _ = c.Update(key('2'))
	assert.True(t, c.Chosen)
	assert.Equal(t, 2, c.Value)
	assert.Equal(t, "Unsure", c.Label())
	assert.Empty(t, ConfidenceLabel(0))
}

func TestMenu_SkipsDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "x", Disabled: true}, {Label: "y"}, {Label: "z"}})
	assert.Equal(t, 1, m.Selected)

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, 1, m.Selected)
}
