// Package app is the Bubble Tea shell around a single screen.
package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/calibra/internal/screen"
	"github.com/abhisek/calibra/internal/ui/layout"
)

var quitHint = layout.KeyHint{Key: "Ctrl+C", Description: "Quit"}

// AppModel hosts one screen inside the header and footer.
type AppModel struct {
	active screen.Screen
	status string

	// quitOn ends the program when it returns true for a message, before
	// the screen sees it.
	quitOn func(tea.Msg) bool

	width, height int
}

func newAppModel(s screen.Screen, status string, quitOn func(tea.Msg) bool) AppModel {
	if quitOn == nil {
		quitOn = func(tea.Msg) bool { return false }
	}
	return AppModel{active: s, status: status, quitOn: quitOn}
}

func (m AppModel) Init() tea.Cmd { return m.active.Init() }

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.quitOn(msg) {
		return m, tea.Quit
	}
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.active, cmd = m.active.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if m.width > 0 && m.height > 0 {
		v.SetContent(m.frame())
	}
	return v
}

func (m AppModel) frame() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.TooSmall(m.width, m.height)
	}
	header := layout.RenderHeader(m.active.Title(), m.status, m.width)
	footer := layout.RenderFooter(append(screen.Hints(m.active), quitHint), m.width)
	body := m.active.View(m.width, layout.ContentHeight(header, footer, m.height))
	return layout.RenderFrame(header, body, footer, m.width, m.height)
}

// Run shows s full-screen and blocks until Ctrl+C or until quitOn
// accepts a message.
func Run(s screen.Screen, status string, quitOn func(tea.Msg) bool) error {
	_, err := tea.NewProgram(newAppModel(s, status, quitOn)).Run()
	return err
}
