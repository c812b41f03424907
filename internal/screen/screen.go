// Package screen is the contract between the app shell and the views it
// hosts.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/calibra/internal/ui/layout"
)

// Screen is a full-screen view. The shell draws the header and footer and
// gives View whatever space is left between them.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View(width, height int) string
	Title() string
}

// Hinted is implemented by screens that advertise their own keys in the
// footer.
type Hinted interface {
	KeyHints() []layout.KeyHint
}

// Hints returns s's footer keys, or nil when it has none.
func Hints(s Screen) []layout.KeyHint {
	if h, ok := s.(Hinted); ok {
		return h.KeyHints()
	}
	return nil
}
