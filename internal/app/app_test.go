package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/calibra/internal/screen"
	"github.com/abhisek/calibra/internal/ui/layout"
)

type doneMsg struct{}

type stubScreen struct {
	updates int
}

func (s *stubScreen) Init() tea.Cmd { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) {
	s.updates++
	return s, nil
}
func (s *stubScreen) View(int, int) string { return "stub content" }
func (s *stubScreen) Title() string        { return "Stub" }
func (s *stubScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "X", Description: "Do thing"}}
}

func isDone(msg tea.Msg) bool {
	_, ok := msg.(doneMsg)
	return ok
}

func TestAppModel_QuitOn(t *testing.T) {
	s := &stubScreen{}
	m := newAppModel(s, "", isDone)

	_, cmd := m.Update(doneMsg{})
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
	assert.Zero(t, s.updates)
}

func TestAppModel_ForwardsMessages(t *testing.T) {
	s := &stubScreen{}
	m := newAppModel(s, "", isDone)
	m.Update(tea.KeyPressMsg{Code: 'a', Text: "a"})
	assert.Equal(t, 1, s.updates)
}

func TestAppModel_View(t *testing.T) {
	s := &stubScreen{}
	var model tea.Model = newAppModel(s, "user 1a2b", isDone)
	model, _ = model.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	frame := model.(AppModel).frame()
	assert.Contains(t, frame, "stub content")
	assert.Contains(t, frame, "Do thing")
	assert.Contains(t, frame, "Stub")
}

func TestAppModel_CtrlCQuits(t *testing.T) {
	s := &stubScreen{}
	m := newAppModel(s, "", nil)

	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
	assert.Zero(t, s.updates)
}

func TestAppModel_TooSmall(t *testing.T) {
	var model tea.Model = newAppModel(&stubScreen{}, "", nil)
	model, _ = model.Update(tea.WindowSizeMsg{Width: 40, Height: 10})

	frame := model.(AppModel).frame()
	assert.Contains(t, frame, "Terminal too small")
	assert.NotContains(t, frame, "stub content")
}
