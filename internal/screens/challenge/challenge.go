// Package challenge is the interactive controlled-failure screen: answer,
// rate confidence, optionally tag an emotion and jot a note, then review
// the graded attempt.
package challenge

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	cfl "github.com/abhisek/calibra/internal/challenge"
	"github.com/abhisek/calibra/internal/screen"
	"github.com/abhisek/calibra/internal/ui/components"
	"github.com/abhisek/calibra/internal/ui/layout"
)

// SubmitFunc grades and records a submission.
type SubmitFunc func(ctx context.Context, s cfl.Submission) (cfl.Attempt, error)

type phase int

const (
	phaseAnswer phase = iota
	phaseConfidence
	phaseEmotion
	phaseNotes
	phaseSubmitting
	phaseResult
)

const (
	submitTimeout = 30 * time.Second
	notesLimit    = 280
)

// ChallengeScreen walks one presented challenge through submission.
type ChallengeScreen struct {
	challenge    cfl.Challenge
	presentation cfl.Presentation
	submit       SubmitFunc

	phase      phase
	choices    components.MultiChoice
	confidence components.ConfidenceScale
	emotions   components.Menu
	emotion    cfl.EmotionTag
	notes      components.TextInput

	attempt *cfl.Attempt
	errMsg  string
}

var _ screen.Screen = (*ChallengeScreen)(nil)
var _ screen.Hinted = (*ChallengeScreen)(nil)

// New creates the screen for a presented challenge.
func New(c cfl.Challenge, p cfl.Presentation, submit SubmitFunc) *ChallengeScreen {
	choices := make([]components.Choice, len(c.Options))
	for i, o := range c.Options {
		choices[i] = components.Choice{ID: o.ID, Text: o.Text}
	}

	return &ChallengeScreen{
		challenge:    c,
		presentation: p,
		submit:       submit,
		choices:      components.NewMultiChoice(c.QuestionText, choices),
		confidence:   components.NewConfidenceScale(),
		emotions:     components.NewMenu(emotionItems()),
		notes:        components.NewTextInput("Anything to remember? (enter to skip)", notesLimit),
	}
}

func emotionItems() []components.MenuItem {
	items := make([]components.MenuItem, 0, len(cfl.AllEmotionTags)+1)
	for _, tag := range cfl.AllEmotionTags {
		items = append(items, components.MenuItem{
			Label:  emotionLabel(tag),
			Action: pick(tag),
		})
	}
	items = append(items, components.MenuItem{Label: "Skip", Action: pick("")})
	return items
}

func pick(tag cfl.EmotionTag) func() tea.Cmd {
	return func() tea.Cmd {
		return func() tea.Msg { return emotionPickedMsg{Tag: tag} }
	}
}

func emotionLabel(tag cfl.EmotionTag) string {
	s := string(tag)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Init returns nil.
func (s *ChallengeScreen) Init() tea.Cmd {
	return nil
}

// Title returns the screen title.
func (s *ChallengeScreen) Title() string {
	return "Controlled failure"
}

// Attempt returns the graded attempt once available.
func (s *ChallengeScreen) Attempt() *cfl.Attempt {
	return s.attempt
}

// Update advances through the answer flow.
func (s *ChallengeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case emotionPickedMsg:
		if s.phase == phaseEmotion {
			s.emotion = msg.Tag
			s.phase = phaseNotes
			return s, s.notes.Focus()
		}
		return s, nil

	case submittedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			s.phase = phaseNotes
			return s, nil
		}
		a := msg.Attempt
		s.attempt = &a
		s.errMsg = ""
		s.choices.Reveal(s.challenge.CorrectOption().ID)
		s.phase = phaseResult
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.phase == phaseNotes {
		var cmd tea.Cmd
		s.notes, cmd = s.notes.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *ChallengeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch s.phase {
	case phaseAnswer:
		s.choices, _ = s.choices.Update(msg)
		if s.choices.Chosen {
			s.phase = phaseConfidence
		}
		return s, nil

	case phaseConfidence:
		if msg.String() == "esc" {
			s.choices.Chosen = false
			s.phase = phaseAnswer
			return s, nil
		}
		s.confidence, _ = s.confidence.Update(msg)
		if s.confidence.Chosen {
			s.phase = phaseEmotion
		}
		return s, nil

	case phaseEmotion:
		var cmd tea.Cmd
		s.emotions, cmd = s.emotions.Update(msg)
		return s, cmd

	case phaseNotes:
		if msg.String() == "enter" {
			return s, s.startSubmit()
		}
		var cmd tea.Cmd
		s.notes, cmd = s.notes.Update(msg)
		return s, cmd

	case phaseResult:
		switch msg.String() {
		case "enter", "q", "esc", "space":
			attempt := s.attempt
			return s, func() tea.Msg { return DoneMsg{Attempt: attempt} }
		}
	}
	return s, nil
}

func (s *ChallengeScreen) startSubmit() tea.Cmd {
	s.phase = phaseSubmitting
	sub := cfl.Submission{
		UserAnswer:    s.choices.ChosenID(),
		Confidence:    s.confidence.Value,
		EmotionTag:    s.emotion,
		PersonalNotes: s.notes.Value(),
	}
	submit := s.submit
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), submitTimeout)
		defer cancel()
		a, err := submit(ctx, sub)
		return submittedMsg{Attempt: a, Err: err}
	}
}

// KeyHints returns hints for the current phase.
func (s *ChallengeScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseAnswer:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Move"},
			{Key: "A-E", Description: "Pick"},
			{Key: "Enter", Description: "Choose"},
		}
	case phaseConfidence:
		return []layout.KeyHint{
			{Key: "1-5", Description: "Rate"},
			{Key: "←→", Description: "Adjust"},
			{Key: "Esc", Description: "Change answer"},
		}
	case phaseEmotion:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Move"},
			{Key: "Enter", Description: "Select"},
		}
	case phaseNotes:
		return []layout.KeyHint{{Key: "Enter", Description: "Submit"}}
	case phaseResult:
		return []layout.KeyHint{{Key: "Enter", Description: "Done"}}
	}
	return nil
}
