package challenge

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cfl "github.com/abhisek/calibra/internal/challenge"
	"github.com/abhisek/calibra/internal/screen"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testChallenge() cfl.Challenge {
	return cfl.Challenge{
		ID:                "acs-001",
		ObjectiveID:       "cardio-acs-ecg",
		QuestionText:      "Which lead group suggests an inferior MI?",
		VulnerabilityType: cfl.VulnMisconception,
		PromptType:        cfl.PromptControlledFailure,
		Options: []cfl.Option{
			{ID: "a", Text: "V1-V4"},
			{ID: "b", Text: "II, III, aVF", Correct: true},
			{ID: "c", Text: "I, aVL"},
		},
	}
}

type recordingSubmit struct {
	got     []cfl.Submission
	attempt cfl.Attempt
	err     error
}

func (r *recordingSubmit) fn(_ context.Context, s cfl.Submission) (cfl.Attempt, error) {
	r.got = append(r.got, s)
	return r.attempt, r.err
}

func update(t *testing.T, s screen.Screen, msg tea.Msg) (*ChallengeScreen, tea.Cmd) {
	t.Helper()
	next, cmd := s.Update(msg)
	cs, ok := next.(*ChallengeScreen)
	require.True(t, ok)
	return cs, cmd
}

// driveToNotes answers "a", rates 5 and picks the first emotion.
func driveToNotes(t *testing.T, s *ChallengeScreen) *ChallengeScreen {
	t.Helper()
	s, _ = update(t, s, keyPress('a'))
	require.Equal(t, phaseConfidence, s.phase)

	s, _ = update(t, s, keyPress('5'))
	require.Equal(t, phaseEmotion, s.phase)

	s, cmd := update(t, s, specialKey(tea.KeyEnter))
	require.NotNil(t, cmd)
	s, _ = update(t, s, cmd())
	require.Equal(t, phaseNotes, s.phase)
	return s
}

func TestChallengeScreen_Title(t *testing.T) {
	s := New(testChallenge(), cfl.Presentation{ChallengeID: "acs-001", AttemptNumber: 1}, nil)
	assert.Equal(t, "Controlled failure", s.Title())
}

func TestChallengeScreen_FullFlow(t *testing.T) {
	rec := &recordingSubmit{attempt: cfl.Attempt{
		ID:            "att-1",
		ChallengeID:   "acs-001",
		UserAnswer:    "a",
		Confidence:    5,
		IsCorrect:     false,
		AttemptNumber: 1,
		Feedback: &cfl.CorrectiveFeedback{
			CorrectConcept: "Inferior leads are II, III and aVF.",
		},
		RetrySchedule: []time.Time{time.Date(2025, 3, 11, 12, 0, 0, 0, time.UTC)},
	}}
	s := New(testChallenge(), cfl.Presentation{ChallengeID: "acs-001", AttemptNumber: 1}, rec.fn)
	s = driveToNotes(t, s)

	for _, r := range "check leads" {
		s, _ = update(t, s, keyPress(r))
	}
	s, cmd := update(t, s, specialKey(tea.KeyEnter))
	require.NotNil(t, cmd)
	assert.Equal(t, phaseSubmitting, s.phase)

	s, _ = update(t, s, cmd())
	require.Len(t, rec.got, 1)
	assert.Equal(t, "a", rec.got[0].UserAnswer)
	assert.Equal(t, 5, rec.got[0].Confidence)
	assert.Equal(t, cfl.EmotionConfident, rec.got[0].EmotionTag)
	assert.Equal(t, "check leads", rec.got[0].PersonalNotes)

	assert.Equal(t, phaseResult, s.phase)
	require.NotNil(t, s.Attempt())
	view := s.View(100, 40)
	assert.Contains(t, view, "Not quite")
	assert.Contains(t, view, "Inferior leads are II, III and aVF.")
	assert.Contains(t, view, "Retries scheduled")

	_, cmd = update(t, s, specialKey(tea.KeyEnter))
	require.NotNil(t, cmd)
	done, ok := cmd().(DoneMsg)
	require.True(t, ok)
	assert.Equal(t, "att-1", done.Attempt.ID)
}

func TestChallengeScreen_SkipEmotion(t *testing.T) {
	rec := &recordingSubmit{attempt: cfl.Attempt{IsCorrect: true, Score: 100, CelebrationMessage: "Nailed it"}}
	s := New(testChallenge(), cfl.Presentation{AttemptNumber: 2}, rec.fn)

	s, _ = update(t, s, keyPress('b'))
	s, _ = update(t, s, keyPress('3'))
	for range cfl.AllEmotionTags {
		s, _ = update(t, s, keyPress('j'))
	}
	s, cmd := update(t, s, specialKey(tea.KeyEnter))
	s, _ = update(t, s, cmd())
	s, cmd = update(t, s, specialKey(tea.KeyEnter))
	s, _ = update(t, s, cmd())

	require.Len(t, rec.got, 1)
	assert.Empty(t, rec.got[0].EmotionTag)
	assert.Empty(t, rec.got[0].PersonalNotes)
	assert.Contains(t, s.View(100, 40), "Nailed it")
}

func TestChallengeScreen_ChangeAnswer(t *testing.T) {
	s := New(testChallenge(), cfl.Presentation{AttemptNumber: 1}, nil)
	s, _ = update(t, s, keyPress('c'))
	require.Equal(t, phaseConfidence, s.phase)

	s, _ = update(t, s, specialKey(tea.KeyEscape))
	assert.Equal(t, phaseAnswer, s.phase)

	s, _ = update(t, s, keyPress('b'))
	assert.Equal(t, "b", s.choices.ChosenID())
}

func TestChallengeScreen_SubmitError(t *testing.T) {
	rec := &recordingSubmit{err: errors.New("storage unavailable")}
	s := New(testChallenge(), cfl.Presentation{AttemptNumber: 1}, rec.fn)
	s = driveToNotes(t, s)

	s, cmd := update(t, s, specialKey(tea.KeyEnter))
	s, _ = update(t, s, cmd())

	assert.Equal(t, phaseNotes, s.phase)
	assert.Nil(t, s.Attempt())
	assert.Contains(t, s.View(100, 40), "storage unavailable")
}

func TestChallengeScreen_NoRevealBeforeGrading(t *testing.T) {
	s := New(testChallenge(), cfl.Presentation{AttemptNumber: 1}, nil)
	before := s.View(100, 40)

	assert.True(t, strings.Contains(before, "II, III, aVF"))
	assert.NotContains(t, before, "✓")

	s.choices.Reveal("b")
	assert.Contains(t, s.View(100, 40), "✓")
}

func TestChallengeScreen_KeyHints(t *testing.T) {
	s := New(testChallenge(), cfl.Presentation{AttemptNumber: 1}, nil)
	assert.NotEmpty(t, s.KeyHints())
	s.phase = phaseResult
	hints := s.KeyHints()
	require.Len(t, hints, 1)
	assert.Equal(t, "Done", hints[0].Description)
}
