package challenge

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/calibra/internal/calibration"
)

var now = time.Date(2025, 5, 2, 10, 0, 0, 0, time.UTC)

func testChallenge(id string) Challenge {
	return Challenge{
		ID:                id,
		ObjectiveID:       "renal-aki",
		QuestionText:      "Which finding supports a prerenal cause?",
		VulnerabilityType: VulnKnowledgeGap,
		PromptType:        PromptControlledFailure,
		Options: []Option{
			{ID: "a", Text: "Muddy brown casts"},
			{ID: "b", Text: "FENa below 1%", Correct: true},
			{ID: "c", Text: "Dilute urine"},
			{ID: "d", Text: "Red cell casts"},
		},
	}
}

func submission(answer string, at time.Time) Submission {
	return Submission{UserAnswer: answer, Confidence: 4, At: at}
}

func TestLineage_IncorrectSchedulesRetry(t *testing.T) {
	l := NewLineage("u1", "renal-aki")
	c := testChallenge("aki-1")

	p, err := l.Present(c)
	require.NoError(t, err)
	assert.Equal(t, StatePresented, l.State)
	assert.Equal(t, 1, p.AttemptNumber)
	assert.Nil(t, p.PreviousScore)
	assert.Empty(t, p.LastTimeMessage())

	a, err := l.Submit(context.Background(), c, submission("a", now), nil)
	require.NoError(t, err)

	assert.Equal(t, StateScheduledRetry, l.State)
	assert.False(t, a.IsCorrect)
	assert.Equal(t, 1, a.AttemptNumber)
	assert.Equal(t, ScoreIncorrect, a.Score)
	assert.NotEmpty(t, a.ID)
	require.NotNil(t, a.Feedback)
	require.NoError(t, a.Feedback.Validate())
	assert.Empty(t, a.CelebrationMessage)
	require.Len(t, a.RetrySchedule, 5)
	assert.True(t, a.RetrySchedule[0].Equal(now.Add(24*time.Hour)))
	assert.True(t, a.RetrySchedule[4].Equal(now.Add(30*24*time.Hour)))
}

func TestLineage_CloneIsIndependent(t *testing.T) {
	l := NewLineage("u1", "renal-aki")
	c := testChallenge("aki-1")
	_, err := l.Present(c)
	require.NoError(t, err)

	saved := l.Clone()
	_, err = l.Submit(context.Background(), c, submission("a", now), nil)
	require.NoError(t, err)

	assert.Equal(t, StatePresented, saved.State)
	assert.Empty(t, saved.Attempts)
	id, ok := saved.PresentedID()
	assert.True(t, ok)
	assert.Equal(t, "aki-1", id)

	a, err := saved.Submit(context.Background(), c, submission("b", now), nil)
	require.NoError(t, err)
	assert.True(t, a.IsCorrect)
	assert.Len(t, l.Attempts, 1)
}

func TestLineage_RetryThenMastery(t *testing.T) {
	l := NewLineage("u1", "renal-aki")
	c := testChallenge("aki-1")
	ctx := context.Background()

	_, err := l.Present(c)
	require.NoError(t, err)
	_, err = l.Submit(ctx, c, submission("a", now), nil)
	require.NoError(t, err)

	p, err := l.Present(c)
	require.NoError(t, err)
	assert.Equal(t, 2, p.AttemptNumber)
	require.NotNil(t, p.PreviousScore)
	assert.Equal(t, 0.0, *p.PreviousScore)
	assert.Equal(t, "Last time you scored 0%.", p.LastTimeMessage())

	a, err := l.Submit(ctx, c, submission("B", now.Add(24*time.Hour)), nil)
	require.NoError(t, err)
	assert.True(t, a.IsCorrect)
	assert.Equal(t, 2, a.AttemptNumber)
	assert.Equal(t, ScoreCorrect, a.Score)
	require.NotNil(t, a.PreviousScore)
	assert.Equal(t, 0.0, *a.PreviousScore)
	assert.Nil(t, a.Feedback)
	assert.Nil(t, a.RetrySchedule)
	assert.Contains(t, a.CelebrationMessage, "attempt 2")
	assert.Equal(t, StateMastered, l.State)
}

func TestLineage_MasteryCancelsRetries(t *testing.T) {
	l := NewLineage("u1", "renal-aki")
	c := testChallenge("aki-1")
	ctx := context.Background()

	_, _ = l.Present(c)
	_, err := l.Submit(ctx, c, submission("a", now), nil)
	require.NoError(t, err)
	assert.Len(t, l.DueRetries(now.Add(2*24*time.Hour)), 1)

	_, _ = l.Present(c)
	_, err = l.Submit(ctx, c, submission("b", now.Add(2*24*time.Hour)), nil)
	require.NoError(t, err)

	assert.Empty(t, l.DueRetries(now.Add(60*24*time.Hour)))
	assert.Nil(t, l.NextRetry(now))
}

func TestLineage_DueRetries(t *testing.T) {
	l := NewLineage("u1", "renal-aki")
	c := testChallenge("aki-1")
	_, _ = l.Present(c)
	_, err := l.Submit(context.Background(), c, submission("c", now), nil)
	require.NoError(t, err)

	assert.Empty(t, l.DueRetries(now.Add(time.Hour)))

	due := l.DueRetries(now.Add(4 * 24 * time.Hour))
	require.Len(t, due, 1)
	assert.Equal(t, 2, due[0].Stage)
	assert.Equal(t, "aki-1", due[0].ChallengeID)
	assert.True(t, due[0].DueAt.Equal(now.Add(3*24*time.Hour)))

	next := l.NextRetry(now.Add(4 * 24 * time.Hour))
	require.NotNil(t, next)
	assert.True(t, next.Equal(now.Add(7*24*time.Hour)))
}

func TestLineage_FirstTryCelebration(t *testing.T) {
	l := NewLineage("u1", "renal-aki")
	c := testChallenge("aki-1")
	_, _ = l.Present(c)
	a, err := l.Submit(context.Background(), c, submission("b", now), nil)
	require.NoError(t, err)
	assert.Equal(t, "Correct on the first try. Your confidence was earned.", a.CelebrationMessage)
	assert.Nil(t, a.PreviousScore)
}

func TestLineage_InvalidTransitions(t *testing.T) {
	c := testChallenge("aki-1")
	ctx := context.Background()

	t.Run("submit without present", func(t *testing.T) {
		l := NewLineage("u1", "renal-aki")
		_, err := l.Submit(ctx, c, submission("a", now), nil)
		assert.True(t, errors.Is(err, ErrInvalidTransition), "got %v", err)
		assert.Equal(t, StateNew, l.State)
		assert.Empty(t, l.Attempts)
	})

	t.Run("submit twice", func(t *testing.T) {
		l := NewLineage("u1", "renal-aki")
		_, _ = l.Present(c)
		_, err := l.Submit(ctx, c, submission("a", now), nil)
		require.NoError(t, err)
		_, err = l.Submit(ctx, c, submission("a", now), nil)
		assert.True(t, errors.Is(err, ErrInvalidTransition), "got %v", err)
		assert.Len(t, l.Attempts, 1)
	})

	t.Run("present a different challenge while presented", func(t *testing.T) {
		l := NewLineage("u1", "renal-aki")
		_, _ = l.Present(c)
		_, err := l.Present(testChallenge("aki-2"))
		assert.True(t, errors.Is(err, ErrInvalidTransition), "got %v", err)

		// Re-presenting the same challenge is fine.
		_, err = l.Present(c)
		assert.NoError(t, err)
	})

	t.Run("submit a different challenge", func(t *testing.T) {
		l := NewLineage("u1", "renal-aki")
		_, _ = l.Present(c)
		_, err := l.Submit(ctx, testChallenge("aki-2"), submission("a", now), nil)
		assert.True(t, errors.Is(err, ErrInvalidTransition), "got %v", err)
	})

	t.Run("abandon", func(t *testing.T) {
		l := NewLineage("u1", "renal-aki")
		assert.Error(t, l.Abandon())
		_, _ = l.Present(c)
		require.NoError(t, l.Abandon())
		assert.Equal(t, StateNew, l.State)
	})

	t.Run("wrong objective", func(t *testing.T) {
		l := NewLineage("u1", "cardio-acs-ecg")
		_, err := l.Present(c)
		assert.True(t, errors.Is(err, calibration.ErrInvalidInput), "got %v", err)
	})
}

func TestLineage_ValidatesBeforeTransition(t *testing.T) {
	c := testChallenge("aki-1")
	tests := []struct {
		name string
		sub  Submission
	}{
		{"bad emotion", Submission{UserAnswer: "a", Confidence: 3, EmotionTag: "bored", At: now}},
		{"confidence too low", Submission{UserAnswer: "a", Confidence: 0, At: now}},
		{"confidence too high", Submission{UserAnswer: "a", Confidence: 6, At: now}},
		{"empty answer", Submission{UserAnswer: " ", Confidence: 3, At: now}},
		{"unknown option", Submission{UserAnswer: "e", Confidence: 3, At: now}},
		{"missing time", Submission{UserAnswer: "a", Confidence: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLineage("u1", "renal-aki")
			_, _ = l.Present(c)
			_, err := l.Submit(context.Background(), c, tt.sub, nil)
			assert.True(t, errors.Is(err, calibration.ErrInvalidInput), "got %v", err)
			assert.Equal(t, StatePresented, l.State)
			assert.Empty(t, l.Attempts)
		})
	}
}

func TestLineage_AcceptsKnownEmotion(t *testing.T) {
	l := NewLineage("u1", "renal-aki")
	c := testChallenge("aki-1")
	_, _ = l.Present(c)
	sub := submission("a", now)
	sub.EmotionTag = EmotionSurprised
	sub.PersonalNotes = "mixed up casts"
	a, err := l.Submit(context.Background(), c, sub, nil)
	require.NoError(t, err)
	assert.Equal(t, EmotionSurprised, a.EmotionTag)
	assert.Equal(t, "mixed up casts", a.PersonalNotes)
}

func TestLineage_FeedbackFailureLeavesStateUntouched(t *testing.T) {
	l := NewLineage("u1", "renal-aki")
	c := testChallenge("aki-1")
	_, _ = l.Present(c)

	_, err := l.Submit(context.Background(), c, submission("a", now), Chain{AuthoredFeedback{}})
	assert.ErrorIs(t, err, ErrNoFeedback)
	assert.Equal(t, StatePresented, l.State)
	assert.Empty(t, l.Attempts)
}

func TestReplay(t *testing.T) {
	ctx := context.Background()
	c := testChallenge("aki-1")
	orig := NewLineage("u1", "renal-aki")
	_, _ = orig.Present(c)
	_, err := orig.Submit(ctx, c, submission("a", now), nil)
	require.NoError(t, err)
	_, _ = orig.Present(c)
	_, err = orig.Submit(ctx, c, submission("d", now.Add(24*time.Hour)), nil)
	require.NoError(t, err)

	// Stored order is not guaranteed.
	stored := []Attempt{orig.Attempts[1], orig.Attempts[0]}
	l, err := Replay("u1", "renal-aki", stored)
	require.NoError(t, err)
	assert.Equal(t, StateScheduledRetry, l.State)
	assert.Len(t, l.Attempts, 2)

	p, err := l.Present(c)
	require.NoError(t, err)
	assert.Equal(t, 3, p.AttemptNumber)

	empty, err := Replay("u1", "renal-aki", nil)
	require.NoError(t, err)
	assert.Equal(t, StateNew, empty.State)
}

func TestReplay_Corrupt(t *testing.T) {
	a := Attempt{ID: "x", UserID: "u1", ObjectiveID: "renal-aki", AttemptNumber: 2}
	_, err := Replay("u1", "renal-aki", []Attempt{a})
	assert.ErrorIs(t, err, ErrCorruptLineage)

	b := Attempt{ID: "y", UserID: "u2", ObjectiveID: "renal-aki", AttemptNumber: 1}
	_, err = Replay("u1", "renal-aki", []Attempt{b})
	assert.ErrorIs(t, err, ErrCorruptLineage)
}

func TestEmotionTag_Valid(t *testing.T) {
	for _, e := range AllEmotionTags {
		assert.True(t, e.Valid(), e)
	}
	assert.False(t, EmotionTag("").Valid())
	assert.False(t, EmotionTag("CONFIDENT").Valid())
}
