package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestAssessmentAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		err := repo.AppendAssessment(ctx, AssessmentEventData{
			PromptID:      "p" + string(rune('a'+i)),
			UserID:        "u1",
			ObjectiveID:   "renal-aki",
			PreConfidence: i + 1,
			Score:         float64(20 * i),
			CreatedAt:     base.Add(time.Duration(i) * time.Hour),
		})
		require.NoError(t, err)
	}
	require.NoError(t, repo.AppendAssessment(ctx, AssessmentEventData{
		PromptID: "other", UserID: "u2", PreConfidence: 3, Score: 50,
		PostConfidence: intPtr(4), Rationale: "guessed",
	}))

	all, err := repo.QueryAssessments(ctx, "u1", QueryOpts{})
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "pa", all[0].PromptID)
	assert.Equal(t, "pd", all[3].PromptID)
	assert.True(t, all[1].CreatedAt.Equal(base.Add(time.Hour)))
	assert.Less(t, all[0].Sequence, all[1].Sequence)

	recent, err := repo.QueryAssessments(ctx, "u1", QueryOpts{Limit: 2})
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "pc", recent[0].PromptID, "limited results stay oldest first")
	assert.Equal(t, "pd", recent[1].PromptID)

	from, err := repo.QueryAssessments(ctx, "u1", QueryOpts{From: base.Add(2 * time.Hour)})
	require.NoError(t, err)
	assert.Len(t, from, 2)

	other, err := repo.QueryAssessments(ctx, "u2", QueryOpts{})
	require.NoError(t, err)
	require.Len(t, other, 1)
	require.NotNil(t, other[0].PostConfidence)
	assert.Equal(t, 4, *other[0].PostConfidence)
	assert.Equal(t, "guessed", other[0].Rationale)
}

func sampleAttempt(n int, correct bool) ChallengeAttemptData {
	d := ChallengeAttemptData{
		AttemptID:     "att-" + string(rune('0'+n)),
		ChallengeID:   "aki-001",
		UserID:        "u1",
		ObjectiveID:   "renal-aki",
		UserAnswer:    "a",
		Confidence:    4,
		EmotionTag:    "surprised",
		IsCorrect:     correct,
		AttemptNumber: n,
		CreatedAt:     time.Date(2025, 6, n, 9, 0, 0, 0, time.UTC),
	}
	if n > 1 {
		d.PreviousScore = floatPtr(0)
	}
	if correct {
		d.Score = 100
		d.CelebrationMessage = "well done"
	} else {
		d.Feedback = &FeedbackData{
			MisconceptionExplained: "m",
			WhyAnswerWrong:         "w",
			CorrectConcept:         "c",
			ClinicalContext:        "k",
			MemoryAnchor:           MemoryAnchorData{Type: "mnemonic", Content: "x", Explanation: "y"},
		}
		d.RetrySchedule = []time.Time{d.CreatedAt.Add(24 * time.Hour), d.CreatedAt.Add(72 * time.Hour)}
	}
	return d
}

func TestChallengeAttemptRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendChallengeAttempt(ctx, sampleAttempt(1, false)))
	require.NoError(t, repo.AppendChallengeAttempt(ctx, sampleAttempt(2, true)))

	got, err := repo.QueryChallengeAttempts(ctx, "u1", "renal-aki")
	require.NoError(t, err)
	require.Len(t, got, 2)

	first := got[0]
	assert.Equal(t, 1, first.AttemptNumber)
	assert.False(t, first.IsCorrect)
	require.NotNil(t, first.Feedback)
	assert.Equal(t, "mnemonic", first.Feedback.MemoryAnchor.Type)
	require.Len(t, first.RetrySchedule, 2)
	assert.True(t, first.RetrySchedule[0].Equal(first.CreatedAt.Add(24*time.Hour)))
	assert.Nil(t, first.PreviousScore)
	assert.Equal(t, "surprised", first.EmotionTag)

	second := got[1]
	assert.True(t, second.IsCorrect)
	assert.Nil(t, second.Feedback)
	assert.Empty(t, second.RetrySchedule)
	require.NotNil(t, second.PreviousScore)
	assert.Equal(t, 0.0, *second.PreviousScore)
	assert.Equal(t, "well done", second.CelebrationMessage)

	all, err := repo.QueryChallengeAttempts(ctx, "u1", "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	none, err := repo.QueryChallengeAttempts(ctx, "u1", "cardio")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestChallengeAttemptDuplicate(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendChallengeAttempt(ctx, sampleAttempt(1, false)))

	// Same challenge, user and attempt number under a new attempt id.
	dup := sampleAttempt(1, false)
	dup.AttemptID = "att-other"
	err := repo.AppendChallengeAttempt(ctx, dup)
	assert.True(t, errors.Is(err, ErrDuplicateAttempt), "got %v", err)

	// Same attempt id replayed.
	err = repo.AppendChallengeAttempt(ctx, sampleAttempt(1, false))
	assert.ErrorIs(t, err, ErrDuplicateAttempt)

	got, err := repo.QueryChallengeAttempts(ctx, "u1", "renal-aki")
	require.NoError(t, err)
	assert.Len(t, got, 1, "duplicates must not be double counted")
}

func TestChallengeAttemptLineageNumberIsUnique(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendChallengeAttempt(ctx, sampleAttempt(1, false)))

	// A different challenge claiming the same slot in the lineage.
	clash := sampleAttempt(1, false)
	clash.AttemptID = "att-clash"
	clash.ChallengeID = "aki-002"
	assert.ErrorIs(t, repo.AppendChallengeAttempt(ctx, clash), ErrDuplicateAttempt)

	// The same slot in another objective's lineage is fine.
	other := clash
	other.AttemptID = "att-cardio"
	other.ObjectiveID = "cardio-acs-ecg"
	require.NoError(t, repo.AppendChallengeAttempt(ctx, other))

	got, err := repo.QueryChallengeAttempts(ctx, "u1", "renal-aki")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "aki-001", got[0].ChallengeID)
}

func TestLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "anthropic", Model: "m1", Purpose: "corrective-feedback",
		InputTokens: 10, OutputTokens: 20, Success: true,
		RequestBody: "[user]\nhi", ResponseBody: `{"ok":true}`,
	}))
	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "openai", Model: "m2", Purpose: "corrective-feedback", ErrorMessage: "rate limited",
	}))

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "m2", events[0].Model, "newest first")
	assert.False(t, events[0].Success)

	limited, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	e, err := repo.GetLLMEvent(ctx, events[1].ID)
	require.NoError(t, err)
	require.NotNil(t, e)
	assert.Equal(t, `{"ok":true}`, e.ResponseBody)
	assert.Equal(t, 20, e.OutputTokens)

	missing, err := repo.GetLLMEvent(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSequenceSharedAcrossEventTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendAssessment(ctx, AssessmentEventData{PromptID: "p", UserID: "u1", PreConfidence: 3, Score: 50}))
	require.NoError(t, repo.AppendChallengeAttempt(ctx, sampleAttempt(1, false)))
	require.NoError(t, repo.AppendAssessment(ctx, AssessmentEventData{PromptID: "q", UserID: "u1", PreConfidence: 3, Score: 50}))

	as, err := repo.QueryAssessments(ctx, "u1", QueryOpts{})
	require.NoError(t, err)
	require.Len(t, as, 2)
	assert.Equal(t, int64(1), as[0].Sequence)
	assert.Equal(t, int64(3), as[1].Sequence)
}

func TestPeerOptIn(t *testing.T) {
	s := openTestStore(t)
	repo := s.PeerRepo()
	ctx := context.Background()

	in, err := repo.IsOptedIn(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, in, "default is opt-out")

	require.NoError(t, repo.SetOptIn(ctx, "u1", true))
	require.NoError(t, repo.SetOptIn(ctx, "u2", true))
	require.NoError(t, repo.SetOptIn(ctx, "u3", false))

	in, err = repo.IsOptedIn(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, in)

	users, err := repo.OptedInUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"u1", "u2"}, users)

	require.NoError(t, repo.SetOptIn(ctx, "u1", false))
	users, err = repo.OptedInUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"u2"}, users)
}
