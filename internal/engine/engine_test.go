package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/calibra/internal/benchmark"
	"github.com/abhisek/calibra/internal/calibration"
	"github.com/abhisek/calibra/internal/challenge"
	"github.com/abhisek/calibra/internal/store"
)

var testNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	s, err := store.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func newTestEngine(t *testing.T, s *store.Store, mutate func(*Options)) *Engine {
	t.Helper()
	bank, err := challenge.DefaultBank()
	require.NoError(t, err)

	opts := Options{
		Events:    s.EventRepo(),
		Peers:     s.PeerRepo(),
		Snapshots: s.PoolSnapshots(),
		Bank:      bank,
		Benchmark: benchmark.DefaultConfig(),
		Now:       func() time.Time { return testNow },
	}
	opts.Benchmark.MinPoolSize = 3
	if mutate != nil {
		mutate(&opts)
	}
	e, err := New(opts)
	require.NoError(t, err)
	t.Cleanup(e.Close)
	return e
}

func TestNewRequiresRepos(t *testing.T) {
	_, err := New(Options{})
	assert.Error(t, err)
}

func TestRecordAssessment(t *testing.T) {
	e := newTestEngine(t, openTestStore(t), nil)
	ctx := context.Background()

	res, err := e.RecordAssessment(ctx, calibration.Assessment{
		PromptID: "q1", UserID: "u1", ObjectiveID: "renal-aki",
		PreConfidence: 5, Score: 40,
	})
	require.NoError(t, err)
	assert.Equal(t, calibration.CategoryOverconfident, res.Category)
	assert.Equal(t, 60.0, res.CalibrationDelta)

	stored, err := e.Assessments(ctx, "u1", 0)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.True(t, stored[0].CreatedAt.Equal(testNow), "zero CreatedAt is stamped")
}

func TestRecordAssessmentInvalid(t *testing.T) {
	e := newTestEngine(t, openTestStore(t), nil)
	ctx := context.Background()

	_, err := e.RecordAssessment(ctx, calibration.Assessment{
		PromptID: "q1", UserID: "u1", ObjectiveID: "renal-aki",
		PreConfidence: 6, Score: 40,
	})
	assert.Equal(t, KindInvalidInput, ErrorKind(err))

	_, err = e.RecordAssessment(ctx, calibration.Assessment{
		PromptID: "q1", UserID: "u1", ObjectiveID: "renal-aki",
		PreConfidence: 3, Score: 101,
	})
	assert.Equal(t, KindInvalidInput, ErrorKind(err))

	stored, err := e.Assessments(ctx, "u1", 0)
	require.NoError(t, err)
	assert.Empty(t, stored, "rejected input must not be stored")
}

// failingRepo fails every assessment append.
type failingRepo struct {
	store.EventRepo
}

func (failingRepo) AppendAssessment(context.Context, store.AssessmentEventData) error {
	return errors.New("disk full")
}

func TestRecordAssessmentStorageFailureKeepsResult(t *testing.T) {
	s := openTestStore(t)
	e := newTestEngine(t, s, func(o *Options) { o.Events = failingRepo{EventRepo: s.EventRepo()} })

	res, err := e.RecordAssessment(context.Background(), calibration.Assessment{
		PromptID: "q1", UserID: "u1", ObjectiveID: "renal-aki",
		PreConfidence: 3, Score: 50,
	})
	require.NoError(t, err)
	assert.Equal(t, calibration.CategoryCalibrated, res.Category)
}

func recordSeries(t *testing.T, e *Engine, userID, objectiveID string, confs []int, scores []float64) {
	t.Helper()
	for i := range confs {
		_, err := e.RecordAssessment(context.Background(), calibration.Assessment{
			PromptID:      fmt.Sprintf("%s-q%d", userID, i),
			UserID:        userID,
			ObjectiveID:   objectiveID,
			PreConfidence: confs[i],
			Score:         scores[i],
			CreatedAt:     testNow.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}
}

func TestMetrics(t *testing.T) {
	e := newTestEngine(t, openTestStore(t), nil)

	empty, err := e.Metrics(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, empty.MeanAbsoluteError)
	assert.Nil(t, empty.CorrelationCoefficient)

	// Perfectly calibrated: normalized confidence equals score.
	recordSeries(t, e, "u1", "renal-aki",
		[]int{1, 2, 3, 4, 5},
		[]float64{0, 25, 50, 75, 100})

	m, err := e.Metrics(context.Background(), "u1")
	require.NoError(t, err)
	require.NotNil(t, m.MeanAbsoluteError)
	assert.Equal(t, 0.0, *m.MeanAbsoluteError)
	require.NotNil(t, m.CorrelationCoefficient)
	assert.InDelta(t, 1.0, *m.CorrelationCoefficient, 1e-9)
	assert.Equal(t, 5, m.CalibratedCount)
	assert.Equal(t, 5, m.ResponseCount)
}

func TestPatternsIncludeChallengeFailures(t *testing.T) {
	e := newTestEngine(t, openTestStore(t), nil)
	ctx := context.Background()

	recordSeries(t, e, "u1", "cardio-acs-ecg", []int{5, 5}, []float64{20, 30})

	c, _, err := e.PresentChallenge(ctx, "u1", "pharm-interactions")
	require.NoError(t, err)
	_, err = e.SubmitChallenge(ctx, "u1", c.ID, challenge.Submission{UserAnswer: "a", Confidence: 5})
	require.NoError(t, err)

	found, err := e.Patterns(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "Cardiology", found[0].Category)
	assert.Equal(t, 2, found[0].FailureCount)
	assert.Equal(t, "Pharmacology", found[1].Category)
	assert.Equal(t, []string{"pharm-interactions"}, found[1].AffectedObjectives)
}

func TestChallengeLifecycle(t *testing.T) {
	e := newTestEngine(t, openTestStore(t), nil)
	ctx := context.Background()

	c, p, err := e.PresentChallenge(ctx, "u1", "pharm-interactions")
	require.NoError(t, err)
	assert.Equal(t, "pharm-001", c.ID)
	assert.Equal(t, 1, p.AttemptNumber)
	assert.Nil(t, p.PreviousScore)

	again, _, err := e.PresentChallenge(ctx, "u1", "pharm-interactions")
	require.NoError(t, err)
	assert.Equal(t, c.ID, again.ID, "re-presenting returns the challenge on screen")

	wrong, err := e.SubmitChallenge(ctx, "u1", c.ID, challenge.Submission{
		UserAnswer: "a", Confidence: 4, EmotionTag: challenge.EmotionSurprised,
	})
	require.NoError(t, err)
	assert.False(t, wrong.IsCorrect)
	require.NotNil(t, wrong.Feedback)
	require.NoError(t, wrong.Feedback.Validate())
	require.Len(t, wrong.RetrySchedule, 5)
	assert.True(t, wrong.RetrySchedule[0].Equal(testNow.Add(24*time.Hour)))

	due, err := e.DueRetries(ctx, "u1", testNow.Add(25*time.Hour))
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, "pharm-001", due[0].ChallengeID)
	assert.Equal(t, 1, due[0].Stage)

	none, err := e.DueRetries(ctx, "u1", testNow.Add(time.Hour))
	require.NoError(t, err)
	assert.Empty(t, none)

	retry, p2, err := e.PresentChallenge(ctx, "u1", "pharm-interactions")
	require.NoError(t, err)
	assert.Equal(t, "pharm-001", retry.ID)
	assert.Equal(t, 2, p2.AttemptNumber)
	require.NotNil(t, p2.PreviousScore)
	assert.Equal(t, 0.0, *p2.PreviousScore)

	right, err := e.SubmitChallenge(ctx, "u1", retry.ID, challenge.Submission{UserAnswer: "b", Confidence: 3})
	require.NoError(t, err)
	assert.True(t, right.IsCorrect)
	assert.NotEmpty(t, right.CelebrationMessage)
	assert.Nil(t, right.Feedback)
	assert.Empty(t, right.RetrySchedule)

	due, err = e.DueRetries(ctx, "u1", testNow.Add(60*24*time.Hour))
	require.NoError(t, err)
	assert.Empty(t, due, "mastery cancels pending retries")

	status, err := e.ChallengeStatus(ctx, "u1", testNow)
	require.NoError(t, err)
	require.Len(t, status, 1)
	assert.Equal(t, challenge.StateMastered, status[0].State)
	assert.Equal(t, 2, status[0].Attempts)
	assert.Nil(t, status[0].NextRetry)

	history, err := e.ChallengeHistory(ctx, "u1", "pharm-interactions")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, 1, history[0].AttemptNumber)
	assert.Equal(t, 2, history[1].AttemptNumber)
}

func TestSubmitWithoutPresent(t *testing.T) {
	e := newTestEngine(t, openTestStore(t), nil)
	_, err := e.SubmitChallenge(context.Background(), "u1", "pharm-001", challenge.Submission{UserAnswer: "b", Confidence: 3})
	assert.Equal(t, KindInvalidTransition, ErrorKind(err))
}

func TestSubmitInvalidInputKeepsPresentation(t *testing.T) {
	e := newTestEngine(t, openTestStore(t), nil)
	ctx := context.Background()

	c, _, err := e.PresentChallenge(ctx, "u1", "pharm-interactions")
	require.NoError(t, err)

	_, err = e.SubmitChallenge(ctx, "u1", c.ID, challenge.Submission{UserAnswer: "b", Confidence: 0})
	assert.Equal(t, KindInvalidInput, ErrorKind(err))

	_, err = e.SubmitChallenge(ctx, "u1", c.ID, challenge.Submission{UserAnswer: "b", Confidence: 3, EmotionTag: "bored"})
	assert.Equal(t, KindInvalidInput, ErrorKind(err))

	a, err := e.SubmitChallenge(ctx, "u1", c.ID, challenge.Submission{UserAnswer: "b", Confidence: 3})
	require.NoError(t, err)
	assert.Equal(t, 1, a.AttemptNumber)
}

// flakyEvents fails the next challenge attempt append.
type flakyEvents struct {
	store.EventRepo
	failNext bool
}

func (f *flakyEvents) AppendChallengeAttempt(ctx context.Context, data store.ChallengeAttemptData) error {
	if f.failNext {
		f.failNext = false
		return errors.New("disk full")
	}
	return f.EventRepo.AppendChallengeAttempt(ctx, data)
}

func TestSubmitChallengeKeepsPresentationOnFailedAppend(t *testing.T) {
	s := openTestStore(t)
	events := &flakyEvents{EventRepo: s.EventRepo()}
	e := newTestEngine(t, s, func(o *Options) { o.Events = events })
	ctx := context.Background()

	c, _, err := e.PresentChallenge(ctx, "u1", "pharm-interactions")
	require.NoError(t, err)

	events.failNext = true
	_, err = e.SubmitChallenge(ctx, "u1", c.ID, challenge.Submission{UserAnswer: "a", Confidence: 4})
	require.ErrorContains(t, err, "disk full")

	attempt, err := e.SubmitChallenge(ctx, "u1", c.ID, challenge.Submission{UserAnswer: "a", Confidence: 4})
	require.NoError(t, err, "the challenge is still presented")
	assert.Equal(t, 1, attempt.AttemptNumber)

	history, err := e.ChallengeHistory(ctx, "u1", "pharm-interactions")
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestAbandonChallenge(t *testing.T) {
	e := newTestEngine(t, openTestStore(t), nil)
	ctx := context.Background()

	assert.Equal(t, KindInvalidTransition, ErrorKind(e.AbandonChallenge(ctx, "u1", "pharm-interactions")))

	_, _, err := e.PresentChallenge(ctx, "u1", "pharm-interactions")
	require.NoError(t, err)
	require.NoError(t, e.AbandonChallenge(ctx, "u1", "pharm-interactions"))

	_, err = e.SubmitChallenge(ctx, "u1", "pharm-001", challenge.Submission{UserAnswer: "b", Confidence: 3})
	assert.Equal(t, KindInvalidTransition, ErrorKind(err))
}

func TestPresentUnknownObjective(t *testing.T) {
	e := newTestEngine(t, openTestStore(t), nil)
	_, _, err := e.PresentChallenge(context.Background(), "u1", "dermatology")
	assert.Equal(t, KindNotFound, ErrorKind(err))
}

// seedPeer gives a learner enough varied data for a correlation.
func seedPeer(t *testing.T, e *Engine, userID string, i int) {
	t.Helper()
	base := []float64{5, 25, 45, 65, 80, 15}
	scores := make([]float64, len(base))
	for k, b := range base {
		scores[k] = b + float64((k*(i+1))%5)*4
	}
	recordSeries(t, e, userID, "cardio-acs-ecg", []int{1, 2, 3, 4, 5, 1}, scores)
	require.NoError(t, e.SetPeerOptIn(context.Background(), userID, true))
}

func TestBenchmarkRequiresOptIn(t *testing.T) {
	e := newTestEngine(t, openTestStore(t), nil)
	_, err := e.Benchmark(context.Background(), "u1")
	assert.ErrorIs(t, err, benchmark.ErrNotOptedIn)
	assert.Equal(t, KindPeerComparisonOff, ErrorKind(err))
}

func TestBenchmarkInsufficientPool(t *testing.T) {
	e := newTestEngine(t, openTestStore(t), nil)
	seedPeer(t, e, "me", 0)
	seedPeer(t, e, "p1", 1)
	seedPeer(t, e, "p2", 2)

	b, err := e.Benchmark(context.Background(), "me")
	assert.Nil(t, b, "no partial statistics")
	assert.Equal(t, KindInsufficientPeerPool, ErrorKind(err))
}

func TestBenchmarkAndOptOut(t *testing.T) {
	e := newTestEngine(t, openTestStore(t), nil)
	ctx := context.Background()
	seedPeer(t, e, "me", 0)
	for i := 1; i <= 4; i++ {
		seedPeer(t, e, fmt.Sprintf("p%d", i), i)
	}

	b, err := e.Benchmark(ctx, "me")
	require.NoError(t, err)
	assert.Equal(t, 4, b.PeerDistribution.PoolSize, "requester is excluded")
	require.NotNil(t, b.UserCorrelation)
	require.NotNil(t, b.UserPercentile)
	assert.NotEqual(t, benchmark.BandNotEnoughData, b.Band)
	assert.False(t, b.PoolRefreshedAt.IsZero())

	require.NoError(t, e.SetPeerOptIn(ctx, "p4", false))
	b, err = e.Benchmark(ctx, "me")
	require.NoError(t, err)
	assert.Equal(t, 3, b.PeerDistribution.PoolSize, "opt-out leaves the cached pool at once")

	require.NoError(t, e.SetPeerOptIn(ctx, "p3", false))
	_, err = e.Benchmark(ctx, "me")
	assert.Equal(t, KindInsufficientPeerPool, ErrorKind(err))
}

func TestPoolSnapshotRestore(t *testing.T) {
	s := openTestStore(t)
	e := newTestEngine(t, s, nil)
	ctx := context.Background()
	for i := 0; i < 4; i++ {
		seedPeer(t, e, fmt.Sprintf("p%d", i), i)
	}
	require.NoError(t, e.RefreshPool(ctx))
	stats := e.PoolStats()
	require.NotNil(t, stats)
	assert.Equal(t, 4, stats.Distribution.PoolSize)

	fresh := newTestEngine(t, s, nil)
	assert.Nil(t, fresh.PoolStats())
	restored, err := fresh.RestorePool(ctx)
	require.NoError(t, err)
	assert.True(t, restored)
	require.NotNil(t, fresh.PoolStats())
	assert.Equal(t, stats.Distribution.PoolSize, fresh.PoolStats().Distribution.PoolSize)
	assert.Equal(t, benchmark.SnapshotVersion, fresh.PoolStats().Version)
}

// countingPeers counts full pool listings.
type countingPeers struct {
	store.PeerRepo
	listings atomic.Int32
}

func (c *countingPeers) OptedInUsers(ctx context.Context) ([]string, error) {
	c.listings.Add(1)
	return c.PeerRepo.OptedInUsers(ctx)
}

func TestBenchmarkServedFromSnapshot(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	seeder := newTestEngine(t, s, nil)
	for i := 0; i < 4; i++ {
		seedPeer(t, seeder, fmt.Sprintf("p%d", i), i)
	}
	require.NoError(t, seeder.RefreshPool(ctx))

	peers := &countingPeers{PeerRepo: s.PeerRepo()}
	for range 3 {
		e := newTestEngine(t, s, func(o *Options) {
			o.Peers = peers
			o.Now = func() time.Time { return testNow.Add(time.Hour) }
		})
		b, err := e.Benchmark(ctx, "p0")
		require.NoError(t, err)
		assert.Equal(t, 3, b.PeerDistribution.PoolSize, "requester is excluded by key")
		assert.True(t, b.PoolRefreshedAt.Equal(testNow))
	}
	assert.Zero(t, peers.listings.Load(), "a fresh snapshot must not trigger a recompute")

	stale := newTestEngine(t, s, func(o *Options) {
		o.Peers = peers
		o.Now = func() time.Time { return testNow.Add(7 * time.Hour) }
	})
	b, err := stale.Benchmark(ctx, "p0")
	require.NoError(t, err)
	assert.EqualValues(t, 1, peers.listings.Load(), "a stale snapshot is recomputed once")
	assert.True(t, b.PoolRefreshedAt.Equal(testNow.Add(7*time.Hour)))
}

func TestSnapshotNeverStoresUserIDs(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	e := newTestEngine(t, s, func(o *Options) { o.HashSalt = "pepper" })
	for i := 0; i < 4; i++ {
		seedPeer(t, e, fmt.Sprintf("learner-%d", i), i)
	}
	require.NoError(t, e.RefreshPool(ctx))

	row, err := s.PoolSnapshots().Latest(ctx)
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, 4, row.Members)
	assert.NotContains(t, string(row.Payload), "learner-")
}

func TestOptOutRewritesSnapshot(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	e := newTestEngine(t, s, nil)
	for i := 0; i < 5; i++ {
		seedPeer(t, e, fmt.Sprintf("p%d", i), i)
	}
	require.NoError(t, e.RefreshPool(ctx))

	other := newTestEngine(t, s, nil)
	require.NoError(t, other.SetPeerOptIn(ctx, "p4", false))

	next := newTestEngine(t, s, nil)
	b, err := next.Benchmark(ctx, "p0")
	require.NoError(t, err)
	assert.Equal(t, 3, b.PeerDistribution.PoolSize, "opted-out member is gone from the persisted pool")
}

func TestRestorePoolWithoutSnapshot(t *testing.T) {
	e := newTestEngine(t, openTestStore(t), nil)
	restored, err := e.RestorePool(context.Background())
	require.NoError(t, err)
	assert.False(t, restored)
}

func TestOverconfidentTopics(t *testing.T) {
	as := []calibration.Assessment{
		{ObjectiveID: "cardio-acs-ecg", PreConfidence: 5, Score: 40},
		{ObjectiveID: "cardio-hf-drugs", PreConfidence: 5, Score: 60},
		{ObjectiveID: "renal-aki", PreConfidence: 3, Score: 50},
		{ObjectiveID: "unmapped", PreConfidence: 4, Score: 10},
	}
	bank, err := challenge.DefaultBank()
	require.NoError(t, err)

	got := overconfidentTopics(as, bank)
	require.Len(t, got, 2)
	assert.Equal(t, "Cardiology", got[0].Topic)
	assert.Equal(t, 50.0, got[0].AvgDelta)
	assert.Equal(t, "unmapped", got[1].Topic)
	assert.Equal(t, 65.0, got[1].AvgDelta)
}

func TestErrorKind(t *testing.T) {
	tests := []struct {
		err  error
		want Kind
	}{
		{nil, ""},
		{&calibration.InputError{Field: "x"}, KindInvalidInput},
		{fmt.Errorf("wrap: %w", &benchmark.PoolError{Have: 1, Need: 50}), KindInsufficientPeerPool},
		{benchmark.ErrNotOptedIn, KindPeerComparisonOff},
		{&challenge.TransitionError{From: challenge.StateNew, Op: "submit"}, KindInvalidTransition},
		{fmt.Errorf("record: %w", store.ErrDuplicateAttempt), KindDuplicateAttempt},
		{ErrNotFound, KindNotFound},
		{errors.New("boom"), KindInternal},
	}
	for _, tt := range tests {
		if got := ErrorKind(tt.err); got != tt.want {
			t.Errorf("ErrorKind(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
