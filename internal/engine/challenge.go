package engine

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/abhisek/calibra/internal/challenge"
)

// LineageSummary is the read-time status of one objective's lineage.
type LineageSummary struct {
	ObjectiveID   string          `json:"objectiveId"`
	State         challenge.State `json:"state"`
	Attempts      int             `json:"attempts"`
	LastScore     *float64        `json:"lastScore,omitempty"`
	LastAttemptAt time.Time       `json:"lastAttemptAt"`
	NextRetry     *time.Time      `json:"nextRetry,omitempty"`
}

// PresentChallenge selects and presents the next challenge for a
// learner's objective. A lineage awaiting retry is shown the challenge it
// last failed. Presenting again before submitting returns the same
// challenge.
func (e *Engine) PresentChallenge(ctx context.Context, userID, objectiveID string) (challenge.Challenge, challenge.Presentation, error) {
	if err := requireID("userId", userID); err != nil {
		return challenge.Challenge{}, challenge.Presentation{}, err
	}
	if _, ok := e.bank.Objective(objectiveID); !ok {
		return challenge.Challenge{}, challenge.Presentation{}, fmt.Errorf("objective %q: %w", objectiveID, ErrNotFound)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	key := lineageKey{userID: userID, objectiveID: objectiveID}
	l, ok := e.active[key]
	if !ok {
		var err error
		if l, err = e.replay(ctx, userID, objectiveID); err != nil {
			return challenge.Challenge{}, challenge.Presentation{}, err
		}
	}

	c, ok := e.pick(l)
	if !ok {
		return challenge.Challenge{}, challenge.Presentation{}, fmt.Errorf("challenges for objective %q: %w", objectiveID, ErrNotFound)
	}
	p, err := l.Present(c)
	if err != nil {
		return challenge.Challenge{}, challenge.Presentation{}, err
	}
	e.active[key] = l
	return c, p, nil
}

func (e *Engine) pick(l *challenge.Lineage) (challenge.Challenge, bool) {
	if id, ok := l.PresentedID(); ok {
		return e.bank.Challenge(id)
	}
	if l.State == challenge.StateScheduledRetry {
		if last, ok := l.LastAttempt(); ok {
			if c, ok := e.bank.Challenge(last.ChallengeID); ok {
				return c, true
			}
		}
	}
	return e.bank.Next(l)
}

// SubmitChallenge grades an answer to a presented challenge and appends
// the attempt to the event log. Unlike assessments, a failed append is
// returned: the attempt is the submission's only record, and the
// challenge stays presented so the learner can submit again.
func (e *Engine) SubmitChallenge(ctx context.Context, userID, challengeID string, s challenge.Submission) (challenge.Attempt, error) {
	if err := requireID("userId", userID); err != nil {
		return challenge.Attempt{}, err
	}
	c, ok := e.bank.Challenge(challengeID)
	if !ok {
		return challenge.Attempt{}, fmt.Errorf("challenge %q: %w", challengeID, ErrNotFound)
	}
	if s.At.IsZero() {
		s.At = e.now()
	}

	key := lineageKey{userID: userID, objectiveID: c.ObjectiveID}
	l, claimed := e.claim(key)
	if !claimed {
		// Nothing presented in this process; replaying lets Submit report
		// the lineage's real state.
		var err error
		if l, err = e.replay(ctx, userID, c.ObjectiveID); err != nil {
			return challenge.Attempt{}, err
		}
	}

	before := l.Clone()
	attempt, err := l.Submit(ctx, c, s, e.feedback)
	if err != nil {
		if claimed && l.State == challenge.StatePresented {
			e.release(key, l)
		}
		return challenge.Attempt{}, err
	}

	if err := e.events.AppendChallengeAttempt(ctx, attemptToData(attempt)); err != nil {
		if claimed {
			e.release(key, before)
		}
		return challenge.Attempt{}, fmt.Errorf("record challenge attempt: %w", err)
	}
	e.log.Info("challenge attempt recorded",
		"user_id", userID,
		"challenge_id", c.ID,
		"attempt", attempt.AttemptNumber,
		"correct", attempt.IsCorrect,
	)
	return attempt, nil
}

// AbandonChallenge withdraws the challenge presented for an objective
// without recording an attempt.
func (e *Engine) AbandonChallenge(ctx context.Context, userID, objectiveID string) error {
	key := lineageKey{userID: userID, objectiveID: objectiveID}
	l, claimed := e.claim(key)
	if !claimed {
		var err error
		if l, err = e.replay(ctx, userID, objectiveID); err != nil {
			return err
		}
	}
	return l.Abandon()
}

// claim removes a presented lineage from the active set so only one
// submission can act on it.
func (e *Engine) claim(key lineageKey) (*challenge.Lineage, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	l, ok := e.active[key]
	if ok {
		delete(e.active, key)
	}
	return l, ok
}

func (e *Engine) release(key lineageKey, l *challenge.Lineage) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.active[key] = l
}

func (e *Engine) replay(ctx context.Context, userID, objectiveID string) (*challenge.Lineage, error) {
	rows, err := e.events.QueryChallengeAttempts(ctx, userID, objectiveID)
	if err != nil {
		return nil, fmt.Errorf("query challenge attempts: %w", err)
	}
	attempts := make([]challenge.Attempt, len(rows))
	for i, r := range rows {
		attempts[i] = dataToAttempt(r)
	}
	return challenge.Replay(userID, objectiveID, attempts)
}

// lineages replays every lineage a learner has started, ordered by
// objective id.
func (e *Engine) lineages(ctx context.Context, userID string) ([]*challenge.Lineage, error) {
	if err := requireID("userId", userID); err != nil {
		return nil, err
	}
	rows, err := e.events.QueryChallengeAttempts(ctx, userID, "")
	if err != nil {
		return nil, fmt.Errorf("query challenge attempts: %w", err)
	}

	byObjective := make(map[string][]challenge.Attempt)
	for _, r := range rows {
		byObjective[r.ObjectiveID] = append(byObjective[r.ObjectiveID], dataToAttempt(r))
	}
	objectives := make([]string, 0, len(byObjective))
	for id := range byObjective {
		objectives = append(objectives, id)
	}
	sort.Strings(objectives)

	out := make([]*challenge.Lineage, 0, len(objectives))
	for _, id := range objectives {
		l, err := challenge.Replay(userID, id, byObjective[id])
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, nil
}

// DueRetries lists the retries that have come due by now, earliest first.
// Due retries are derived from stored schedules at read time.
func (e *Engine) DueRetries(ctx context.Context, userID string, now time.Time) ([]challenge.DueRetry, error) {
	ls, err := e.lineages(ctx, userID)
	if err != nil {
		return nil, err
	}
	var due []challenge.DueRetry
	for _, l := range ls {
		due = append(due, l.DueRetries(now)...)
	}
	sort.SliceStable(due, func(i, j int) bool {
		return due[i].DueAt.Before(due[j].DueAt)
	})
	return due, nil
}

// ChallengeStatus summarises every lineage a learner has started.
func (e *Engine) ChallengeStatus(ctx context.Context, userID string, now time.Time) ([]LineageSummary, error) {
	ls, err := e.lineages(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]LineageSummary, 0, len(ls))
	for _, l := range ls {
		s := LineageSummary{
			ObjectiveID: l.ObjectiveID,
			State:       l.State,
			Attempts:    len(l.Attempts),
			NextRetry:   l.NextRetry(now),
		}
		if last, ok := l.LastAttempt(); ok {
			score := last.Score
			s.LastScore = &score
			s.LastAttemptAt = last.CreatedAt
		}
		out = append(out, s)
	}
	return out, nil
}

// ChallengeHistory returns a learner's attempts for one objective in
// attempt order.
func (e *Engine) ChallengeHistory(ctx context.Context, userID, objectiveID string) ([]challenge.Attempt, error) {
	if err := requireID("userId", userID); err != nil {
		return nil, err
	}
	l, err := e.replay(ctx, userID, objectiveID)
	if err != nil {
		return nil, err
	}
	return l.Attempts, nil
}
