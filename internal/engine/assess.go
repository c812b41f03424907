package engine

import (
	"context"
	"fmt"

	"github.com/abhisek/calibra/internal/calibration"
	"github.com/abhisek/calibra/internal/metrics"
	"github.com/abhisek/calibra/internal/patterns"
	"github.com/abhisek/calibra/internal/store"
)

// RecordAssessment scores a graded response and appends it to the event
// log. A zero CreatedAt is stamped with the current time. Storage
// failures are logged and do not discard the computed result.
func (e *Engine) RecordAssessment(ctx context.Context, a calibration.Assessment) (calibration.Result, error) {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = e.now()
	}
	res, err := calibration.Score(a)
	if err != nil {
		return calibration.Result{}, err
	}

	if err := e.events.AppendAssessment(ctx, assessmentToData(a)); err != nil {
		e.log.Warn("failed to record assessment",
			"user_id", a.UserID,
			"prompt_id", a.PromptID,
			"error", err,
		)
	}
	e.log.Debug("assessment scored",
		"user_id", a.UserID,
		"objective_id", a.ObjectiveID,
		"category", res.Category,
		"delta", res.CalibrationDelta,
	)
	return res, nil
}

// Assessments returns a learner's assessments, oldest first. A positive
// limit keeps only the most recent ones.
func (e *Engine) Assessments(ctx context.Context, userID string, limit int) ([]calibration.Assessment, error) {
	if err := requireID("userId", userID); err != nil {
		return nil, err
	}
	rows, err := e.events.QueryAssessments(ctx, userID, store.QueryOpts{Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("query assessments: %w", err)
	}
	out := make([]calibration.Assessment, len(rows))
	for i, r := range rows {
		out[i] = recordToAssessment(r)
	}
	return out, nil
}

// Metrics recomputes a learner's calibration metrics from every stored
// assessment.
func (e *Engine) Metrics(ctx context.Context, userID string) (metrics.Metrics, error) {
	as, err := e.Assessments(ctx, userID, 0)
	if err != nil {
		return metrics.Metrics{}, err
	}
	rs, err := metrics.FromAssessments(as)
	if err != nil {
		return metrics.Metrics{}, fmt.Errorf("prepare metrics: %w", err)
	}
	return metrics.Aggregate(rs, e.metricsCfg), nil
}

// Patterns detects recurring failure clusters across a learner's
// assessments and controlled-failure attempts.
func (e *Engine) Patterns(ctx context.Context, userID string) ([]patterns.FailurePattern, error) {
	as, err := e.Assessments(ctx, userID, 0)
	if err != nil {
		return nil, err
	}
	rows, err := e.events.QueryChallengeAttempts(ctx, userID, "")
	if err != nil {
		return nil, fmt.Errorf("query challenge attempts: %w", err)
	}
	for _, r := range rows {
		as = append(as, attemptAsAssessment(dataToAttempt(r)))
	}

	found, err := patterns.Detect(as, patterns.Options{
		Config: e.patternsCfg,
		Topics: e.bank,
	})
	if err != nil {
		return nil, fmt.Errorf("detect patterns: %w", err)
	}
	return found, nil
}
