package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/calibra/ent"
	"github.com/abhisek/calibra/ent/assessmentevent"
)

func (r *eventRepo) AppendAssessment(ctx context.Context, data AssessmentEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}

	ts := data.CreatedAt
	if ts.IsZero() {
		ts = time.Now()
	}

	_, err = r.client.AssessmentEvent.Create().
		SetSequence(seqNum).
		SetTimestamp(ts.UTC()).
		SetPromptID(data.PromptID).
		SetUserID(data.UserID).
		SetObjectiveID(data.ObjectiveID).
		SetPreConfidence(data.PreConfidence).
		SetNillablePostConfidence(data.PostConfidence).
		SetScore(data.Score).
		SetRationale(data.Rationale).
		SetReflectionNotes(data.ReflectionNotes).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save assessment event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryAssessments(ctx context.Context, userID string, opts QueryOpts) ([]AssessmentEventRecord, error) {
	q := r.client.AssessmentEvent.Query().
		Where(assessmentevent.UserID(userID))
	if opts.After > 0 {
		q = q.Where(assessmentevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(assessmentevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(assessmentevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(assessmentevent.TimestampLTE(opts.To))
	}

	// With a limit, keep the most recent rows but still return them
	// oldest first.
	var rows []*ent.AssessmentEvent
	var err error
	if opts.Limit > 0 {
		rows, err = q.Order(ent.Desc(assessmentevent.FieldSequence)).Limit(opts.Limit).All(ctx)
		for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
			rows[i], rows[j] = rows[j], rows[i]
		}
	} else {
		rows, err = q.Order(ent.Asc(assessmentevent.FieldSequence)).All(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("query assessments: %w", err)
	}

	out := make([]AssessmentEventRecord, 0, len(rows))
	for _, e := range rows {
		out = append(out, AssessmentEventRecord{
			ID:       e.ID,
			Sequence: e.Sequence,
			AssessmentEventData: AssessmentEventData{
				PromptID:        e.PromptID,
				UserID:          e.UserID,
				ObjectiveID:     e.ObjectiveID,
				PreConfidence:   e.PreConfidence,
				PostConfidence:  e.PostConfidence,
				Score:           e.Score,
				Rationale:       e.Rationale,
				ReflectionNotes: e.ReflectionNotes,
				CreatedAt:       e.Timestamp,
			},
		})
	}
	return out, nil
}
