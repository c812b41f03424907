package store

import (
	"context"
	"fmt"

	"github.com/abhisek/calibra/ent"
	"github.com/abhisek/calibra/ent/llmrequestevent"
	"github.com/abhisek/calibra/ent/predicate"
)

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seq, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}
	err = r.client.LLMRequestEvent.Create().
		SetSequence(seq).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorClass(data.ErrorClass).
		SetErrorMessage(data.ErrorMessage).
		SetRequestBody(data.RequestBody).
		SetResponseBody(data.ResponseBody).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("append llm request: %w", err)
	}
	return nil
}

// llmEventFilter turns opts into predicates; zero fields add nothing.
func llmEventFilter(opts QueryOpts) []predicate.LLMRequestEvent {
	var ps []predicate.LLMRequestEvent
	if opts.After > 0 {
		ps = append(ps, llmrequestevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		ps = append(ps, llmrequestevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		ps = append(ps, llmrequestevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		ps = append(ps, llmrequestevent.TimestampLTE(opts.To))
	}
	return ps
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error) {
	q := r.client.LLMRequestEvent.Query().
		Where(llmEventFilter(opts)...).
		Order(ent.Desc(llmrequestevent.FieldSequence))
	if opts.Limit > 0 {
		q.Limit(opts.Limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query llm events: %w", err)
	}
	out := make([]LLMRequestEventRecord, len(rows))
	for i, row := range rows {
		out[i] = llmRecord(row)
	}
	return out, nil
}

func (r *eventRepo) GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error) {
	row, err := r.client.LLMRequestEvent.Get(ctx, id)
	switch {
	case ent.IsNotFound(err):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("get llm event %d: %w", id, err)
	}
	rec := llmRecord(row)
	return &rec, nil
}

func llmRecord(row *ent.LLMRequestEvent) LLMRequestEventRecord {
	return LLMRequestEventRecord{
		ID:        row.ID,
		Sequence:  row.Sequence,
		Timestamp: row.Timestamp,
		LLMRequestEventData: LLMRequestEventData{
			Provider:     row.Provider,
			Model:        row.Model,
			Purpose:      row.Purpose,
			InputTokens:  row.InputTokens,
			OutputTokens: row.OutputTokens,
			LatencyMs:    row.LatencyMs,
			Success:      row.Success,
			ErrorClass:   row.ErrorClass,
			ErrorMessage: row.ErrorMessage,
			RequestBody:  row.RequestBody,
			ResponseBody: row.ResponseBody,
		},
	}
}
