package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/calibra/internal/logging"
	"github.com/abhisek/calibra/internal/store"
)

// recordingRepo captures LLM events; other EventRepo methods are unused.
type recordingRepo struct {
	store.EventRepo
	events []store.LLMRequestEventData
	err    error
}

func (r *recordingRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	if r.err != nil {
		return r.err
	}
	r.events = append(r.events, data)
	return nil
}

func TestWithLogging_RecordsEvent(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"ok":true}`),
		Usage:   newUsage(12, 7),
	})
	repo := &recordingRepo{}
	p := WithLogging(mock, repo, nil)

	ctx := WithPurpose(context.Background(), "corrective-feedback")
	_, err := p.Generate(ctx, Request{
		System:   "be brief",
		Messages: []Message{{Role: RoleUser, Content: "hello"}},
	})
	require.NoError(t, err)
	require.Len(t, repo.events, 1)

	ev := repo.events[0]
	assert.Equal(t, "mock", ev.Provider)
	assert.Equal(t, "corrective-feedback", ev.Purpose)
	assert.True(t, ev.Success)
	assert.Equal(t, 12, ev.InputTokens)
	assert.Equal(t, 7, ev.OutputTokens)
	assert.Equal(t, `{"ok":true}`, ev.ResponseBody)
	assert.Equal(t, "[system]\nbe brief\n\n[user]\nhello\n\n", ev.RequestBody)
}

func TestWithLogging_RecordsFailure(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &RateLimitError{Err: errors.New("slow down")}})
	repo := &recordingRepo{}

	_, err := WithLogging(mock, repo, nil).Generate(context.Background(), Request{})
	require.Error(t, err)
	require.Len(t, repo.events, 1)

	ev := repo.events[0]
	assert.False(t, ev.Success)
	assert.Contains(t, ev.ErrorMessage, "slow down")
	assert.Equal(t, "rate_limit", ev.ErrorClass)
	assert.Equal(t, "unknown", ev.Purpose)
	assert.Equal(t, "mock", ev.Model)
}

func TestWithLogging_TranscriptIncludesSchema(t *testing.T) {
	body := transcript(Request{Schema: &Schema{Name: "x", Definition: map[string]any{"type": "object"}}})
	assert.Equal(t, "[schema: x]\n{\"type\":\"object\"}\n", body)
}

func TestWithLogging_DebugEntry(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := logging.FromZap(zap.New(core), true, "")

	mock := NewMockProvider(MockResponse{Err: &UnavailableError{}})
	_, _ = WithLogging(mock, &recordingRepo{}, log).Generate(context.Background(), Request{})

	entries := logs.FilterMessage("llm request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "mock", fields["provider"])
	assert.Equal(t, "unavailable", fields["error_class"])
}

func TestWithLogging_AppendFailureIsWarned(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := logging.FromZap(zap.New(core), true, "")

	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	p := WithLogging(mock, &recordingRepo{err: errors.New("disk full")}, log)

	_, err := p.Generate(context.Background(), Request{})
	require.NoError(t, err, "append failure must not fail the request")

	warns := logs.FilterLevelExact(zapcore.WarnLevel).All()
	require.Len(t, warns, 1)
	assert.Equal(t, "failed to record llm request event", warns[0].Message)
}
