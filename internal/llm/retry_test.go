package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/calibra/internal/logging"
)

func testRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: 100 * time.Millisecond,
		MaxWait:     time.Second,
		Multiplier:  2,
	}
}

// newTestRetry returns the decorator with sleeps recorded instead of
// waited.
func newTestRetry(p Provider, log *logging.Logger) (*retryProvider, *[]time.Duration) {
	r := WithRetry(p, testRetryConfig(), 0, log).(*retryProvider)
	var waits []time.Duration
	r.sleep = func(ctx context.Context, d time.Duration) error {
		waits = append(waits, d)
		return ctx.Err()
	}
	return r, &waits
}

func down() error { return &UnavailableError{Err: errors.New("down")} }

func TestRetry_FirstAttemptSucceeds(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{"ok":true}`)})
	r, waits := newTestRetry(mock, nil)

	resp, err := r.Generate(context.Background(), Request{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(resp.Content))
	assert.Equal(t, 1, mock.CallCount())
	assert.Empty(t, *waits)
}

func TestRetry_TransientThenSuccess(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: down()},
		MockResponse{Err: down()},
		MockResponse{Content: json.RawMessage(`{}`)},
	)
	r, waits := newTestRetry(mock, nil)

	_, err := r.Generate(context.Background(), Request{})
	require.NoError(t, err)
	assert.Equal(t, 3, mock.CallCount())
	require.Len(t, *waits, 2)
	assert.InDelta(t, float64(100*time.Millisecond), float64((*waits)[0]), float64(20*time.Millisecond))
	assert.InDelta(t, float64(200*time.Millisecond), float64((*waits)[1]), float64(40*time.Millisecond))
}

func TestRetry_GivesUpAfterMaxAttempts(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: down()}, MockResponse{Err: down()}, MockResponse{Err: down()})
	r, waits := newTestRetry(mock, nil)

	_, err := r.Generate(context.Background(), Request{})
	var unavail *UnavailableError
	assert.ErrorAs(t, err, &unavail)
	assert.Equal(t, 3, mock.CallCount())
	assert.Len(t, *waits, 2, "no sleep after the last attempt")
}

func TestRetry_TruncatedIsFinal(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &TruncatedError{}}, MockResponse{Content: json.RawMessage(`{}`)})
	r, _ := newTestRetry(mock, nil)

	_, err := r.Generate(context.Background(), Request{})
	var trunc *TruncatedError
	assert.ErrorAs(t, err, &trunc)
	assert.Equal(t, 1, mock.CallCount())
}

func TestRetry_InvalidResponseRetriedOnce(t *testing.T) {
	bad := func() error { return &InvalidResponseError{Content: json.RawMessage(`bad`), Err: errors.New("bad")} }
	mock := NewMockProvider(
		MockResponse{Err: bad()},
		MockResponse{Err: bad()},
		MockResponse{Content: json.RawMessage(`{}`)},
	)
	r, _ := newTestRetry(mock, nil)

	_, err := r.Generate(context.Background(), Request{})
	var inv *InvalidResponseError
	assert.ErrorAs(t, err, &inv)
	assert.Equal(t, 2, mock.CallCount())
}

func TestRetry_HonoursRetryAfter(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &RateLimitError{RetryAfter: 5 * time.Second, Err: errors.New("429")}},
		MockResponse{Content: json.RawMessage(`{}`)},
	)
	r, waits := newTestRetry(mock, nil)

	_, err := r.Generate(context.Background(), Request{})
	require.NoError(t, err)
	assert.Equal(t, []time.Duration{5 * time.Second}, *waits)
}

func TestRetry_CanceledContextStops(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: down()}, MockResponse{Content: json.RawMessage(`{}`)})
	r, _ := newTestRetry(mock, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := r.Generate(ctx, Request{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, mock.CallCount())
}

func TestRetry_TimeoutBoundsTheCall(t *testing.T) {
	slow := &blockingProvider{}
	p := WithRetry(slow, testRetryConfig(), 10*time.Millisecond, nil)

	_, err := p.Generate(context.Background(), Request{})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 1, slow.calls)
}

func TestRetry_LogsEachRetry(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := logging.FromZap(zap.New(core), true, "")

	mock := NewMockProvider(MockResponse{Err: down()}, MockResponse{Content: json.RawMessage(`{}`)})
	r, _ := newTestRetry(mock, log)

	ctx := WithPurpose(context.Background(), "corrective-feedback")
	_, err := r.Generate(ctx, Request{})
	require.NoError(t, err)

	entries := logs.FilterMessage("retrying llm request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "unavailable", fields["error_class"])
	assert.Equal(t, "corrective-feedback", fields["purpose"])
}

func TestRetry_PassesIdentityThrough(t *testing.T) {
	p := WithRetry(NewMockProvider(), RetryConfig{}, 0, nil)
	assert.Equal(t, "mock", p.Name())
	assert.Equal(t, "mock", p.ModelID())
}

// blockingProvider waits for the context to end.
type blockingProvider struct{ calls int }

func (b *blockingProvider) Name() string    { return "blocking" }
func (b *blockingProvider) ModelID() string { return "blocking" }

func (b *blockingProvider) Generate(ctx context.Context, _ Request) (*Response, error) {
	b.calls++
	<-ctx.Done()
	return nil, ctx.Err()
}
