package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestErrorClass(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{context.Canceled, "canceled"},
		{fmt.Errorf("call: %w", context.DeadlineExceeded), "canceled"},
		{&TruncatedError{}, "truncated"},
		{&InvalidResponseError{Content: json.RawMessage(`x`), Err: errors.New("bad")}, "invalid_response"},
		{fmt.Errorf("wrapped: %w", &RateLimitError{}), "rate_limit"},
		{&UnavailableError{}, "unavailable"},
		{errors.New("boom"), "other"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ErrorClass(tt.err), "%v", tt.err)
	}
}

func TestClassifyStatus(t *testing.T) {
	cause := errors.New("upstream")

	err := classifyStatus(http.StatusTooManyRequests, 3*time.Second, cause)
	var rl *RateLimitError
	if assert.ErrorAs(t, err, &rl) {
		assert.Equal(t, 3*time.Second, rl.RetryAfter)
	}
	assert.ErrorIs(t, err, cause)

	var unavail *UnavailableError
	assert.ErrorAs(t, classifyStatus(http.StatusBadGateway, 0, cause), &unavail)
}

func TestParseRetryAfter(t *testing.T) {
	h := http.Header{}
	assert.Zero(t, parseRetryAfter(nil))
	assert.Zero(t, parseRetryAfter(h))

	h.Set("Retry-After", "7")
	assert.Equal(t, 7*time.Second, parseRetryAfter(h))

	h.Set("Retry-After", "Wed, 21 Oct 2015 07:28:00 GMT")
	assert.Zero(t, parseRetryAfter(h), "HTTP-date form is ignored")

	h.Set("Retry-After", "-1")
	assert.Zero(t, parseRetryAfter(h))
}

func TestUnavailableError_Message(t *testing.T) {
	assert.Equal(t, "LLM provider unavailable", (&UnavailableError{}).Error())
	assert.Contains(t, (&UnavailableError{Err: errors.New("dial tcp")}).Error(), "dial tcp")
}
