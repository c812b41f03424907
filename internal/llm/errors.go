package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// RateLimitError is a 429 from the provider.
type RateLimitError struct {
	// RetryAfter is the server's hint, zero when absent.
	RetryAfter time.Duration
	Err        error
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *RateLimitError) Unwrap() error { return e.Err }

// InvalidResponseError is output that is not valid JSON or does not
// satisfy the requested schema.
type InvalidResponseError struct {
	Content json.RawMessage
	Err     error
}

func (e *InvalidResponseError) Error() string {
	return fmt.Sprintf("invalid LLM response: %v", e.Err)
}

func (e *InvalidResponseError) Unwrap() error { return e.Err }

// UnavailableError is a provider outage, a 5xx or a transport failure.
type UnavailableError struct {
	Err error
}

func (e *UnavailableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("LLM provider unavailable: %v", e.Err)
	}
	return "LLM provider unavailable"
}

func (e *UnavailableError) Unwrap() error { return e.Err }

// TruncatedError is structured output cut off at MaxTokens.
type TruncatedError struct {
	Content json.RawMessage
}

func (e *TruncatedError) Error() string {
	return "LLM response truncated: max tokens exceeded"
}

// ErrorClass labels err for logs and retry decisions.
func ErrorClass(err error) string {
	var (
		rl    *RateLimitError
		inv   *InvalidResponseError
		unav  *UnavailableError
		trunc *TruncatedError
	)
	switch {
	case err == nil:
		return ""
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	case errors.As(err, &trunc):
		return "truncated"
	case errors.As(err, &inv):
		return "invalid_response"
	case errors.As(err, &rl):
		return "rate_limit"
	case errors.As(err, &unav):
		return "unavailable"
	default:
		return "other"
	}
}

func asRateLimit(err error) (*RateLimitError, bool) {
	var rl *RateLimitError
	ok := errors.As(err, &rl)
	return rl, ok
}

// classifyStatus maps an HTTP status from a provider SDK error.
func classifyStatus(status int, retryAfter time.Duration, err error) error {
	if status == http.StatusTooManyRequests {
		return &RateLimitError{RetryAfter: retryAfter, Err: err}
	}
	return &UnavailableError{Err: err}
}

// parseRetryAfter reads a Retry-After header in its delay-seconds form.
func parseRetryAfter(h http.Header) time.Duration {
	if h == nil {
		return 0
	}
	secs, err := strconv.Atoi(h.Get("Retry-After"))
	if err != nil || secs <= 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}
