package llm

import (
	"context"
	"math"
	"math/rand/v2"
	"time"

	"github.com/abhisek/calibra/internal/logging"
)

type retryProvider struct {
	inner   Provider
	cfg     RetryConfig
	timeout time.Duration
	log     *logging.Logger

	// sleep waits d or until ctx ends. Tests replace it.
	sleep func(ctx context.Context, d time.Duration) error
}

// WithRetry retries transient failures with exponential backoff and
// jitter. A positive timeout bounds the whole call, retries included.
// Truncated output and cancellation are returned at once; an invalid
// response is retried a single time.
func WithRetry(p Provider, cfg RetryConfig, timeout time.Duration, log *logging.Logger) Provider {
	if log == nil {
		log = logging.Nop()
	}
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &retryProvider{inner: p, cfg: cfg, timeout: timeout, log: log, sleep: sleepCtx}
}

func (r *retryProvider) Name() string    { return r.inner.Name() }
func (r *retryProvider) ModelID() string { return r.inner.ModelID() }

func (r *retryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	var (
		err          error
		invalidTries int
	)
	for attempt := 0; attempt < r.cfg.MaxAttempts; attempt++ {
		var resp *Response
		resp, err = r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}

		class := ErrorClass(err)
		switch class {
		case "canceled", "truncated":
			return nil, err
		case "invalid_response":
			invalidTries++
			if invalidTries > 1 {
				return nil, err
			}
		}
		if attempt == r.cfg.MaxAttempts-1 {
			break
		}

		wait := r.backoff(attempt, err)
		r.log.Debug("retrying llm request",
			"purpose", PurposeFrom(ctx),
			"attempt", attempt+1,
			"error_class", class,
			"wait", wait,
		)
		if serr := r.sleep(ctx, wait); serr != nil {
			return nil, serr
		}
	}
	return nil, err
}

// backoff is InitialWait*Multiplier^attempt capped at MaxWait, with ±20%
// jitter. A rate limit with a Retry-After hint waits exactly that long.
func (r *retryProvider) backoff(attempt int, err error) time.Duration {
	if rl, ok := asRateLimit(err); ok && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	wait := float64(r.cfg.InitialWait) * math.Pow(r.cfg.Multiplier, float64(attempt))
	if limit := float64(r.cfg.MaxWait); limit > 0 && wait > limit {
		wait = limit
	}
	wait += wait * 0.2 * (2*rand.Float64() - 1)
	return time.Duration(math.Max(wait, 0))
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
