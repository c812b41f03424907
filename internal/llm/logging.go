package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/calibra/internal/logging"
	"github.com/abhisek/calibra/internal/store"
)

type loggingProvider struct {
	inner Provider
	repo  store.EventRepo
	log   *logging.Logger
}

// WithLogging records every call as an LLM request event. Failing to
// record never fails the call. A nil log discards diagnostics.
func WithLogging(p Provider, repo store.EventRepo, log *logging.Logger) Provider {
	if log == nil {
		log = logging.Nop()
	}
	return &loggingProvider{inner: p, repo: repo, log: log}
}

func (l *loggingProvider) Name() string    { return l.inner.Name() }
func (l *loggingProvider) ModelID() string { return l.inner.ModelID() }

func (l *loggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	purpose := PurposeFrom(ctx)
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)
	elapsed := time.Since(start)

	ev := store.LLMRequestEventData{
		Provider:    l.inner.Name(),
		Model:       l.inner.ModelID(),
		Purpose:     purpose,
		LatencyMs:   elapsed.Milliseconds(),
		Success:     err == nil,
		RequestBody: transcript(req),
	}
	stop := StopReason("")
	if resp != nil {
		ev.Model = resp.Model
		ev.InputTokens = resp.Usage.InputTokens
		ev.OutputTokens = resp.Usage.OutputTokens
		ev.ResponseBody = string(resp.Content)
		stop = resp.StopReason
	}
	if err != nil {
		ev.ErrorClass = ErrorClass(err)
		ev.ErrorMessage = err.Error()
	}

	l.log.Debug("llm request",
		"provider", ev.Provider,
		"model", ev.Model,
		"purpose", purpose,
		"latency", elapsed,
		"stop_reason", stop,
		"error_class", ev.ErrorClass,
	)
	if rerr := l.repo.AppendLLMRequest(ctx, ev); rerr != nil {
		l.log.Warn("failed to record llm request event", "purpose", purpose, "error", rerr)
	}
	return resp, err
}

// transcript renders req as the plain text stored with the event.
func transcript(req Request) string {
	var b strings.Builder
	if req.System != "" {
		fmt.Fprintf(&b, "[system]\n%s\n\n", req.System)
	}
	for _, m := range req.Messages {
		fmt.Fprintf(&b, "[%s]\n%s\n\n", m.Role, m.Content)
	}
	if req.Schema != nil {
		if def, err := json.Marshal(req.Schema.Definition); err == nil {
			fmt.Fprintf(&b, "[schema: %s]\n%s\n", req.Schema.Name, def)
		}
	}
	return b.String()
}
