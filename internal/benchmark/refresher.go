package benchmark

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/abhisek/calibra/internal/logging"
)

// MemberSource supplies the opted-in pool.
type MemberSource interface {
	OptedInUsers(ctx context.Context) ([]string, error)
	MemberEntry(ctx context.Context, userID string) (PoolEntry, error)
}

// Refresher recomputes the cached pool on a fixed cadence.
type Refresher struct {
	source    MemberSource
	cache     *Cache
	cfg       Config
	log       *logging.Logger
	now       func() time.Time
	onRefresh func(ctx context.Context, snap *Snapshot) error

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewRefresher creates a refresher that writes into cache.
func NewRefresher(source MemberSource, cache *Cache, cfg Config, log *logging.Logger) *Refresher {
	if log == nil {
		log = logging.Nop()
	}
	return &Refresher{source: source, cache: cache, cfg: cfg, log: log, now: time.Now}
}

// OnRefresh registers a hook called with the new member sample after
// each successful refresh.
func (r *Refresher) OnRefresh(fn func(ctx context.Context, snap *Snapshot) error) {
	r.onRefresh = fn
}

// SetClock replaces the time source used to stamp refreshes.
func (r *Refresher) SetClock(now func() time.Time) {
	r.now = now
}

// Refresh recomputes every member concurrently and swaps the result into
// the cache. A failing member aborts the refresh and leaves the previous
// snapshot in place.
func (r *Refresher) Refresh(ctx context.Context) error {
	users, err := r.source.OptedInUsers(ctx)
	if err != nil {
		return fmt.Errorf("list opted-in users: %w", err)
	}

	entries := make([]PoolEntry, len(users))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Concurrency)
	for i, id := range users {
		g.Go(func() error {
			e, err := r.source.MemberEntry(gctx, id)
			if err != nil {
				return fmt.Errorf("compute pool member: %w", err)
			}
			e.UserID = id
			entries[i] = e
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	r.cache.Replace(entries, r.now())
	if r.cache.Stats(r.cfg) == nil {
		r.log.Info("peer pool below minimum, pool stats withheld", "members", len(entries), "min", r.cfg.MinPoolSize)
	}
	r.log.Debug("peer pool refreshed", "members", len(entries))

	if r.onRefresh != nil {
		if err := r.onRefresh(ctx, r.cache.Snapshot()); err != nil {
			r.log.Warn("pool refresh hook failed", "error", err)
		}
	}
	return nil
}

// Start refreshes immediately and then every cfg.RefreshInterval until
// Stop is called or ctx ends.
func (r *Refresher) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.done = make(chan struct{})

	go func(done chan struct{}) {
		defer close(done)
		ticker := time.NewTicker(r.cfg.RefreshInterval)
		defer ticker.Stop()
		for {
			if err := r.Refresh(ctx); err != nil && ctx.Err() == nil {
				r.log.Warn("peer pool refresh failed", "error", err)
			}
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}(r.done)
}

// Stop halts the background loop and waits for it to exit.
func (r *Refresher) Stop() {
	r.mu.Lock()
	cancel, done := r.cancel, r.done
	r.cancel, r.done = nil, nil
	r.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}
