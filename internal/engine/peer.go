package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/abhisek/calibra/internal/benchmark"
	"github.com/abhisek/calibra/internal/calibration"
	"github.com/abhisek/calibra/internal/metrics"
	"github.com/abhisek/calibra/internal/patterns"
	"github.com/abhisek/calibra/internal/store"
)

// SetPeerOptIn records a learner's peer comparison consent. Opting out
// removes the learner from the pool and from its persisted sample
// immediately.
func (e *Engine) SetPeerOptIn(ctx context.Context, userID string, optedIn bool) error {
	if err := requireID("userId", userID); err != nil {
		return err
	}
	if err := e.peers.SetOptIn(ctx, userID, optedIn); err != nil {
		return fmt.Errorf("set peer opt-in: %w", err)
	}
	if !optedIn {
		if err := e.dropFromPool(ctx, userID); err != nil {
			return err
		}
	}
	e.log.Info("peer comparison preference updated", "user_id", userID, "opted_in", optedIn)
	return nil
}

// dropFromPool removes a member from the cached sample and rewrites the
// latest snapshot without them.
func (e *Engine) dropFromPool(ctx context.Context, userID string) error {
	if _, err := e.RestorePool(ctx); err != nil {
		return err
	}
	if !e.cache.Remove(userID) {
		return nil
	}
	if err := e.persistPool(ctx, e.cache.Snapshot()); err != nil {
		return fmt.Errorf("persist peer pool: %w", err)
	}
	return nil
}

// PeerOptedIn reports a learner's peer comparison consent.
func (e *Engine) PeerOptedIn(ctx context.Context, userID string) (bool, error) {
	if err := requireID("userId", userID); err != nil {
		return false, err
	}
	in, err := e.peers.IsOptedIn(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("read peer opt-in: %w", err)
	}
	return in, nil
}

// Benchmark places a learner within the peer pool. Learners who have not
// opted in get ErrNotOptedIn before anything is computed. The pool comes
// from the cache or the latest snapshot and is recomputed only when
// neither is younger than the refresh interval.
func (e *Engine) Benchmark(ctx context.Context, userID string) (*benchmark.PeerBenchmark, error) {
	optedIn, err := e.PeerOptedIn(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !optedIn {
		return nil, benchmark.ErrNotOptedIn
	}
	if err := e.ensurePool(ctx); err != nil {
		return nil, err
	}

	m, err := e.Metrics(ctx, userID)
	if err != nil {
		return nil, err
	}
	return e.cache.Benchmark(userID, optedIn, m.CorrelationCoefficient, e.benchCfg)
}

// ensurePool makes a pool available, preferring the cache, then the
// latest snapshot, then a recompute. A stale pool is still served when
// the recompute fails.
func (e *Engine) ensurePool(ctx context.Context) error {
	maxAge := e.benchCfg.RefreshInterval
	if e.cache.Fresh(e.now(), maxAge) {
		return nil
	}
	if _, err := e.RestorePool(ctx); err != nil {
		e.log.Warn("restore peer pool", "error", err)
	}
	if e.cache.Fresh(e.now(), maxAge) {
		return nil
	}

	err := e.RefreshPool(ctx)
	if err != nil && !e.cache.RefreshedAt().IsZero() {
		e.log.Warn("serving stale peer pool", "refreshed_at", e.cache.RefreshedAt(), "error", err)
		return nil
	}
	return err
}

// OptedInUsers implements benchmark.MemberSource.
func (e *Engine) OptedInUsers(ctx context.Context) ([]string, error) {
	return e.peers.OptedInUsers(ctx)
}

// MemberEntry implements benchmark.MemberSource: a member's correlation
// and the topics they are overconfident on.
func (e *Engine) MemberEntry(ctx context.Context, userID string) (benchmark.PoolEntry, error) {
	as, err := e.Assessments(ctx, userID, 0)
	if err != nil {
		return benchmark.PoolEntry{}, err
	}
	rs, err := metrics.FromAssessments(as)
	if err != nil {
		return benchmark.PoolEntry{}, fmt.Errorf("prepare pool member: %w", err)
	}
	return benchmark.PoolEntry{
		UserID:              userID,
		Correlation:         metrics.ResponseCorrelation(rs),
		OverconfidentTopics: overconfidentTopics(as, e.bank),
	}, nil
}

// overconfidentTopics averages calibration delta per topic and keeps the
// topics whose average is overconfident.
func overconfidentTopics(as []calibration.Assessment, topics patterns.TopicLookup) []benchmark.TopicDelta {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, a := range as {
		res, err := calibration.Calculate(a.PreConfidence, a.Score)
		if err != nil {
			continue
		}
		topic := a.ObjectiveID
		if t, ok := topics.TopicFor(a.ObjectiveID); ok {
			topic = t
		}
		sums[topic] += res.CalibrationDelta
		counts[topic]++
	}

	var out []benchmark.TopicDelta
	for topic, n := range counts {
		avg := sums[topic] / float64(n)
		if calibration.Categorize(avg) == calibration.CategoryOverconfident {
			out = append(out, benchmark.TopicDelta{Topic: topic, AvgDelta: avg})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Topic < out[j].Topic })
	return out
}

// RefreshPool recomputes the peer pool now.
func (e *Engine) RefreshPool(ctx context.Context) error {
	if err := e.refresher.Refresh(ctx); err != nil {
		return fmt.Errorf("refresh peer pool: %w", err)
	}
	return nil
}

// StartPoolRefresh recomputes the pool in the background until Close.
func (e *Engine) StartPoolRefresh(ctx context.Context) {
	e.refresher.Start(ctx)
}

// PoolStats returns the aggregate pool statistics, or nil when the pool
// is below the minimum size or has not been loaded.
func (e *Engine) PoolStats() *benchmark.PoolStats {
	return e.cache.Stats(e.benchCfg)
}

// RestorePool loads the member sample from the latest persisted snapshot
// when it is newer than the cache. It reports whether a snapshot was used.
func (e *Engine) RestorePool(ctx context.Context) (bool, error) {
	if e.snapshots == nil {
		return false, nil
	}
	row, err := e.snapshots.Latest(ctx)
	if err != nil {
		return false, fmt.Errorf("load pool snapshot: %w", err)
	}
	if row == nil || len(row.Payload) == 0 {
		return false, nil
	}
	if !benchmark.CompatibleSnapshot(row.Version) {
		e.log.Warn("ignoring incompatible pool snapshot", "version", row.Version, "want", benchmark.SnapshotVersion)
		return false, nil
	}

	var snap benchmark.Snapshot
	if err := json.Unmarshal(row.Payload, &snap); err != nil {
		return false, fmt.Errorf("decode pool snapshot: %w", err)
	}
	snap.Version = row.Version
	if snap.RefreshedAt.IsZero() {
		snap.RefreshedAt = row.TakenAt
	}
	return e.cache.Restore(&snap), nil
}

// persistPool stores the keyed member sample after a refresh or opt-out.
func (e *Engine) persistPool(ctx context.Context, snap *benchmark.Snapshot) error {
	if snap == nil || e.snapshots == nil {
		return nil
	}
	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode pool snapshot: %w", err)
	}
	row := &store.PoolSnapshot{
		TakenAt: snap.RefreshedAt,
		Version: snap.Version,
		Members: len(snap.Members),
		Payload: raw,
	}
	if err := e.snapshots.Save(ctx, row); err != nil {
		return err
	}
	return e.snapshots.Prune(ctx, e.keep)
}
