package benchmark

import (
	"sort"
	"sync"
	"time"

	"github.com/abhisek/calibra/internal/logging"
)

// Cache holds the current member sample, keyed by salted digest.
// Benchmarks are always read from it; it is filled by the Refresher or
// restored from a persisted Snapshot.
type Cache struct {
	salt string

	mu          sync.RWMutex
	members     map[string]PoolEntry
	refreshedAt time.Time
}

// NewCache returns an empty cache that derives member keys with salt.
func NewCache(salt string) *Cache {
	return &Cache{salt: salt, members: make(map[string]PoolEntry)}
}

// Key returns the salted digest stored in place of userID.
func (c *Cache) Key(userID string) string {
	return logging.HashID(c.salt, userID)
}

// Replace swaps in a freshly computed pool.
func (c *Cache) Replace(entries []PoolEntry, at time.Time) {
	members := make(map[string]PoolEntry, len(entries))
	for _, e := range entries {
		if e.Key == "" {
			e.Key = c.Key(e.UserID)
		}
		members[e.Key] = e
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.members = members
	c.refreshedAt = at.UTC()
}

// Restore loads a persisted sample when it is newer than what the cache
// holds. It reports whether the snapshot was used.
func (c *Cache) Restore(snap *Snapshot) bool {
	if snap == nil || !CompatibleSnapshot(snap.Version) || snap.RefreshedAt.IsZero() {
		return false
	}
	members := make(map[string]PoolEntry, len(snap.Members))
	for _, e := range snap.Members {
		if e.Key == "" {
			continue
		}
		e.UserID = ""
		members[e.Key] = e
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if !snap.RefreshedAt.After(c.refreshedAt) {
		return false
	}
	c.members = members
	c.refreshedAt = snap.RefreshedAt.UTC()
	return true
}

// Snapshot returns the persistable form of the cache, or nil when
// nothing has been loaded.
func (c *Cache) Snapshot() *Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.refreshedAt.IsZero() {
		return nil
	}
	members := make([]PoolEntry, 0, len(c.members))
	for _, e := range c.members {
		e.UserID = ""
		members = append(members, e)
	}
	sort.Slice(members, func(i, j int) bool { return members[i].Key < members[j].Key })
	return &Snapshot{Version: SnapshotVersion, RefreshedAt: c.refreshedAt, Members: members}
}

// Remove drops a member immediately, e.g. after they opt out. It reports
// whether the member was present.
func (c *Cache) Remove(userID string) bool {
	key := c.Key(userID)
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.members[key]
	delete(c.members, key)
	return ok
}

// Pool returns a copy of the cached members.
func (c *Cache) Pool() []PoolEntry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]PoolEntry, 0, len(c.members))
	for _, e := range c.members {
		out = append(out, e)
	}
	return out
}

// RefreshedAt returns when the member sample was computed, or the zero
// time when the cache is empty.
func (c *Cache) RefreshedAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.refreshedAt
}

// Fresh reports whether the sample was computed less than maxAge before now.
func (c *Cache) Fresh(now time.Time, maxAge time.Duration) bool {
	at := c.RefreshedAt()
	return !at.IsZero() && now.Sub(at) < maxAge
}

// Stats summarises the cached pool, or returns nil when the pool is empty
// or below the minimum size.
func (c *Cache) Stats(cfg Config) *PoolStats {
	at := c.RefreshedAt()
	if at.IsZero() {
		return nil
	}
	stats, err := Summarize(c.Pool(), cfg, at)
	if err != nil {
		return nil
	}
	return stats
}

// Benchmark computes a benchmark for userID against the cached pool.
func (c *Cache) Benchmark(userID string, optedIn bool, userCorrelation *float64, cfg Config) (*PeerBenchmark, error) {
	b, err := Compute(Request{
		UserID:          userID,
		Key:             c.Key(userID),
		OptedIn:         optedIn,
		UserCorrelation: userCorrelation,
		Pool:            c.Pool(),
	}, cfg)
	if err != nil {
		return nil, err
	}
	b.PoolRefreshedAt = c.RefreshedAt()
	return b, nil
}
