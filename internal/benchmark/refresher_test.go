package benchmark

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/goleak"
)

type fakeSource struct {
	users   []string
	failFor string
	calls   atomic.Int32
}

func (s *fakeSource) OptedInUsers(context.Context) ([]string, error) {
	return s.users, nil
}

func (s *fakeSource) MemberEntry(_ context.Context, userID string) (PoolEntry, error) {
	s.calls.Add(1)
	if userID == s.failFor {
		return PoolEntry{}, errors.New("boom")
	}
	var n int
	fmt.Sscanf(userID, "u%d", &n)
	return PoolEntry{
		Correlation:         f(float64(n) / 100),
		OverconfidentTopics: []TopicDelta{{Topic: "Cardiology", AvgDelta: 20}},
	}, nil
}

func users(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("u%d", i)
	}
	return out
}

func TestRefresher_Refresh(t *testing.T) {
	src := &fakeSource{users: users(10)}
	cache := NewCache("")
	cfg := smallConfig(5)
	r := NewRefresher(src, cache, cfg, nil)

	var hooked *Snapshot
	r.OnRefresh(func(_ context.Context, s *Snapshot) error {
		hooked = s
		return nil
	})

	if err := r.Refresh(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := len(cache.Pool()); got != 10 {
		t.Errorf("pool = %d, want 10", got)
	}
	if cache.RefreshedAt().IsZero() {
		t.Error("expected refresh time")
	}
	stats := cache.Stats(cfg)
	if stats == nil || stats.Distribution.PoolSize != 10 || stats.Version != SnapshotVersion {
		t.Fatalf("stats = %+v", stats)
	}
	if hooked == nil || len(hooked.Members) != 10 {
		t.Fatalf("hook snapshot = %+v, want 10 members", hooked)
	}
	for _, m := range hooked.Members {
		if m.UserID != "" || m.Key == "" {
			t.Errorf("snapshot member %+v must carry only its key", m)
		}
	}
	if len(stats.Topics) != 1 || stats.Topics[0].Prevalence != 1 {
		t.Errorf("topics = %+v, want Cardiology at 1.0", stats.Topics)
	}

	b, err := cache.Benchmark("u9", true, f(0.09), cfg)
	if err != nil {
		t.Fatalf("benchmark: %v", err)
	}
	if b.PeerDistribution.PoolSize != 9 {
		t.Errorf("peer pool = %d, want 9 without the requester", b.PeerDistribution.PoolSize)
	}
	if *b.UserPercentile != 100 {
		t.Errorf("percentile = %v, want 100", *b.UserPercentile)
	}
	if b.PoolRefreshedAt.IsZero() {
		t.Error("expected pool refresh time on benchmark")
	}
}

func TestRefresher_SmallPoolWithholdsStats(t *testing.T) {
	cache := NewCache("")
	r := NewRefresher(&fakeSource{users: users(3)}, cache, smallConfig(5), nil)
	if err := r.Refresh(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cache.Stats(smallConfig(5)) != nil {
		t.Error("stats must be withheld for a small pool")
	}
	if _, err := cache.Benchmark("u0", true, f(0), smallConfig(5)); !errors.Is(err, ErrInsufficientPool) {
		t.Errorf("error = %v, want ErrInsufficientPool", err)
	}
}

func TestRefresher_FailureKeepsPreviousSnapshot(t *testing.T) {
	src := &fakeSource{users: users(6)}
	cache := NewCache("")
	r := NewRefresher(src, cache, smallConfig(5), nil)
	if err := r.Refresh(context.Background()); err != nil {
		t.Fatal(err)
	}
	before := cache.RefreshedAt()

	src.users = users(8)
	src.failFor = "u7"
	if err := r.Refresh(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if len(cache.Pool()) != 6 || !cache.RefreshedAt().Equal(before) {
		t.Error("failed refresh replaced the snapshot")
	}
}

func TestRefresher_StartStop(t *testing.T) {
	defer goleak.VerifyNone(t)

	src := &fakeSource{users: users(5)}
	cfg := smallConfig(5)
	cfg.RefreshInterval = 5 * time.Millisecond
	r := NewRefresher(src, NewCache(""), cfg, nil)

	r.Start(context.Background())
	r.Start(context.Background()) // second start is a no-op

	deadline := time.Now().Add(2 * time.Second)
	for src.calls.Load() < 15 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	r.Stop()
	r.Stop()

	if src.calls.Load() < 15 {
		t.Errorf("member computations = %d, want at least 3 refreshes", src.calls.Load())
	}
}

func TestRefresher_StopsWithContext(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	r := NewRefresher(&fakeSource{users: users(1)}, NewCache(""), smallConfig(1), nil)
	r.Start(ctx)
	cancel()
	r.Stop()
}

func TestCache_RemoveAndRestore(t *testing.T) {
	at := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewCache("pepper")
	c.Replace([]PoolEntry{{UserID: "a", Correlation: f(0.1)}, {UserID: "b", Correlation: f(0.2)}}, at)
	if !c.Remove("a") {
		t.Error("expected a to be removed")
	}
	if c.Remove("a") {
		t.Error("second removal reported a member")
	}
	if got := len(c.Pool()); got != 1 {
		t.Errorf("pool = %d, want 1", got)
	}

	snap := c.Snapshot()
	if snap == nil || len(snap.Members) != 1 || snap.Members[0].Key != c.Key("b") {
		t.Fatalf("snapshot = %+v, want only b's key", snap)
	}

	restored := NewCache("pepper")
	if restored.Snapshot() != nil {
		t.Error("empty cache produced a snapshot")
	}
	if !restored.Restore(snap) {
		t.Fatal("expected compatible snapshot to restore")
	}
	if !restored.RefreshedAt().Equal(at) {
		t.Errorf("refreshedAt = %v, want %v", restored.RefreshedAt(), at)
	}
	if !restored.Remove("b") {
		t.Error("restored member not found by user id")
	}

	if restored.Restore(&Snapshot{Version: "v1.1.0", RefreshedAt: at.Add(time.Hour)}) {
		t.Error("incompatible major version restored")
	}
	if restored.Restore(&Snapshot{Version: "garbage", RefreshedAt: at.Add(time.Hour)}) {
		t.Error("invalid version restored")
	}
	if restored.Restore(&Snapshot{Version: SnapshotVersion, RefreshedAt: at.Add(-time.Hour)}) {
		t.Error("older snapshot replaced a newer sample")
	}
}

func TestCache_BenchmarkExcludesRestoredRequester(t *testing.T) {
	src := NewCache("pepper")
	src.Replace(pool(6), time.Now())

	c := NewCache("pepper")
	if !c.Restore(src.Snapshot()) {
		t.Fatal("restore failed")
	}
	b, err := c.Benchmark("peer-000", true, f(0.3), smallConfig(5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.PeerDistribution.PoolSize != 5 {
		t.Errorf("peer pool = %d, want 5 without the requester", b.PeerDistribution.PoolSize)
	}
}

func TestCache_Fresh(t *testing.T) {
	at := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewCache("")
	if c.Fresh(at, time.Hour) {
		t.Error("empty cache is never fresh")
	}
	c.Replace(nil, at)
	if !c.Fresh(at.Add(59*time.Minute), time.Hour) {
		t.Error("expected fresh within the interval")
	}
	if c.Fresh(at.Add(time.Hour), time.Hour) {
		t.Error("expected stale at the interval")
	}
}

func TestConcurrentCacheAccess(t *testing.T) {
	c := NewCache("")
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.Replace(pool(5), time.Now())
				_ = c.Pool()
				c.Remove("peer-001")
			}
		}()
	}
	wg.Wait()
}
