package benchmark

import (
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func f(v float64) *float64 { return &v }

// pool builds n members with correlations spread evenly over [-0.5, 0.95).
func pool(n int) []PoolEntry {
	out := make([]PoolEntry, n)
	for i := range out {
		out[i] = PoolEntry{
			UserID:      fmt.Sprintf("peer-%03d", i),
			Correlation: f(-0.5 + 1.45*float64(i)/float64(n)),
		}
	}
	return out
}

func smallConfig(min int) Config {
	cfg := DefaultConfig()
	cfg.MinPoolSize = min
	return cfg
}

func TestCompute_NotOptedIn(t *testing.T) {
	b, err := Compute(Request{UserID: "me", Pool: pool(100), UserCorrelation: f(0.5)}, DefaultConfig())
	if !errors.Is(err, ErrNotOptedIn) {
		t.Fatalf("error = %v, want ErrNotOptedIn", err)
	}
	if b != nil {
		t.Error("expected no benchmark")
	}
}

func TestCompute_InsufficientPool(t *testing.T) {
	b, err := Compute(Request{UserID: "me", OptedIn: true, Pool: pool(49), UserCorrelation: f(0.5)}, DefaultConfig())
	if !errors.Is(err, ErrInsufficientPool) {
		t.Fatalf("error = %v, want ErrInsufficientPool", err)
	}
	var pe *PoolError
	if !errors.As(err, &pe) || pe.Have != 49 || pe.Need != 50 {
		t.Errorf("pool error = %+v, want 49/50", pe)
	}
	if b != nil {
		t.Error("expected no partial statistics")
	}
}

func TestCompute_RejectsInvalidConfig(t *testing.T) {
	single := []PoolEntry{{UserID: "alice", Correlation: f(0.42)}}
	tests := []struct {
		name string
		cfg  Config
	}{
		{name: "zero config", cfg: Config{}},
		{name: "zero min pool size", cfg: smallConfig(0)},
		{name: "negative min pool size", cfg: smallConfig(-3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Compute(Request{UserID: "me", OptedIn: true, Pool: single, UserCorrelation: f(0.5)}, tt.cfg)
			if err == nil {
				t.Fatal("expected a config error")
			}
			if b != nil {
				t.Errorf("benchmark = %+v, want none", b)
			}

			stats, err := Summarize(single, tt.cfg, time.Now())
			if err == nil || stats != nil {
				t.Errorf("Summarize = %+v, %v; want config error", stats, err)
			}
		})
	}
}

func TestCompute_ExcludesSelfAndMembersWithoutData(t *testing.T) {
	p := pool(50)
	// The requester's own entry and two members without a correlation must
	// not count toward the minimum.
	p[0].UserID = "me"
	p = append(p, PoolEntry{UserID: "new-1"}, PoolEntry{UserID: "new-2"})

	_, err := Compute(Request{UserID: "me", OptedIn: true, Pool: p, UserCorrelation: f(0.5)}, DefaultConfig())
	if !errors.Is(err, ErrInsufficientPool) {
		t.Fatalf("error = %v, want ErrInsufficientPool", err)
	}

	p = append(p, PoolEntry{UserID: "late", Correlation: f(0.1)})
	b, err := Compute(Request{UserID: "me", OptedIn: true, Pool: p, UserCorrelation: f(0.5)}, DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.PeerDistribution.PoolSize != 50 {
		t.Errorf("pool size = %d, want 50", b.PeerDistribution.PoolSize)
	}
}

func TestCompute_Distribution(t *testing.T) {
	p := []PoolEntry{
		{UserID: "a", Correlation: f(0.1)},
		{UserID: "b", Correlation: f(0.4)},
		{UserID: "c", Correlation: f(0.2)},
		{UserID: "d", Correlation: f(0.3)},
		{UserID: "e", Correlation: f(0.5)},
	}
	b, err := Compute(Request{UserID: "me", OptedIn: true, Pool: p, UserCorrelation: f(0.45)}, smallConfig(5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := Distribution{
		Correlations: []float64{0.1, 0.2, 0.3, 0.4, 0.5},
		Quartiles:    [3]float64{0.2, 0.3, 0.4},
		Median:       0.3,
		Mean:         0.3,
		PoolSize:     5,
	}
	if diff := cmp.Diff(want, b.PeerDistribution, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("distribution mismatch (-want +got):\n%s", diff)
	}
	// 4 of 5 below → 80th percentile.
	if b.UserPercentile == nil || math.Abs(*b.UserPercentile-80) > 1e-9 {
		t.Errorf("percentile = %v, want 80", b.UserPercentile)
	}
	if b.Band != BandVeryGood {
		t.Errorf("band = %s, want VERY_GOOD", b.Band)
	}
}

func TestCompute_UserWithoutCorrelation(t *testing.T) {
	b, err := Compute(Request{UserID: "me", OptedIn: true, Pool: pool(60)}, DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.UserPercentile != nil {
		t.Errorf("percentile = %v, want nil", *b.UserPercentile)
	}
	if b.Band != BandNotEnoughData {
		t.Errorf("band = %s, want NOT_ENOUGH_DATA", b.Band)
	}
	if b.PeerDistribution.PoolSize != 60 {
		t.Errorf("pool size = %d, want 60", b.PeerDistribution.PoolSize)
	}
}

func TestQuantile_Interpolates(t *testing.T) {
	d := Distribute([]float64{4, 1, 3, 2})
	want := [3]float64{1.75, 2.5, 3.25}
	if diff := cmp.Diff(want, d.Quartiles, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("quartiles mismatch (-want +got):\n%s", diff)
	}
	if d.Median != 2.5 {
		t.Errorf("median = %v, want 2.5", d.Median)
	}

	single := Distribute([]float64{0.7})
	if single.Quartiles != [3]float64{0.7, 0.7, 0.7} {
		t.Errorf("single-value quartiles = %v", single.Quartiles)
	}
}

func TestPercentileRank(t *testing.T) {
	sorted := []float64{0.1, 0.2, 0.2, 0.4}
	tests := []struct {
		v    float64
		want float64
	}{
		{0.0, 0},
		{0.1, 12.5},
		{0.2, 50},
		{0.3, 75},
		{0.9, 100},
	}
	for _, tt := range tests {
		if got := PercentileRank(sorted, tt.v); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("PercentileRank(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestBandFor(t *testing.T) {
	tests := []struct {
		p    float64
		want Band
	}{
		{95, BandExcellent},
		{90, BandExcellent},
		{89.9, BandVeryGood},
		{80, BandVeryGood},
		{70, BandVeryGood},
		{65, BandGood},
		{55, BandGood},
		{54, BandAverage},
		{50, BandAverage},
		{45, BandAverage},
		{44, BandBelowAverage},
		{30, BandBelowAverage},
		{20, BandBelowAverage},
		{19.9, BandNeedsImprovement},
		{10, BandNeedsImprovement},
		{0, BandNeedsImprovement},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.p), func(t *testing.T) {
			if got := BandFor(tt.p); got != tt.want {
				t.Errorf("BandFor(%v) = %s, want %s", tt.p, got, tt.want)
			}
		})
	}
}

func TestCommonTopics(t *testing.T) {
	topics := func(ts ...string) []TopicDelta {
		out := make([]TopicDelta, len(ts))
		for i, tp := range ts {
			out[i] = TopicDelta{Topic: tp, AvgDelta: 30}
		}
		return out
	}
	entries := []PoolEntry{
		{Correlation: f(0.1), OverconfidentTopics: topics("Cardiology", "Renal", "A", "B", "C", "D")},
		{Correlation: f(0.1), OverconfidentTopics: topics("Cardiology", "Renal", "A", "B", "C", "D")},
		{Correlation: f(0.1), OverconfidentTopics: topics("Cardiology", "Renal", "A", "B", "C", "D")},
		{Correlation: f(0.1), OverconfidentTopics: topics("Cardiology", "Cardiology", "Pharm")},
		{Correlation: f(0.1)},
		{Correlation: f(0.1)},
		{Correlation: f(0.1)},
		{Correlation: f(0.1)},
		{Correlation: f(0.1)},
		{Correlation: f(0.1), OverconfidentTopics: []TopicDelta{{Topic: "Renal", AvgDelta: -50}}},
	}
	got := CommonTopics(entries, DefaultConfig())

	if len(got) != 5 {
		t.Fatalf("len = %d, want 5", len(got))
	}
	if got[0].Topic != "Renal" || math.Abs(got[0].Prevalence-0.4) > 1e-9 {
		t.Errorf("top = %+v, want Renal at 0.4", got[0])
	}
	if math.Abs(got[0].AvgDelta-35) > 1e-9 {
		t.Errorf("Renal avgDelta = %v, want 35", got[0].AvgDelta)
	}
	if got[1].Topic != "Cardiology" || math.Abs(got[1].Prevalence-0.4) > 1e-9 {
		t.Errorf("second = %+v, want Cardiology at 0.4 counted once per member", got[1])
	}
	for _, ts := range got {
		if ts.Topic == "Pharm" {
			t.Error("Pharm at 0.1 prevalence should be below threshold")
		}
		if ts.Prevalence <= 0.2 {
			t.Errorf("%s prevalence %v not above threshold", ts.Topic, ts.Prevalence)
		}
	}
}

func TestConfigValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	bad := DefaultConfig()
	bad.MinPoolSize = 0
	if err := bad.Validate(); err == nil {
		t.Error("expected error for zero min pool size")
	}
	bad = DefaultConfig()
	bad.TopicPrevalenceThreshold = 1
	if err := bad.Validate(); err == nil {
		t.Error("expected error for prevalence threshold of 1")
	}
}
