package benchmark

import (
	"fmt"
	"math"
	"sort"
)

// Request is one learner's benchmark request against a pool snapshot.
type Request struct {
	UserID string
	// Key is the requester's salted digest, used to recognise their entry
	// in a restored sample where UserID is unknown.
	Key     string
	OptedIn bool
	// UserCorrelation is the requester's own coefficient; nil when they
	// do not have enough data yet.
	UserCorrelation *float64
	Pool            []PoolEntry
}

// Compute places the requester within the pool. It fails closed: an
// invalid config, a requester who has not opted in, or a pool with fewer
// than cfg.MinPoolSize other members with a correlation, yields an error
// and no statistics.
func Compute(req Request, cfg Config) (*PeerBenchmark, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("benchmark config: %w", err)
	}
	if !req.OptedIn {
		return nil, ErrNotOptedIn
	}

	peers := make([]PoolEntry, 0, len(req.Pool))
	for _, e := range req.Pool {
		if isRequester(e, req) || e.Correlation == nil {
			continue
		}
		peers = append(peers, e)
	}
	if len(peers) < cfg.MinPoolSize {
		return nil, &PoolError{Have: len(peers), Need: cfg.MinPoolSize}
	}

	b := &PeerBenchmark{
		UserCorrelation:           req.UserCorrelation,
		Band:                      BandNotEnoughData,
		PeerDistribution:          Distribute(correlations(peers)),
		CommonOverconfidentTopics: CommonTopics(peers, cfg),
	}
	if req.UserCorrelation != nil {
		p := PercentileRank(b.PeerDistribution.Correlations, *req.UserCorrelation)
		b.UserPercentile = &p
		b.Band = BandFor(p)
	}
	return b, nil
}

func isRequester(e PoolEntry, req Request) bool {
	if req.UserID != "" && e.UserID == req.UserID {
		return true
	}
	return req.Key != "" && e.Key == req.Key
}

func correlations(entries []PoolEntry) []float64 {
	out := make([]float64, 0, len(entries))
	for _, e := range entries {
		if e.Correlation != nil {
			out = append(out, *e.Correlation)
		}
	}
	return out
}

// Distribute summarises a sample. The returned Correlations are sorted.
func Distribute(sample []float64) Distribution {
	sorted := make([]float64, len(sample))
	copy(sorted, sample)
	sort.Float64s(sorted)

	d := Distribution{Correlations: sorted, PoolSize: len(sorted)}
	if len(sorted) == 0 {
		return d
	}
	d.Quartiles = [3]float64{
		quantile(sorted, 0.25),
		quantile(sorted, 0.50),
		quantile(sorted, 0.75),
	}
	d.Median = d.Quartiles[1]

	sum := 0.0
	for _, v := range sorted {
		sum += v
	}
	d.Mean = sum / float64(len(sorted))
	return d
}

// quantile interpolates linearly between the closest ranks of a sorted sample.
func quantile(sorted []float64, p float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	h := float64(len(sorted)-1) * p
	lo := math.Floor(h)
	hi := math.Ceil(h)
	return sorted[int(lo)] + (h-lo)*(sorted[int(hi)]-sorted[int(lo)])
}

// PercentileRank returns the share of the sorted sample below v, counting
// ties as half, scaled to 0-100.
func PercentileRank(sorted []float64, v float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	below := sort.SearchFloat64s(sorted, v)
	ties := 0
	for i := below; i < len(sorted) && sorted[i] == v; i++ {
		ties++
	}
	return (float64(below) + 0.5*float64(ties)) / float64(len(sorted)) * 100
}

// CommonTopics returns topics whose prevalence across entries exceeds the
// configured threshold, most prevalent first.
func CommonTopics(entries []PoolEntry, cfg Config) []TopicStat {
	if len(entries) == 0 {
		return nil
	}
	type acc struct {
		members  int
		deltaSum float64
	}
	byTopic := make(map[string]*acc)
	for _, e := range entries {
		seen := make(map[string]bool, len(e.OverconfidentTopics))
		for _, td := range e.OverconfidentTopics {
			if td.Topic == "" || seen[td.Topic] {
				continue
			}
			seen[td.Topic] = true
			a, ok := byTopic[td.Topic]
			if !ok {
				a = &acc{}
				byTopic[td.Topic] = a
			}
			a.members++
			a.deltaSum += math.Abs(td.AvgDelta)
		}
	}

	n := float64(len(entries))
	var out []TopicStat
	for topic, a := range byTopic {
		prevalence := float64(a.members) / n
		if prevalence <= cfg.TopicPrevalenceThreshold {
			continue
		}
		out = append(out, TopicStat{
			Topic:      topic,
			Prevalence: prevalence,
			AvgDelta:   a.deltaSum / float64(a.members),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Prevalence != out[j].Prevalence {
			return out[i].Prevalence > out[j].Prevalence
		}
		if out[i].AvgDelta != out[j].AvgDelta {
			return out[i].AvgDelta > out[j].AvgDelta
		}
		return out[i].Topic < out[j].Topic
	})

	limit := cfg.MaxTopics
	if limit <= 0 || limit > 5 {
		limit = 5
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
