package benchmark

import (
	"time"

	"golang.org/x/mod/semver"
)

// SnapshotVersion is the format version of persisted pool snapshots.
// Readers accept any snapshot with the same major version.
const SnapshotVersion = "v2.0.0"

// Snapshot is the persisted form of the pool: the anonymised member
// sample as of RefreshedAt. Members carry Key, never UserID.
type Snapshot struct {
	Version     string      `json:"version"`
	RefreshedAt time.Time   `json:"refreshedAt"`
	Members     []PoolEntry `json:"members"`
}

// PoolStats is the aggregate view of the whole pool. It is derived from
// the member sample and carries no per-member data.
type PoolStats struct {
	Version      string       `json:"version"`
	Distribution Distribution `json:"distribution"`
	Topics       []TopicStat  `json:"topics"`
	OptedInCount int          `json:"optedInCount"`
	RefreshedAt  time.Time    `json:"refreshedAt"`
}

// Summarize computes pool-wide statistics. Pools below the minimum size
// produce a PoolError and nothing else.
func Summarize(entries []PoolEntry, cfg Config, at time.Time) (*PoolStats, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	withCorr := make([]PoolEntry, 0, len(entries))
	for _, e := range entries {
		if e.Correlation != nil {
			withCorr = append(withCorr, e)
		}
	}
	if len(withCorr) < cfg.MinPoolSize {
		return nil, &PoolError{Have: len(withCorr), Need: cfg.MinPoolSize}
	}
	return &PoolStats{
		Version:      SnapshotVersion,
		Distribution: Distribute(correlations(withCorr)),
		Topics:       CommonTopics(withCorr, cfg),
		OptedInCount: len(entries),
		RefreshedAt:  at.UTC(),
	}, nil
}

// CompatibleSnapshot reports whether a persisted snapshot version can be read.
func CompatibleSnapshot(version string) bool {
	return semver.IsValid(version) && semver.Major(version) == semver.Major(SnapshotVersion)
}
