// Package engine wires the calibration, pattern, controlled-failure and
// peer benchmark components to persistent storage.
package engine

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/abhisek/calibra/internal/benchmark"
	"github.com/abhisek/calibra/internal/calibration"
	"github.com/abhisek/calibra/internal/challenge"
	"github.com/abhisek/calibra/internal/logging"
	"github.com/abhisek/calibra/internal/metrics"
	"github.com/abhisek/calibra/internal/patterns"
	"github.com/abhisek/calibra/internal/store"
)

// DefaultSnapshotKeep is how many pool snapshots are retained.
const DefaultSnapshotKeep = 10

// Options configures an Engine. Events, Peers and Bank are required.
type Options struct {
	Events    store.EventRepo
	Peers     store.PeerRepo
	Snapshots store.PoolSnapshotRepo // optional; the pool is not persisted without it
	Bank      *challenge.Bank

	// Feedback explains incorrect challenge answers. Defaults to authored
	// feedback with a template fallback.
	Feedback challenge.FeedbackSource

	Metrics      metrics.Config
	Patterns     patterns.Config
	Benchmark    benchmark.Config
	SnapshotKeep int

	// HashSalt keys persisted pool members. It must stay stable across
	// runs for a snapshot to recognise its members.
	HashSalt string

	Log *logging.Logger
	Now func() time.Time
}

// Engine is the entry point for every learner-facing operation.
type Engine struct {
	events    store.EventRepo
	peers     store.PeerRepo
	snapshots store.PoolSnapshotRepo
	bank      *challenge.Bank
	feedback  challenge.FeedbackSource

	metricsCfg  metrics.Config
	patternsCfg patterns.Config
	benchCfg    benchmark.Config
	keep        int

	log *logging.Logger
	now func() time.Time

	cache     *benchmark.Cache
	refresher *benchmark.Refresher

	mu     sync.Mutex
	active map[lineageKey]*challenge.Lineage
}

type lineageKey struct {
	userID      string
	objectiveID string
}

// New validates opts and builds an Engine. Zero-valued configs fall back
// to their defaults.
func New(opts Options) (*Engine, error) {
	if opts.Events == nil || opts.Peers == nil {
		return nil, errors.New("engine: event and peer repositories are required")
	}
	if opts.Bank == nil {
		return nil, errors.New("engine: challenge bank is required")
	}
	if opts.Metrics == (metrics.Config{}) {
		opts.Metrics = metrics.DefaultConfig()
	}
	if opts.Patterns == (patterns.Config{}) {
		opts.Patterns = patterns.DefaultConfig()
	}
	if opts.Benchmark == (benchmark.Config{}) {
		opts.Benchmark = benchmark.DefaultConfig()
	}
	if err := opts.Metrics.Validate(); err != nil {
		return nil, fmt.Errorf("engine: metrics config: %w", err)
	}
	if err := opts.Patterns.Validate(); err != nil {
		return nil, fmt.Errorf("engine: patterns config: %w", err)
	}
	if err := opts.Benchmark.Validate(); err != nil {
		return nil, fmt.Errorf("engine: benchmark config: %w", err)
	}
	if opts.SnapshotKeep <= 0 {
		opts.SnapshotKeep = DefaultSnapshotKeep
	}
	if opts.Feedback == nil {
		opts.Feedback = challenge.NewFeedbackChain(nil)
	}
	if opts.Log == nil {
		opts.Log = logging.Nop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	e := &Engine{
		events:      opts.Events,
		peers:       opts.Peers,
		snapshots:   opts.Snapshots,
		bank:        opts.Bank,
		feedback:    opts.Feedback,
		metricsCfg:  opts.Metrics,
		patternsCfg: opts.Patterns,
		benchCfg:    opts.Benchmark,
		keep:        opts.SnapshotKeep,
		log:         opts.Log,
		now:         opts.Now,
		cache:       benchmark.NewCache(opts.HashSalt),
		active:      make(map[lineageKey]*challenge.Lineage),
	}
	e.refresher = benchmark.NewRefresher(e, e.cache, e.benchCfg, e.log.With("component", "peer-pool"))
	e.refresher.SetClock(e.now)
	e.refresher.OnRefresh(e.persistPool)
	return e, nil
}

// Bank returns the challenge bank the engine draws from.
func (e *Engine) Bank() *challenge.Bank {
	return e.bank
}

// Close stops background work.
func (e *Engine) Close() {
	e.refresher.Stop()
}

func requireID(field, v string) error {
	if strings.TrimSpace(v) == "" {
		return &calibration.InputError{Field: field, Value: v, Reason: "is required"}
	}
	return nil
}
