package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/user"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/calibra/internal/challenge"
	"github.com/abhisek/calibra/internal/config"
	"github.com/abhisek/calibra/internal/engine"
	"github.com/abhisek/calibra/internal/llm"
	"github.com/abhisek/calibra/internal/logging"
	"github.com/abhisek/calibra/internal/store"
)

// runtime bundles everything a command needs. Close releases it.
type runtime struct {
	cfg    config.Config
	log    *logging.Logger
	store  *store.Store
	engine *engine.Engine
}

func (r *runtime) Close() {
	r.engine.Close()
	_ = r.store.Close()
	r.log.Sync()
}

// loadConfig reads the config file and applies --db.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.Store.Path = p
	}
	return cfg, nil
}

// resolveDBPath returns the configured database path, or the default
// data directory location.
func resolveDBPath(cfg config.Config) (string, error) {
	if cfg.Store.Path != "" {
		return cfg.Store.Path, store.EnsureDir(cfg.Store.Path)
	}
	return store.DefaultDBPath()
}

// openStore opens the database without building an engine.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// setup loads config, opens the store and builds the engine.
func setup(cmd *cobra.Command) (*runtime, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log, err := logging.New(cfg.Log.Options())
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	bank, err := loadBank(cfg)
	if err != nil {
		_ = st.Close()
		return nil, err
	}

	var feedback challenge.FeedbackSource
	provider, err := llm.NewProvider(cmd.Context(), cfg.LLM, st.EventRepo(), log)
	switch {
	case err != nil:
		log.Warn("llm provider unavailable, using template feedback", "error", err)
	case provider != nil:
		feedback = challenge.NewFeedbackChain(challenge.NewLLMFeedback(provider, cfg.Challenge.Feedback))
	}

	eng, err := engine.New(engine.Options{
		Events:       st.EventRepo(),
		Peers:        st.PeerRepo(),
		Snapshots:    st.PoolSnapshots(),
		Bank:         bank,
		Feedback:     feedback,
		Metrics:      cfg.Metrics,
		Patterns:     cfg.Patterns,
		Benchmark:    cfg.Benchmark,
		SnapshotKeep: cfg.Store.SnapshotKeep,
		HashSalt:     cfg.Log.HashSalt,
		Log:          log,
	})
	if err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("build engine: %w", err)
	}

	return &runtime{cfg: cfg, log: log, store: st, engine: eng}, nil
}

func loadBank(cfg config.Config) (*challenge.Bank, error) {
	if cfg.Challenge.BankPath == "" {
		return challenge.DefaultBank()
	}
	b, err := challenge.LoadBank(cfg.Challenge.BankPath)
	if err != nil {
		return nil, fmt.Errorf("load challenge bank: %w", err)
	}
	return b, nil
}

// resolveUser returns --user, then CALIBRA_USER, then the OS user name.
func resolveUser(cmd *cobra.Command) (string, error) {
	if u, _ := cmd.Flags().GetString("user"); strings.TrimSpace(u) != "" {
		return strings.TrimSpace(u), nil
	}
	if u := os.Getenv("CALIBRA_USER"); u != "" {
		return u, nil
	}
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username, nil
	}
	return "", errors.New("no learner id: pass --user or set CALIBRA_USER")
}

func jsonOutput(cmd *cobra.Command) bool {
	v, _ := cmd.Flags().GetBool("json")
	return v
}
