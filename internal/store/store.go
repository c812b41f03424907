// Package store persists calibra's event log, peer consent and pool
// snapshots in SQLite through ent.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/calibra/ent"

	_ "modernc.org/sqlite"
)

// pragmas tune SQLite for a single local writer.
var pragmas = []string{
	"PRAGMA journal_mode = WAL",
	"PRAGMA busy_timeout = 5000",
	"PRAGMA foreign_keys = ON",
	"PRAGMA synchronous = NORMAL",
}

// Store owns the database handle and hands out repositories over it.
type Store struct {
	db     *sql.DB
	client *ent.Client
	seq    *sequencer
}

// Open connects to the SQLite database named by dsn and migrates the
// schema. dsn is a file path or a modernc "file:" URI.
func Open(dsn string) (*Store, error) {
	ctx := context.Background()

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			db.Close()
			return nil, fmt.Errorf("%s: %w", p, err)
		}
	}

	client := ent.NewClient(ent.Driver(entsql.OpenDB(dialect.SQLite, db)))
	if err := client.Schema.Create(ctx); err != nil {
		client.Close()
		return nil, fmt.Errorf("migrate schema: %w", err)
	}
	seq, err := newSequencer(ctx, db)
	if err != nil {
		client.Close()
		return nil, err
	}
	return &Store{db: db, client: client, seq: seq}, nil
}

func (s *Store) Client() *ent.Client { return s.client }
func (s *Store) DB() *sql.DB         { return s.db }
func (s *Store) Close() error        { return s.client.Close() }

// eventRepo serves EventRepo; its methods live next to the event they
// handle.
type eventRepo struct {
	client *ent.Client
	seq    *sequencer
}

func (s *Store) EventRepo() EventRepo {
	return &eventRepo{client: s.client, seq: s.seq}
}

func (s *Store) PeerRepo() PeerRepo {
	return &peerRepo{client: s.client}
}

func (s *Store) PoolSnapshots() PoolSnapshotRepo {
	return &poolSnapshotRepo{client: s.client, seq: s.seq}
}

// DefaultDBPath returns $CALIBRA_DB when set, otherwise calibra.db under
// the XDG data directory. The parent directory is created.
func DefaultDBPath() (string, error) {
	p := os.Getenv("CALIBRA_DB")
	if p == "" {
		dir, err := dataDir()
		if err != nil {
			return "", err
		}
		p = filepath.Join(dir, "calibra", "calibra.db")
	}
	return p, EnsureDir(p)
}

func dataDir() (string, error) {
	if d := os.Getenv("XDG_DATA_HOME"); d != "" {
		return d, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".local", "share"), nil
}

// EnsureDir creates the directory that will hold the file at path.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
