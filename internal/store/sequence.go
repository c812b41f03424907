package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
)

// sequencer hands out the global event sequence. Events live in one table
// per type, so row ids cannot order them against each other. The counter
// is a single-row table bumped with UPDATE ... RETURNING.
type sequencer struct {
	mu sync.Mutex
	db *sql.DB
}

const sequenceDDL = `
CREATE TABLE IF NOT EXISTS event_sequence (
	id   INTEGER PRIMARY KEY CHECK (id = 1),
	next INTEGER NOT NULL
);
INSERT OR IGNORE INTO event_sequence (id, next) VALUES (1, 1);`

func newSequencer(ctx context.Context, db *sql.DB) (*sequencer, error) {
	if _, err := db.ExecContext(ctx, sequenceDDL); err != nil {
		return nil, fmt.Errorf("init event sequence: %w", err)
	}
	return &sequencer{db: db}, nil
}

// Next returns the next sequence number, starting at 1.
func (s *sequencer) Next(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	row := s.db.QueryRowContext(ctx, `UPDATE event_sequence SET next = next + 1 WHERE id = 1 RETURNING next - 1`)
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return n, nil
}
