package store

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openTestStore opens a private in-memory database named after the test.
func openTestStore(t *testing.T) *Store {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	s, err := Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestOpen_AppliesPragmas(t *testing.T) {
	s := openTestStore(t)

	// journal_mode reports "memory" for in-memory databases.
	for pragma, want := range map[string]string{"foreign_keys": "1", "synchronous": "1"} {
		var got string
		require.NoError(t, s.DB().QueryRow("PRAGMA "+pragma).Scan(&got))
		assert.Equal(t, want, got, pragma)
	}
}

func TestOpen_FileDatabaseUsesWAL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "calibra.db")
	require.NoError(t, EnsureDir(path))

	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	var mode string
	require.NoError(t, s.DB().QueryRow("PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "wal", mode)
}

func TestOpen_MigratesTables(t *testing.T) {
	s := openTestStore(t)
	for _, table := range []string{"pool_snapshots", "event_sequence"} {
		var name string
		err := s.DB().QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		assert.NoError(t, err, table)
	}
}

func TestDefaultDBPath(t *testing.T) {
	dir := t.TempDir()

	t.Setenv("CALIBRA_DB", filepath.Join(dir, "explicit", "x.db"))
	p, err := DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "explicit", "x.db"), p)
	assert.DirExists(t, filepath.Join(dir, "explicit"))

	t.Setenv("CALIBRA_DB", "")
	t.Setenv("XDG_DATA_HOME", dir)
	p, err = DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "calibra", "calibra.db"), p)
}

func TestSequencer_IsSharedAndMonotonic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var got []int64
	for range 3 {
		n, err := s.seq.Next(ctx)
		require.NoError(t, err)
		got = append(got, n)
	}
	assert.Equal(t, []int64{1, 2, 3}, got)

	// A second sequencer over the same database continues the count.
	again, err := newSequencer(ctx, s.DB())
	require.NoError(t, err)
	n, err := again.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}

func savePoolSnapshots(t *testing.T, repo PoolSnapshotRepo, n int) time.Time {
	t.Helper()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := range n {
		err := repo.Save(context.Background(), &PoolSnapshot{
			TakenAt: base.Add(time.Duration(i) * time.Minute),
			Version: fmt.Sprintf("1.%d.0", i),
			Members: 50 + i,
			Payload: json.RawMessage(fmt.Sprintf(`{"optedInCount":%d}`, 50+i)),
		})
		require.NoError(t, err)
	}
	return base
}

func TestPoolSnapshots_LatestEmpty(t *testing.T) {
	snap, err := openTestStore(t).PoolSnapshots().Latest(context.Background())
	require.NoError(t, err)
	assert.Nil(t, snap)
}

func TestPoolSnapshots_SaveAndLatest(t *testing.T) {
	repo := openTestStore(t).PoolSnapshots()
	base := savePoolSnapshots(t, repo, 3)

	snap, err := repo.Latest(context.Background())
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.Equal(t, "1.2.0", snap.Version)
	assert.Equal(t, 52, snap.Members)
	assert.True(t, snap.TakenAt.Equal(base.Add(2*time.Minute)))
	assert.JSONEq(t, `{"optedInCount":52}`, string(snap.Payload))
	assert.Positive(t, snap.Sequence)
}

func TestPoolSnapshots_SaveFillsIdentity(t *testing.T) {
	repo := openTestStore(t).PoolSnapshots()
	snap := &PoolSnapshot{Version: "1.0.0", Payload: json.RawMessage(`{}`)}
	require.NoError(t, repo.Save(context.Background(), snap))
	assert.NotZero(t, snap.ID)
	assert.NotZero(t, snap.Sequence)
	assert.False(t, snap.TakenAt.IsZero())
}

func TestPoolSnapshots_Prune(t *testing.T) {
	tests := []struct {
		name  string
		saved int
		keep  int
		want  int
	}{
		{"trims oldest", 7, 5, 5},
		{"fewer than keep", 2, 5, 2},
		{"keep none", 3, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := openTestStore(t)
			repo := s.PoolSnapshots()
			ctx := context.Background()
			savePoolSnapshots(t, repo, tt.saved)

			require.NoError(t, repo.Prune(ctx, tt.keep))
			count, err := s.Client().PoolSnapshot.Query().Count(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.want, count)

			if tt.want > 0 {
				latest, err := repo.Latest(ctx)
				require.NoError(t, err)
				assert.Equal(t, fmt.Sprintf("1.%d.0", tt.saved-1), latest.Version, "newest survives")
			}
		})
	}
}
