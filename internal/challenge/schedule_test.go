package challenge

import (
	"testing"
	"time"
)

func TestBuildRetrySchedule(t *testing.T) {
	created := time.Date(2025, 3, 9, 14, 30, 0, 0, time.UTC)
	got := BuildRetrySchedule(created)

	want := []time.Time{
		created.Add(1 * 24 * time.Hour),
		created.Add(3 * 24 * time.Hour),
		created.Add(7 * 24 * time.Hour),
		created.Add(14 * 24 * time.Hour),
		created.Add(30 * 24 * time.Hour),
	}
	if len(got) != 5 {
		t.Fatalf("len = %d, want 5", len(got))
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("schedule[%d] = %v, want %v", i, got[i], want[i])
		}
		if i > 0 && !got[i].After(got[i-1]) {
			t.Errorf("schedule[%d] is not after schedule[%d]", i, i-1)
		}
	}
}

func TestDueEntries(t *testing.T) {
	created := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	schedule := BuildRetrySchedule(created)

	tests := []struct {
		name string
		now  time.Time
		want int
	}{
		{"before first", created.Add(23 * time.Hour), 0},
		{"exactly first", created.Add(24 * time.Hour), 1},
		{"after third", created.Add(8 * 24 * time.Hour), 3},
		{"after last", created.Add(40 * 24 * time.Hour), 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DueEntries(schedule, tt.now); len(got) != tt.want {
				t.Errorf("due = %d, want %d", len(got), tt.want)
			}
		})
	}
}

func TestNextEntry(t *testing.T) {
	created := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	schedule := BuildRetrySchedule(created)

	next := NextEntry(schedule, created.Add(2*24*time.Hour))
	if next == nil || !next.Equal(schedule[1]) {
		t.Errorf("next = %v, want %v", next, schedule[1])
	}
	if next := NextEntry(schedule, created.Add(31*24*time.Hour)); next != nil {
		t.Errorf("next = %v, want nil after the last entry", next)
	}
}
