package challenge

import "time"

// RetryOffsetDays are the spaced-retry offsets applied to an incorrect
// attempt's creation time.
var RetryOffsetDays = []int{1, 3, 7, 14, 30}

// BuildRetrySchedule returns the retry times for an attempt created at
// createdAt. The result always has len(RetryOffsetDays) strictly
// increasing entries.
func BuildRetrySchedule(createdAt time.Time) []time.Time {
	schedule := make([]time.Time, len(RetryOffsetDays))
	for i, d := range RetryOffsetDays {
		schedule[i] = createdAt.Add(time.Duration(d) * 24 * time.Hour)
	}
	return schedule
}

// DueEntries returns the schedule entries at or before now.
func DueEntries(schedule []time.Time, now time.Time) []time.Time {
	var due []time.Time
	for _, t := range schedule {
		if !now.Before(t) {
			due = append(due, t)
		}
	}
	return due
}

// NextEntry returns the first schedule entry after now, or nil when the
// schedule is exhausted.
func NextEntry(schedule []time.Time, now time.Time) *time.Time {
	for _, t := range schedule {
		if t.After(now) {
			next := t
			return &next
		}
	}
	return nil
}
