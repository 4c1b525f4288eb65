package services

import (
	"time"
)

// GraceSeconds is the tolerance past an exam's nominal duration before a
// submission is flagged late. Late submissions are still graded in full;
// the flag is only surfaced as a warning.
const GraceSeconds = 10

// RemainingSeconds reports how many seconds an attempt has left, for the
// client-facing countdown. Advisory only: nothing blocks a submission that
// arrives after this reaches zero.
func RemainingSeconds(startedAt time.Time, durationMinutes int, submitted bool, now time.Time) int {
	if submitted {
		return 0
	}
	elapsed := int(now.Sub(startedAt).Seconds())
	remaining := durationMinutes*60 - elapsed
	if remaining < 0 {
		return 0
	}
	return remaining
}

// IsLate reports whether a submission at `now` falls outside the exam
// duration plus the grace period.
func IsLate(startedAt time.Time, durationMinutes int, now time.Time) bool {
	elapsed := now.Sub(startedAt).Seconds()
	return elapsed > float64(durationMinutes*60+GraceSeconds)
}
