package services

import (
	"testing"
	"time"
)

func TestRemainingSeconds(t *testing.T) {
	start := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	cases := []struct {
		name      string
		elapsed   time.Duration
		submitted bool
		want      int
	}{
		{"just started", 0, false, 600},
		{"halfway", 5 * time.Minute, false, 300},
		{"one second left", 599 * time.Second, false, 1},
		{"time expired", 650 * time.Second, false, 0},
		{"submitted attempts report zero", 1 * time.Minute, true, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := RemainingSeconds(start, 10, c.submitted, start.Add(c.elapsed))
			if got != c.want {
				t.Fatalf("RemainingSeconds = %d, want %d", got, c.want)
			}
		})
	}
}

func TestIsLate(t *testing.T) {
	start := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		elapsed time.Duration
		want    bool
	}{
		{"on time", 9 * time.Minute, false},
		{"at the deadline", 600 * time.Second, false},
		{"inside the grace period", 609 * time.Second, false},
		{"exactly at grace boundary", 610 * time.Second, false},
		{"one second past grace", 611 * time.Second, true},
		{"well past grace", 650 * time.Second, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := IsLate(start, 10, start.Add(c.elapsed))
			if got != c.want {
				t.Fatalf("IsLate after %v = %v, want %v", c.elapsed, got, c.want)
			}
		})
	}
}
