package session

import "go.uber.org/atomic"

// Stats counts gate activity. Counters may be read from any goroutine.
type Stats struct {
	navigations   *atomic.Int64
	redirects     *atomic.Int64
	substitutions *atomic.Int64
	logins        *atomic.Int64
	logouts       *atomic.Int64
	authFailures  *atomic.Int64
}

// StatsSnapshot is a point-in-time copy of Stats.
type StatsSnapshot struct {
	Navigations   int64 // Applied navigations, including back
	Redirects     int64 // Denied navigations redirected home
	Substitutions int64 // Requests replaced by the entry screen while signed out
	Logins        int64
	Logouts       int64
	AuthFailures  int64
}

func newStats() *Stats {
	return &Stats{
		navigations:   atomic.NewInt64(0),
		redirects:     atomic.NewInt64(0),
		substitutions: atomic.NewInt64(0),
		logins:        atomic.NewInt64(0),
		logouts:       atomic.NewInt64(0),
		authFailures:  atomic.NewInt64(0),
	}
}

// Snapshot returns the current counter values.
func (s *Stats) Snapshot() StatsSnapshot {
	return StatsSnapshot{
		Navigations:   s.navigations.Load(),
		Redirects:     s.redirects.Load(),
		Substitutions: s.substitutions.Load(),
		Logins:        s.logins.Load(),
		Logouts:       s.logouts.Load(),
		AuthFailures:  s.authFailures.Load(),
	}
}
