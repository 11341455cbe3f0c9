package scheduler

import (
	"sort"
	"time"
)

// StatusEntry describes one armed timer.
type StatusEntry struct {
	CohortKey        string    `json:"cohort_key"`
	Target           time.Time `json:"target_utc"`
	SecondsRemaining int64     `json:"seconds_remaining"`
	MemberCount      int       `json:"member_count"`
}

// Snapshot is a point-in-time view of the scheduler state. Each call
// recomputes seconds remaining against the current clock, so repeated
// calls count down without any background work.
type Snapshot struct {
	CurrentUTC time.Time     `json:"current_utc_time"`
	Running    bool          `json:"running"`
	ArmedCount int           `json:"armed_count"`
	Entries    []StatusEntry `json:"entries"`
}

// Status returns a read-only projection of the armed-timer set. It never
// mutates scheduler state.
func (s *Scheduler) Status() Snapshot {
	now := time.Now().UTC()

	s.mu.Lock()
	running := s.running
	entries := make([]StatusEntry, 0, len(s.timers))
	for _, timer := range s.timers {
		entries = append(entries, StatusEntry{
			CohortKey:        timer.cohortKey,
			Target:           timer.target,
			SecondsRemaining: int64(timer.target.Sub(now).Seconds()),
			MemberCount:      timer.members,
		})
	}
	s.mu.Unlock()

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Target.Before(entries[j].Target)
	})

	return Snapshot{
		CurrentUTC: now,
		Running:    running,
		ArmedCount: len(entries),
		Entries:    entries,
	}
}
