// Package scheduler arms and re-arms the timers that realize a daily
// notification plan, batching all users who share a UTC firing minute
// into a single dispatch.
package scheduler

import (
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/diegoclair/slack-notify-bot/internal/domain/contract"
	"github.com/diegoclair/slack-notify-bot/internal/domain/entity"
	"github.com/diegoclair/slack-notify-bot/internal/schedule"
)

// armedTimer is one live scheduled dispatch, bound to a cohort's next
// firing instant. It is replaced after every fire and discarded wholesale
// on reload or stop.
type armedTimer struct {
	cohortKey string
	target    time.Time
	members   int
	handle    TimerHandle
}

// Scheduler owns the armed-timer set. All mutations of the set (start,
// reload, stop, fire-then-rearm) are serialized by mu; the batch send
// itself runs on its own goroutine and never holds the lock.
type Scheduler struct {
	loader contract.UserLoader
	sender contract.BatchSender
	driver Driver
	log    zerolog.Logger

	mu         sync.Mutex
	running    bool
	generation uint64
	timers     map[string]*armedTimer // keyed by cohort UTC time
}

func New(loader contract.UserLoader, sender contract.BatchSender, driver Driver, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		loader: loader,
		sender: sender,
		driver: driver,
		log:    log.With().Str("component", "scheduler").Logger(),
		timers: make(map[string]*armedTimer),
	}
}

// Start builds the firing plan from the current user set and arms one
// timer per cohort. Calling Start on a running scheduler is a no-op.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		s.log.Warn().Msg("scheduler already running")
		return
	}
	s.running = true

	s.rebuildLocked(time.Now().UTC())
	s.log.Info().Msg("scheduler started")
}

// Reload discards every armed timer and rebuilds the plan from a fresh
// user snapshot. Safe to call concurrently with fires: a fire already
// executing its callback completes, but it will not re-arm into the
// discarded plan. If the user load fails the previous timers are kept.
func (s *Scheduler) Reload() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.log.Info().Msg("reloading schedule")
	s.rebuildLocked(time.Now().UTC())
}

// Stop cancels all armed timers. Idempotent.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running && len(s.timers) == 0 {
		return
	}
	s.running = false
	s.generation++
	s.clearLocked()
	s.log.Info().Msg("scheduler stopped")
}

// rebuildLocked runs the load-group-plan-arm sequence. The caller holds mu.
func (s *Scheduler) rebuildLocked(now time.Time) {
	users, err := s.loader.LoadUsers()
	if err != nil {
		s.log.Error().Err(err).Msg("user load failed, keeping previous schedule")
		return
	}
	s.log.Info().Int("users", len(users)).Msg("users loaded")

	s.generation++
	gen := s.generation
	s.clearLocked()

	cohorts := schedule.GroupUsers(users, now, s.log)
	if len(cohorts) == 0 {
		s.log.Warn().Msg("no schedulable users, nothing armed")
		return
	}

	plan := schedule.BuildPlan(cohorts, now)
	for _, entry := range plan {
		s.armLocked(gen, entry.Cohort, entry.Target)
	}

	s.log.Info().Int("timers", len(plan)).Msg("schedule armed")
}

// clearLocked cancels and drops every armed timer. Cancelling a timer
// that already fired is a silent no-op. The caller holds mu.
func (s *Scheduler) clearLocked() {
	for key, timer := range s.timers {
		timer.handle.Stop()
		s.log.Debug().Str("cohort", key).Msg("timer cancelled")
	}
	s.timers = make(map[string]*armedTimer)
}

// armLocked creates and registers one timer. The caller holds mu.
func (s *Scheduler) armLocked(gen uint64, cohort entity.Cohort, target time.Time) {
	timer := &armedTimer{
		cohortKey: cohort.UTCTime,
		target:    target,
		members:   len(cohort.MemberIDs),
	}
	timer.handle = s.driver.Schedule(target, func() {
		s.fire(gen, cohort, target)
	})
	s.timers[cohort.UTCTime] = timer

	s.log.Info().
		Str("cohort", cohort.UTCTime).
		Time("target", target).
		Int("members", len(cohort.MemberIDs)).
		Msg("timer armed")
}

// fire dispatches one cohort and arms its next-day timer. The send runs
// on its own goroutine so a slow delivery never delays re-arming or
// blocks Reload; success or failure, the cohort fires again tomorrow.
func (s *Scheduler) fire(gen uint64, cohort entity.Cohort, target time.Time) {
	s.log.Info().
		Str("cohort", cohort.UTCTime).
		Int("members", len(cohort.MemberIDs)).
		Str("local_times", strings.Join(cohort.DebugLabels, ", ")).
		Msg("cohort firing")

	go func() {
		if err := s.sender.SendBatch(cohort.MemberIDs); err != nil {
			s.log.Error().Err(err).Str("cohort", cohort.UTCTime).Msg("batch send failed")
			return
		}
		s.log.Info().Str("cohort", cohort.UTCTime).Msg("batch sent")
	}()

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		// a reload or stop discarded the plan this fire belonged to;
		// the rebuild already armed (or dropped) this cohort
		s.log.Debug().Str("cohort", cohort.UTCTime).Msg("stale fire, not re-arming")
		return
	}

	// next day, computed from the original target so the UTC clock time
	// never drifts
	s.armLocked(gen, cohort, target.Add(24*time.Hour))
}
