package scheduler

import (
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// CronDriver arms fires through a cron runner instead of in-process
// timers. It exists for deployments where scheduling is expressed as
// cron entries (the runner's entry table can be inspected or mirrored to
// an external trigger); business logic upstream is identical for both
// drivers.
//
// Cron entries recur daily by nature, while Driver promises one-shot
// semantics, so each handle disarms its entry on first activation and
// the scheduler re-arms as usual.
type CronDriver struct {
	c *cron.Cron
}

// NewCronDriver creates and starts the cron runner in UTC.
func NewCronDriver() *CronDriver {
	c := cron.New(cron.WithLocation(time.UTC))
	c.Start()
	return &CronDriver{c: c}
}

// Close stops the cron runner and waits for in-flight jobs.
func (d *CronDriver) Close() {
	<-d.c.Stop().Done()
}

func (d *CronDriver) Schedule(at time.Time, fn func()) TimerHandle {
	at = at.UTC()
	spec := fmt.Sprintf("%d %d * * *", at.Minute(), at.Hour())

	h := &cronHandle{c: d.c}
	id, err := d.c.AddFunc(spec, func() {
		if h.consume() {
			fn()
		}
	})
	if err != nil {
		// spec is generated from a valid instant and always parses
		panic(fmt.Sprintf("cron spec %q: %v", spec, err))
	}
	h.id = id

	return h
}

type cronHandle struct {
	c    *cron.Cron
	id   cron.EntryID
	mu   sync.Mutex
	done bool
}

// consume claims the single allowed activation and removes the entry so
// the daily recurrence never produces a second fire.
func (h *cronHandle) consume() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.done {
		return false
	}
	h.done = true
	h.c.Remove(h.id)
	return true
}

func (h *cronHandle) Stop() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.done {
		return false
	}
	h.done = true
	h.c.Remove(h.id)
	return true
}
