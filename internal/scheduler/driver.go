package scheduler

import "time"

// TimerHandle is a cancellable armed unit of work.
type TimerHandle interface {
	// Stop cancels the pending fire and reports whether it was still
	// pending. Stopping an already fired handle is a no-op.
	Stop() bool
}

// Driver arms a function to run exactly once at an absolute UTC instant.
// The scheduler owns recurrence: after a fire it asks the driver for a
// fresh handle, so drivers never need a recurring primitive.
type Driver interface {
	Schedule(at time.Time, fn func()) TimerHandle
}

// timerDriver realizes one-shot scheduling with process-resident timers.
type timerDriver struct{}

// NewTimerDriver returns the default driver backed by time.AfterFunc.
func NewTimerDriver() Driver {
	return timerDriver{}
}

func (timerDriver) Schedule(at time.Time, fn func()) TimerHandle {
	return time.AfterFunc(time.Until(at), fn)
}
