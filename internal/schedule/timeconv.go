// Package schedule converts per-user local notification times into a
// deduplicated set of future UTC firing instants.
package schedule

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidTimeFormat indicates a time that is not "HH:MM".
	ErrInvalidTimeFormat = errors.New("invalid time format, expected HH:MM")
	// ErrInvalidTimezone indicates an unknown IANA timezone identifier.
	ErrInvalidTimezone = errors.New("invalid timezone identifier")
)

const clockLayout = "15:04"

// ParseClock parses an "HH:MM" wall-clock value.
func ParseClock(value string) (hour, minute int, err error) {
	t, err := time.Parse(clockLayout, value)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, value)
	}
	return t.Hour(), t.Minute(), nil
}

// ToUTC converts a local wall-clock time in the given timezone to the UTC
// time of day it maps to on ref's UTC date, truncated to the minute.
//
// The reference date matters: a timezone's UTC offset depends on the date
// (daylight saving transitions), so callers must pass the date the next
// firing decision is made against and recompute on every rebuild rather
// than cache the result. If the local time does not exist on that date
// (DST skipped hour), time.Date normalizes it past the gap and the
// normalized instant is used.
func ToUTC(localTime, timezone string, ref time.Time) (string, error) {
	hour, minute, err := ParseClock(localTime)
	if err != nil {
		return "", err
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimezone, timezone)
	}

	refUTC := ref.UTC()
	local := time.Date(refUTC.Year(), refUTC.Month(), refUTC.Day(), hour, minute, 0, 0, loc)

	return local.UTC().Format(clockLayout), nil
}
