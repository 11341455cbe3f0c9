package schedule

import (
	"sort"
	"time"

	"github.com/diegoclair/slack-notify-bot/internal/domain/entity"
)

// PlanEntry binds a cohort to its next absolute firing instant.
type PlanEntry struct {
	Target time.Time // UTC, strictly after the plan's reference time
	Cohort entity.Cohort
}

// BuildPlan computes the next occurrence of each cohort's UTC time at or
// after now: today's date combined with the cohort time, rolled to
// tomorrow when that instant is not strictly in the future. A target
// equal to now rolls over too, so a rebuild at the exact firing minute
// can neither double-fire nor skip the cohort. Entries are sorted by
// target so logs and status output are deterministic.
func BuildPlan(cohorts map[string]*entity.Cohort, now time.Time) []PlanEntry {
	nowUTC := now.UTC()

	entries := make([]PlanEntry, 0, len(cohorts))
	for utcTime, cohort := range cohorts {
		hour, minute, err := ParseClock(utcTime)
		if err != nil {
			// cohort keys are produced by ToUTC and always parse
			continue
		}

		target := time.Date(nowUTC.Year(), nowUTC.Month(), nowUTC.Day(), hour, minute, 0, 0, time.UTC)
		if !target.After(nowUTC) {
			target = target.AddDate(0, 0, 1)
		}

		entries = append(entries, PlanEntry{Target: target, Cohort: *cohort})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Target.Before(entries[j].Target)
	})

	return entries
}
