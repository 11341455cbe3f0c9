package schedule

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/diegoclair/slack-notify-bot/internal/domain"
	"github.com/diegoclair/slack-notify-bot/internal/domain/entity"
)

// GroupUsers partitions the user set into cohorts keyed by the UTC time
// their local notification time maps to on ref's date.
//
// Disabled and inactive users are filtered out first. A user with an
// invalid timezone or time format is skipped with a warning; one bad row
// never prevents the rest of the batch from being grouped. Cohorts are
// keyed by clock time only; which physical day they fire on is decided
// by BuildPlan.
func GroupUsers(users []entity.NotificationUser, ref time.Time, log zerolog.Logger) map[string]*entity.Cohort {
	cohorts := make(map[string]*entity.Cohort)

	for _, user := range users {
		if user.NotificationTime == domain.NotificationDisabled {
			log.Debug().Str("user", user.DisplayName).Msg("notifications disabled, skipping")
			continue
		}

		if !domain.IsSchedulableStatus(user.AccountStatus) {
			log.Debug().Str("user", user.DisplayName).Str("status", user.AccountStatus).Msg("inactive account, skipping")
			continue
		}

		utcTime, err := ToUTC(user.NotificationTime, user.Timezone, ref)
		if err != nil {
			log.Warn().Err(err).
				Str("user", user.DisplayName).
				Str("time", user.NotificationTime).
				Str("timezone", user.Timezone).
				Msg("skipping user with invalid schedule")
			continue
		}

		cohort, ok := cohorts[utcTime]
		if !ok {
			cohort = &entity.Cohort{UTCTime: utcTime}
			cohorts[utcTime] = cohort
		}

		if containsID(cohort.MemberIDs, user.SlackUserID) {
			continue
		}

		cohort.MemberIDs = append(cohort.MemberIDs, user.SlackUserID)
		cohort.DebugLabels = append(cohort.DebugLabels, fmt.Sprintf("%s %s", user.NotificationTime, user.Timezone))

		log.Debug().
			Str("user", user.DisplayName).
			Str("local", user.NotificationTime).
			Str("timezone", user.Timezone).
			Str("utc", utcTime).
			Msg("user grouped")
	}

	return cohorts
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
