package contract

import "github.com/diegoclair/slack-notify-bot/internal/domain/entity"

// UserLoader supplies the scheduler with the current user set. Each call
// returns a fresh snapshot; the scheduler keeps no user cache between
// rebuilds.
type UserLoader interface {
	LoadUsers() ([]entity.NotificationUser, error)
}

// BatchSender delivers the daily notification to a non-empty list of
// user IDs. The scheduler logs and swallows any error it returns.
type BatchSender interface {
	SendBatch(userIDs []string) error
}

// ScheduleReloader is implemented by the scheduler so that services can
// rebuild the firing plan after a schedule-relevant user change.
type ScheduleReloader interface {
	Reload()
}
