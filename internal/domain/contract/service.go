package contract

import "github.com/diegoclair/slack-notify-bot/internal/domain/entity"

// UserService is the application surface for managing notification users.
// Mutations that touch schedule-relevant fields trigger a scheduler reload.
type UserService interface {
	RegisterUser(slackUserID string) (*entity.NotificationUser, error)
	SetNotificationTime(slackUserID, localTime string) error
	SetTimezone(slackUserID, timezone string) error
	SetAccountStatus(slackUserID, status string) error
	ListUsers() ([]*entity.NotificationUser, error)
}
