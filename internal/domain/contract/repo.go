package contract

import (
	"context"

	"github.com/diegoclair/slack-notify-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	User() UserRepo
}

// UserRepo defines the contract for the notification user repository
type UserRepo interface {
	Create(user *entity.NotificationUser) error
	GetBySlackID(slackUserID string) (*entity.NotificationUser, error)
	GetAll() ([]*entity.NotificationUser, error)
	// GetSchedulable returns users that participate in scheduling:
	// active account status and notifications not disabled.
	GetSchedulable() ([]*entity.NotificationUser, error)
	Update(user *entity.NotificationUser) error
	Delete(slackUserID string) error
}
