package service

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/diegoclair/slack-notify-bot/internal/domain"
	"github.com/diegoclair/slack-notify-bot/internal/domain/contract"
	"github.com/diegoclair/slack-notify-bot/internal/domain/entity"
	"github.com/diegoclair/slack-notify-bot/internal/schedule"
)

// userService manages notification users. Every mutation of a
// schedule-relevant field asks the scheduler for a reload so the armed
// timers always reflect the store.
type userService struct {
	dm          contract.DataManager
	slackClient contract.SlackClient
	log         zerolog.Logger
	sched       contract.ScheduleReloader
}

func newUser(dm contract.DataManager, slackClient contract.SlackClient, log zerolog.Logger) *userService {
	return &userService{
		dm:          dm,
		slackClient: slackClient,
		log:         log.With().Str("component", "users").Logger(),
	}
}

// AttachScheduler wires the scheduler once both sides exist. Must be
// called before serving traffic; mutations without an attached scheduler
// persist but are only picked up on the next rebuild.
func (s *userService) AttachScheduler(sched contract.ScheduleReloader) {
	s.sched = sched
}

// RegisterUser creates a user with default settings, resolving the
// display name through the Slack API. Registering an existing user
// returns the stored record unchanged.
func (s *userService) RegisterUser(slackUserID string) (*entity.NotificationUser, error) {
	existing, err := s.dm.User().GetBySlackID(slackUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	userInfo, err := s.slackClient.GetUserInfo(slackUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user info from Slack: %w", err)
	}

	displayName := userInfo.Profile.RealName
	if displayName == "" {
		displayName = userInfo.Profile.DisplayName
	}
	if displayName == "" {
		displayName = userInfo.Name
	}

	user := &entity.NotificationUser{
		SlackUserID:      slackUserID,
		DisplayName:      displayName,
		NotificationTime: domain.DefaultNotificationTime,
		Timezone:         domain.DefaultTimezone,
		AccountStatus:    domain.StatusTrial,
	}

	if err := s.dm.User().Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.log.Info().Str("user", displayName).Msg("user registered")
	s.reloadSchedule()
	return user, nil
}

// SetNotificationTime updates the user's local wall-clock time, or
// disables notifications when given the "disabled" sentinel.
func (s *userService) SetNotificationTime(slackUserID, localTime string) error {
	if localTime != domain.NotificationDisabled {
		if _, _, err := schedule.ParseClock(localTime); err != nil {
			return err
		}
	}

	user, err := s.getExisting(slackUserID)
	if err != nil {
		return err
	}

	user.NotificationTime = localTime
	if err := s.dm.User().Update(user); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	s.log.Info().Str("user", user.DisplayName).Str("time", localTime).Msg("notification time updated")
	s.reloadSchedule()
	return nil
}

// SetTimezone updates the user's IANA timezone.
func (s *userService) SetTimezone(slackUserID, timezone string) error {
	if _, err := time.LoadLocation(timezone); err != nil {
		return fmt.Errorf("%w: %q", schedule.ErrInvalidTimezone, timezone)
	}

	user, err := s.getExisting(slackUserID)
	if err != nil {
		return err
	}

	user.Timezone = timezone
	if err := s.dm.User().Update(user); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	s.log.Info().Str("user", user.DisplayName).Str("timezone", timezone).Msg("timezone updated")
	s.reloadSchedule()
	return nil
}

// SetAccountStatus moves the user between trial, pro and expired.
func (s *userService) SetAccountStatus(slackUserID, status string) error {
	if !domain.ValidStatuses[status] {
		return fmt.Errorf("invalid account status %q", status)
	}

	user, err := s.getExisting(slackUserID)
	if err != nil {
		return err
	}

	user.AccountStatus = status
	if err := s.dm.User().Update(user); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	s.log.Info().Str("user", user.DisplayName).Str("status", status).Msg("account status updated")
	s.reloadSchedule()
	return nil
}

func (s *userService) ListUsers() ([]*entity.NotificationUser, error) {
	return s.dm.User().GetAll()
}

// LoadUsers implements contract.UserLoader for the scheduler: a fresh
// snapshot of the schedulable user set on every rebuild.
func (s *userService) LoadUsers() ([]entity.NotificationUser, error) {
	users, err := s.dm.User().GetSchedulable()
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}

	snapshot := make([]entity.NotificationUser, 0, len(users))
	for _, user := range users {
		snapshot = append(snapshot, *user)
	}
	return snapshot, nil
}

func (s *userService) getExisting(slackUserID string) (*entity.NotificationUser, error) {
	user, err := s.dm.User().GetBySlackID(slackUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %s not registered", slackUserID)
	}
	return user, nil
}

func (s *userService) reloadSchedule() {
	if s.sched == nil {
		return
	}
	s.sched.Reload()
}
