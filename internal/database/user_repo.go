package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/diegoclair/slack-notify-bot/internal/domain"
	"github.com/diegoclair/slack-notify-bot/internal/domain/contract"
	"github.com/diegoclair/slack-notify-bot/internal/domain/entity"
)

type userRepository struct {
	db dbConn
}

func newUserRepository(db dbConn) contract.UserRepo {
	return &userRepository{db: db}
}

const userColumns = `id, slack_user_id, display_name, notification_time, timezone, account_status, created_at, updated_at`

func (r *userRepository) Create(user *entity.NotificationUser) error {
	query := `
		INSERT INTO notification_users (slack_user_id, display_name, notification_time, timezone, account_status)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		user.SlackUserID,
		user.DisplayName,
		user.NotificationTime,
		user.Timezone,
		user.AccountStatus,
	)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	user.ID = id
	return nil
}

func (r *userRepository) GetBySlackID(slackUserID string) (*entity.NotificationUser, error) {
	user := &entity.NotificationUser{}
	query := `
		SELECT ` + userColumns + `
		FROM notification_users
		WHERE slack_user_id = ?
	`

	err := r.db.QueryRow(query, slackUserID).Scan(
		&user.ID,
		&user.SlackUserID,
		&user.DisplayName,
		&user.NotificationTime,
		&user.Timezone,
		&user.AccountStatus,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

func (r *userRepository) GetAll() ([]*entity.NotificationUser, error) {
	query := `
		SELECT ` + userColumns + `
		FROM notification_users
		ORDER BY created_at
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	return scanUsers(rows)
}

// GetSchedulable returns the users that participate in scheduling:
// active account status and notifications not disabled. The filtering
// that matters for correctness is done again in the scheduler core; this
// query just avoids shipping rows that can never be armed.
func (r *userRepository) GetSchedulable() ([]*entity.NotificationUser, error) {
	query := `
		SELECT ` + userColumns + `
		FROM notification_users
		WHERE account_status IN (?, ?)
		  AND notification_time != ?
		ORDER BY created_at
	`

	rows, err := r.db.Query(query, domain.StatusTrial, domain.StatusPro, domain.NotificationDisabled)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedulable users: %w", err)
	}
	defer rows.Close()

	return scanUsers(rows)
}

func (r *userRepository) Update(user *entity.NotificationUser) error {
	query := `
		UPDATE notification_users SET
			display_name = ?,
			notification_time = ?,
			timezone = ?,
			account_status = ?,
			updated_at = ?
		WHERE slack_user_id = ?
	`

	_, err := r.db.Exec(query,
		user.DisplayName,
		user.NotificationTime,
		user.Timezone,
		user.AccountStatus,
		time.Now(),
		user.SlackUserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	return nil
}

func (r *userRepository) Delete(slackUserID string) error {
	query := `DELETE FROM notification_users WHERE slack_user_id = ?`

	_, err := r.db.Exec(query, slackUserID)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return nil
}

func scanUsers(rows *sql.Rows) ([]*entity.NotificationUser, error) {
	var users []*entity.NotificationUser

	for rows.Next() {
		user := &entity.NotificationUser{}
		err := rows.Scan(
			&user.ID,
			&user.SlackUserID,
			&user.DisplayName,
			&user.NotificationTime,
			&user.Timezone,
			&user.AccountStatus,
			&user.CreatedAt,
			&user.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	return users, nil
}
