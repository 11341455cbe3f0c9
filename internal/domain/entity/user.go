package entity

import "time"

// NotificationUser holds per-user notification settings loaded from the store.
type NotificationUser struct {
	ID               int64     `json:"id" db:"id"`
	SlackUserID      string    `json:"slack_user_id" db:"slack_user_id"`
	DisplayName      string    `json:"display_name" db:"display_name"` // logs only
	NotificationTime string    `json:"notification_time" db:"notification_time"` // HH:MM local wall clock, or "disabled"
	Timezone         string    `json:"timezone" db:"timezone"`                   // IANA identifier, e.g. "Asia/Almaty"
	AccountStatus    string    `json:"account_status" db:"account_status"`       // trial, pro, expired
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`
}
