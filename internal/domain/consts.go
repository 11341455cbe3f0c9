package domain

// Account statuses as stored in the users table. Only trial and pro
// accounts receive scheduled notifications.
const (
	StatusTrial   = "trial"
	StatusPro     = "pro"
	StatusExpired = "expired"
)

// NotificationDisabled is the sentinel stored in notification_time for
// users who opted out of the daily notification.
const NotificationDisabled = "disabled"

// Defaults applied when a user is registered without explicit settings.
const (
	DefaultNotificationTime = "09:00"
	DefaultTimezone         = "UTC"
)

// ValidStatuses maps every accepted account status for quick validation.
var ValidStatuses = map[string]bool{
	StatusTrial:   true,
	StatusPro:     true,
	StatusExpired: true,
}

// IsSchedulableStatus reports whether users with the given account status
// participate in notification scheduling.
func IsSchedulableStatus(status string) bool {
	return status == StatusTrial || status == StatusPro
}
