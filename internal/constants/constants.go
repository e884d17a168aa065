package constants

import "time"

// Session and context keys
const (
	SessionCookieName = "volunteer_session"
	ContextKeyUserID  = "user_id"
)

// Password policy
const MinPasswordLength = 8

// NotificationPollInterval is how often the dashboard re-fetches
// notifications while mounted.
const NotificationPollInterval = 30 * time.Second

// DefaultRole is assigned to users who sign up without an explicit role.
const DefaultRole = "Volunteer"
