// Package notification carries the transient success/error banners raised
// by the auth and onboarding flows.
package notification

import "time"

// Kind of banner.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// AuthDismissAfter is the default auto-dismiss duration for banners,
// applied when no duration is configured.
const AuthDismissAfter = 3 * time.Second

// Notification is one banner raised to the user.
type Notification struct {
	Kind         Kind
	Message      string
	DismissAfter time.Duration
}

// Notifier raises banners. Implementations must be safe for use from the
// request path.
type Notifier interface {
	Success(message string)
	Error(message string)
}
