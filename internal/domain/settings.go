package domain

import "time"

// Settings holds the reminder configuration. It replaces the original
// process-wide values: one instance is owned by the due service and
// every mutation goes through the clamping helpers below.
type Settings struct {
	// UpdateInterval is the cadence of full reconciliation passes.
	UpdateInterval time.Duration

	// NotificationInterval is the cadence of pending-notification
	// sweeps. Ignored when NotificationsOff is set.
	NotificationInterval time.Duration
	NotificationsOff     bool

	// PastDueWindow is the grace period after a due date within which
	// a missed-due notification is still worth sending.
	PastDueWindow time.Duration

	// DueSoonWindow is the lead time before a due date within which a
	// notification fires immediately instead of via timer.
	DueSoonWindow time.Duration

	// Quiet suppresses status chatter for background passes.
	Quiet bool
}

// DefaultSettings returns the deployment defaults.
func DefaultSettings() Settings {
	return Settings{
		UpdateInterval:       DefaultUpdateInterval,
		NotificationInterval: DefaultNotificationInterval,
		PastDueWindow:        DefaultPastDueWindow,
		DueSoonWindow:        DefaultDueSoonWindow,
		Quiet:                true,
	}
}

// ClampUpdateInterval converts minutes into a bounded duration.
func ClampUpdateInterval(minutes float64) time.Duration {
	return clamp(time.Duration(minutes*float64(time.Minute)), MinUpdateInterval, MaxUpdateInterval)
}

// ClampNotificationInterval converts hours into a bounded duration.
func ClampNotificationInterval(hours float64) time.Duration {
	return clamp(time.Duration(hours*float64(time.Hour)), MinNotificationInterval, MaxNotificationInterval)
}

func clamp(d, min, max time.Duration) time.Duration {
	if d < min {
		return min
	}
	if d > max {
		return max
	}
	return d
}
