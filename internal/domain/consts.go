package domain

import "time"

// Whitelist entry kinds as stored in the database.
const (
	KindBoard        = "board"
	KindOrganization = "organization"
)

// Bounds for user-configurable intervals. Values outside the range are
// clamped, not rejected.
const (
	MinUpdateInterval = 18 * time.Second // 0.3 minutes
	MaxUpdateInterval = 24 * time.Hour

	MinNotificationInterval = 6 * time.Minute // 0.1 hours
	MaxNotificationInterval = 24 * time.Hour
)

// Defaults applied when nothing is configured.
const (
	DefaultUpdateInterval       = 10 * time.Minute
	DefaultNotificationInterval = 6 * time.Hour
	DefaultPastDueWindow        = 24 * time.Hour
	DefaultDueSoonWindow        = time.Hour
)
