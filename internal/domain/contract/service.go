package contract

import (
	"context"

	"github.com/lmoroni/trellodue-bot/internal/domain"
	"github.com/lmoroni/trellodue-bot/internal/domain/entity"
)

// TrackerService resolves Trello data against the whitelist: every
// board and organization it yields carries a derived Blacklisted flag.
type TrackerService interface {
	FetchOrganizations(ctx context.Context) ([]entity.Organization, error)
	FetchBoards(ctx context.Context) ([]entity.Board, error)
	FetchBoardsByOrg(ctx context.Context, org string) ([]entity.Board, error)
	FetchCards(ctx context.Context, boardID string) ([]entity.Card, error)
	WhitelistBoards(boardIDs []string) error
	BlacklistBoards(boardIDs []string) error
	WhitelistOrganizations(orgIDs []string) error
	BlacklistOrganizations(orgIDs []string) error
}

// DueService is the due-date scheduling and reconciliation engine.
type DueService interface {
	// CheckDue runs a full reconciliation pass over all
	// non-blacklisted boards and returns the aggregated outcome
	// counters. A fetch failure aborts the pass; state already
	// updated for earlier boards is kept.
	CheckDue(ctx context.Context, msgr Messenger) (domain.Counter, error)

	// CheckNotifications sweeps the pending-notification set,
	// sending "recently past due" messages, and clears the set
	// unconditionally.
	CheckNotifications(msgr Messenger)

	// StartRepeatingUpdates (re)arms the repeating reconciliation
	// job, replacing any previous one.
	StartRepeatingUpdates(msgr Messenger)

	// StartRepeatingNotifications (re)arms the repeating pending
	// sweep, replacing any previous one. It is a no-op when
	// notifications are configured off.
	StartRepeatingNotifications(msgr Messenger)

	// StopRepeatingNotifications cancels the pending sweep job.
	StopRepeatingNotifications()

	// Stop cancels all repeating jobs and outstanding card timers.
	Stop()

	// Settings returns a copy of the current configuration.
	Settings() domain.Settings

	// SetUpdateInterval clamps and applies a new reconciliation
	// cadence, re-arming the repeating job if it is running.
	SetUpdateInterval(minutes float64) domain.Settings

	// SetNotificationInterval clamps and applies a new sweep cadence.
	// off disables the sweep entirely.
	SetNotificationInterval(hours float64, off bool) domain.Settings

	// SetQuiet toggles status chatter for background passes.
	SetQuiet(quiet bool) domain.Settings

	// Stats reports the number of scheduled timers and pending
	// notifications currently held.
	Stats() (scheduled, pending int)
}
