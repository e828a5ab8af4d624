package service

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/lmoroni/trellodue-bot/internal/domain"
	"github.com/lmoroni/trellodue-bot/internal/domain/contract"
	"github.com/lmoroni/trellodue-bot/internal/domain/entity"
)

// scheduledDue tracks one outstanding due-reminder timer: the due
// instant it was armed against and the handle to cancel it. A card ID
// is in the scheduled map if and only if it holds exactly one timer.
type scheduledDue struct {
	due   time.Time
	timer contract.TimerHandle
}

// dueService owns all due-date scheduling state. Scheduling state is
// in-memory only and rebuilt from a fresh reconciliation at startup.
type dueService struct {
	mu       sync.Mutex
	tracker  contract.TrackerService
	timers   contract.TimerService
	settings domain.Settings
	now      func() time.Time

	// scheduled maps card ID to its outstanding timer record.
	scheduled map[string]*scheduledDue
	// pending holds card snapshots awaiting a deferred "recently past
	// due" message, keyed by card ID. Adding a present card is a no-op.
	pending map[string]entity.Card

	updateJob  *repeatingJob
	notifyJob  *repeatingJob
	updateMsgr contract.Messenger
}

func newDue(tracker contract.TrackerService, timers contract.TimerService, settings domain.Settings) *dueService {
	return &dueService{
		tracker:   tracker,
		timers:    timers,
		settings:  settings,
		now:       time.Now,
		scheduled: make(map[string]*scheduledDue),
		pending:   make(map[string]entity.Card),
	}
}

// scheduleOrHandleDue decides what to do with one card carrying a due
// date and reports whether a timer was actually registered. Callers
// must hold s.mu and must have removed any previous record for the
// card.
func (s *dueService) scheduleOrHandleDue(msgr contract.Messenger, card entity.Card) bool {
	if card.DueComplete {
		return false
	}

	delay := card.Due.Sub(s.now())
	if delay < 0 {
		if -delay < s.settings.PastDueWindow {
			// Defer to the pending bucket; the periodic sweep sends
			// the message.
			s.pending[card.ID] = card
		}
		return false
	}

	// Notify some time before the actual due date.
	delay -= s.settings.DueSoonWindow
	if delay < 0 {
		s.send(msgr, fmt.Sprintf("Card is due in less than %s! %s", windowText(s.settings.DueSoonWindow), card))
		return false
	}

	s.scheduled[card.ID] = &scheduledDue{
		due: *card.Due,
		timer: s.timers.RunOnce(delay, func() {
			s.cardNotification(msgr, card)
		}),
	}
	return true
}

// cardNotification fires when a scheduled delay elapses. It uses the
// card snapshot captured at scheduling time and deliberately leaves
// the scheduled record in place: the next reconciliation pass settles
// it into the unchanged or completed row.
func (s *dueService) cardNotification(msgr contract.Messenger, card entity.Card) {
	s.send(msgr, fmt.Sprintf("Card %s due %s", card, humanize.Time(*card.Due)))
}

// unschedule cancels the timer of a card and drops its record. The
// record must exist: a missing record means the at-most-one-timer
// invariant was broken somewhere.
func (s *dueService) unschedule(cardID string) {
	rec, ok := s.scheduled[cardID]
	if !ok {
		log.Panicf("due: no scheduled record for card %s", cardID)
	}
	rec.timer.Cancel()
	delete(s.scheduled, cardID)
}

// updateBoard reconciles the scheduled map against the current cards
// of one board and returns outcome counters plus the set of card IDs
// observed. Callers must hold s.mu.
func (s *dueService) updateBoard(ctx context.Context, msgr contract.Messenger, boardID string) (domain.Counter, map[string]struct{}, error) {
	cards, err := s.tracker.FetchCards(ctx, boardID)
	if err != nil {
		return nil, nil, err
	}

	count := domain.Counter{}
	seen := make(map[string]struct{}, len(cards))
	for _, card := range cards {
		seen[card.ID] = struct{}{}
		rec, isScheduled := s.scheduled[card.ID]

		switch {
		case card.Due == nil && !isScheduled:
			// Nothing recorded, nothing to do.
			count.Add(domain.OutcomeIgnored)

		case card.Due == nil && isScheduled:
			// Due date was removed upstream.
			s.unschedule(card.ID)
			count.Add(domain.OutcomeUnscheduled)

		case !isScheduled && card.DueComplete:
			count.Add(domain.OutcomeIgnored)

		case !isScheduled:
			// New card, or one previously declined for scheduling.
			if s.scheduleOrHandleDue(msgr, card) {
				count.Add(domain.OutcomeScheduled)
			} else {
				count.Add(domain.OutcomeIgnored)
			}

		case rec.due.Equal(*card.Due):
			if card.DueComplete {
				s.unschedule(card.ID)
				count.Add(domain.OutcomeCompleted)
			} else {
				count.Add(domain.OutcomeUnchanged)
			}

		default:
			// Due date changed: cancel and decide again from scratch.
			s.unschedule(card.ID)
			s.scheduleOrHandleDue(msgr, card)
			count.Add(domain.OutcomeRescheduled)
		}
	}
	return count, seen, nil
}

// CheckDue reconciles every non-blacklisted board and then drops
// records of cards that disappeared upstream. A fetch error aborts
// the pass; boards already processed keep their updated state and the
// next pass re-converges.
func (s *dueService) CheckDue(ctx context.Context, msgr contract.Messenger) (domain.Counter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	boards, err := s.tracker.FetchBoards(ctx)
	if err != nil {
		return nil, err
	}

	count := domain.Counter{}
	seen := make(map[string]struct{})
	for _, board := range boards {
		if board.Blacklisted {
			continue
		}
		c, ids, err := s.updateBoard(ctx, msgr, board.ID)
		if err != nil {
			return nil, err
		}
		count.Merge(c)
		for id := range ids {
			seen[id] = struct{}{}
		}
	}

	// Cards holding a timer but absent from every tracked board were
	// deleted or moved away.
	for id := range s.scheduled {
		if _, ok := seen[id]; !ok {
			s.unschedule(id)
			count.Add(domain.OutcomeDeleted)
		}
	}
	return count, nil
}

// CheckNotifications sweeps the pending bucket, sending a message for
// every card still recently past due, and clears the bucket
// unconditionally. Fire and forget: a failed send does not keep a
// card in the bucket.
func (s *dueService) CheckNotifications(msgr contract.Messenger) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, card := range s.pending {
		if card.DueComplete {
			continue
		}
		delay := card.Due.Sub(s.now())
		if delay < 0 && -delay < s.settings.PastDueWindow {
			s.send(msgr, fmt.Sprintf("Card was due in the last %s! %s", windowText(s.settings.PastDueWindow), card))
		}
	}
	s.pending = make(map[string]entity.Card)
}

func (s *dueService) Settings() domain.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

func (s *dueService) SetUpdateInterval(minutes float64) domain.Settings {
	s.mu.Lock()
	s.settings.UpdateInterval = domain.ClampUpdateInterval(minutes)
	settings, job := s.settings, s.updateJob
	s.mu.Unlock()

	if job != nil {
		job.SetInterval(settings.UpdateInterval)
	}
	return settings
}

func (s *dueService) SetNotificationInterval(hours float64, off bool) domain.Settings {
	s.mu.Lock()
	s.settings.NotificationsOff = off
	if !off {
		s.settings.NotificationInterval = domain.ClampNotificationInterval(hours)
	}
	settings, job := s.settings, s.notifyJob
	s.mu.Unlock()

	if off {
		s.StopRepeatingNotifications()
	} else if job != nil {
		job.SetInterval(settings.NotificationInterval)
	}
	return settings
}

func (s *dueService) SetQuiet(quiet bool) domain.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.Quiet = quiet
	return s.settings
}

func (s *dueService) Stats() (scheduled, pending int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.scheduled), len(s.pending)
}

// send reports a notification, logging instead of failing: delivery
// problems must never derail a reconciliation pass.
func (s *dueService) send(msgr contract.Messenger, text string) {
	if err := msgr.Send(text); err != nil {
		log.Printf("Failed to send notification: %v", err)
	}
}

// windowText renders a window duration for notification copy.
func windowText(d time.Duration) string {
	if d%time.Hour == 0 {
		hours := int(d / time.Hour)
		if hours == 1 {
			return "1 hour"
		}
		return fmt.Sprintf("%d hours", hours)
	}
	return fmt.Sprintf("%d minutes", int(d/time.Minute))
}
