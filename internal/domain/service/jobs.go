package service

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/lmoroni/trellodue-bot/internal/domain/contract"
)

// repeatingJob runs a body, then re-arms itself on the timer service.
// A slow body therefore delays the next tick instead of overlapping
// it. Stop and SetInterval are atomic with respect to re-arming.
type repeatingJob struct {
	mu       sync.Mutex
	timers   contract.TimerService
	interval time.Duration
	body     func()
	handle   contract.TimerHandle
	stopped  bool
}

func newRepeatingJob(timers contract.TimerService, interval time.Duration, body func()) *repeatingJob {
	return &repeatingJob{
		timers:   timers,
		interval: interval,
		body:     body,
	}
}

// Start arms the first tick. The body runs after one full interval,
// not immediately.
func (j *repeatingJob) Start() {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.stopped || j.handle != nil {
		return
	}
	j.handle = j.timers.RunOnce(j.interval, j.run)
}

// SetInterval replaces the pending tick with one at the new cadence.
func (j *repeatingJob) SetInterval(interval time.Duration) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.interval = interval
	if j.stopped {
		return
	}
	if j.handle != nil {
		j.handle.Cancel()
		j.handle = j.timers.RunOnce(j.interval, j.run)
	}
}

// Stop cancels the pending tick. A body already running finishes but
// does not re-arm.
func (j *repeatingJob) Stop() {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.stopped = true
	if j.handle != nil {
		j.handle.Cancel()
		j.handle = nil
	}
}

func (j *repeatingJob) run() {
	j.mu.Lock()
	j.handle = nil
	j.mu.Unlock()

	j.body()

	j.mu.Lock()
	defer j.mu.Unlock()
	if !j.stopped {
		j.handle = j.timers.RunOnce(j.interval, j.run)
	}
}

// StartRepeatingUpdates (re)arms the repeating reconciliation job.
// Any previously running job is cancelled first.
func (s *dueService) StartRepeatingUpdates(msgr contract.Messenger) {
	s.mu.Lock()
	if s.updateJob != nil {
		s.updateJob.Stop()
	}
	s.updateMsgr = msgr
	job := newRepeatingJob(s.timers, s.settings.UpdateInterval, s.repeatUpdateBody)
	s.updateJob = job
	s.mu.Unlock()

	job.Start()
}

// StartRepeatingNotifications (re)arms the repeating pending sweep.
// It does nothing when notifications are configured off.
func (s *dueService) StartRepeatingNotifications(msgr contract.Messenger) {
	s.mu.Lock()
	if s.notifyJob != nil {
		s.notifyJob.Stop()
		s.notifyJob = nil
	}
	if s.settings.NotificationsOff {
		s.mu.Unlock()
		return
	}
	job := newRepeatingJob(s.timers, s.settings.NotificationInterval, func() {
		s.CheckNotifications(msgr)
	})
	s.notifyJob = job
	s.mu.Unlock()

	job.Start()
}

// StopRepeatingNotifications cancels the pending sweep job.
func (s *dueService) StopRepeatingNotifications() {
	s.mu.Lock()
	job := s.notifyJob
	s.notifyJob = nil
	s.mu.Unlock()

	if job != nil {
		job.Stop()
	}
}

// Stop cancels all repeating jobs and every outstanding card timer.
func (s *dueService) Stop() {
	s.mu.Lock()
	updateJob, notifyJob := s.updateJob, s.notifyJob
	s.updateJob, s.notifyJob = nil, nil
	for id := range s.scheduled {
		s.unschedule(id)
	}
	s.mu.Unlock()

	if updateJob != nil {
		updateJob.Stop()
	}
	if notifyJob != nil {
		notifyJob.Stop()
	}
}

// repeatUpdateBody is one tick of the repeating reconciliation job.
// In quiet mode failures go to the log only; in verbose mode progress
// is reported through an editable status message, the way a manual
// rescan reports.
func (s *dueService) repeatUpdateBody() {
	ctx := context.Background()

	s.mu.Lock()
	msgr := s.updateMsgr
	quiet := s.settings.Quiet
	s.mu.Unlock()

	if quiet {
		if _, err := s.CheckDue(ctx, msgr); err != nil {
			log.Printf("Scheduled reconciliation failed: %v", err)
		}
		return
	}

	status, err := msgr.Spawn("*Status*: Scanning for updates...")
	if err != nil {
		log.Printf("Failed to post status message: %v", err)
		if _, err := s.CheckDue(ctx, msgr); err != nil {
			log.Printf("Scheduled reconciliation failed: %v", err)
		}
		return
	}

	count, err := s.CheckDue(ctx, msgr)
	if err != nil {
		log.Printf("Scheduled reconciliation failed: %v", err)
		status.Override("*Status*: Scan failed, will retry on the next tick.")
	} else {
		status.Override("*Status*: Done. " + count.Report())
	}
	if err := status.Flush(); err != nil {
		log.Printf("Failed to update status message: %v", err)
	}
}
