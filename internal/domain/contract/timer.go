package contract

import "time"

// TimerService runs a callback once after a delay. The returned
// handle cancels the callback if it has not fired yet.
type TimerService interface {
	RunOnce(delay time.Duration, fn func()) TimerHandle
}

// TimerHandle is a cancellable pending callback. Cancel reports
// whether the callback was stopped before running; cancelling an
// already-fired or already-cancelled timer is safe.
type TimerHandle interface {
	Cancel() bool
}
