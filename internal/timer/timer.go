// Package timer provides the real TimerService backed by the runtime
// timer heap.
package timer

import (
	"time"

	"github.com/lmoroni/trellodue-bot/internal/domain/contract"
)

type service struct{}

// New returns a TimerService backed by time.AfterFunc.
func New() contract.TimerService {
	return service{}
}

func (service) RunOnce(delay time.Duration, fn func()) contract.TimerHandle {
	return handle{t: time.AfterFunc(delay, fn)}
}

type handle struct {
	t *time.Timer
}

func (h handle) Cancel() bool {
	return h.t.Stop()
}
