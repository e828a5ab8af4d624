package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/lmoroni/trellodue-bot/internal/domain/entity"
)

func Test_repeatingJob_RunsAndRearms(t *testing.T) {
	ts := &fakeTimerService{}
	runs := 0

	job := newRepeatingJob(ts, time.Minute, func() { runs++ })
	job.Start()

	require.Len(t, ts.active(), 1)
	assert.Equal(t, time.Minute, ts.active()[0].delay)
	assert.Zero(t, runs)

	// Each tick runs the body and arms the next tick.
	ts.active()[0].Fire()
	assert.Equal(t, 1, runs)
	require.Len(t, ts.active(), 1)

	ts.active()[0].Fire()
	assert.Equal(t, 2, runs)
	require.Len(t, ts.active(), 1)
}

func Test_repeatingJob_Stop(t *testing.T) {
	ts := &fakeTimerService{}
	runs := 0

	job := newRepeatingJob(ts, time.Minute, func() { runs++ })
	job.Start()
	require.Len(t, ts.active(), 1)

	job.Stop()
	assert.Empty(t, ts.active())

	// Start after Stop stays stopped.
	job.Start()
	assert.Empty(t, ts.active())
	assert.Zero(t, runs)
}

func Test_repeatingJob_StopDuringBody(t *testing.T) {
	ts := &fakeTimerService{}

	var job *repeatingJob
	job = newRepeatingJob(ts, time.Minute, func() { job.Stop() })
	job.Start()

	ts.active()[0].Fire()

	// The body stopped the job, so it must not re-arm.
	assert.Empty(t, ts.active())
}

func Test_repeatingJob_SetInterval(t *testing.T) {
	ts := &fakeTimerService{}

	job := newRepeatingJob(ts, time.Minute, func() {})
	job.Start()
	require.Len(t, ts.active(), 1)

	// The pending tick is replaced, not duplicated.
	job.SetInterval(5 * time.Minute)
	require.Len(t, ts.active(), 1)
	assert.Equal(t, 5*time.Minute, ts.active()[0].delay)

	// Ticks after the change use the new cadence.
	ts.active()[0].Fire()
	require.Len(t, ts.active(), 1)
	assert.Equal(t, 5*time.Minute, ts.active()[0].delay)
}

func Test_dueService_StartRepeatingUpdates_ReplacesPrevious(t *testing.T) {
	svc, _, ts, msgr := newDueTest(t)

	svc.StartRepeatingUpdates(msgr)
	require.Len(t, ts.active(), 1)
	first := ts.active()[0]

	svc.StartRepeatingUpdates(msgr)
	require.Len(t, ts.active(), 1)
	assert.NotSame(t, first, ts.active()[0])
	assert.True(t, first.cancelled)
}

func Test_dueService_RepeatingUpdates_TickRunsReconciliation(t *testing.T) {
	svc, m, ts, msgr := newDueTest(t)

	m.mockTracker.EXPECT().
		FetchBoards(gomock.Any()).
		Return([]entity.Board{}, nil).Times(1)

	svc.StartRepeatingUpdates(msgr)
	require.Len(t, ts.active(), 1)

	// Quiet by default: the tick reconciles without channel chatter
	// and re-arms itself.
	ts.active()[0].Fire()
	assert.Empty(t, msgr.sent)
	assert.Len(t, ts.active(), 1)
}

func Test_dueService_RepeatingNotifications(t *testing.T) {
	t.Run("Should sweep pending cards on each tick", func(t *testing.T) {
		svc, _, ts, msgr := newDueTest(t)

		svc.pending["recent"] = card("recent", dueIn(-30*time.Minute), false)

		svc.StartRepeatingNotifications(msgr)
		require.Len(t, ts.active(), 1)

		ts.active()[0].Fire()
		require.Len(t, msgr.sent, 1)
		assert.Empty(t, svc.pending)
		assert.Len(t, ts.active(), 1)
	})

	t.Run("Should not start when notifications are off", func(t *testing.T) {
		svc, _, ts, msgr := newDueTest(t)

		svc.SetNotificationInterval(0, true)
		svc.StartRepeatingNotifications(msgr)
		assert.Empty(t, ts.active())
	})

	t.Run("Should stop the sweep on request", func(t *testing.T) {
		svc, _, ts, msgr := newDueTest(t)

		svc.StartRepeatingNotifications(msgr)
		require.Len(t, ts.active(), 1)

		svc.StopRepeatingNotifications()
		assert.Empty(t, ts.active())
	})
}

func Test_dueService_Stop(t *testing.T) {
	svc, _, ts, msgr := newDueTest(t)

	svc.scheduled["c1"] = &scheduledDue{
		due:   testNow.Add(2 * time.Hour),
		timer: ts.RunOnce(time.Hour, func() {}),
	}
	svc.StartRepeatingUpdates(msgr)
	svc.StartRepeatingNotifications(msgr)
	require.Len(t, ts.active(), 3)

	svc.Stop()
	assert.Empty(t, ts.active())
	assert.Empty(t, svc.scheduled)
}
