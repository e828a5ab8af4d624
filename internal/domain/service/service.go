package service

import (
	"github.com/lmoroni/trellodue-bot/internal/domain"
	"github.com/lmoroni/trellodue-bot/internal/domain/contract"
)

type Services struct {
	Tracker *trackerService
	Due     *dueService
}

func New(dm contract.DataManager, trello contract.TrelloAPI, timers contract.TimerService, settings domain.Settings) *Services {
	tracker := newTracker(dm, trello)

	return &Services{
		Tracker: tracker,
		Due:     newDue(tracker, timers, settings),
	}
}
