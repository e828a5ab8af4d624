package service

import (
	"testing"

	"github.com/lmoroni/trellodue-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockDataManager   *mocks.MockDataManager
	mockWhitelistRepo *mocks.MockWhitelistRepo
	mockTrelloAPI     *mocks.MockTrelloAPI
	mockTracker       *mocks.MockTrackerService
	mockTimerService  *mocks.MockTimerService
	mockMessenger     *mocks.MockMessenger
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	whitelistRepo := mocks.NewMockWhitelistRepo(ctrl)
	dm.EXPECT().Whitelist().Return(whitelistRepo).AnyTimes()

	m = allMocks{
		mockDataManager:   dm,
		mockWhitelistRepo: whitelistRepo,
		mockTrelloAPI:     mocks.NewMockTrelloAPI(ctrl),
		mockTracker:       mocks.NewMockTrackerService(ctrl),
		mockTimerService:  mocks.NewMockTimerService(ctrl),
		mockMessenger:     mocks.NewMockMessenger(ctrl),
	}

	// validate service creation
	tracker := newTracker(dm, m.mockTrelloAPI)
	require.NotNil(t, tracker)

	return
}
