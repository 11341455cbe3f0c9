package service

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/diegoclair/slack-notify-bot/mocks"
)

type allMocks struct {
	mockDataManager *mocks.MockDataManager
	mockUserRepo    *mocks.MockUserRepo
	mockSlackClient *mocks.MockSlackClient
	mockReloader    *mocks.MockScheduleReloader
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	userRepo := mocks.NewMockUserRepo(ctrl)
	dm.EXPECT().User().Return(userRepo).AnyTimes()

	slackClient := mocks.NewMockSlackClient(ctrl)
	reloader := mocks.NewMockScheduleReloader(ctrl)

	m = allMocks{
		mockDataManager: dm,
		mockUserRepo:    userRepo,
		mockSlackClient: slackClient,
		mockReloader:    reloader,
	}

	// validate service creation
	userService := newUser(dm, slackClient, zerolog.Nop())
	require.NotNil(t, userService)

	return
}
