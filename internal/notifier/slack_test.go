package notifier

import (
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/diegoclair/slack-notify-bot/mocks"
)

func TestService_SendBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	slackClient := mocks.NewMockSlackClient(ctrl)
	svc := New(slackClient, zerolog.Nop())

	slackClient.EXPECT().
		PostMessage("U1", gomock.Any(), gomock.Any()).
		Return("", "", nil).Times(1)
	slackClient.EXPECT().
		PostMessage("U2", gomock.Any(), gomock.Any()).
		Return("", "", nil).Times(1)

	err := svc.SendBatch([]string{"U1", "U2"})
	assert.NoError(t, err)
}

func TestService_SendBatch_PartialFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	slackClient := mocks.NewMockSlackClient(ctrl)
	svc := New(slackClient, zerolog.Nop())

	slackClient.EXPECT().
		PostMessage("U1", gomock.Any(), gomock.Any()).
		Return("", "", fmt.Errorf("channel_not_found")).Times(1)
	// delivery must continue past the failed user
	slackClient.EXPECT().
		PostMessage("U2", gomock.Any(), gomock.Any()).
		Return("", "", nil).Times(1)

	err := svc.SendBatch([]string{"U1", "U2"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2")
}

func TestService_SendBatch_EmptyBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := New(mocks.NewMockSlackClient(ctrl), zerolog.Nop())

	err := svc.SendBatch(nil)
	assert.Error(t, err)
}
