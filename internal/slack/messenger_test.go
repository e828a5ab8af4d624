package slack

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/lmoroni/trellodue-bot/mocks"
)

func newMessengerTest(t *testing.T) (*Messenger, *mocks.MockSlackClient) {
	t.Helper()

	ctrl := gomock.NewController(t)
	client := mocks.NewMockSlackClient(ctrl)
	return NewMessenger(client, "C123456789"), client
}

func TestMessenger_Send(t *testing.T) {
	m, client := newMessengerTest(t)

	client.EXPECT().
		PostMessage("C123456789", gomock.Any()).
		Return("C123456789", "1234.5678", nil)

	err := m.Send("hello")
	assert.NoError(t, err)
}

func TestMessenger_SendError(t *testing.T) {
	m, client := newMessengerTest(t)

	client.EXPECT().
		PostMessage("C123456789", gomock.Any()).
		Return("", "", errors.New("channel_not_found"))

	err := m.Send("hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to post message")
}

func TestMessenger_Spawn(t *testing.T) {
	m, client := newMessengerTest(t)

	client.EXPECT().
		PostMessage("C123456789", gomock.Any()).
		Return("C123456789", "1234.5678", nil)

	progress, err := m.Spawn("working...")
	require.NoError(t, err)
	require.NotNil(t, progress)
}

func TestMessenger_SpawnError(t *testing.T) {
	m, client := newMessengerTest(t)

	client.EXPECT().
		PostMessage("C123456789", gomock.Any()).
		Return("", "", errors.New("not_in_channel"))

	progress, err := m.Spawn("working...")
	require.Error(t, err)
	assert.Nil(t, progress)
}

func TestProgressMessage_EditsAreBuffered(t *testing.T) {
	m, client := newMessengerTest(t)

	client.EXPECT().
		PostMessage("C123456789", gomock.Any()).
		Return("C123456789", "1234.5678", nil)

	progress, err := m.Spawn("scan: ")
	require.NoError(t, err)

	// Edits below the buffer cap never hit the API
	for i := 0; i < defaultBufCap-1; i++ {
		require.NoError(t, progress.Append("."))
	}

	// The edit that fills the buffer pushes one update with the
	// accumulated text
	client.EXPECT().
		UpdateMessage("C123456789", "1234.5678", gomock.Any()).
		Return("C123456789", "1234.5678", "", nil)

	require.NoError(t, progress.Append("."))
}

func TestProgressMessage_FlushPushesPendingEdits(t *testing.T) {
	m, client := newMessengerTest(t)

	client.EXPECT().
		PostMessage("C123456789", gomock.Any()).
		Return("C123456789", "1234.5678", nil)

	progress, err := m.Spawn("scan: ")
	require.NoError(t, err)

	require.NoError(t, progress.Append("done"))

	client.EXPECT().
		UpdateMessage("C123456789", "1234.5678", gomock.Any()).
		Return("C123456789", "1234.5678", "", nil)

	require.NoError(t, progress.Flush())

	// A second flush with nothing buffered is a no-op
	require.NoError(t, progress.Flush())
}

func TestProgressMessage_OverrideReplacesText(t *testing.T) {
	m, client := newMessengerTest(t)

	client.EXPECT().
		PostMessage("C123456789", gomock.Any()).
		Return("C123456789", "1234.5678", nil)

	progress, err := m.Spawn("scanning...")
	require.NoError(t, err)

	require.NoError(t, progress.Override("done"))

	pm, ok := progress.(*progressMessage)
	require.True(t, ok)
	assert.Equal(t, "done", pm.text)

	client.EXPECT().
		UpdateMessage("C123456789", "1234.5678", gomock.Any()).
		Return("C123456789", "1234.5678", "", nil)

	require.NoError(t, progress.Flush())
}

func TestProgressMessage_FlushError(t *testing.T) {
	m, client := newMessengerTest(t)

	client.EXPECT().
		PostMessage("C123456789", gomock.Any()).
		Return("C123456789", "1234.5678", nil)

	progress, err := m.Spawn("scan: ")
	require.NoError(t, err)

	require.NoError(t, progress.Append("."))

	client.EXPECT().
		UpdateMessage("C123456789", "1234.5678", gomock.Any()).
		Return("", "", "", errors.New("message_not_found"))

	err = progress.Flush()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to update message")
}
