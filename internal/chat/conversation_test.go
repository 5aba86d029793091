package chat

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/RandomSci/CapstoneProject/pkg/logger"
	"github.com/RandomSci/CapstoneProject/pkg/types"
)

// MockMessenger is a mock implementation of Messenger
type MockMessenger struct {
	mock.Mock
}

func (m *MockMessenger) SendMessageToTherapist(ctx context.Context, req *types.SendMessageRequest) (*types.MessageResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.MessageResponse), args.Error(1)
}

func (m *MockMessenger) TherapistMessages(ctx context.Context, therapistID int) ([]types.ChatMessage, error) {
	args := m.Called(ctx, therapistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.ChatMessage), args.Error(1)
}

func serverThread(contents ...string) []types.ChatMessage {
	out := make([]types.ChatMessage, 0, len(contents))
	for i, content := range contents {
		out = append(out, types.ChatMessage{
			ID:         100 + i,
			SenderID:   1,
			ReceiverID: 7,
			SenderType: types.SenderTypeUser,
			Content:    content,
			Timestamp:  "2025-06-12T09:00:00",
		})
	}
	return out
}

func TestConversation_SendSuccessReconciles(t *testing.T) {
	messenger := new(MockMessenger)
	messenger.On("SendMessageToTherapist", mock.Anything, mock.MatchedBy(func(req *types.SendMessageRequest) bool {
		return req.TherapistID == 7 && req.Content == "hello"
	})).Return(&types.MessageResponse{ID: 104, Status: "valid"}, nil)
	messenger.On("TherapistMessages", mock.Anything, 7).
		Return(serverThread("earlier", "hello"), nil)

	conv := NewConversation(messenger, logger.Discard(), 7, 1)

	require.NoError(t, conv.Send(context.Background(), "hello"))

	messages := conv.Messages()
	require.Len(t, messages, 2, "confirmed message appears exactly once")
	assert.Equal(t, "hello", messages[1].Content)
	assert.False(t, messages[1].Pending())
	messenger.AssertExpectations(t)
}

func TestConversation_SendFailureKeepsFlaggedMessage(t *testing.T) {
	messenger := new(MockMessenger)
	messenger.On("SendMessageToTherapist", mock.Anything, mock.Anything).
		Return(nil, types.NewConnectivityError("connection error", nil))

	conv := NewConversation(messenger, logger.Discard(), 7, 1)

	err := conv.Send(context.Background(), "did this go through?")
	require.Error(t, err)
	assert.True(t, types.IsConnectivityError(err))

	messages := conv.Messages()
	require.Len(t, messages, 1, "failed message stays visible")
	assert.Equal(t, "did this go through?"+FailedSuffix, messages[0].Content)
	assert.True(t, messages[0].Pending())
}

func TestConversation_SendRejectedByServer(t *testing.T) {
	messenger := new(MockMessenger)
	messenger.On("SendMessageToTherapist", mock.Anything, mock.Anything).
		Return(&types.MessageResponse{Status: "invalid", Message: "therapist unavailable"}, nil)

	conv := NewConversation(messenger, logger.Discard(), 7, 1)

	err := conv.Send(context.Background(), "hello?")
	require.Error(t, err)

	messages := conv.Messages()
	require.Len(t, messages, 1)
	assert.Contains(t, messages[0].Content, FailedSuffix)
}

func TestConversation_EmptyContentRejected(t *testing.T) {
	conv := NewConversation(new(MockMessenger), logger.Discard(), 7, 1)

	assert.ErrorIs(t, conv.Send(context.Background(), ""), ErrEmptyMessage)
	assert.ErrorIs(t, conv.Send(context.Background(), "   "), ErrEmptyMessage)
	assert.Empty(t, conv.Messages())
}

func TestConversation_OneSendInFlight(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})

	messenger := new(MockMessenger)
	messenger.On("SendMessageToTherapist", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) {
			close(started)
			<-release
		}).
		Return(&types.MessageResponse{ID: 1, Status: "valid"}, nil)
	messenger.On("TherapistMessages", mock.Anything, 7).
		Return(serverThread("first"), nil)

	conv := NewConversation(messenger, logger.Discard(), 7, 1)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		conv.Send(context.Background(), "first")
	}()

	<-started
	err := conv.Send(context.Background(), "second")
	assert.ErrorIs(t, err, ErrSendInFlight)

	close(release)
	wg.Wait()
}

func TestConversation_SendAllowedAfterSettle(t *testing.T) {
	messenger := new(MockMessenger)
	messenger.On("SendMessageToTherapist", mock.Anything, mock.Anything).
		Return(nil, types.NewConnectivityError("connection error", nil)).Once()
	messenger.On("SendMessageToTherapist", mock.Anything, mock.Anything).
		Return(&types.MessageResponse{ID: 2, Status: "valid"}, nil)
	messenger.On("TherapistMessages", mock.Anything, 7).
		Return(serverThread("retry"), nil)

	conv := NewConversation(messenger, logger.Discard(), 7, 1)

	require.Error(t, conv.Send(context.Background(), "retry"))
	require.NoError(t, conv.Send(context.Background(), "retry"),
		"a settled failure releases the in-flight guard")
}

func TestConversation_RefreshReplacesList(t *testing.T) {
	messenger := new(MockMessenger)
	messenger.On("TherapistMessages", mock.Anything, 7).
		Return(serverThread("a", "b", "c"), nil)

	conv := NewConversation(messenger, logger.Discard(), 7, 1)
	require.NoError(t, conv.Refresh(context.Background()))
	assert.Len(t, conv.Messages(), 3)
}

func TestConversation_ChangeListener(t *testing.T) {
	messenger := new(MockMessenger)
	messenger.On("SendMessageToTherapist", mock.Anything, mock.Anything).
		Return(&types.MessageResponse{ID: 3, Status: "valid"}, nil)
	messenger.On("TherapistMessages", mock.Anything, 7).
		Return(serverThread("ping"), nil)

	conv := NewConversation(messenger, logger.Discard(), 7, 1)

	var mu sync.Mutex
	changes := 0
	conv.OnChange(func() {
		mu.Lock()
		changes++
		mu.Unlock()
	})

	require.NoError(t, conv.Send(context.Background(), "ping"))

	mu.Lock()
	defer mu.Unlock()
	assert.GreaterOrEqual(t, changes, 2, "placeholder append and reconciliation both notify")
}

func TestConversation_MessagesReturnsSnapshot(t *testing.T) {
	messenger := new(MockMessenger)
	messenger.On("TherapistMessages", mock.Anything, 7).
		Return(serverThread("original"), nil)

	conv := NewConversation(messenger, logger.Discard(), 7, 1)
	require.NoError(t, conv.Refresh(context.Background()))

	snapshot := conv.Messages()
	snapshot[0].Content = "mutated"

	assert.Equal(t, "original", conv.Messages()[0].Content)
}
