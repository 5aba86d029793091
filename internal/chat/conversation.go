// Package chat keeps one patient/therapist conversation consistent under
// optimistic sends: a pending message is shown immediately, confirmed
// against the server, and flagged in place when delivery fails.
package chat

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/RandomSci/CapstoneProject/pkg/logger"
	"github.com/RandomSci/CapstoneProject/pkg/types"
)

// FailedSuffix is appended to the displayed content of a message the
// server rejected, so the failure stays visible in the transcript.
const FailedSuffix = " (Failed to send)"

// ErrSendInFlight is returned when Send is called while a previous send
// has not settled yet
var ErrSendInFlight = errors.New("chat: a send is already in flight")

// ErrEmptyMessage is returned for blank or whitespace-only content
var ErrEmptyMessage = errors.New("chat: message content is empty")

// Messenger is the slice of the API client the conversation needs
type Messenger interface {
	SendMessageToTherapist(ctx context.Context, req *types.SendMessageRequest) (*types.MessageResponse, error)
	TherapistMessages(ctx context.Context, therapistID int) ([]types.ChatMessage, error)
}

// Conversation owns the displayed message list for one therapist thread.
// All methods are safe for concurrent use; at most one send is in flight
// at any time.
type Conversation struct {
	api         Messenger
	log         *logger.Logger
	therapistID int
	userID      int

	mu       sync.Mutex
	messages []types.ChatMessage
	sending  bool
	onChange func()

	now func() time.Time // test hook
}

// NewConversation builds a conversation for the given therapist thread
func NewConversation(api Messenger, log *logger.Logger, therapistID, userID int) *Conversation {
	return &Conversation{
		api:         api,
		log:         log,
		therapistID: therapistID,
		userID:      userID,
		now:         time.Now,
	}
}

// OnChange registers a callback invoked after every visible list change.
// The callback runs without the conversation lock held.
func (c *Conversation) OnChange(fn func()) {
	c.mu.Lock()
	c.onChange = fn
	c.mu.Unlock()
}

// Messages returns a snapshot copy of the displayed list
func (c *Conversation) Messages() []types.ChatMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]types.ChatMessage, len(c.messages))
	copy(out, c.messages)
	return out
}

// Refresh replaces the displayed list with the server's authoritative view
func (c *Conversation) Refresh(ctx context.Context) error {
	fetched, err := c.api.TherapistMessages(ctx, c.therapistID)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.messages = fetched
	c.mu.Unlock()
	c.notify()
	return nil
}

// Send delivers one message optimistically: a pending placeholder appears
// immediately, a confirmed send triggers a full re-fetch of the thread,
// and a failed send mutates the placeholder in place to carry the failure
// suffix. Failed messages are kept visible and never retried here.
func (c *Conversation) Send(ctx context.Context, content string) error {
	if strings.TrimSpace(content) == "" {
		return ErrEmptyMessage
	}

	c.mu.Lock()
	if c.sending {
		c.mu.Unlock()
		return ErrSendInFlight
	}
	c.sending = true
	c.messages = append(c.messages, types.ChatMessage{
		ID:         types.PendingMessageID,
		SenderID:   c.userID,
		ReceiverID: c.therapistID,
		SenderType: types.SenderTypeUser,
		Content:    content,
		Timestamp:  c.now().Format("2006-01-02T15:04:05"),
	})
	c.mu.Unlock()
	c.notify()

	resp, err := c.api.SendMessageToTherapist(ctx, &types.SendMessageRequest{
		TherapistID: c.therapistID,
		Content:     content,
	})
	if err == nil && !resp.Accepted() {
		err = types.NewValidationError(0, "message rejected: "+resp.Message)
	}

	if err != nil {
		c.log.WithComponent("chat").WithField("therapist_id", c.therapistID).
			WithError(err).Warn("Message delivery failed")
		c.markPendingFailed(content)
		c.finishSend()
		return err
	}

	// The server list is authoritative: replace the whole displayed list so
	// the confirmed message appears exactly once, in server order.
	if refreshErr := c.Refresh(ctx); refreshErr != nil {
		c.log.WithComponent("chat").WithError(refreshErr).
			Warn("Post-send refresh failed; placeholder retained")
		c.confirmPending(content, resp.ID)
	}
	c.finishSend()
	return nil
}

// markPendingFailed rewrites the pending placeholder for content so the
// failure stays visible in the transcript
func (c *Conversation) markPendingFailed(content string) {
	c.mu.Lock()
	for i := len(c.messages) - 1; i >= 0; i-- {
		m := &c.messages[i]
		if m.Pending() && m.Content == content {
			m.Content = content + FailedSuffix
			break
		}
	}
	c.mu.Unlock()
	c.notify()
}

// confirmPending promotes the placeholder to the server-assigned id when
// the reconciling refresh itself failed
func (c *Conversation) confirmPending(content string, serverID int) {
	c.mu.Lock()
	for i := len(c.messages) - 1; i >= 0; i-- {
		m := &c.messages[i]
		if m.Pending() && m.Content == content {
			m.ID = serverID
			break
		}
	}
	c.mu.Unlock()
	c.notify()
}

func (c *Conversation) finishSend() {
	c.mu.Lock()
	c.sending = false
	c.mu.Unlock()
}

func (c *Conversation) notify() {
	c.mu.Lock()
	fn := c.onChange
	c.mu.Unlock()
	if fn != nil {
		fn()
	}
}
