package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/RandomSci/CapstoneProject/pkg/types"
)

// SendMessageToTherapist posts one chat message via
// POST /messages/send-to-therapist
func (c *Client) SendMessageToTherapist(ctx context.Context, req *types.SendMessageRequest) (*types.MessageResponse, error) {
	if req.Subject == "" {
		req.Subject = "Chat message"
	}
	if err := c.validateRequest(req); err != nil {
		return nil, err
	}
	var out types.MessageResponse
	if err := c.do(ctx, "send_message", http.MethodPost, "messages/send-to-therapist", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TherapistMessages fetches the authoritative conversation via
// GET /messages/therapist/{id}
func (c *Client) TherapistMessages(ctx context.Context, therapistID int) ([]types.ChatMessage, error) {
	var out []types.ChatMessage
	path := fmt.Sprintf("messages/therapist/%d", therapistID)
	if err := c.do(ctx, "therapist_messages", http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MarkMessageRead flags one message read via POST /messages/{id}/read
func (c *Client) MarkMessageRead(ctx context.Context, messageID int) (*types.Status, error) {
	var out types.Status
	path := fmt.Sprintf("messages/%d/read", messageID)
	if err := c.do(ctx, "mark_message_read", http.MethodPost, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
