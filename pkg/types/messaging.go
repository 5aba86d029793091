package types

import "time"

// PendingMessageID marks a locally constructed message the server has not
// confirmed yet
const PendingMessageID = -1

// SenderTypeUser and SenderTypeTherapist are the sender role tags
const (
	SenderTypeUser      = "user"
	SenderTypeTherapist = "therapist"
)

// ChatMessage is one message of a patient/therapist conversation
type ChatMessage struct {
	ID         int    `json:"id"`
	SenderID   int    `json:"senderId"`
	ReceiverID int    `json:"receiverId"`
	SenderType string `json:"senderType"`
	Content    string `json:"content"`
	Timestamp  string `json:"timestamp"`
	IsRead     bool   `json:"isRead"`
}

// FromCurrentUser reports whether the message was sent by the patient
func (m *ChatMessage) FromCurrentUser() bool {
	return m.SenderType == SenderTypeUser
}

// Pending reports whether the message is an unconfirmed local placeholder
func (m *ChatMessage) Pending() bool {
	return m.ID == PendingMessageID
}

// SentAt parses the message timestamp; zero time when unparseable
func (m *ChatMessage) SentAt() time.Time {
	for _, layout := range []string{"2006-01-02T15:04:05", time.RFC3339} {
		if t, err := time.Parse(layout, m.Timestamp); err == nil {
			return t
		}
	}
	return time.Time{}
}

// SendMessageRequest is the body of POST /messages/send-to-therapist
type SendMessageRequest struct {
	TherapistID int    `json:"therapist_id" validate:"required,min=1"`
	Content     string `json:"content" validate:"required"`
	Subject     string `json:"subject"`
}

// MessageResponse is the send result envelope
type MessageResponse struct {
	ID      int    `json:"id"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Accepted reports whether the server confirmed the message
func (r *MessageResponse) Accepted() bool {
	return r.Status == "valid" && r.ID > 0
}
