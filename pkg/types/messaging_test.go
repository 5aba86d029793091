package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The send body carries exactly the fields the backend reads; local
// bookkeeping like the pending placeholder never leaks onto the wire.
func TestSendMessageRequest_WireShape(t *testing.T) {
	data, err := json.Marshal(&SendMessageRequest{
		TherapistID: 7,
		Content:     "hello",
	})
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &body))

	assert.Len(t, body, 3)
	assert.Contains(t, body, "therapist_id")
	assert.Contains(t, body, "content")
	assert.Contains(t, body, "subject")
}

func TestMessageResponse_Accepted(t *testing.T) {
	tests := []struct {
		name     string
		resp     MessageResponse
		accepted bool
	}{
		{"valid with id", MessageResponse{ID: 12, Status: "valid"}, true},
		{"valid without id", MessageResponse{Status: "valid"}, false},
		{"rejected", MessageResponse{ID: 12, Status: "invalid"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.accepted, tt.resp.Accepted())
		})
	}
}
