package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexBool_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"true literal", `true`, true},
		{"false literal", `false`, false},
		{"numeric one", `1`, true},
		{"numeric zero", `0`, false},
		{"null", `null`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b FlexBool
			require.NoError(t, json.Unmarshal([]byte(tt.input), &b))
			assert.Equal(t, tt.want, b.Bool())
		})
	}
}

func TestFlexBool_UnmarshalJSON_Invalid(t *testing.T) {
	var b FlexBool
	assert.Error(t, json.Unmarshal([]byte(`"yes"`), &b))
}

func TestVideoSubmission_MixedFeedbackShapes(t *testing.T) {
	// The endpoint has returned both boolean and numeric has_feedback
	payload := `[
		{"submission_id": 1, "has_feedback": true},
		{"submission_id": 2, "has_feedback": 0},
		{"submission_id": 3, "has_feedback": 1}
	]`

	var subs []VideoSubmission
	require.NoError(t, json.Unmarshal([]byte(payload), &subs))
	require.Len(t, subs, 3)
	assert.True(t, subs[0].HasFeedback.Bool())
	assert.False(t, subs[1].HasFeedback.Bool())
	assert.True(t, subs[2].HasFeedback.Bool())
}

func TestChatMessage_Pending(t *testing.T) {
	pending := ChatMessage{ID: PendingMessageID, SenderType: SenderTypeUser}
	confirmed := ChatMessage{ID: 42, SenderType: SenderTypeTherapist}

	assert.True(t, pending.Pending())
	assert.True(t, pending.FromCurrentUser())
	assert.False(t, confirmed.Pending())
	assert.False(t, confirmed.FromCurrentUser())
}
