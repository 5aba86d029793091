package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// FlexBool accepts a JSON boolean or a numeric 0/1 and normalizes to bool.
// The video-submission endpoint has been observed returning both shapes.
type FlexBool bool

// UnmarshalJSON implements json.Unmarshaler
func (b *FlexBool) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*b = false
		return nil
	case bytes.Equal(data, []byte("true")):
		*b = true
		return nil
	case bytes.Equal(data, []byte("false")):
		*b = false
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("flexbool: cannot decode %s", string(data))
	}
	*b = n != 0
	return nil
}

// MarshalJSON implements json.Marshaler
func (b FlexBool) MarshalJSON() ([]byte, error) {
	return json.Marshal(bool(b))
}

// Bool returns the normalized value
func (b FlexBool) Bool() bool { return bool(b) }

// Video submission statuses owned by the remote system
const (
	SubmissionStatusPending  = "pending"
	SubmissionStatusReviewed = "reviewed"
)

// VideoSubmission is one row of GET /api/user/video-submissions
type VideoSubmission struct {
	SubmissionID      int      `json:"submission_id"`
	ExerciseID        int      `json:"exercise_id"`
	ExerciseName      string   `json:"exercise_name"`
	TreatmentPlanID   int      `json:"treatment_plan_id"`
	TreatmentPlanName string   `json:"treatment_plan_name"`
	VideoURL          string   `json:"video_url"`
	SubmissionDate    string   `json:"submission_date"`
	Status            string   `json:"status"`
	HasFeedback       FlexBool `json:"has_feedback"`
}

// VideoSubmissionDetails is the response of GET /api/video-submissions/{id}
type VideoSubmissionDetails struct {
	SubmissionID      int     `json:"submission_id"`
	PatientID         int     `json:"patient_id"`
	ExerciseID        int     `json:"exercise_id"`
	ExerciseName      string  `json:"exercise_name"`
	TreatmentPlanID   int     `json:"treatment_plan_id"`
	TreatmentPlanName string  `json:"treatment_plan_name"`
	VideoURL          string  `json:"video_url"`
	SubmissionDate    string  `json:"submission_date"`
	Notes             *string `json:"notes"`
	Status            string  `json:"status"`
	TherapistFeedback *string `json:"therapist_feedback"`
	FeedbackRating    *string `json:"feedback_rating"`
	FeedbackDate      *string `json:"feedback_date"`
}

// UploadVideoResponse is the response of the multipart submission endpoint
type UploadVideoResponse struct {
	SubmissionID int    `json:"submission_id"`
	Status       string `json:"status"`
	Message      string `json:"message"`
}
