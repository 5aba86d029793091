package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/RandomSci/CapstoneProject/internal/upload"
	"github.com/RandomSci/CapstoneProject/pkg/monitoring"
	"github.com/RandomSci/CapstoneProject/pkg/types"
)

// UploadVideoParams drives one exercise-video submission
type UploadVideoParams struct {
	ExerciseID int
	PlanID     int
	Notes      string
	Video      upload.Source
	OnProgress upload.ProgressFunc
}

// UploadExerciseVideo streams a video submission to
// POST /api/exercises/video-submission. The multipart body carries three
// text fields plus the binary "video" part, read in bounded chunks with
// throttled progress; sources above the large-file threshold go through
// the extended-timeout transport.
func (c *Client) UploadExerciseVideo(ctx context.Context, params *UploadVideoParams) (*types.UploadVideoResponse, error) {
	if params.Video == nil {
		return nil, types.NewUploadIOError("no video source provided", nil)
	}

	size := params.Video.Size()
	ctx, span := c.tracer.StartUploadSpan(ctx, "exercise_video", size)

	onProgress := func(fraction float64) {
		var uploaded int64
		if size > 0 && fraction > 0 {
			uploaded = int64(float64(size) * fraction)
		}
		c.log.UploadProgress("video", fraction, uploaded, size)
		if params.OnProgress != nil {
			params.OnProgress(fraction)
		}
	}

	copier := upload.NewCopier(c.chunkSize, c.progressInterval, onProgress)
	body, contentType := upload.Body(&upload.VideoForm{
		ExerciseID: params.ExerciseID,
		PlanID:     params.PlanID,
		Notes:      params.Notes,
		Video:      params.Video,
	}, copier)
	defer body.Close()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.endpoint("api/exercises/video-submission", nil), body)
	if err != nil {
		monitoring.EndCallSpan(span, 0, err)
		return nil, types.NewConnectivityError("failed to build upload request", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	client := c.http
	if size != upload.SizeUnknown && size > c.largeFileThreshold {
		c.log.WithComponent("api").WithField("size_bytes", size).
			Debug("Using extended-timeout transport for large video")
		client = c.uploads
	}

	var out types.UploadVideoResponse
	if sendErr := c.sendWith(client, req, "upload_exercise_video", &out); sendErr != nil {
		monitoring.EndCallSpan(span, statusOf(sendErr), sendErr)
		return nil, sendErr
	}
	monitoring.EndUploadSpan(span, out.SubmissionID)
	return &out, nil
}

// UserVideoSubmissions fetches GET /api/user/video-submissions
func (c *Client) UserVideoSubmissions(ctx context.Context) ([]types.VideoSubmission, error) {
	var out []types.VideoSubmission
	if err := c.do(ctx, "user_video_submissions", http.MethodGet, "api/user/video-submissions", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// VideoSubmissionDetails fetches GET /api/video-submissions/{id}
func (c *Client) VideoSubmissionDetails(ctx context.Context, submissionID int) (*types.VideoSubmissionDetails, error) {
	var out types.VideoSubmissionDetails
	path := fmt.Sprintf("api/video-submissions/%d", submissionID)
	if err := c.do(ctx, "video_submission_details", http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteVideoSubmission removes a submission via
// DELETE /api/video-submissions/{id}
func (c *Client) DeleteVideoSubmission(ctx context.Context, submissionID int) (*types.Status, error) {
	var out types.Status
	path := fmt.Sprintf("api/video-submissions/%d", submissionID)
	if err := c.do(ctx, "delete_video_submission", http.MethodDelete, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
