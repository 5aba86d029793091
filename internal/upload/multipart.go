package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/RandomSci/CapstoneProject/pkg/types"
)

// VideoForm describes the multipart video-submission contract: three text
// fields plus one binary part named "video".
type VideoForm struct {
	ExerciseID int
	PlanID     int
	Notes      string
	Video      Source
}

// Body assembles the streaming multipart body for a video submission. The
// returned reader produces the encoded form without ever buffering the
// video whole; reading it drives the chunked copy and its progress
// callbacks. The source handle is released on success, failure and early
// close alike.
func Body(form *VideoForm, copier *Copier) (io.ReadCloser, string) {
	pr, pw := io.Pipe()
	writer := multipart.NewWriter(pw)

	go func() {
		err := writeForm(writer, form, copier)
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.Close()
	}()

	return pr, writer.FormDataContentType()
}

func writeForm(writer *multipart.Writer, form *VideoForm, copier *Copier) error {
	fields := map[string]string{
		"exercise_id":       strconv.Itoa(form.ExerciseID),
		"treatment_plan_id": strconv.Itoa(form.PlanID),
		"notes":             form.Notes,
	}
	for _, name := range []string{"exercise_id", "treatment_plan_id", "notes"} {
		if err := writer.WriteField(name, fields[name]); err != nil {
			return types.NewUploadIOError("failed to encode form field "+name, err)
		}
	}

	part, err := writer.CreatePart(videoPartHeader(form.Video.ContentType()))
	if err != nil {
		return types.NewUploadIOError("failed to create video part", err)
	}

	src, err := form.Video.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	if _, err := copier.Copy(part, src, form.Video.Size()); err != nil {
		return err
	}

	if err := writer.Close(); err != nil {
		return types.NewUploadIOError("failed to finish multipart body", err)
	}
	return nil
}

// videoPartHeader builds the header of the binary part. The filename is
// video_<stamp>.mp4 salted with a uuid so retried uploads do not collide
// server-side.
func videoPartHeader(contentType string) textproto.MIMEHeader {
	filename := fmt.Sprintf("video_%d_%s.mp4", time.Now().UnixMilli(), uuid.NewString()[:8])

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="video"; filename="%s"`, escapeQuotes(filename)))
	h.Set("Content-Type", contentType)
	return h
}

func escapeQuotes(s string) string {
	return strings.NewReplacer("\\", "\\\\", `"`, "\\\"").Replace(s)
}
