package upload

import (
	"io"
	"mime"
	"mime/multipart"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memorySource is an in-memory upload source for body tests
type memorySource struct {
	data        string
	size        int64
	contentType string
	closed      atomic.Bool
}

func (m *memorySource) Open() (io.ReadCloser, error) {
	return &trackingCloser{Reader: strings.NewReader(m.data), closed: &m.closed}, nil
}

func (m *memorySource) Size() int64         { return m.size }
func (m *memorySource) ContentType() string { return m.contentType }

type trackingCloser struct {
	io.Reader
	closed *atomic.Bool
}

func (t *trackingCloser) Close() error {
	t.closed.Store(true)
	return nil
}

func TestBody_ProducesParseableForm(t *testing.T) {
	src := &memorySource{
		data:        strings.Repeat("v", 2048),
		size:        2048,
		contentType: "video/mp4",
	}
	copier := NewCopier(512, time.Millisecond, nil)

	body, contentType := Body(&VideoForm{
		ExerciseID: 101,
		PlanID:     11,
		Notes:      "first attempt",
		Video:      src,
	}, copier)
	defer body.Close()

	mediaType, params, err := mime.ParseMediaType(contentType)
	require.NoError(t, err)
	require.Equal(t, "multipart/form-data", mediaType)

	fields := map[string]string{}
	var videoBytes int
	var videoFilename, videoContentType string

	reader := multipart.NewReader(body, params["boundary"])
	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)

		data, err := io.ReadAll(part)
		require.NoError(t, err)

		if part.FormName() == "video" {
			videoBytes = len(data)
			videoFilename = part.FileName()
			videoContentType = part.Header.Get("Content-Type")
			continue
		}
		fields[part.FormName()] = string(data)
	}

	assert.Equal(t, "101", fields["exercise_id"])
	assert.Equal(t, "11", fields["treatment_plan_id"])
	assert.Equal(t, "first attempt", fields["notes"])
	assert.Equal(t, 2048, videoBytes)
	assert.Equal(t, "video/mp4", videoContentType)
	assert.True(t, strings.HasPrefix(videoFilename, "video_"))
	assert.True(t, strings.HasSuffix(videoFilename, ".mp4"))
	assert.True(t, src.closed.Load(), "source handle must be released")
}

func TestBody_UnknownSizeStillStreams(t *testing.T) {
	src := &memorySource{
		data:        strings.Repeat("v", 512),
		size:        SizeUnknown,
		contentType: "video/mp4",
	}
	copier := NewCopier(128, time.Millisecond, nil)

	body, contentType := Body(&VideoForm{ExerciseID: 1, PlanID: 1, Video: src}, copier)
	defer body.Close()

	_, params, err := mime.ParseMediaType(contentType)
	require.NoError(t, err)

	reader := multipart.NewReader(body, params["boundary"])
	var total int
	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		data, err := io.ReadAll(part)
		require.NoError(t, err)
		if part.FormName() == "video" {
			total = len(data)
		}
	}
	assert.Equal(t, 512, total)
}

func TestBody_OpenFailurePropagates(t *testing.T) {
	src := NewFileSource("/nonexistent/video.mp4", "video/mp4")
	copier := NewCopier(512, time.Millisecond, nil)

	body, _ := Body(&VideoForm{ExerciseID: 1, PlanID: 1, Video: src}, copier)
	defer body.Close()

	_, err := io.ReadAll(body)
	assert.Error(t, err, "reading the pipe surfaces the open failure")
}
