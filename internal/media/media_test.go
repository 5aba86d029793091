package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractYouTubeID(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare id", "dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"watch url", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"watch url extra params", "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s", "dQw4w9WgXcQ"},
		{"embed url", "https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"legacy v url", "https://www.youtube.com/v/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"shorts url", "https://www.youtube.com/shorts/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"short link", "https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"short link with params", "https://youtu.be/dQw4w9WgXcQ?si=abc", "dQw4w9WgXcQ"},
		{"whitespace", "  dQw4w9WgXcQ  ", "dQw4w9WgXcQ"},
		{"empty", "", ""},
		{"unrelated url", "https://vimeo.com/123456", ""},
		{"server media path", "/media/exercises/heel-slide.mp4", ""},
		{"too short id", "abc123", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractYouTubeID(tt.input))
		})
	}
}

func TestFormatSubmissionDate(t *testing.T) {
	assert.Equal(t, "Jun 11, 2025", FormatSubmissionDate("2025-06-11T16:40:00"))
	assert.Equal(t, "Jun 11, 2025", FormatSubmissionDate("2025-06-11 16:40:00"))
	assert.Equal(t, "Jun 11, 2025", FormatSubmissionDate("2025-06-11T16:40:00Z"))

	// Unparseable input falls back to the raw string
	assert.Equal(t, "last Tuesday", FormatSubmissionDate("last Tuesday"))
	assert.Equal(t, "", FormatSubmissionDate(""))
}

func TestFormatMessageTime(t *testing.T) {
	assert.Equal(t, "9:15 AM", FormatMessageTime("2025-06-12T09:15:00"))
	assert.Equal(t, "4:40 PM", FormatMessageTime("2025-06-12T16:40:00"))
	assert.Equal(t, "???", FormatMessageTime("???"))
}

func TestFullMediaURL(t *testing.T) {
	base := "https://api.example.com/"

	assert.Equal(t, "https://cdn.example.com/v.mp4",
		FullMediaURL(base, "https://cdn.example.com/v.mp4"))
	assert.Equal(t, "https://api.example.com/media/v.mp4",
		FullMediaURL(base, "/media/v.mp4"))
	assert.Equal(t, "https://api.example.com/media/v.mp4",
		FullMediaURL(base, "media/v.mp4"))
	assert.Equal(t, "https://api.example.com/media/v.mp4",
		FullMediaURL("https://api.example.com", "media/v.mp4"))
}
