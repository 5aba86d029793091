// Package media holds small presentation helpers for video links and
// server-formatted timestamps.
package media

import (
	"regexp"
	"strings"
	"time"
)

// bareVideoID matches a raw 11-character YouTube video id
var bareVideoID = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// videoURLPatterns covers the URL shapes that embed a video id
var videoURLPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:youtube\.com/watch\?v=)([A-Za-z0-9_-]{11})`),
	regexp.MustCompile(`(?:youtube\.com/embed/)([A-Za-z0-9_-]{11})`),
	regexp.MustCompile(`(?:youtube\.com/v/)([A-Za-z0-9_-]{11})`),
	regexp.MustCompile(`(?:youtube\.com/shorts/)([A-Za-z0-9_-]{11})`),
	regexp.MustCompile(`(?:youtu\.be/)([A-Za-z0-9_-]{11})`),
}

// ExtractYouTubeID pulls the 11-character video id out of a YouTube URL.
// A bare id passes through unchanged; unrecognised input returns "".
func ExtractYouTubeID(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if bareVideoID.MatchString(raw) {
		return raw
	}
	for _, p := range videoURLPatterns {
		if m := p.FindStringSubmatch(raw); m != nil {
			return m[1]
		}
	}
	return ""
}

// submissionLayouts are the timestamp shapes the server emits for video
// submissions
var submissionLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// FormatSubmissionDate renders a server timestamp as "Jan 2, 2006".
// Unparseable input falls back to the raw string rather than failing.
func FormatSubmissionDate(raw string) string {
	for _, layout := range submissionLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("Jan 2, 2006")
		}
	}
	return raw
}

// FormatMessageTime renders a chat timestamp as a short clock time,
// falling back to the raw string
func FormatMessageTime(raw string) string {
	for _, layout := range submissionLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("3:04 PM")
		}
	}
	return raw
}

// FullMediaURL resolves a server-relative media path against a base URL.
// Absolute URLs pass through untouched.
func FullMediaURL(base, relative string) string {
	if strings.HasPrefix(relative, "http") {
		return relative
	}
	base = strings.TrimSuffix(base, "/")
	if !strings.HasPrefix(relative, "/") {
		relative = "/" + relative
	}
	return base + relative
}
