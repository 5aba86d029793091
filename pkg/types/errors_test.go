package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAPIError_KindFromStatus(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		wantKind   ErrorKind
	}{
		{"unauthorized", 401, ErrorKindAuthentication},
		{"forbidden", 403, ErrorKindAuthentication},
		{"not found", 404, ErrorKindNotFound},
		{"unprocessable", 422, ErrorKindValidation},
		{"server error", 500, ErrorKindInternal},
		{"bad gateway", 502, ErrorKindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewAPIError(tt.statusCode, "boom")
			assert.Equal(t, tt.wantKind, err.Kind)
			assert.Equal(t, tt.statusCode, err.StatusCode)
		})
	}
}

func TestClientError_Unwrap(t *testing.T) {
	cause := errors.New("socket closed")
	err := NewConnectivityError("connection error", cause)

	assert.ErrorIs(t, err, cause)
	assert.True(t, IsConnectivityError(err))
	assert.False(t, IsAuthenticationError(err))
}

func TestIsAuthenticationError_Wrapped(t *testing.T) {
	inner := NewAPIError(401, "Not authenticated")
	wrapped := fmt.Errorf("loading plans: %w", inner)

	assert.True(t, IsAuthenticationError(wrapped))
}

func TestIsUploadIOError(t *testing.T) {
	err := NewUploadIOError("local resource unreadable", errors.New("permission denied"))

	assert.True(t, IsUploadIOError(err))
	assert.False(t, IsConnectivityError(err))
	assert.Contains(t, err.Error(), "local resource unreadable")
}
