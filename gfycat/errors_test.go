package gfycat

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPIError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &APIError{Op: "user details", Kind: ErrUnknown, StatusCode: 500}
		assert.Equal(t, "gfycat user details: unknown error: status 500", err.Error())
	})

	t.Run("wraps cause", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := requestError("self details", cause)
		assert.ErrorIs(t, err, ErrRequest)
		assert.ErrorIs(t, err, cause)
		assert.Equal(t, "gfycat self details: request failed: connection reset", err.Error())
	})

	t.Run("IsUnauthorized", func(t *testing.T) {
		assert.True(t, (&APIError{Kind: ErrUnauthorized}).IsUnauthorized())
		assert.False(t, (&APIError{Kind: ErrUnknown}).IsUnauthorized())
	})

	t.Run("decode and request are distinct", func(t *testing.T) {
		decode := decodeError("media item info", errors.New("eof"))
		assert.NotErrorIs(t, decode, ErrRequest)
		assert.NotErrorIs(t, ioError("media item info", errors.New("eof")), ErrDecode)
	})
}

func TestAuthError(t *testing.T) {
	err := &AuthError{Kind: ErrRequest, StatusCode: 401}
	assert.Equal(t, "gfycat auth: request failed: status 401", err.Error())
	assert.ErrorIs(t, err, ErrRequest)
	assert.NotErrorIs(t, err, ErrUnauthorized)
}
