package gfycat

import (
	"context"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTokenServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		io.WriteString(w, body)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestAcquireFailures(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantKind error
	}{
		{
			name:     "malformed json",
			status:   http.StatusOK,
			body:     `{"token_type":`,
			wantKind: ErrDecode,
		},
		{
			name:     "missing access token",
			status:   http.StatusOK,
			body:     `{"token_type":"bearer","expires_in":3600}`,
			wantKind: ErrDecode,
		},
		{
			name:     "unsupported token type",
			status:   http.StatusOK,
			body:     `{"token_type":"mac","expires_in":3600,"access_token":"tok"}`,
			wantKind: ErrDecode,
		},
		{
			name:     "capitalised token type",
			status:   http.StatusOK,
			body:     `{"token_type":"Bearer","expires_in":3600,"access_token":"tok"}`,
			wantKind: ErrDecode,
		},
		{
			name:     "empty access token",
			status:   http.StatusOK,
			body:     `{"token_type":"bearer","expires_in":3600,"access_token":""}`,
			wantKind: ErrDecode,
		},
		{
			name:     "null access token",
			status:   http.StatusOK,
			body:     `{"token_type":"bearer","expires_in":3600,"access_token":null}`,
			wantKind: ErrDecode,
		},
		{
			name:     "zero lifetime",
			status:   http.StatusOK,
			body:     `{"token_type":"bearer","expires_in":0,"access_token":"tok"}`,
			wantKind: ErrExpiration,
		},
		{
			name:     "negative expiry",
			status:   http.StatusOK,
			body:     `{"token_type":"bearer","expires_in":-1,"access_token":"tok"}`,
			wantKind: ErrDecode,
		},
		{
			name:     "expiry overflow",
			status:   http.StatusOK,
			body:     `{"token_type":"bearer","expires_in":18446744073709551615,"access_token":"tok"}`,
			wantKind: ErrExpiration,
		},
		{
			name:     "rejected credentials",
			status:   http.StatusUnauthorized,
			body:     `{"errorMessage":"invalid client"}`,
			wantKind: ErrRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newTokenServer(t, tt.status, tt.body)

			client, err := NewClient(context.Background(), testCreds, zerolog.Nop(), WithBaseURL(server.URL))
			require.Error(t, err)
			assert.Nil(t, client)
			assert.ErrorIs(t, err, tt.wantKind)

			var authErr *AuthError
			require.ErrorAs(t, err, &authErr)
			assert.Equal(t, tt.wantKind, authErr.Kind)
		})
	}
}

func TestAcquireTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	_, err := NewClient(context.Background(), testCreds, zerolog.Nop(), WithBaseURL(url))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRequest)
	assert.NotErrorIs(t, err, ErrDecode)
}

func TestTokenExpiry(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := now
	server := newTokenServer(t, http.StatusOK, `{"token_type":"bearer","expires_in":3600,"access_token":"tok123"}`)

	client, err := NewClient(context.Background(), testCreds, zerolog.Nop(),
		WithBaseURL(server.URL),
		WithNowFunc(func() time.Time { return clock }),
	)
	require.NoError(t, err)

	assert.Equal(t, now.Add(time.Hour), client.Token().ExpiresAt())
	assert.True(t, client.TokenValid())

	clock = now.Add(59 * time.Minute)
	assert.True(t, client.TokenValid())

	clock = now.Add(time.Hour)
	assert.False(t, client.TokenValid())
}

func TestExpiresAt(t *testing.T) {
	now := time.Now()

	t.Run("in range", func(t *testing.T) {
		got, err := expiresAt(now, 60)
		require.NoError(t, err)
		assert.Equal(t, now.Add(time.Minute), got)
	})

	t.Run("largest duration", func(t *testing.T) {
		_, err := expiresAt(now, maxExpiresIn)
		assert.NoError(t, err)
	})

	t.Run("overflow", func(t *testing.T) {
		_, err := expiresAt(now, maxExpiresIn+1)
		assert.ErrorIs(t, err, ErrExpiration)

		_, err = expiresAt(now, math.MaxUint64)
		assert.ErrorIs(t, err, ErrExpiration)
	})
}

func TestTokenValidNil(t *testing.T) {
	var token *Token
	assert.False(t, token.Valid(time.Now()))
}
