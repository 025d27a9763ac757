package gfycat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/oauth2"
)

const grantTypeClientCredentials = "client_credentials"

// maxExpiresIn is the largest expires_in, in seconds, that fits a time.Duration.
const maxExpiresIn = uint64(math.MaxInt64 / int64(time.Second))

// TokenType is the kind of access token issued by the service
type TokenType string

// TokenTypeBearer is the only token type the service issues
const TokenTypeBearer TokenType = "bearer"

// UnmarshalJSON accepts only the exact lowercase "bearer"
func (t *TokenType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s != string(TokenTypeBearer) {
		return fmt.Errorf("unsupported token type %q", s)
	}
	*t = TokenTypeBearer
	return nil
}

type tokenRequest struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	GrantType    string `json:"grant_type"`
}

type tokenResponse struct {
	TokenType   TokenType `json:"token_type"`
	ExpiresIn   uint64    `json:"expires_in"`
	AccessToken string    `json:"access_token"`
}

var tokenResponseRequired = []string{"token_type", "expires_in", "access_token"}

// Token is an access token and its absolute expiry. A Token is never modified
// after acquisition; a refresh produces a new one.
type Token struct {
	oauth *oauth2.Token
}

func newToken(resp tokenResponse, now time.Time) (*Token, error) {
	expiry, err := expiresAt(now, resp.ExpiresIn)
	if err != nil {
		return nil, err
	}
	return &Token{
		oauth: &oauth2.Token{
			AccessToken: resp.AccessToken,
			TokenType:   string(resp.TokenType),
			Expiry:      expiry,
		},
	}, nil
}

// expiresAt returns now + expiresIn seconds, or ErrExpiration when the sum
// is not representable.
func expiresAt(now time.Time, expiresIn uint64) (time.Time, error) {
	if expiresIn > maxExpiresIn {
		return time.Time{}, ErrExpiration
	}
	expiry := now.Add(time.Duration(expiresIn) * time.Second)
	if expiry.Before(now) {
		return time.Time{}, ErrExpiration
	}
	return expiry, nil
}

// Type returns the token type
func (t *Token) Type() TokenType {
	return TokenType(strings.ToLower(t.oauth.TokenType))
}

// Value returns the raw access token
func (t *Token) Value() string {
	return t.oauth.AccessToken
}

// ExpiresAt returns the instant the token stops being accepted
func (t *Token) ExpiresAt() time.Time {
	return t.oauth.Expiry
}

// AuthorizationHeader returns the value sent in the Authorization header,
// e.g. "Bearer tok123".
func (t *Token) AuthorizationHeader() string {
	return t.oauth.Type() + " " + t.oauth.AccessToken
}

// Valid reports whether the token is still usable at now.
func (t *Token) Valid(now time.Time) bool {
	return t != nil && t.oauth.AccessToken != "" && t.oauth.Expiry.After(now)
}

func (t *Token) setAuthHeader(req *http.Request) {
	t.oauth.SetAuthHeader(req)
}

// tokenSource performs the client-credentials exchange. It owns the credentials
// for the lifetime of the client so a refresh can repeat the exchange.
type tokenSource struct {
	creds      Credentials
	tokenURL   string
	httpClient *http.Client
	userAgent  string
	now        func() time.Time
	logger     zerolog.Logger
}

// acquire exchanges the credentials for a new token. No retry is attempted.
func (s *tokenSource) acquire(ctx context.Context) (*Token, error) {
	payload, err := json.Marshal(tokenRequest{
		ClientID:     s.creds.ClientID,
		ClientSecret: s.creds.ClientSecret,
		GrantType:    grantTypeClientCredentials,
	})
	if err != nil {
		return nil, &AuthError{Kind: ErrRequest, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.tokenURL, bytes.NewReader(payload))
	if err != nil {
		return nil, &AuthError{Kind: ErrRequest, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if s.userAgent != "" {
		req.Header.Set("User-Agent", s.userAgent)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, &AuthError{Kind: ErrRequest, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &AuthError{Kind: ErrIO, Err: err}
	}

	if !isSuccess(resp.StatusCode) {
		authErr := &AuthError{Kind: ErrRequest, StatusCode: resp.StatusCode}
		if msg := strings.TrimSpace(string(body)); msg != "" {
			authErr.Err = errors.New(msg)
		}
		return nil, authErr
	}

	var tr tokenResponse
	if err := decodeRecord(body, "token response", tokenResponseRequired, &tr); err != nil {
		return nil, &AuthError{Kind: ErrDecode, Err: err}
	}

	if tr.AccessToken == "" {
		return nil, &AuthError{Kind: ErrDecode, Err: errors.New("empty access_token")}
	}

	now := s.now()
	token, err := newToken(tr, now)
	if err != nil {
		return nil, &AuthError{Kind: ErrExpiration, Err: fmt.Errorf("expires_in %d", tr.ExpiresIn)}
	}
	if !token.Valid(now) {
		return nil, &AuthError{Kind: ErrExpiration, Err: fmt.Errorf("token already expired (expires_in %d)", tr.ExpiresIn)}
	}

	s.logger.Debug().
		Time("expires_at", token.ExpiresAt()).
		Msg("Acquired gfycat access token")

	return token, nil
}
