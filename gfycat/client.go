package gfycat

import (
	"context"
	"net/http"
	"net/url"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

const (
	// DefaultBaseURL is the root of the gfycat v1 API
	DefaultBaseURL = "https://api.gfycat.com/v1/"
	// DefaultConcurrency is the number of requests MediaItems runs at once
	DefaultConcurrency = 5

	tokenPath = "oauth/token"
)

// Client represents an authenticated gfycat API client
type Client struct {
	baseURL     string
	userAgent   string
	concurrency int
	httpClient  *http.Client
	logger      zerolog.Logger
	now         func() time.Time

	source    *tokenSource
	token     atomic.Pointer[Token]
	refreshMu sync.Mutex
}

// NewClient acquires an access token with creds and returns a client that uses
// it. No client is returned unless a valid token was obtained.
func NewClient(ctx context.Context, creds Credentials, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	httpClient := o.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: o.timeout}
	}

	client := &Client{
		baseURL:     o.baseURL,
		userAgent:   o.userAgent,
		concurrency: o.concurrency,
		httpClient:  httpClient,
		logger:      logger,
		now:         o.now,
		source: &tokenSource{
			creds:      creds,
			tokenURL:   o.baseURL + tokenPath,
			httpClient: httpClient,
			userAgent:  o.userAgent,
			now:        o.now,
			logger:     logger,
		},
	}

	token, err := client.source.acquire(ctx)
	if err != nil {
		return nil, err
	}
	client.token.Store(token)

	return client, nil
}

// Token returns the token currently attached to requests
func (c *Client) Token() *Token {
	return c.token.Load()
}

// TokenValid reports whether the current token has not yet expired
func (c *Client) TokenValid() bool {
	return c.token.Load().Valid(c.now())
}

// Refresh repeats the client-credentials exchange and swaps in the new token.
// Requests already in flight finish with the token they started with. On
// failure the previous token stays in place.
func (c *Client) Refresh(ctx context.Context) error {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	token, err := c.source.acquire(ctx)
	if err != nil {
		c.logger.Warn().Err(err).Msg("Failed to refresh gfycat token")
		return err
	}
	c.token.Store(token)
	return nil
}

var usernameAvailableStatus = statusTable{
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusUnprocessableEntity: ErrInvalidValue,
}

// UsernameAvailable checks whether username can still be registered
func (c *Client) UsernameAvailable(ctx context.Context, username string) (bool, error) {
	const op = "username available"

	resp, err := c.doRequest(ctx, op, http.MethodGet, "users/"+url.PathEscape(username), nil)
	if err != nil {
		return false, err
	}

	switch resp.StatusCode {
	case http.StatusOK:
		return false, nil
	case http.StatusNotFound:
		return true, nil
	}
	return false, usernameAvailableStatus.errorFor(op, resp)
}

var emailVerifiedStatus = statusTable{
	http.StatusUnauthorized: ErrUnauthorized,
}

// EmailVerified checks whether the authenticated account has a verified email
func (c *Client) EmailVerified(ctx context.Context) (bool, error) {
	const op = "email verified"

	resp, err := c.doRequest(ctx, op, http.MethodGet, "me/email_verified", nil)
	if err != nil {
		return false, err
	}

	switch resp.StatusCode {
	case http.StatusOK:
		return true, nil
	case http.StatusNotFound:
		return false, nil
	}
	return false, emailVerifiedStatus.errorFor(op, resp)
}

var sendVerificationEmailStatus = statusTable{
	http.StatusBadRequest:   ErrUnknown,
	http.StatusNotFound:     ErrMissingEmail,
	http.StatusUnauthorized: ErrUnauthorized,
}

// SendVerificationEmail asks the service to mail a verification link to the
// authenticated account
func (c *Client) SendVerificationEmail(ctx context.Context) error {
	const op = "send verification email"

	resp, err := c.doRequest(ctx, op, http.MethodPost, "me/send_verification_email", nil)
	if err != nil {
		return err
	}
	if isSuccess(resp.StatusCode) {
		return nil
	}
	return sendVerificationEmailStatus.errorFor(op, resp)
}

type passwordResetRequest struct {
	Value  string `json:"value"`
	Action string `json:"action"`
}

var resetPasswordStatus = statusTable{
	http.StatusNotFound:            ErrInvalidValue,
	http.StatusBadRequest:          ErrInvalidValue,
	http.StatusUnprocessableEntity: ErrMissingEmail,
}

// ResetPassword asks the service to send a password reset email to email
func (c *Client) ResetPassword(ctx context.Context, email string) error {
	const op = "reset password"

	body := passwordResetRequest{Value: email, Action: "send_password_reset_email"}
	resp, err := c.doRequest(ctx, op, http.MethodPatch, "users/", body)
	if err != nil {
		return err
	}
	if isSuccess(resp.StatusCode) {
		return nil
	}
	return resetPasswordStatus.errorFor(op, resp)
}

// Resource lookups report every non-2xx status as ErrUnknown.
var resourceStatus = statusTable{}

// User retrieves the public profile of the user with the given id
func (c *Client) User(ctx context.Context, id string) (*User, error) {
	const op = "user details"

	resp, err := c.doRequest(ctx, op, http.MethodGet, "users/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}
	if !isSuccess(resp.StatusCode) {
		return nil, resourceStatus.errorFor(op, resp)
	}

	var user User
	if err := decodeRecord(resp.Body, "user", userRequired, &user); err != nil {
		return nil, decodeError(op, err)
	}
	return &user, nil
}

// Self retrieves the profile of the authenticated account
func (c *Client) Self(ctx context.Context) (*SelfUser, error) {
	const op = "self details"

	resp, err := c.doRequest(ctx, op, http.MethodGet, "me", nil)
	if err != nil {
		return nil, err
	}
	if !isSuccess(resp.StatusCode) {
		return nil, resourceStatus.errorFor(op, resp)
	}

	var self SelfUser
	if err := decodeRecord(resp.Body, "self user", selfUserRequired, &self); err != nil {
		return nil, decodeError(op, err)
	}
	return &self, nil
}

// MediaItem retrieves the metadata of the gfycat with the given id
func (c *Client) MediaItem(ctx context.Context, id string) (*MediaItem, error) {
	const op = "media item info"

	resp, err := c.doRequest(ctx, op, http.MethodGet, "gfycats/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}
	if !isSuccess(resp.StatusCode) {
		return nil, resourceStatus.errorFor(op, resp)
	}

	item, err := decodeMediaItem(resp.Body)
	if err != nil {
		return nil, decodeError(op, err)
	}
	return item, nil
}
