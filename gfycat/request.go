package gfycat

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"
)

// response is the raw outcome of a single round trip.
type response struct {
	StatusCode int
	Body       []byte
}

// statusTable maps the status codes an operation recognises to error kinds.
// Codes missing from the table resolve to ErrUnknown.
type statusTable map[int]error

func (t statusTable) errorFor(op string, resp *response) *APIError {
	kind, ok := t[resp.StatusCode]
	if !ok || kind == nil {
		kind = ErrUnknown
	}
	return &APIError{
		Op:         op,
		Kind:       kind,
		StatusCode: resp.StatusCode,
		Body:       string(resp.Body),
	}
}

func isSuccess(code int) bool {
	return code >= 200 && code <= 299
}

// doRequest performs one authenticated HTTP request against path, relative to
// the API root. body, when non-nil, is sent as JSON.
func (c *Client) doRequest(ctx context.Context, op, method, path string, body any) (*response, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, requestError(op, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, requestError(op, err)
	}

	// Load once so a concurrent Refresh cannot change the token mid-request.
	c.token.Load().setAuthHeader(req)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn().Err(err).Str("method", method).Str("path", path).Msg("gfycat request failed")
		return nil, requestError(op, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, ioError(op, err)
	}

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("gfycat API request")

	return &response{StatusCode: resp.StatusCode, Body: data}, nil
}
