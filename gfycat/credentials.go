package gfycat

import (
	"encoding/json"
	"io"
	"os"
)

// Credentials identify an API client registered with gfycat
type Credentials struct {
	ClientID     string `json:"id"`
	ClientSecret string `json:"secret"`
}

// Validate checks that both halves of the credentials are set
func (c Credentials) Validate() error {
	if c.ClientID == "" || c.ClientSecret == "" {
		return &AuthError{Kind: ErrInvalidCredentials}
	}
	return nil
}

// LoadCredentials reads a credentials file of the form {"id": "...", "secret": "..."}.
func LoadCredentials(path string) (Credentials, error) {
	f, err := os.Open(path)
	if err != nil {
		return Credentials{}, &AuthError{Kind: ErrIO, Err: err}
	}
	defer f.Close()

	return ReadCredentials(f)
}

// ReadCredentials decodes credentials from r.
func ReadCredentials(r io.Reader) (Credentials, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Credentials{}, &AuthError{Kind: ErrIO, Err: err}
	}

	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return Credentials{}, &AuthError{Kind: ErrDecode, Err: err}
	}
	if err := creds.Validate(); err != nil {
		return Credentials{}, err
	}
	return creds, nil
}
