// Package gfycat provides a client for the gfycat v1 REST API.
//
// The client authenticates with the OAuth2 client-credentials flow, keeps the
// resulting bearer token, and decodes responses into typed records.
//
// # Architecture
//
//   - Token manager: exchanges a client id and secret for a bearer token and
//     tracks its absolute expiry
//   - Dispatcher: sends one authenticated request per operation and maps the
//     status code through a table declared for that operation
//   - Decoder: turns response bodies into User, SelfUser and MediaItem,
//     rejecting bodies that lack required fields
//   - Client: the facade callers hold
//
// # Usage
//
//	creds, err := gfycat.LoadCredentials("config.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	logger := zerolog.New(os.Stderr)
//	client, err := gfycat.NewClient(ctx, creds, logger, gfycat.WithTimeout(10*time.Second))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	item, err := client.MediaItem(ctx, "someid")
//
// # Error Handling
//
// Token acquisition fails with *AuthError, every later call with *APIError.
// Both wrap one of the kind sentinels, so errors.Is is enough to branch:
//
//	available, err := client.UsernameAvailable(ctx, "alice")
//	switch {
//	case errors.Is(err, gfycat.ErrUnauthorized):
//		// refresh the token
//	case errors.Is(err, gfycat.ErrInvalidValue):
//		// the service rejected the username
//	}
//
// Status codes an operation does not recognise become ErrUnknown. Operations
// the client does not support yet return ErrNotImplemented.
//
// The client never retries. Deadlines and cancellation come from the context
// passed to each call.
package gfycat
