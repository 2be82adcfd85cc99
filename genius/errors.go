package genius

import "errors"

var (
	// ErrMissingToken is returned when a client is created without an API
	// token.
	ErrMissingToken = errors.New("genius API token required")

	// ErrInvalidMaxAttempts is returned when a retry is configured with a
	// non-positive attempt count.
	ErrInvalidMaxAttempts = errors.New("maxAttempts must be greater than 0")

	// ErrUnexpectedStatus is returned when the API answers with a
	// non-success HTTP status.
	ErrUnexpectedStatus = errors.New("unexpected HTTP status")

	// ErrLyricsNotFound is returned when a song page contains no
	// recognizable lyrics markup.
	ErrLyricsNotFound = errors.New("no lyrics found on page")
)
