package compare

import "errors"

var (
	// ErrTooFewSongs is returned when a multi-comparison has fewer than
	// two songs to work with.
	ErrTooFewSongs = errors.New("at least 2 songs required for comparison")

	// ErrMatcherRequired is returned when no matcher is provided.
	ErrMatcherRequired = errors.New("matcher required")

	// ErrAnalyzerRequired is returned when no mood analyzer is provided.
	ErrAnalyzerRequired = errors.New("mood analyzer required")
)
