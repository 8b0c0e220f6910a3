package subtitle

import "errors"

var (
	// ErrUnsupportedFormat marks extensions we recognize but deliberately do
	// not import (srt, json3).
	ErrUnsupportedFormat = errors.New("unsupported subtitle format")

	// ErrUnrecognizedFormat marks extensions outside the known dialect set.
	ErrUnrecognizedFormat = errors.New("unrecognized subtitle format")

	// ErrBadTimestamp marks cue or link timestamps that match no known grammar.
	ErrBadTimestamp = errors.New("failed to parse timestamp")
)
