package talkingbobs

import "errors"

// Sentinel errors for pipeline validation.
// These errors enable reliable error classification using errors.Is().

// Input audio errors.
var (
	// ErrInvalidAudio indicates an empty sample buffer or a non-positive
	// sample rate on a conversation turn.
	ErrInvalidAudio = errors.New("invalid audio input")

	// ErrEmptyConversation indicates a conversation with no speaker turns.
	ErrEmptyConversation = errors.New("conversation has no turns")
)

// Configuration errors.
var (
	// ErrInvalidConfig indicates an out-of-range pipeline option such as a
	// non-positive frame rate, a smoothing alpha outside (0, 1], or a
	// maximum scale at or below 1.0.
	ErrInvalidConfig = errors.New("invalid pipeline configuration")
)
