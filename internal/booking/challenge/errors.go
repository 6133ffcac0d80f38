package challenge

import "errors"

var (
	// ErrChallengeIncomplete is returned by GetToken while no usable proof
	// exists yet. Not a terminal failure: the caller should surface the
	// interactive widget and retry once it supplies a token.
	ErrChallengeIncomplete = errors.New("challenge: incomplete, do not submit yet")

	// ErrInvalidToken is returned when the widget supplies an empty token
	ErrInvalidToken = errors.New("challenge: invalid widget token")

	// ErrNotAwaitingVisible is returned when a widget token arrives while
	// the visible tier is not active
	ErrNotAwaitingVisible = errors.New("challenge: visible tier is not active")
)
