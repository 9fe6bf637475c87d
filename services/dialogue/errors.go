package dialogue

import "errors"

var (
	// ErrSessionNotFound is returned when a session ID is unknown or expired.
	ErrSessionNotFound = errors.New("dialogue: session not found or expired")
	// ErrSessionClosed is returned when feeding an utterance to a terminal session.
	ErrSessionClosed = errors.New("dialogue: session is closed")
	// ErrTurnInFlight is returned when an utterance arrives before the
	// previous turn's extraction and transition have completed.
	ErrTurnInFlight = errors.New("dialogue: previous turn still processing")

	// ErrNLUTimeout is returned when the remote NLU call exceeds its timeout.
	ErrNLUTimeout = errors.New("nlu: request timed out")
	// ErrNLUMalformed is returned when the NLU response is missing required fields.
	ErrNLUMalformed = errors.New("nlu: malformed response")
	// ErrNLUUnavailable is returned on any non-2xx NLU response.
	ErrNLUUnavailable = errors.New("nlu: service unavailable")

	// ErrProcessingBound is returned when a turn exceeds the hard processing bound.
	ErrProcessingBound = errors.New("dialogue: extraction exceeded processing bound")
)
