package dialogue

import (
	"time"

	"swiftcab/models"
)

// State is the dialogue manager's position in the conversation.
type State string

const (
	StateIdle               State = "idle"
	StateListening          State = "listening"
	StateAwaitingExtraction State = "awaiting_extraction"
	StateAwaitingPickup     State = "awaiting_pickup"
	StateAwaitingDropoff    State = "awaiting_dropoff"
	StateConfirming         State = "confirming"
	StateSubmitting         State = "submitting"
	StateComplete           State = "complete"
	StateError              State = "error"
	StateAbandoned          State = "abandoned"
)

// Terminal reports whether the session can accept further utterances.
func (s State) Terminal() bool {
	return s == StateComplete || s == StateAbandoned
}

// Session is the complete per-conversation state: the dialogue state, the
// accumulating booking intent and the append-only turn log. It is owned
// exclusively by one Manager and never shared across conversations.
type Session struct {
	ID        string               `json:"id"`
	State     State                `json:"state"`
	Intent    models.BookingIntent `json:"intent"`
	Turns     []models.Turn        `json:"turns"`
	BookingID string               `json:"bookingId,omitempty"`
	CreatedAt time.Time            `json:"createdAt"`
	UpdatedAt time.Time            `json:"updatedAt"`
}

// appendTurn records one turn. Turns are immutable once appended; the log
// survives intent resets so the transcript and NLU context stay intact.
func (s *Session) appendTurn(role models.TurnRole, text string) {
	now := time.Now()
	s.Turns = append(s.Turns, models.Turn{Role: role, Text: text, Timestamp: now})
	s.UpdatedAt = now
}
