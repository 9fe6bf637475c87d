package dialogue

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"swiftcab/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Submitter is the booking-submission collaborator, called only from the
// Submitting state with a complete intent.
type Submitter interface {
	Submit(ctx context.Context, intent models.BookingIntent) (string, error)
}

// Config bounds the manager's suspension points.
type Config struct {
	NLUTimeout    time.Duration // per-call NLU timeout; the call falls back past this
	HardBound     time.Duration // hard processing bound; the session errors past this
	RecoveryDelay time.Duration // delay before Error recovers to Listening
}

const (
	defaultNLUTimeout    = 10 * time.Second
	defaultHardBound     = 15 * time.Second
	defaultRecoveryDelay = 3 * time.Second
)

// Manager orchestrates voice-booking turns: it receives utterances, runs
// NLU-or-fallback extraction, applies the state transition, derives the next
// system message and triggers booking submission on confirmation. One
// manager serves many sessions, but each session's turns are processed
// strictly one at a time.
type Manager struct {
	store     SessionStore
	nlu       NLUClient // nil disables the remote path entirely
	submitter Submitter
	speaker   Speaker
	logger    *zap.Logger
	cfg       Config

	// Observers for the UI layer; both are optional.
	OnStateChange   func(sessionID string, state State)
	OnSystemMessage func(sessionID string, message string)

	mu        sync.Mutex
	turnLocks map[string]*sync.Mutex
}

func NewManager(store SessionStore, nlu NLUClient, submitter Submitter, speaker Speaker, logger *zap.Logger, cfg Config) *Manager {
	if cfg.NLUTimeout <= 0 {
		cfg.NLUTimeout = defaultNLUTimeout
	}
	if cfg.HardBound <= 0 {
		cfg.HardBound = defaultHardBound
	}
	if cfg.RecoveryDelay <= 0 {
		cfg.RecoveryDelay = defaultRecoveryDelay
	}
	if speaker == nil {
		speaker = NopSpeaker{}
	}
	return &Manager{
		store:     store,
		nlu:       nlu,
		submitter: submitter,
		speaker:   speaker,
		logger:    logger,
		cfg:       cfg,
		turnLocks: make(map[string]*sync.Mutex),
	}
}

// Start opens a new session and emits the greeting. The session moves
// straight from Idle to Listening.
func (m *Manager) Start(ctx context.Context) (*Session, string, error) {
	now := time.Now()
	sess := &Session{
		ID:        uuid.New().String(),
		State:     StateListening,
		CreatedAt: now,
		UpdatedAt: now,
	}
	greeting := PromptFor(sess.Intent)
	sess.appendTurn(models.TurnSystem, greeting)

	if err := m.store.Save(ctx, sess); err != nil {
		return nil, "", fmt.Errorf("save session: %w", err)
	}
	m.notify(sess, greeting)
	m.speaker.Speak(greeting)
	return sess, greeting, nil
}

// Get returns the current session state for transcript rendering.
func (m *Manager) Get(ctx context.Context, sessionID string) (*Session, error) {
	return m.store.Get(ctx, sessionID)
}

// Abandon terminally closes a session without booking.
func (m *Manager) Abandon(ctx context.Context, sessionID string) error {
	lock := m.turnLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	sess, err := m.store.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	sess.State = StateAbandoned
	if err := m.store.Save(ctx, sess); err != nil {
		return err
	}
	m.notifyState(sess)
	return nil
}

// OnUtterance feeds one final recognized utterance into the state machine
// and returns the resulting session plus the system message for playback.
// A second utterance for the same session is rejected until the first
// turn's extraction and transition complete, so two extractions can never
// race on the same base intent.
func (m *Manager) OnUtterance(ctx context.Context, sessionID, text string) (*Session, string, error) {
	lock := m.turnLock(sessionID)
	if !lock.TryLock() {
		return nil, "", ErrTurnInFlight
	}
	defer lock.Unlock()

	sess, err := m.store.Get(ctx, sessionID)
	if err != nil {
		return nil, "", err
	}
	if sess.State.Terminal() {
		return nil, "", ErrSessionClosed
	}

	// User input pre-empts whatever the system is saying.
	m.speaker.Cancel()

	// A session still parked in Error recovers the moment the user speaks.
	if sess.State == StateError {
		sess.State = StateListening
	}

	sess.appendTurn(models.TurnUser, text)
	sess.State = StateAwaitingExtraction
	m.notifyState(sess)

	ext, err := m.interpret(ctx, sess, text)
	if err != nil {
		// Hard processing bound exceeded; intent is left untouched.
		msg := "That took too long, please try again."
		sess.State = StateError
		sess.appendTurn(models.TurnSystem, msg)
		if saveErr := m.store.Save(ctx, sess); saveErr != nil {
			return nil, "", fmt.Errorf("save session: %w", saveErr)
		}
		m.notify(sess, msg)
		m.speaker.Speak(msg)
		m.scheduleRecovery(sessionID)
		return sess, msg, nil
	}

	msg := m.applyExtraction(ctx, sess, ext)
	sess.appendTurn(models.TurnSystem, msg)
	if err := m.store.Save(ctx, sess); err != nil {
		return nil, "", fmt.Errorf("save session: %w", err)
	}
	m.notify(sess, msg)
	m.speaker.Speak(msg)
	return sess, msg, nil
}

// interpret runs the remote NLU when configured, falling back to the
// deterministic grammar on any failure, timeout or malformed response.
// Both paths see the exact same current intent. Only exceeding the hard
// processing bound surfaces as an error.
func (m *Manager) interpret(ctx context.Context, sess *Session, raw string) (Extraction, error) {
	if m.nlu == nil {
		return Extract(sess.Intent, raw), nil
	}

	hardCtx, cancelHard := context.WithTimeout(ctx, m.cfg.HardBound)
	defer cancelHard()
	nluCtx, cancelNLU := context.WithTimeout(hardCtx, m.cfg.NLUTimeout)
	defer cancelNLU()

	type outcome struct {
		res *NLUResult
		err error
	}
	resCh := make(chan outcome, 1)
	go func() {
		res, err := m.nlu.Interpret(nluCtx, raw, sess.Intent, sess.Turns)
		resCh <- outcome{res, err}
	}()

	select {
	case out := <-resCh:
		if out.err != nil {
			m.logger.Warn("nlu failed, using fallback grammar",
				zap.String("session", sess.ID), zap.Error(out.err))
			return Extract(sess.Intent, raw), nil
		}
		return extractionFromNLU(sess.Intent, out.res), nil
	case <-hardCtx.Done():
		return Extraction{}, ErrProcessingBound
	}
}

// extractionFromNLU maps a validated NLU result onto the same Extraction
// shape the fallback grammar produces. The NLU's slot values win, but the
// system message is always re-derived from the recomputed missing set so
// the no-repeat guarantee holds on this path too.
func extractionFromNLU(current models.BookingIntent, res *NLUResult) Extraction {
	switch res.Action {
	case ActionCancel:
		empty := models.BookingIntent{}
		return Extraction{
			Intent:  empty,
			Missing: empty.MissingSlots(),
			Message: "Booking cancelled. " + PromptFor(empty),
			Action:  ActionCancel,
		}
	case ActionConfirm:
		if len(current.MissingSlots()) == 0 {
			return Extraction{Intent: current, Action: ActionConfirm}
		}
		return repromptExtraction(current)
	case ActionReprompt:
		return repromptExtraction(current)
	default:
		next := res.Intent
		if next.Pickup != "" && next.Pickup == next.Dropoff {
			ext := repromptExtraction(current)
			ext.Message = "Pickup and drop-off can't be the same place. " + ext.Message
			return ext
		}
		return promptExtraction(next)
	}
}

// applyExtraction performs the state transition for one extraction result
// and returns the system message. Called with the session's turn lock held.
func (m *Manager) applyExtraction(ctx context.Context, sess *Session, ext Extraction) string {
	switch ext.Action {
	case ActionCancel:
		// Cancellation resets the intent, never the turn log.
		sess.Intent = models.BookingIntent{}
		sess.State = StateListening
		return ext.Message

	case ActionConfirm:
		sess.State = StateSubmitting
		m.notifyState(sess)
		bookingID, err := m.submit(ctx, sess)
		if err != nil {
			m.logger.Error("booking submission failed",
				zap.String("session", sess.ID), zap.Error(err))
			// Intent is preserved so the user is not forced to repeat
			// themselves; a fresh affirmative resubmits.
			sess.State = StateError
			m.scheduleRecovery(sess.ID)
			if errors.Is(err, ErrProcessingBound) {
				return "That took too long, please try again."
			}
			return "Sorry, something went wrong completing your booking. Please try again."
		}
		sess.BookingID = bookingID
		sess.State = StateComplete
		return fmt.Sprintf("Done! Your %s is booked.", sess.Intent.Class())

	case ActionReprompt:
		if sess.Intent.Complete() {
			sess.State = StateConfirming
		} else {
			sess.State = StateListening
		}
		return ext.Message

	default: // ActionPrompt
		sess.Intent = ext.Intent
		sess.State = stateForIntent(ext.Intent)
		return ext.Message
	}
}

// submit runs booking submission under the same hard bound as extraction, so
// a hung booking backend cannot park the session in Submitting while holding
// the turn lock.
func (m *Manager) submit(ctx context.Context, sess *Session) (string, error) {
	subCtx, cancel := context.WithTimeout(ctx, m.cfg.HardBound)
	defer cancel()

	type outcome struct {
		id  string
		err error
	}
	resCh := make(chan outcome, 1)
	go func() {
		id, err := m.submitter.Submit(subCtx, sess.Intent)
		resCh <- outcome{id, err}
	}()

	select {
	case out := <-resCh:
		if errors.Is(out.err, context.DeadlineExceeded) {
			return "", ErrProcessingBound
		}
		return out.id, out.err
	case <-subCtx.Done():
		return "", ErrProcessingBound
	}
}

// stateForIntent derives the waiting state from which slot is still empty.
func stateForIntent(i models.BookingIntent) State {
	switch {
	case i.Dropoff == "":
		return StateAwaitingDropoff
	case i.Pickup == "":
		return StateAwaitingPickup
	default:
		return StateConfirming
	}
}

// scheduleRecovery moves an errored session back to Listening after the
// configured delay, leaving intent and turn log untouched.
func (m *Manager) scheduleRecovery(sessionID string) {
	time.AfterFunc(m.cfg.RecoveryDelay, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		lock := m.turnLock(sessionID)
		lock.Lock()
		defer lock.Unlock()

		sess, err := m.store.Get(ctx, sessionID)
		if err != nil || sess.State != StateError {
			return
		}
		sess.State = StateListening
		if err := m.store.Save(ctx, sess); err != nil {
			m.logger.Warn("failed to save recovered session",
				zap.String("session", sessionID), zap.Error(err))
			return
		}
		m.notifyState(sess)
	})
}

func (m *Manager) turnLock(sessionID string) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()
	lock, ok := m.turnLocks[sessionID]
	if !ok {
		lock = &sync.Mutex{}
		m.turnLocks[sessionID] = lock
	}
	return lock
}

func (m *Manager) notifyState(sess *Session) {
	if m.OnStateChange != nil {
		m.OnStateChange(sess.ID, sess.State)
	}
}

func (m *Manager) notify(sess *Session, message string) {
	m.notifyState(sess)
	if m.OnSystemMessage != nil && message != "" {
		m.OnSystemMessage(sess.ID, message)
	}
}
