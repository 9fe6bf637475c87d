package handlers

import (
	"errors"
	"net/http"

	"swiftcab/services/dialogue"
	"swiftcab/utils"

	"github.com/gin-gonic/gin"
)

// VoiceHandler exposes the voice-booking dialogue engine over HTTP. The
// frontend feeds recognized speech events in and plays the returned system
// messages back out.
type VoiceHandler struct {
	Mgr *dialogue.Manager
}

func NewVoiceHandler(mgr *dialogue.Manager) *VoiceHandler {
	return &VoiceHandler{Mgr: mgr}
}

// UtteranceInput is one speech-recognition event. Interim (non-final)
// results never reach the dialogue manager.
type UtteranceInput struct {
	Text    string `json:"text" binding:"required"`
	IsFinal bool   `json:"isFinal"`
}

// StartSession opens a new voice session and returns the greeting.
func (h *VoiceHandler) StartSession(c *gin.Context) {
	sess, greeting, err := h.Mgr.Start(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to start session", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"sessionId": sess.ID,
		"state":     sess.State,
		"message":   greeting,
	})
}

// PostUtterance feeds one recognized utterance into a session.
func (h *VoiceHandler) PostUtterance(c *gin.Context) {
	var input UtteranceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if !input.IsFinal {
		// Interim recognition results are acknowledged but not processed.
		c.JSON(http.StatusAccepted, gin.H{"processed": false})
		return
	}

	sess, message, err := h.Mgr.OnUtterance(c.Request.Context(), c.Param("sessionID"), input.Text)
	switch {
	case errors.Is(err, dialogue.ErrSessionNotFound):
		utils.JSONError(c, http.StatusNotFound, "session not found", err.Error())
		return
	case errors.Is(err, dialogue.ErrSessionClosed):
		utils.JSONError(c, http.StatusGone, "session is closed", err.Error())
		return
	case errors.Is(err, dialogue.ErrTurnInFlight):
		utils.JSONError(c, http.StatusConflict, "previous turn still processing", err.Error())
		return
	case err != nil:
		utils.JSONError(c, http.StatusInternalServerError, "failed to process utterance", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sessionId": sess.ID,
		"state":     sess.State,
		"intent":    sess.Intent,
		"message":   message,
		"bookingId": sess.BookingID,
	})
}

// GetSession returns the session state and full transcript.
func (h *VoiceHandler) GetSession(c *gin.Context) {
	sess, err := h.Mgr.Get(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "session not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, sess)
}

// AbandonSession terminally closes a session.
func (h *VoiceHandler) AbandonSession(c *gin.Context) {
	if err := h.Mgr.Abandon(c.Request.Context(), c.Param("sessionID")); err != nil {
		utils.JSONError(c, http.StatusNotFound, "session not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": dialogue.StateAbandoned})
}
