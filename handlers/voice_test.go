package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"swiftcab/models"
	"swiftcab/services/dialogue"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type submitFunc func() (string, error)

func (f submitFunc) Submit(ctx context.Context, intent models.BookingIntent) (string, error) {
	return f()
}

func newVoiceRouter(t *testing.T) (*gin.Engine, *dialogue.Manager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mgr := dialogue.NewManager(
		dialogue.NewMemorySessionStore(),
		nil,
		submitFunc(func() (string, error) { return "bk-http", nil }),
		nil,
		zap.NewNop(),
		dialogue.Config{},
	)
	h := NewVoiceHandler(mgr)

	r := gin.New()
	r.POST("/api/voice/sessions", h.StartSession)
	r.GET("/api/voice/sessions/:sessionID", h.GetSession)
	r.POST("/api/voice/sessions/:sessionID/utterances", h.PostUtterance)
	r.DELETE("/api/voice/sessions/:sessionID", h.AbandonSession)
	return r, mgr
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestVoiceSessionLifecycle(t *testing.T) {
	r, _ := newVoiceRouter(t)

	w := postJSON(t, r, "/api/voice/sessions", "")
	require.Equal(t, http.StatusCreated, w.Code)

	var started struct {
		SessionID string `json:"sessionId"`
		State     string `json:"state"`
		Message   string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &started))
	assert.Equal(t, "listening", started.State)
	assert.Equal(t, "Where would you like to go?", started.Message)
	require.NotEmpty(t, started.SessionID)

	base := "/api/voice/sessions/" + started.SessionID

	w = postJSON(t, r, base+"/utterances", `{"text": "take me to the airport", "isFinal": true}`)
	require.Equal(t, http.StatusOK, w.Code)
	var turn struct {
		State   string `json:"state"`
		Message string `json:"message"`
		Intent  struct {
			Dropoff string `json:"dropoff"`
		} `json:"intent"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &turn))
	assert.Equal(t, "awaiting_pickup", turn.State)
	assert.Equal(t, "Airport", turn.Intent.Dropoff)

	w = postJSON(t, r, base+"/utterances", `{"text": "from home", "isFinal": true}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = postJSON(t, r, base+"/utterances", `{"text": "yes", "isFinal": true}`)
	require.Equal(t, http.StatusOK, w.Code)
	var final struct {
		State     string `json:"state"`
		BookingID string `json:"bookingId"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &final))
	assert.Equal(t, "complete", final.State)
	assert.Equal(t, "bk-http", final.BookingID)

	// Transcript is retrievable after completion.
	req := httptest.NewRequest(http.MethodGet, base, nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "take me to the airport")

	// And the closed session rejects further speech.
	w = postJSON(t, r, base+"/utterances", `{"text": "hello", "isFinal": true}`)
	assert.Equal(t, http.StatusGone, w.Code)
}

func TestVoiceInterimResultsAreNotProcessed(t *testing.T) {
	r, _ := newVoiceRouter(t)

	w := postJSON(t, r, "/api/voice/sessions", "")
	require.Equal(t, http.StatusCreated, w.Code)
	var started struct {
		SessionID string `json:"sessionId"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &started))

	base := "/api/voice/sessions/" + started.SessionID
	w = postJSON(t, r, base+"/utterances", `{"text": "to the air", "isFinal": false}`)
	assert.Equal(t, http.StatusAccepted, w.Code)

	// The interim fragment must not have touched the session.
	req := httptest.NewRequest(http.MethodGet, base, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.NotContains(t, rec.Body.String(), "to the air")
}

func TestVoiceUnknownSession(t *testing.T) {
	r, _ := newVoiceRouter(t)

	w := postJSON(t, r, "/api/voice/sessions/nope/utterances", `{"text": "hello", "isFinal": true}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestVoiceAbandonSession(t *testing.T) {
	r, _ := newVoiceRouter(t)

	w := postJSON(t, r, "/api/voice/sessions", "")
	require.Equal(t, http.StatusCreated, w.Code)
	var started struct {
		SessionID string `json:"sessionId"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &started))

	req := httptest.NewRequest(http.MethodDelete, "/api/voice/sessions/"+started.SessionID, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	w = postJSON(t, r, "/api/voice/sessions/"+started.SessionID+"/utterances", `{"text": "hello", "isFinal": true}`)
	assert.Equal(t, http.StatusGone, w.Code)
}

func TestVoiceRejectsMissingText(t *testing.T) {
	r, _ := newVoiceRouter(t)

	w := postJSON(t, r, "/api/voice/sessions", "")
	require.Equal(t, http.StatusCreated, w.Code)
	var started struct {
		SessionID string `json:"sessionId"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &started))

	w = postJSON(t, r, fmt.Sprintf("/api/voice/sessions/%s/utterances", started.SessionID), `{"isFinal": true}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
