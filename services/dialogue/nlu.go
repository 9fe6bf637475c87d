package dialogue

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"swiftcab/models"

	"go.uber.org/zap"
)

// NLUClient is the remote natural-language service boundary. Its result,
// when available and well-formed, takes precedence over the fallback grammar.
type NLUClient interface {
	Interpret(ctx context.Context, utterance string, current models.BookingIntent, history []models.Turn) (*NLUResult, error)
}

// NLUResult is the validated, tagged form of a remote NLU response.
type NLUResult struct {
	Intent      models.BookingIntent
	Response    string
	Action      Action
	MissingInfo []string
}

type nluRequest struct {
	Command             string               `json:"command"`
	Context             models.BookingIntent `json:"context"`
	ConversationHistory []models.Turn        `json:"conversationHistory"`
}

type nluResponse struct {
	Intent      *models.BookingIntent `json:"intent"`
	Response    string                `json:"response"`
	Action      string                `json:"action"`
	MissingInfo []string              `json:"missingInfo"`
}

// HTTPNLUClient calls the remote NLU service over JSON/HTTP with a bounded
// timeout. Any non-2xx status, timeout or schema violation is reported as a
// typed error so the caller can fall through to the deterministic grammar.
type HTTPNLUClient struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

func NewHTTPNLUClient(baseURL string, timeout time.Duration, logger *zap.Logger) *HTTPNLUClient {
	return &HTTPNLUClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

func (c *HTTPNLUClient) Interpret(ctx context.Context, utterance string, current models.BookingIntent, history []models.Turn) (*NLUResult, error) {
	body, err := json.Marshal(nluRequest{
		Command:             utterance,
		Context:             current,
		ConversationHistory: history,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal nlu request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build nlu request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		// Covers both a context deadline and the http.Client's own timeout.
		if errors.Is(err, context.DeadlineExceeded) || os.IsTimeout(err) {
			return nil, ErrNLUTimeout
		}
		return nil, fmt.Errorf("%w: %v", ErrNLUUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d", ErrNLUUnavailable, resp.StatusCode)
	}

	var parsed nluResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNLUMalformed, err)
	}
	return validateNLUResponse(parsed)
}

// validateNLUResponse converts the loose wire shape into a tagged result,
// rejecting anything missing required fields rather than trusting it.
func validateNLUResponse(parsed nluResponse) (*NLUResult, error) {
	if parsed.Intent == nil {
		return nil, fmt.Errorf("%w: missing intent", ErrNLUMalformed)
	}
	var action Action
	switch parsed.Action {
	case string(ActionPrompt), string(ActionReprompt), string(ActionConfirm), string(ActionCancel):
		action = Action(parsed.Action)
	default:
		return nil, fmt.Errorf("%w: unknown action %q", ErrNLUMalformed, parsed.Action)
	}
	return &NLUResult{
		Intent:      *parsed.Intent,
		Response:    parsed.Response,
		Action:      action,
		MissingInfo: parsed.MissingInfo,
	}, nil
}
