package models

// ChatRequest is the payload coming from the frontend into /api/chat.
type ChatRequest struct {
	SessionID string `json:"sessionId"`
	Text      string `json:"text" binding:"required"`
}

// ChatResponse is the chatbot's reply.
type ChatResponse struct {
	Intent       string `json:"intent"` // "faq" or "chat"
	ResponseText string `json:"response"`
}
