package handlers

import (
	"net/http"

	"swiftcab/models"
	"swiftcab/services/chat"
	"swiftcab/utils"

	"github.com/gin-gonic/gin"
)

// ChatHandler exposes the FAQ chatbot.
type ChatHandler struct {
	Svc chat.Service
}

func NewChatHandler(svc chat.Service) *ChatHandler {
	return &ChatHandler{Svc: svc}
}

// HandleChat answers one chatbot message.
func (h *ChatHandler) HandleChat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	resp, err := h.Svc.ProcessMessage(c.Request.Context(), req)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "chat failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, resp)
}
