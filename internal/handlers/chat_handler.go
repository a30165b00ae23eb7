package handlers

import (
	"net/http"

	"finlit-agent/internal/models"
	"finlit-agent/internal/service"
	"finlit-agent/internal/utils"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	Chat *service.ChatService
}

func NewChatHandler(chat *service.ChatService) *ChatHandler {
	return &ChatHandler{Chat: chat}
}

// Ask answers a free-form question grounded in the knowledge corpus.
func (h *ChatHandler) Ask(c *gin.Context) {
	var req models.AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Question is required", err)
		return
	}

	answer, err := h.Chat.Ask(c.Request.Context(), req.Question)
	if err != nil {
		utils.ErrorResponse(c, statusFor(err), "Failed to answer question", err)
		return
	}

	c.JSON(http.StatusOK, answer)
}
