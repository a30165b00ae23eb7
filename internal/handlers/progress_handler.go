package handlers

import (
	"net/http"

	"finlit-agent/internal/service"
	"finlit-agent/internal/utils"

	"github.com/gin-gonic/gin"
)

type ProgressHandler struct {
	Progress *service.ProgressService
}

func NewProgressHandler(progress *service.ProgressService) *ProgressHandler {
	return &ProgressHandler{Progress: progress}
}

// History returns the authenticated user's submissions, most recent first.
func (h *ProgressHandler) History(c *gin.Context) {
	records, err := h.Progress.History(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		utils.ErrorResponse(c, statusFor(err), "Failed to fetch progress", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"progress": records})
}
