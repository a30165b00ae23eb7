package handlers

import (
	"net/http"
	"time"

	"finlit-agent/internal/models"
	"finlit-agent/internal/service"
	"finlit-agent/internal/utils"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	Quiz *service.QuizService
}

func NewQuizHandler(quiz *service.QuizService) *QuizHandler {
	return &QuizHandler{Quiz: quiz}
}

// Generate builds a fresh quiz for a category. The response never exposes
// correct answers; each item's id carries what scoring needs.
func (h *QuizHandler) Generate(c *gin.Context) {
	var req models.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Category is required", err)
		return
	}

	questions, source, err := h.Quiz.Generate(c.Request.Context(), req.Category, req.Count)
	if err != nil {
		utils.ErrorResponse(c, statusFor(err), "Failed to generate questions", err)
		return
	}

	c.JSON(http.StatusOK, models.GenerateResponse{
		Questions:   questions,
		Category:    req.Category,
		GeneratedAt: time.Now(),
		Source:      source,
	})
}

// List returns the curated question bank, optionally filtered by the
// category query parameter.
func (h *QuizHandler) List(c *gin.Context) {
	questions, err := h.Quiz.ListCurated(c.Request.Context(), c.Query("category"))
	if err != nil {
		utils.ErrorResponse(c, statusFor(err), "Failed to fetch questions", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"questions": questions})
}

// Submit grades an answer set for the authenticated user.
func (h *QuizHandler) Submit(c *gin.Context) {
	var req models.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Answers and category are required", err)
		return
	}

	userID := c.GetString("userID")
	result, err := h.Quiz.Score(c.Request.Context(), userID, req.Category, req.Answers)
	if err != nil {
		utils.ErrorResponse(c, statusFor(err), "Failed to score submission", err)
		return
	}

	c.JSON(http.StatusOK, result)
}
