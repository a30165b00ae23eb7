package handlers

import (
	"net/http"

	"finlit-agent/internal/repository"
	"finlit-agent/internal/seed"
	"finlit-agent/internal/utils"

	"github.com/gin-gonic/gin"
)

// ContentHandler manages the seeded knowledge corpus and curated question
// bank. Seeding is idempotent per call in the sense that it reports what is
// already there instead of failing.
type ContentHandler struct {
	Knowledge *repository.KnowledgeRepository
	Questions *repository.QuestionRepository
}

func NewContentHandler(knowledge *repository.KnowledgeRepository, questions *repository.QuestionRepository) *ContentHandler {
	return &ContentHandler{Knowledge: knowledge, Questions: questions}
}

func (h *ContentHandler) SeedContent(c *gin.Context) {
	ctx := c.Request.Context()

	existing, err := h.Knowledge.Count(ctx)
	if err != nil {
		utils.ErrorResponse(c, statusFor(err), "Failed to check existing content", err)
		return
	}
	if existing > 0 {
		c.JSON(http.StatusOK, gin.H{
			"message": "Content already seeded",
			"count":   existing,
		})
		return
	}

	docs := seed.KnowledgeDocuments()
	for i := range docs {
		if err := h.Knowledge.Create(ctx, &docs[i]); err != nil {
			utils.ErrorResponse(c, statusFor(err), "Failed to seed content", err)
			return
		}
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Content seeded successfully",
		"count":   len(docs),
	})
}

func (h *ContentHandler) SeedQuestions(c *gin.Context) {
	ctx := c.Request.Context()

	existing, err := h.Questions.FindByCategory(ctx, "")
	if err != nil {
		utils.ErrorResponse(c, statusFor(err), "Failed to check existing questions", err)
		return
	}
	if len(existing) > 0 {
		c.JSON(http.StatusOK, gin.H{
			"message": "Questions already seeded",
			"count":   len(existing),
		})
		return
	}

	questions := seed.Questions()
	for i := range questions {
		if err := h.Questions.Create(ctx, &questions[i]); err != nil {
			utils.ErrorResponse(c, statusFor(err), "Failed to seed questions", err)
			return
		}
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Questions seeded successfully",
		"count":   len(questions),
	})
}

// CheckContent reports how many knowledge documents are available, for quick
// deployment verification.
func (h *ContentHandler) CheckContent(c *gin.Context) {
	count, err := h.Knowledge.Count(c.Request.Context())
	if err != nil {
		utils.ErrorResponse(c, statusFor(err), "Failed to check content", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"contentCount": count,
		"seeded":       count > 0,
	})
}
