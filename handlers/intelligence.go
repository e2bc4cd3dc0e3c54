package handlers

import (
	"net/http"

	ai "samfit/services/intelligence"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AIHandler exposes the text-generation collaborator over HTTP:
// POST {prompt} -> {text}.
type AIHandler struct {
	Generator ai.TextGenerator
}

func NewAIHandler(generator ai.TextGenerator) *AIHandler {
	return &AIHandler{Generator: generator}
}

// GenerateEmail handles POST /api/ai/generate-email.
func (h *AIHandler) GenerateEmail(c *gin.Context) {
	logger := utilsLogger()
	var body struct {
		Prompt string `json:"prompt" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Prompt is required"})
		return
	}

	if h.Generator == nil {
		logger.Error("Text generation requested but no generator configured")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server configuration error"})
		return
	}

	text, err := h.Generator.GenerateContent(c.Request.Context(), body.Prompt)
	if err != nil {
		logger.Warn("Text generation failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to generate content"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"text": text})
}
