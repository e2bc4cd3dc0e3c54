package handlers

import (
	"fmt"
	"html/template"
	"net/http"

	mailRepo "samfit/database/repository/mail"
	"samfit/models"
	"samfit/services/content"
	"samfit/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContentHandler serves the fixed marketing catalog and the contact form.
type ContentHandler struct {
	Mail        mailRepo.MailRepository
	StudioEmail string
}

func NewContentHandler(mail mailRepo.MailRepository, studioEmail string) *ContentHandler {
	return &ContentHandler{Mail: mail, StudioEmail: studioEmail}
}

func (h *ContentHandler) GetServices(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"services": content.Services})
}

func (h *ContentHandler) GetTrainers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"trainers": content.Trainers})
}

func (h *ContentHandler) GetPrograms(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"programs": content.Programs})
}

func (h *ContentHandler) GetPricing(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"plans": content.PricingPlans})
}

func (h *ContentHandler) GetTestimonials(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"testimonials": content.Testimonials})
}

func (h *ContentHandler) GetTimeSlots(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"timeSlots": content.TimeSlots})
}

// SubmitContact handles POST /api/contact: forwards the message to the studio
// inbox through the mail-trigger collection.
func (h *ContentHandler) SubmitContact(c *gin.Context) {
	logger := utilsLogger()
	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	intent := models.MailIntent{
		To: []string{h.StudioEmail},
		Message: models.MailMessage{
			Subject: fmt.Sprintf("Contact form: %s", req.Name),
			HTML: fmt.Sprintf("<p>From: %s &lt;%s&gt;</p><p>%s</p>",
				template.HTMLEscapeString(req.Name),
				template.HTMLEscapeString(req.Email),
				template.HTMLEscapeString(req.Message)),
		},
	}
	if _, err := h.Mail.Enqueue(c.Request.Context(), intent); err != nil {
		logger.Error("Contact mail enqueue failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send your message. Please try again."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Message sent"})
}
