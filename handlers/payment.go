package handlers

import (
	"net/http"

	"samfit/middleware"
	"samfit/models"
	"samfit/services/payment"
	"samfit/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler issues membership payment intents.
type PaymentHandler struct {
	Service payment.PaymentService
}

func NewPaymentHandler(service payment.PaymentService) *PaymentHandler {
	return &PaymentHandler{Service: service}
}

// CreateIntent handles POST /api/payment/intent.
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	logger := utilsLogger()
	uid := middleware.UID(c)

	var req models.PaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	resp, err := h.Service.CreatePlanIntent(c.Request.Context(), uid, req)
	if err != nil {
		logger.Error("Payment intent failed", zap.String("uid", uid), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start payment"})
		return
	}
	c.JSON(http.StatusOK, resp)
}
