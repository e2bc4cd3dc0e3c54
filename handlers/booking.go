package handlers

import (
	"fmt"
	"net/http"

	"samfit/middleware"
	"samfit/models"
	"samfit/services/booking"
	"samfit/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the public booking form and the member's own
// booking list.
type BookingHandler struct {
	Service booking.BookingService
	Guard   *middleware.SubmitGuard
}

func NewBookingHandler(service booking.BookingService, guard *middleware.SubmitGuard) *BookingHandler {
	return &BookingHandler{Service: service, Guard: guard}
}

// CreateBooking handles POST /api/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	logger := utilsLogger()
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	owner := middleware.UID(c)
	guardOwner := owner
	if guardOwner == "" {
		guardOwner = getClientKey(c)
	}

	if h.Guard != nil {
		key := h.Guard.Key(guardOwner, fmt.Sprintf("%s|%s|%s|%s", req.Email, req.Service, req.Date, req.Time))
		release, ok := h.Guard.Acquire(c.Request.Context(), key)
		if !ok {
			be, _ := booking.AsBookingError(booking.NewDuplicateSubmitError())
			c.JSON(http.StatusConflict, gin.H{"error": be.UserMessage(), "kind": be.Kind})
			return
		}
		defer release()
	}

	confirmation, err := h.Service.CreateBooking(c.Request.Context(), req, owner)
	if err != nil {
		status, kind, msg := classifyBookingError(err)
		logger.Warn("Booking submit failed", zap.String("kind", kind), zap.String("service", req.Service))
		c.JSON(status, gin.H{"error": msg, "kind": kind})
		return
	}

	c.JSON(http.StatusCreated, confirmation)
}

// MyBookings handles GET /api/users/me/bookings.
func (h *BookingHandler) MyBookings(c *gin.Context) {
	logger := utilsLogger()
	uid := middleware.UID(c)
	bookings, err := h.Service.ListByOwner(c.Request.Context(), uid)
	if err != nil {
		logger.Error("Failed to list member bookings", zap.String("uid", uid), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load bookings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

func classifyBookingError(err error) (int, string, string) {
	if be, ok := booking.AsBookingError(err); ok {
		switch be.Kind {
		case booking.KindInvalidInput:
			return http.StatusBadRequest, be.Kind, be.UserMessage()
		case booking.KindPermissionDenied:
			return http.StatusForbidden, be.Kind, be.UserMessage()
		case booking.KindUnavailable:
			return http.StatusServiceUnavailable, be.Kind, be.UserMessage()
		case booking.KindDuplicate:
			return http.StatusConflict, be.Kind, be.UserMessage()
		default:
			return http.StatusInternalServerError, be.Kind, be.UserMessage()
		}
	}
	return http.StatusInternalServerError, booking.KindInternal, "Failed to save your booking. Please try again."
}
