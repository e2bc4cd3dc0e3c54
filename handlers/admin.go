package handlers

import (
	"io"
	"net/http"

	"samfit/database"
	"samfit/services/admin"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler serves the admin console: live tables plus direct mutations.
type AdminHandler struct {
	Service admin.AdminService
}

func NewAdminHandler(service admin.AdminService) *AdminHandler {
	return &AdminHandler{Service: service}
}

// ListBookings handles GET /api/admin/bookings.
func (h *AdminHandler) ListBookings(c *gin.Context) {
	bookings, err := h.Service.ListBookings(c.Request.Context())
	if err != nil {
		h.storeError(c, err, "Failed to list bookings")
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// ApproveBooking handles POST /api/admin/bookings/:id/approve.
func (h *AdminHandler) ApproveBooking(c *gin.Context) {
	if err := h.Service.ApproveBooking(c.Request.Context(), c.Param("id")); err != nil {
		h.storeError(c, err, "Failed to approve booking")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking approved"})
}

// CancelBooking handles POST /api/admin/bookings/:id/cancel.
func (h *AdminHandler) CancelBooking(c *gin.Context) {
	if err := h.Service.CancelBooking(c.Request.Context(), c.Param("id")); err != nil {
		h.storeError(c, err, "Failed to cancel booking")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled"})
}

// DeleteBooking handles DELETE /api/admin/bookings/:id.
func (h *AdminHandler) DeleteBooking(c *gin.Context) {
	if err := h.Service.DeleteBooking(c.Request.Context(), c.Param("id")); err != nil {
		h.storeError(c, err, "Failed to delete booking")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted"})
}

// ListUsers handles GET /api/admin/users.
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.Service.ListUsers(c.Request.Context())
	if err != nil {
		h.storeError(c, err, "Failed to list users")
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// DeleteUserProfile handles DELETE /api/admin/users/:id.
func (h *AdminHandler) DeleteUserProfile(c *gin.Context) {
	if err := h.Service.DeleteUserProfile(c.Request.Context(), c.Param("id")); err != nil {
		h.storeError(c, err, "Failed to delete user profile")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User profile deleted"})
}

// StreamBookings handles GET /api/admin/bookings/stream: an SSE feed of
// collection snapshots backing the console's live table.
func (h *AdminHandler) StreamBookings(c *gin.Context) {
	ctx := c.Request.Context()
	updates, errs := h.Service.WatchBookings(ctx)
	streamSnapshots(c, "bookings", func() (interface{}, bool) {
		snap, ok := <-updates
		return snap, ok
	}, errs)
}

// StreamUsers handles GET /api/admin/users/stream.
func (h *AdminHandler) StreamUsers(c *gin.Context) {
	ctx := c.Request.Context()
	updates, errs := h.Service.WatchUsers(ctx)
	streamSnapshots(c, "users", func() (interface{}, bool) {
		snap, ok := <-updates
		return snap, ok
	}, errs)
}

// streamSnapshots pumps snapshot events to the client. A permission-denied
// subscription error is surfaced as an access-denied event so the console
// stops its loading state; any other error ends the stream silently.
func streamSnapshots(c *gin.Context, event string, next func() (interface{}, bool), errs <-chan error) {
	logger := utilsLogger()
	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		snap, ok := next()
		if !ok {
			select {
			case err := <-errs:
				if err != nil {
					if database.IsPermissionDenied(err) {
						c.SSEvent("error", gin.H{"error": "Access denied"})
					} else {
						logger.Warn("Snapshot stream ended", zap.String("event", event), zap.Error(err))
					}
				}
			default:
			}
			return false
		}
		c.SSEvent(event, snap)
		return true
	})
}

// storeError maps a document-store rejection to a response. Permission
// rejections become the console's access-denied state instead of a crash.
func (h *AdminHandler) storeError(c *gin.Context, err error, msg string) {
	logger := utilsLogger()
	if database.IsPermissionDenied(err) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}
	logger.Error(msg, zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}
