package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"samfit/middleware"
	"samfit/models"
	"samfit/services/user"
	"samfit/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UserHandler serves the member portal's profile surface.
type UserHandler struct {
	Service user.UserService
}

func NewUserHandler(service user.UserService) *UserHandler {
	return &UserHandler{Service: service}
}

// SyncProfile handles POST /api/users/sync: called once after sign-in (either
// auth path) to ensure the profile document exists.
func (h *UserHandler) SyncProfile(c *gin.Context) {
	logger := utilsLogger()
	uid := middleware.UID(c)

	var body struct {
		Name     string `json:"name"`
		Email    string `json:"email" binding:"required,email"`
		PhotoURL string `json:"photoURL"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	profile, err := h.Service.SyncProfile(c.Request.Context(), uid, body.Name, body.Email, body.PhotoURL)
	if err != nil {
		logger.Error("Profile sync failed", zap.String("uid", uid), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sync profile"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// GetProfile handles GET /api/users/me.
func (h *UserHandler) GetProfile(c *gin.Context) {
	logger := utilsLogger()
	uid := middleware.UID(c)
	profile, err := h.Service.GetProfile(c.Request.Context(), uid)
	if err != nil {
		logger.Error("Profile fetch failed", zap.String("uid", uid), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfile handles PATCH /api/users/me.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	logger := utilsLogger()
	uid := middleware.UID(c)

	var update models.UserProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	profile, err := h.Service.UpdateProfile(c.Request.Context(), uid, update)
	if err != nil {
		logger.Error("Profile update failed", zap.String("uid", uid), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UploadPhoto handles POST /api/users/me/photo (multipart form, field
// "photo").
func (h *UserHandler) UploadPhoto(c *gin.Context) {
	logger := utilsLogger()
	uid := middleware.UID(c)

	file, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing photo upload"})
		return
	}

	// Scratch path must be unique: concurrent uploads can share a filename.
	tmpPath := filepath.Join(os.TempDir(), uuid.New().String()+filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, tmpPath); err != nil {
		logger.Error("Photo save failed", zap.String("uid", uid), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to receive photo"})
		return
	}
	defer os.Remove(tmpPath)

	url, err := h.Service.UploadPhoto(c.Request.Context(), uid, tmpPath)
	if err != nil {
		logger.Error("Photo upload failed", zap.String("uid", uid), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload photo"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"photoURL": url})
}

// DeleteAccount handles DELETE /api/users/me: removes both the profile
// document and the identity record.
func (h *UserHandler) DeleteAccount(c *gin.Context) {
	logger := utilsLogger()
	uid := middleware.UID(c)
	if err := h.Service.DeleteAccount(c.Request.Context(), uid); err != nil {
		logger.Error("Account deletion failed", zap.String("uid", uid), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete account"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Account deleted"})
}
