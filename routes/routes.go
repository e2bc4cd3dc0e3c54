// File: samfit/routes/routes.go
package routes

import (
	"net/http"
	"time"

	"samfit/handlers"
	"samfit/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterContentRoutes registers the public marketing-site content
// endpoints. No authentication: these back the landing pages.
func RegisterContentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/content")
	{
		api.GET("/services", hb.GetServices)
		api.GET("/trainers", hb.GetTrainers)
		api.GET("/programs", hb.GetPrograms)
		api.GET("/pricing", hb.GetPricing)
		api.GET("/testimonials", hb.GetTestimonials)
		api.GET("/timeslots", hb.GetTimeSlots)
	}
	r.POST("/api/contact", hb.SubmitContact)
}

// RegisterBookingRoutes registers the booking form endpoint. Submitting a
// booking is open to anonymous visitors, so auth is optional; a member's own
// booking list lives under /api/users/me/bookings.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.POST("", middleware.OptionalAuthMiddleware(hb.Verifier), hb.CreateBooking)
	}
}

// RegisterUserRoutes registers member profile endpoints. Every route is
// gated: an invalid token is rejected before any store access happens.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.Use(middleware.AuthMiddleware(hb.Verifier))
		api.POST("/sync", hb.SyncProfile)
		api.GET("/me", hb.GetProfile)
		api.PATCH("/me", hb.UpdateProfile)
		api.POST("/me/photo", hb.UploadPhoto)
		api.GET("/me/bookings", hb.MyBookings)
		api.DELETE("/me", hb.DeleteAccount)
	}
}

// RegisterAdminRoutes sets up endpoints for the admin console, including the
// live event streams the dashboard tables subscribe to.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.AuthMiddleware(hb.Verifier))
		adminGroup.Use(middleware.AdminMiddleware())

		adminGroup.GET("/bookings", hb.AdminHandler.ListBookings)
		adminGroup.GET("/bookings/stream", hb.AdminHandler.StreamBookings)
		adminGroup.POST("/bookings/:id/approve", hb.AdminHandler.ApproveBooking)
		adminGroup.POST("/bookings/:id/cancel", hb.AdminHandler.CancelBooking)
		adminGroup.DELETE("/bookings/:id", hb.AdminHandler.DeleteBooking)

		adminGroup.GET("/users", hb.AdminHandler.ListUsers)
		adminGroup.GET("/users/stream", hb.AdminHandler.StreamUsers)
		adminGroup.DELETE("/users/:id", hb.AdminHandler.DeleteUserProfile)
	}
}

// RegisterAIRoutes registers the email-generation endpoint used by the
// booking confirmation flow.
func RegisterAIRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/ai")
	{
		api.POST("/generate-email", hb.GenerateEmail)
	}
}

// RegisterPaymentRoutes registers membership payment endpoints.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/payment")
	{
		api.Use(middleware.AuthMiddleware(hb.Verifier))
		api.POST("/intent", hb.CreatePaymentIntent)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Samfit"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterContentRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterAIRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterHealthRoute(r)
}
