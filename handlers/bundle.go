// File: samfit/handlers/bundle.go
package handlers

import (
	"samfit/middleware"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	Verifier middleware.TokenVerifier

	// Booking endpoints.
	CreateBooking gin.HandlerFunc
	MyBookings    gin.HandlerFunc

	// Member profile endpoints.
	SyncProfile   gin.HandlerFunc
	GetProfile    gin.HandlerFunc
	UpdateProfile gin.HandlerFunc
	UploadPhoto   gin.HandlerFunc
	DeleteAccount gin.HandlerFunc

	// Content endpoints.
	GetServices     gin.HandlerFunc
	GetTrainers     gin.HandlerFunc
	GetPrograms     gin.HandlerFunc
	GetPricing      gin.HandlerFunc
	GetTestimonials gin.HandlerFunc
	GetTimeSlots    gin.HandlerFunc
	SubmitContact   gin.HandlerFunc

	// AI endpoints.
	GenerateEmail gin.HandlerFunc

	// Payment endpoints.
	CreatePaymentIntent gin.HandlerFunc

	// Admin endpoints.
	AdminHandler *AdminHandler
}
