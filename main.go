// File: samfit/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"samfit/config"
	"samfit/database"
	bookingsRepo "samfit/database/repository/bookings"
	mailRepo "samfit/database/repository/mail"
	usersRepo "samfit/database/repository/users"
	"samfit/handlers"
	"samfit/middleware"
	"samfit/routes"
	"samfit/services/admin"
	"samfit/services/booking"
	"samfit/services/content"
	ai "samfit/services/intelligence"
	"samfit/services/payment"
	"samfit/services/user"
	"samfit/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	if err := content.ValidateCatalog(); err != nil {
		logger.Sugar().Fatalf("main: catalog validation failed: %v", err)
	}

	database.InitDB()
	utils.InitSubmitGuard()
	utils.FirebaseInit()

	cloudinaryStorageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// The email generator is best-effort: a missing key or failed init
	// degrades to template fallbacks instead of blocking startup.
	var generator ai.TextGenerator
	if config.AppConfig.GeminiAPIKey != "" {
		geminiClient, err := ai.NewGeminiClient(config.AppConfig.GeminiAPIKey, config.AppConfig.GeminiModel)
		if err != nil {
			logger.Sugar().Warnf("main: gemini client unavailable, using fallback emails: %v", err)
		} else {
			generator = geminiClient
		}
	} else {
		logger.Sugar().Warn("main: no Gemini API key configured, using fallback emails")
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	bookingRepo := bookingsRepo.NewFirestoreBookingRepo()
	userRepo := usersRepo.NewFirestoreUserRepo()
	mailQueue := mailRepo.NewFirestoreMailRepo()

	// services.
	bookingService := &booking.DefaultBookingService{
		Repo:      bookingRepo,
		Mail:      mailQueue,
		Generator: generator,
		Logger:    logger,
	}
	userService := &user.DefaultUserService{
		Repo:     userRepo,
		Identity: user.NewFirebaseIdentity(utils.GetAuthClient()),
		Storage:  cloudinaryStorageService,
		Logger:   logger,
	}
	adminService := &admin.DefaultAdminService{
		Bookings: bookingRepo,
		Users:    userRepo,
		Logger:   logger,
	}
	paymentService := payment.NewPaymentService(logger)

	submitGuard := middleware.NewSubmitGuard(utils.GetSubmitGuardClient())

	bookingHandler := handlers.NewBookingHandler(bookingService, submitGuard)
	userHandler := handlers.NewUserHandler(userService)
	adminHandler := handlers.NewAdminHandler(adminService)
	contentHandler := handlers.NewContentHandler(mailQueue, config.AppConfig.StudioEmail)
	aiHandler := handlers.NewAIHandler(generator)
	paymentHandler := handlers.NewPaymentHandler(paymentService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Verifier: utils.GetAuthClient(),

		// Booking endpoints.
		CreateBooking: bookingHandler.CreateBooking,
		MyBookings:    bookingHandler.MyBookings,

		// Member profile endpoints.
		SyncProfile:   userHandler.SyncProfile,
		GetProfile:    userHandler.GetProfile,
		UpdateProfile: userHandler.UpdateProfile,
		UploadPhoto:   userHandler.UploadPhoto,
		DeleteAccount: userHandler.DeleteAccount,

		// Content endpoints.
		GetServices:     contentHandler.GetServices,
		GetTrainers:     contentHandler.GetTrainers,
		GetPrograms:     contentHandler.GetPrograms,
		GetPricing:      contentHandler.GetPricing,
		GetTestimonials: contentHandler.GetTestimonials,
		GetTimeSlots:    contentHandler.GetTimeSlots,
		SubmitContact:   contentHandler.SubmitContact,

		// AI endpoints.
		GenerateEmail: aiHandler.GenerateEmail,

		// Payment endpoints.
		CreatePaymentIntent: paymentHandler.CreateIntent,

		// Admin endpoints.
		AdminHandler: adminHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
