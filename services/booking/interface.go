package booking

import (
	"context"

	bookingsRepo "samfit/database/repository/bookings"
	mailRepo "samfit/database/repository/mail"
	"samfit/models"
	ai "samfit/services/intelligence"

	"go.uber.org/zap"
)

// BookingService records bookings submitted from the public booking form.
type BookingService interface {
	// CreateBooking runs the submit flow: the durable booking write (fatal on
	// failure), a best-effort mail trigger, a best-effort generated email
	// preview, and returns a confirmation built from the submitted request.
	CreateBooking(ctx context.Context, req models.BookingRequest, ownerID string) (*models.BookingConfirmation, error)

	ListByOwner(ctx context.Context, ownerID string) ([]models.Booking, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo      bookingsRepo.BookingRepository
	Mail      mailRepo.MailRepository
	Generator ai.TextGenerator
	Logger    *zap.Logger
}
