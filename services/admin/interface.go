package admin

import (
	"context"

	bookingsRepo "samfit/database/repository/bookings"
	usersRepo "samfit/database/repository/users"
	"samfit/models"

	"go.uber.org/zap"
)

// AdminService is the console's mutation and live-view surface. Each mutation
// is a single store call; the console's table refreshes through the watch
// streams, not through optimistic responses.
type AdminService interface {
	ListBookings(ctx context.Context) ([]models.Booking, error)
	ApproveBooking(ctx context.Context, id string) error
	CancelBooking(ctx context.Context, id string) error
	DeleteBooking(ctx context.Context, id string) error

	ListUsers(ctx context.Context) ([]models.UserProfile, error)
	// DeleteUserProfile removes the profile document only; it does not
	// cascade to the identity record.
	DeleteUserProfile(ctx context.Context, uid string) error

	WatchBookings(ctx context.Context) (<-chan []models.Booking, <-chan error)
	WatchUsers(ctx context.Context) (<-chan []models.UserProfile, <-chan error)
}

// DefaultAdminService is the production implementation.
type DefaultAdminService struct {
	Bookings bookingsRepo.BookingRepository
	Users    usersRepo.UserRepository
	Logger   *zap.Logger
}
