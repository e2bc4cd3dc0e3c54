package bookingsRepo

import (
	"context"

	"samfit/models"
)

// BookingRepository persists booking records in the document store.
type BookingRepository interface {
	Create(ctx context.Context, booking models.Booking) (string, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	ListAll(ctx context.Context) ([]models.Booking, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error

	// Watch streams full snapshots of the bookings collection, newest first,
	// until ctx is cancelled. The error channel delivers at most one error,
	// after which both channels are closed.
	Watch(ctx context.Context) (<-chan []models.Booking, <-chan error)
}
