package usersRepo

import (
	"context"

	"samfit/models"
)

// UserRepository persists member profile documents, keyed by auth UID.
type UserRepository interface {
	GetByUID(ctx context.Context, uid string) (*models.UserProfile, error)

	// CreateIfAbsent writes the profile only when no document exists yet and
	// reports whether a create happened.
	CreateIfAbsent(ctx context.Context, uid string, profile models.UserProfile) (bool, error)

	Update(ctx context.Context, uid string, fields map[string]interface{}) error
	ListAll(ctx context.Context) ([]models.UserProfile, error)
	Delete(ctx context.Context, uid string) error

	// Watch streams full snapshots of the profile collection until ctx is
	// cancelled, same contract as BookingRepository.Watch.
	Watch(ctx context.Context) (<-chan []models.UserProfile, <-chan error)
}
