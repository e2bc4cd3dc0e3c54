package user

import (
	"context"

	usersRepo "samfit/database/repository/users"
	"samfit/models"
	"samfit/services/storage"

	"go.uber.org/zap"
)

// UserService manages member profiles on top of the identity provider.
type UserService interface {
	// SyncProfile lazily creates the profile document on first sign-in. Both
	// the password and the OAuth sign-in paths converge here.
	SyncProfile(ctx context.Context, uid, name, email, photoURL string) (*models.UserProfile, error)

	GetProfile(ctx context.Context, uid string) (*models.UserProfile, error)
	UpdateProfile(ctx context.Context, uid string, update models.UserProfileUpdate) (*models.UserProfile, error)
	UploadPhoto(ctx context.Context, uid, localFilePath string) (string, error)
	DeleteAccount(ctx context.Context, uid string) error
}

// Identity is the slice of the identity provider the user service needs.
// Satisfied by the Firebase Auth admin client via firebaseIdentity.
type Identity interface {
	UpdateDisplayProfile(ctx context.Context, uid, name, photoURL string) error
	DeleteUser(ctx context.Context, uid string) error
	GetUserEmail(ctx context.Context, uid string) (string, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo     usersRepo.UserRepository
	Identity Identity
	Storage  storage.StorageService
	Logger   *zap.Logger
}
