package user

import (
	"context"
	"fmt"
	"strings"

	"samfit/models"

	"go.uber.org/zap"
)

const photoFolder = "profile_photos"

// photoPublicID is deterministic per member so a new upload replaces the old
// asset instead of orphaning it.
func photoPublicID(uid string) string {
	return fmt.Sprintf("%s/%s", photoFolder, uid)
}

// SyncProfile creates the profile document if it does not exist yet and
// returns the current state either way. New profiles get the member role.
func (s *DefaultUserService) SyncProfile(ctx context.Context, uid, name, email, photoURL string) (*models.UserProfile, error) {
	profile := models.UserProfile{
		Name:     strings.TrimSpace(name),
		Email:    strings.TrimSpace(email),
		Phone:    "",
		Program:  "",
		PhotoURL: photoURL,
		Role:     models.RoleMember,
	}
	created, err := s.Repo.CreateIfAbsent(ctx, uid, profile)
	if err != nil {
		return nil, fmt.Errorf("failed to sync profile: %w", err)
	}
	if created {
		s.Logger.Info("SyncProfile: created profile", zap.String("uid", uid))
	}
	return s.Repo.GetByUID(ctx, uid)
}

// GetProfile returns the member's profile, lazily creating it from the
// identity record when absent.
func (s *DefaultUserService) GetProfile(ctx context.Context, uid string) (*models.UserProfile, error) {
	profile, err := s.Repo.GetByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if profile != nil {
		return profile, nil
	}
	email, err := s.Identity.GetUserEmail(ctx, uid)
	if err != nil {
		s.Logger.Warn("GetProfile: identity lookup failed", zap.String("uid", uid), zap.Error(err))
		email = ""
	}
	return s.SyncProfile(ctx, uid, "", email, "")
}

// UpdateProfile merges the provided fields into the profile document and
// mirrors name/photo changes to the identity provider's display profile.
func (s *DefaultUserService) UpdateProfile(ctx context.Context, uid string, update models.UserProfileUpdate) (*models.UserProfile, error) {
	fields := map[string]interface{}{}
	if update.Name != nil {
		fields["name"] = strings.TrimSpace(*update.Name)
	}
	if update.Phone != nil {
		fields["phone"] = strings.TrimSpace(*update.Phone)
	}
	if update.Program != nil {
		fields["program"] = *update.Program
	}
	if update.PhotoURL != nil {
		fields["photoURL"] = *update.PhotoURL
	}
	if len(fields) == 0 {
		return s.Repo.GetByUID(ctx, uid)
	}

	if err := s.Repo.Update(ctx, uid, fields); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	if update.Name != nil || update.PhotoURL != nil {
		name := ""
		photo := ""
		if update.Name != nil {
			name = *update.Name
		}
		if update.PhotoURL != nil {
			photo = *update.PhotoURL
		}
		if err := s.Identity.UpdateDisplayProfile(ctx, uid, name, photo); err != nil {
			// Display profile mirror is cosmetic; the document is the source
			// of truth for the portal.
			s.Logger.Warn("UpdateProfile: display profile mirror failed", zap.String("uid", uid), zap.Error(err))
		}
	}

	return s.Repo.GetByUID(ctx, uid)
}

// UploadPhoto pushes a profile photo to blob storage and stores the resulting
// URL on the profile.
func (s *DefaultUserService) UploadPhoto(ctx context.Context, uid, localFilePath string) (string, error) {
	url, err := s.Storage.UploadFile(ctx, localFilePath, photoPublicID(uid))
	if err != nil {
		return "", fmt.Errorf("failed to upload photo: %w", err)
	}
	if _, err := s.UpdateProfile(ctx, uid, models.UserProfileUpdate{PhotoURL: &url}); err != nil {
		return "", err
	}
	return url, nil
}

// DeleteAccount removes the profile document, the stored profile photo and
// the identity record.
func (s *DefaultUserService) DeleteAccount(ctx context.Context, uid string) error {
	if err := s.Repo.Delete(ctx, uid); err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	if err := s.Storage.DeleteFile(ctx, photoPublicID(uid)); err != nil {
		// The member may never have uploaded one.
		s.Logger.Warn("DeleteAccount: photo cleanup failed", zap.String("uid", uid), zap.Error(err))
	}
	if err := s.Identity.DeleteUser(ctx, uid); err != nil {
		return fmt.Errorf("failed to delete identity record: %w", err)
	}
	s.Logger.Info("DeleteAccount: account removed", zap.String("uid", uid))
	return nil
}
