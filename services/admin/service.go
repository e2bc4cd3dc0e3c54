package admin

import (
	"context"

	"samfit/models"

	"go.uber.org/zap"
)

// ListBookings returns every booking, newest first.
func (s *DefaultAdminService) ListBookings(ctx context.Context) ([]models.Booking, error) {
	return s.Bookings.ListAll(ctx)
}

// ApproveBooking sets status to confirmed. Only the status field changes.
func (s *DefaultAdminService) ApproveBooking(ctx context.Context, id string) error {
	if err := s.Bookings.UpdateStatus(ctx, id, models.BookingStatusConfirmed); err != nil {
		s.Logger.Error("ApproveBooking failed", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// CancelBooking sets status to cancelled.
func (s *DefaultAdminService) CancelBooking(ctx context.Context, id string) error {
	if err := s.Bookings.UpdateStatus(ctx, id, models.BookingStatusCancelled); err != nil {
		s.Logger.Error("CancelBooking failed", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// DeleteBooking removes the record.
func (s *DefaultAdminService) DeleteBooking(ctx context.Context, id string) error {
	if err := s.Bookings.Delete(ctx, id); err != nil {
		s.Logger.Error("DeleteBooking failed", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ListUsers returns every member profile.
func (s *DefaultAdminService) ListUsers(ctx context.Context) ([]models.UserProfile, error) {
	return s.Users.ListAll(ctx)
}

// DeleteUserProfile removes the profile document only.
func (s *DefaultAdminService) DeleteUserProfile(ctx context.Context, uid string) error {
	if err := s.Users.Delete(ctx, uid); err != nil {
		s.Logger.Error("DeleteUserProfile failed", zap.String("uid", uid), zap.Error(err))
		return err
	}
	return nil
}

// WatchBookings streams booking snapshots for the console's live table.
func (s *DefaultAdminService) WatchBookings(ctx context.Context) (<-chan []models.Booking, <-chan error) {
	return s.Bookings.Watch(ctx)
}

// WatchUsers streams profile snapshots.
func (s *DefaultAdminService) WatchUsers(ctx context.Context) (<-chan []models.UserProfile, <-chan error) {
	return s.Users.Watch(ctx)
}
