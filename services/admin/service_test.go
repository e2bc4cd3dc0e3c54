package admin

import (
	"context"
	"errors"
	"testing"

	"samfit/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type statusChange struct {
	id     string
	status string
}

type recordingBookingRepo struct {
	bookings      []models.Booking
	statusChanges []statusChange
	deleted       []string
	updateErr     error
}

func (r *recordingBookingRepo) Create(ctx context.Context, b models.Booking) (string, error) {
	return "", errors.New("not implemented")
}

func (r *recordingBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	return nil, errors.New("not implemented")
}

func (r *recordingBookingRepo) ListAll(ctx context.Context) ([]models.Booking, error) {
	return r.bookings, nil
}

func (r *recordingBookingRepo) ListByOwner(ctx context.Context, ownerID string) ([]models.Booking, error) {
	return nil, nil
}

func (r *recordingBookingRepo) UpdateStatus(ctx context.Context, id, status string) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.statusChanges = append(r.statusChanges, statusChange{id: id, status: status})
	return nil
}

func (r *recordingBookingRepo) Delete(ctx context.Context, id string) error {
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *recordingBookingRepo) Watch(ctx context.Context) (<-chan []models.Booking, <-chan error) {
	data := make(chan []models.Booking, 1)
	errs := make(chan error)
	data <- r.bookings
	close(data)
	close(errs)
	return data, errs
}

type recordingUserRepo struct {
	users   []models.UserProfile
	deleted []string
}

func (r *recordingUserRepo) GetByUID(ctx context.Context, uid string) (*models.UserProfile, error) {
	return nil, errors.New("not implemented")
}

func (r *recordingUserRepo) CreateIfAbsent(ctx context.Context, uid string, p models.UserProfile) (bool, error) {
	return false, errors.New("not implemented")
}

func (r *recordingUserRepo) Update(ctx context.Context, uid string, fields map[string]interface{}) error {
	return errors.New("not implemented")
}

func (r *recordingUserRepo) ListAll(ctx context.Context) ([]models.UserProfile, error) {
	return r.users, nil
}

func (r *recordingUserRepo) Delete(ctx context.Context, uid string) error {
	r.deleted = append(r.deleted, uid)
	return nil
}

func (r *recordingUserRepo) Watch(ctx context.Context) (<-chan []models.UserProfile, <-chan error) {
	data := make(chan []models.UserProfile, 1)
	errs := make(chan error)
	data <- r.users
	close(data)
	close(errs)
	return data, errs
}

func newAdminService(b *recordingBookingRepo, u *recordingUserRepo) *DefaultAdminService {
	return &DefaultAdminService{Bookings: b, Users: u, Logger: zap.NewNop()}
}

func TestApproveBookingOnlyTouchesStatus(t *testing.T) {
	repo := &recordingBookingRepo{}
	svc := newAdminService(repo, &recordingUserRepo{})

	require.NoError(t, svc.ApproveBooking(context.Background(), "b1"))
	require.Len(t, repo.statusChanges, 1)
	assert.Equal(t, statusChange{id: "b1", status: models.BookingStatusConfirmed}, repo.statusChanges[0])
}

func TestCancelBooking(t *testing.T) {
	repo := &recordingBookingRepo{}
	svc := newAdminService(repo, &recordingUserRepo{})

	require.NoError(t, svc.CancelBooking(context.Background(), "b2"))
	require.Len(t, repo.statusChanges, 1)
	assert.Equal(t, models.BookingStatusCancelled, repo.statusChanges[0].status)
}

func TestUpdateStatusErrorPropagates(t *testing.T) {
	repo := &recordingBookingRepo{updateErr: errors.New("store down")}
	svc := newAdminService(repo, &recordingUserRepo{})

	assert.Error(t, svc.ApproveBooking(context.Background(), "b1"))
	assert.Error(t, svc.CancelBooking(context.Background(), "b1"))
}

func TestDeleteBooking(t *testing.T) {
	repo := &recordingBookingRepo{}
	svc := newAdminService(repo, &recordingUserRepo{})

	require.NoError(t, svc.DeleteBooking(context.Background(), "b3"))
	assert.Equal(t, []string{"b3"}, repo.deleted)
}

func TestDeleteUserProfileDoesNotCascade(t *testing.T) {
	users := &recordingUserRepo{}
	svc := newAdminService(&recordingBookingRepo{}, users)

	require.NoError(t, svc.DeleteUserProfile(context.Background(), "uid-9"))
	assert.Equal(t, []string{"uid-9"}, users.deleted)
}

func TestWatchBookingsDeliversSnapshot(t *testing.T) {
	repo := &recordingBookingRepo{bookings: []models.Booking{{ID: "b1"}, {ID: "b2"}}}
	svc := newAdminService(repo, &recordingUserRepo{})

	data, errs := svc.WatchBookings(context.Background())
	snapshot, ok := <-data
	require.True(t, ok)
	assert.Len(t, snapshot, 2)

	_, open := <-errs
	assert.False(t, open)
}

func TestListUsers(t *testing.T) {
	users := &recordingUserRepo{users: []models.UserProfile{{UID: "u1"}}}
	svc := newAdminService(&recordingBookingRepo{}, users)

	got, err := svc.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "u1", got[0].UID)
}
