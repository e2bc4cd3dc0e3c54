package booking

import (
	"context"
	"errors"
	"strings"
	"testing"

	"samfit/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type fakeBookingRepo struct {
	created   []models.Booking
	createErr error
	nextID    string
	byOwner   map[string][]models.Booking
}

func (f *fakeBookingRepo) Create(ctx context.Context, b models.Booking) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.created = append(f.created, b)
	if f.nextID == "" {
		return "booking-1", nil
	}
	return f.nextID, nil
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeBookingRepo) ListAll(ctx context.Context) ([]models.Booking, error) {
	return f.created, nil
}

func (f *fakeBookingRepo) ListByOwner(ctx context.Context, ownerID string) ([]models.Booking, error) {
	return f.byOwner[ownerID], nil
}

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, id, status string) error { return nil }
func (f *fakeBookingRepo) Delete(ctx context.Context, id string) error               { return nil }

func (f *fakeBookingRepo) Watch(ctx context.Context) (<-chan []models.Booking, <-chan error) {
	data := make(chan []models.Booking)
	errs := make(chan error)
	close(data)
	close(errs)
	return data, errs
}

type fakeMailRepo struct {
	enqueued   []models.MailIntent
	enqueueErr error
}

func (f *fakeMailRepo) Enqueue(ctx context.Context, intent models.MailIntent) (string, error) {
	if f.enqueueErr != nil {
		return "", f.enqueueErr
	}
	f.enqueued = append(f.enqueued, intent)
	return "mail-1", nil
}

type fakeGenerator struct {
	text string
	err  error
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	return f.text, f.err
}

func validBookingRequest() models.BookingRequest {
	return models.BookingRequest{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Phone:   "555-0100",
		Service: "Personal Training",
		Trainer: "",
		Date:    "2026-09-12",
		Time:    "08:00",
	}
}

func newTestService(repo *fakeBookingRepo, mail *fakeMailRepo, gen *fakeGenerator) *DefaultBookingService {
	svc := &DefaultBookingService{
		Repo:   repo,
		Mail:   mail,
		Logger: zap.NewNop(),
	}
	if gen != nil {
		svc.Generator = gen
	}
	return svc
}

func TestCreateBookingHappyPath(t *testing.T) {
	repo := &fakeBookingRepo{nextID: "abc123"}
	mail := &fakeMailRepo{}
	svc := newTestService(repo, mail, nil)

	conf, err := svc.CreateBooking(context.Background(), validBookingRequest(), "uid-42")
	require.NoError(t, err)
	require.NotNil(t, conf)

	assert.Equal(t, "abc123", conf.BookingID)
	assert.Equal(t, "Jane Doe", conf.Name)
	assert.Equal(t, models.BookingStatusConfirmed, conf.Status)

	require.Len(t, repo.created, 1)
	assert.Equal(t, "uid-42", repo.created[0].OwnerID)
	assert.Equal(t, models.BookingStatusConfirmed, repo.created[0].Status)

	require.Len(t, mail.enqueued, 1)
	assert.Equal(t, []string{"jane@example.com"}, mail.enqueued[0].To)
	assert.Equal(t, "Booking Confirmation: Personal Training", mail.enqueued[0].Message.Subject)
	assert.Contains(t, mail.enqueued[0].Message.HTML, "Jane Doe")
}

func TestCreateBookingAnonymousOwner(t *testing.T) {
	repo := &fakeBookingRepo{}
	svc := newTestService(repo, &fakeMailRepo{}, nil)

	_, err := svc.CreateBooking(context.Background(), validBookingRequest(), "")
	require.NoError(t, err)
	require.Len(t, repo.created, 1)
	assert.Equal(t, models.OwnerAnonymous, repo.created[0].OwnerID)
}

func TestCreateBookingPrimaryWriteFatal(t *testing.T) {
	repo := &fakeBookingRepo{createErr: status.Error(codes.PermissionDenied, "denied")}
	mail := &fakeMailRepo{}
	svc := newTestService(repo, mail, nil)

	conf, err := svc.CreateBooking(context.Background(), validBookingRequest(), "uid-42")
	require.Error(t, err)
	assert.Nil(t, conf)

	be, ok := AsBookingError(err)
	require.True(t, ok)
	assert.Equal(t, KindPermissionDenied, be.Kind)

	// No mail intent after a failed primary write.
	assert.Empty(t, mail.enqueued)
}

func TestCreateBookingUnavailableWrite(t *testing.T) {
	repo := &fakeBookingRepo{createErr: status.Error(codes.Unavailable, "offline")}
	svc := newTestService(repo, &fakeMailRepo{}, nil)

	_, err := svc.CreateBooking(context.Background(), validBookingRequest(), "")
	be, ok := AsBookingError(err)
	require.True(t, ok)
	assert.Equal(t, KindUnavailable, be.Kind)
	assert.Contains(t, be.UserMessage(), "temporarily unavailable")
}

func TestCreateBookingMailFailureIsSwallowed(t *testing.T) {
	repo := &fakeBookingRepo{}
	mail := &fakeMailRepo{enqueueErr: errors.New("mail collection rejected write")}
	svc := newTestService(repo, mail, nil)

	conf, err := svc.CreateBooking(context.Background(), validBookingRequest(), "uid-42")
	require.NoError(t, err)
	require.NotNil(t, conf)
	assert.Equal(t, models.BookingStatusConfirmed, conf.Status)
	assert.NotEmpty(t, conf.EmailPreview)
}

func TestCreateBookingGeneratorFailureFallsBack(t *testing.T) {
	repo := &fakeBookingRepo{}
	gen := &fakeGenerator{err: errors.New("model unavailable")}
	svc := newTestService(repo, &fakeMailRepo{}, gen)

	conf, err := svc.CreateBooking(context.Background(), validBookingRequest(), "uid-42")
	require.NoError(t, err)

	assert.Contains(t, conf.EmailPreview, "Personal Training")
	assert.Contains(t, conf.EmailPreview, "2026-09-12")
	assert.Contains(t, conf.EmailPreview, "08:00")
	assert.Contains(t, conf.EmailPreview, "Jane Doe")
}

func TestCreateBookingGeneratorEmptyFallsBack(t *testing.T) {
	repo := &fakeBookingRepo{}
	gen := &fakeGenerator{text: "   \n"}
	svc := newTestService(repo, &fakeMailRepo{}, gen)

	conf, err := svc.CreateBooking(context.Background(), validBookingRequest(), "")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(conf.EmailPreview, "Subject: Booking Confirmation - "))
}

func TestCreateBookingGeneratedPreviewUsed(t *testing.T) {
	repo := &fakeBookingRepo{}
	gen := &fakeGenerator{text: "Subject: See you soon, Jane!\n\nBring a towel."}
	svc := newTestService(repo, &fakeMailRepo{}, gen)

	conf, err := svc.CreateBooking(context.Background(), validBookingRequest(), "")
	require.NoError(t, err)
	assert.Equal(t, gen.text, conf.EmailPreview)
}

func TestCreateBookingValidation(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{}, &fakeMailRepo{}, nil)
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*models.BookingRequest)
	}{
		{"missing name", func(r *models.BookingRequest) { r.Name = "  " }},
		{"missing email", func(r *models.BookingRequest) { r.Email = "" }},
		{"missing phone", func(r *models.BookingRequest) { r.Phone = "" }},
		{"unknown service", func(r *models.BookingRequest) { r.Service = "Underwater Basket Weaving" }},
		{"unknown time slot", func(r *models.BookingRequest) { r.Time = "03:30" }},
		{"missing date", func(r *models.BookingRequest) { r.Date = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validBookingRequest()
			tc.mutate(&req)
			_, err := svc.CreateBooking(ctx, req, "")
			be, ok := AsBookingError(err)
			require.True(t, ok)
			assert.Equal(t, KindInvalidInput, be.Kind)
		})
	}
}

func TestListByOwner(t *testing.T) {
	repo := &fakeBookingRepo{byOwner: map[string][]models.Booking{
		"uid-42": {{ID: "b1", OwnerID: "uid-42"}},
	}}
	svc := newTestService(repo, &fakeMailRepo{}, nil)

	got, err := svc.ListByOwner(context.Background(), "uid-42")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "b1", got[0].ID)
}
