package booking

import (
	"context"
	"strings"
	"time"

	"samfit/models"
	"samfit/services/content"

	"go.uber.org/zap"
)

// generationTimeout bounds the best-effort text-generation call so a slow
// collaborator never delays the confirmation.
const generationTimeout = 8 * time.Second

// CreateBooking runs the booking submit flow.
//
// Step order is fixed: durable booking write, mail trigger, generated email
// preview. Only the first step can fail the flow; the other two degrade to
// logging. The returned confirmation mirrors the submitted request plus the
// new document ID, it is never read back from the store.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, req models.BookingRequest, ownerID string) (*models.BookingConfirmation, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if ownerID == "" {
		ownerID = models.OwnerAnonymous
	}

	record := models.Booking{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Phone:   strings.TrimSpace(req.Phone),
		Service: req.Service,
		Trainer: req.Trainer,
		Date:    req.Date,
		Time:    req.Time,
		OwnerID: ownerID,
		Status:  models.BookingStatusConfirmed,
	}

	bookingID, err := s.Repo.Create(ctx, record)
	if err != nil {
		classified := classifyWriteError(err)
		s.Logger.Error("CreateBooking: primary write failed",
			zap.String("kind", classified.Kind),
			zap.String("service", req.Service),
			zap.Error(err))
		return nil, classified
	}

	s.bestEffortMailIntent(ctx, req, bookingID)
	preview := s.bestEffortEmailPreview(ctx, req)

	return &models.BookingConfirmation{
		BookingID:    bookingID,
		Name:         record.Name,
		Email:        record.Email,
		Service:      record.Service,
		Trainer:      record.Trainer,
		Date:         record.Date,
		Time:         record.Time,
		Status:       record.Status,
		EmailPreview: preview,
	}, nil
}

// bestEffortMailIntent enqueues the confirmation mail trigger. Returns
// nothing: a failure here must never become fatal.
func (s *DefaultBookingService) bestEffortMailIntent(ctx context.Context, req models.BookingRequest, bookingID string) {
	html, err := renderMailBody(req)
	if err != nil {
		s.Logger.Warn("CreateBooking: mail body render failed", zap.String("bookingId", bookingID), zap.Error(err))
		return
	}
	intent := models.MailIntent{
		To: []string{strings.TrimSpace(req.Email)},
		Message: models.MailMessage{
			Subject: mailSubject(req),
			HTML:    html,
		},
	}
	if _, err := s.Mail.Enqueue(ctx, intent); err != nil {
		s.Logger.Warn("CreateBooking: mail intent write failed", zap.String("bookingId", bookingID), zap.Error(err))
	}
}

// bestEffortEmailPreview asks the text generator for personalized copy and
// falls back to the static template on any failure, timeout or empty result.
func (s *DefaultBookingService) bestEffortEmailPreview(ctx context.Context, req models.BookingRequest) string {
	fallback := fallbackEmailPreview(req)
	if s.Generator == nil {
		return fallback
	}

	genCtx, cancel := context.WithTimeout(ctx, generationTimeout)
	defer cancel()

	text, err := s.Generator.GenerateContent(genCtx, generationPrompt(req))
	if err != nil {
		s.Logger.Warn("CreateBooking: email copy generation failed, using fallback", zap.Error(err))
		return fallback
	}
	if strings.TrimSpace(text) == "" {
		return fallback
	}
	return text
}

// ListByOwner returns the caller's bookings, newest first.
func (s *DefaultBookingService) ListByOwner(ctx context.Context, ownerID string) ([]models.Booking, error) {
	return s.Repo.ListByOwner(ctx, ownerID)
}

func validateRequest(req models.BookingRequest) error {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Phone) == "" {
		return NewInvalidInputError("name, email and phone are required")
	}
	if !content.KnownService(req.Service) {
		return NewInvalidInputError("unknown service selection")
	}
	if !content.KnownTimeSlot(req.Time) {
		return NewInvalidInputError("unknown time slot")
	}
	if req.Date == "" {
		return NewInvalidInputError("date is required")
	}
	return nil
}
