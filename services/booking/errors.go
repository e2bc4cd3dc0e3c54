package booking

import (
	"errors"
	"fmt"

	"samfit/database"
)

// Error kinds for the booking flow. Only the primary write produces one of
// these; best-effort steps log and swallow their failures.
const (
	KindInvalidInput     = "invalidInput"
	KindPermissionDenied = "permissionDenied"
	KindUnavailable      = "unavailable"
	KindDuplicate        = "duplicateSubmit"
	KindInternal         = "internal"
)

// BookingError is a classified, user-presentable booking failure.
type BookingError struct {
	Kind    string
	Message string
	Err     error
}

func (e *BookingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *BookingError) Unwrap() error { return e.Err }

// UserMessage is the text shown next to the booking form.
func (e *BookingError) UserMessage() string { return e.Message }

func NewInvalidInputError(msg string) error {
	return &BookingError{Kind: KindInvalidInput, Message: msg}
}

func NewDuplicateSubmitError() error {
	return &BookingError{Kind: KindDuplicate, Message: "A booking with these details is already being processed."}
}

// classifyWriteError maps a document-store rejection of the primary write to
// a user-facing booking error.
func classifyWriteError(err error) *BookingError {
	switch {
	case database.IsPermissionDenied(err):
		return &BookingError{
			Kind:    KindPermissionDenied,
			Message: "You don't have permission to book. Please sign in and try again.",
			Err:     err,
		}
	case database.IsUnavailable(err):
		return &BookingError{
			Kind:    KindUnavailable,
			Message: "The booking service is temporarily unavailable. Please check your connection and try again.",
			Err:     err,
		}
	default:
		return &BookingError{
			Kind:    KindInternal,
			Message: "Failed to save your booking. Please try again.",
			Err:     err,
		}
	}
}

// AsBookingError unwraps err into a *BookingError when possible.
func AsBookingError(err error) (*BookingError, bool) {
	var be *BookingError
	if errors.As(err, &be) {
		return be, true
	}
	return nil, false
}
