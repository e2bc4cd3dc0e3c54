package database

import (
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// DecodeError reports a stored document that does not match its schema. It is
// classified separately from transport errors so callers never propagate
// half-decoded records into views.
type DecodeError struct {
	Collection string
	DocID      string
	Err        error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s/%s: %v", e.Collection, e.DocID, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// IsNotFound reports whether err is the store's not-found rejection.
func IsNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

// IsPermissionDenied reports whether err is the store's permission rejection.
func IsPermissionDenied(err error) bool {
	return status.Code(err) == codes.PermissionDenied
}

// IsUnavailable reports whether the store rejected the call as unavailable.
func IsUnavailable(err error) bool {
	return status.Code(err) == codes.Unavailable
}

// IsAlreadyExists reports whether a create hit an existing document.
func IsAlreadyExists(err error) bool {
	return status.Code(err) == codes.AlreadyExists
}
