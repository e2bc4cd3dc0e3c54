package booking

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestClassifyWriteError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		kind string
	}{
		{"permission denied", status.Error(codes.PermissionDenied, "rules rejected"), KindPermissionDenied},
		{"unavailable", status.Error(codes.Unavailable, "backend offline"), KindUnavailable},
		{"deadline", status.Error(codes.DeadlineExceeded, "slow"), KindInternal},
		{"plain error", errors.New("boom"), KindInternal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			be := classifyWriteError(tc.err)
			assert.Equal(t, tc.kind, be.Kind)
			assert.NotEmpty(t, be.UserMessage())
			assert.ErrorIs(t, be, tc.err)
		})
	}
}

func TestAsBookingError(t *testing.T) {
	be, ok := AsBookingError(NewDuplicateSubmitError())
	require.True(t, ok)
	assert.Equal(t, KindDuplicate, be.Kind)

	wrapped := fmt.Errorf("submit flow: %w", NewInvalidInputError("date is required"))
	be, ok = AsBookingError(wrapped)
	require.True(t, ok)
	assert.Equal(t, KindInvalidInput, be.Kind)

	_, ok = AsBookingError(errors.New("unclassified"))
	assert.False(t, ok)
}
