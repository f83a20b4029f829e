package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salaoflow/salon-scheduler/internal/httperr"
	"github.com/salaoflow/salon-scheduler/internal/models"
)

func scheduledBooking(start time.Time) *models.Booking {
	return &models.Booking{
		ID:             10,
		ClientID:       1,
		ProfessionalID: 2,
		StartTime:      start,
		EndTime:        start.Add(45 * time.Minute),
		Status:         string(StatusScheduled),
	}
}

func TestCanTransition(t *testing.T) {
	for _, to := range []Status{StatusCompleted, StatusCanceled, StatusNoShow} {
		assert.NoError(t, CanTransition(StatusScheduled, to))
	}

	// Terminal states are final.
	for _, from := range []Status{StatusCompleted, StatusCanceled, StatusNoShow} {
		for _, to := range []Status{StatusScheduled, StatusCompleted, StatusCanceled, StatusNoShow} {
			err := CanTransition(from, to)
			require.Error(t, err)
			assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidTransition))
		}
	}

	// No transition back to scheduled.
	err := CanTransition(StatusScheduled, StatusScheduled)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidTransition))
}

func TestAuthorizeTransition_Professional(t *testing.T) {
	now := time.Date(2026, 9, 7, 8, 0, 0, 0, testLoc)
	b := scheduledBooking(now.Add(30 * time.Minute))

	assigned := Actor{UserID: 2, Role: models.RoleProfessional}
	for _, to := range []Status{StatusCompleted, StatusCanceled, StatusNoShow} {
		assert.NoError(t, AuthorizeTransition(b, assigned, to, now, 120))
	}

	other := Actor{UserID: 99, Role: models.RoleProfessional}
	err := AuthorizeTransition(b, other, StatusCompleted, now, 120)
	assert.True(t, httperr.IsBusiness(err, httperr.CodePermissionDenied))
}

func TestAuthorizeTransition_ClientCancelNotice(t *testing.T) {
	now := time.Date(2026, 9, 7, 8, 0, 0, 0, testLoc)
	client := Actor{UserID: 1, Role: models.RoleClient}

	// 3 hours of notice with a 2-hour minimum: allowed.
	b := scheduledBooking(now.Add(3 * time.Hour))
	assert.NoError(t, AuthorizeTransition(b, client, StatusCanceled, now, 120))

	// 1 hour of notice: refused.
	b = scheduledBooking(now.Add(1 * time.Hour))
	err := AuthorizeTransition(b, client, StatusCanceled, now, 120)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidTransition))

	// Exactly at the limit counts as too late.
	b = scheduledBooking(now.Add(2 * time.Hour))
	err = AuthorizeTransition(b, client, StatusCanceled, now, 120)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidTransition))
}

func TestAuthorizeTransition_ClientLimits(t *testing.T) {
	now := time.Date(2026, 9, 7, 8, 0, 0, 0, testLoc)
	b := scheduledBooking(now.Add(5 * time.Hour))

	// A client may not complete or no-show anything.
	client := Actor{UserID: 1, Role: models.RoleClient}
	for _, to := range []Status{StatusCompleted, StatusNoShow} {
		err := AuthorizeTransition(b, client, to, now, 120)
		assert.True(t, httperr.IsBusiness(err, httperr.CodePermissionDenied))
	}

	// Nor touch someone else's booking.
	stranger := Actor{UserID: 42, Role: models.RoleClient}
	err := AuthorizeTransition(b, stranger, StatusCanceled, now, 120)
	assert.True(t, httperr.IsBusiness(err, httperr.CodePermissionDenied))
}

func TestApply_Timestamps(t *testing.T) {
	now := time.Date(2026, 9, 7, 8, 0, 0, 0, testLoc)

	b := scheduledBooking(now.Add(3 * time.Hour))
	Apply(b, StatusCanceled, now)
	assert.Equal(t, string(StatusCanceled), b.Status)
	require.NotNil(t, b.CanceledAt)
	assert.Equal(t, now, *b.CanceledAt)
	assert.Nil(t, b.CompletedAt)

	b = scheduledBooking(now.Add(3 * time.Hour))
	Apply(b, StatusCompleted, now)
	require.NotNil(t, b.CompletedAt)
	assert.Nil(t, b.CanceledAt)

	b = scheduledBooking(now.Add(3 * time.Hour))
	Apply(b, StatusNoShow, now)
	assert.Equal(t, string(StatusNoShow), b.Status)
	assert.Nil(t, b.CanceledAt)
	assert.Nil(t, b.CompletedAt)
}
