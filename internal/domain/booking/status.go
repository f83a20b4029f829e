package booking

import (
	"time"

	"github.com/salaoflow/salon-scheduler/internal/httperr"
	"github.com/salaoflow/salon-scheduler/internal/models"
)

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusCanceled  Status = "canceled"
	StatusNoShow    Status = "no_show"
)

func (s Status) Valid() bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCanceled, StatusNoShow:
		return true
	}
	return false
}

// Terminal states accept no further transitions.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCanceled || s == StatusNoShow
}

func InitialStatus() Status {
	return StatusScheduled
}

// CanTransition allows only scheduled -> {completed, canceled, no_show}.
func CanTransition(from, to Status) error {
	if from != StatusScheduled || !to.Terminal() {
		return httperr.ErrBusiness(httperr.CodeInvalidTransition)
	}
	return nil
}

// AuthorizeTransition gates a status change by actor role:
//   - the assigned professional may set any terminal status;
//   - the client may only cancel their own booking, and only while more
//     than noticeMin minutes remain before the start time.
func AuthorizeTransition(b *models.Booking, actor Actor, to Status, now time.Time, noticeMin int) error {
	switch {
	case actor.IsProfessional():
		if b.ProfessionalID != actor.UserID {
			return httperr.ErrBusiness(httperr.CodePermissionDenied)
		}
	case actor.IsClient():
		if b.ClientID != actor.UserID {
			return httperr.ErrBusiness(httperr.CodePermissionDenied)
		}
		if to != StatusCanceled {
			return httperr.ErrBusiness(httperr.CodePermissionDenied)
		}
		if b.StartTime.Sub(now) <= time.Duration(noticeMin)*time.Minute {
			return httperr.ErrBusiness(httperr.CodeInvalidTransition)
		}
	default:
		return httperr.ErrBusiness(httperr.CodePermissionDenied)
	}

	return CanTransition(Status(b.Status), to)
}

// Apply records the transition on the booking. Callers must have passed
// AuthorizeTransition first.
func Apply(b *models.Booking, to Status, now time.Time) {
	b.Status = string(to)
	switch to {
	case StatusCanceled:
		b.CanceledAt = &now
	case StatusCompleted:
		b.CompletedAt = &now
	}
}
