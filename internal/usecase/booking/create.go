package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/salaoflow/salon-scheduler/internal/audit"
	domain "github.com/salaoflow/salon-scheduler/internal/domain/booking"
	"github.com/salaoflow/salon-scheduler/internal/domain/schedule"
	"github.com/salaoflow/salon-scheduler/internal/httperr"
	"github.com/salaoflow/salon-scheduler/internal/metrics"
	"github.com/salaoflow/salon-scheduler/internal/models"
	"github.com/salaoflow/salon-scheduler/internal/notify"
	"github.com/salaoflow/salon-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	Actor domain.Actor

	ProfessionalID uint
	ServiceID      uint

	Date string // "2006-01-02"
	Time string // "15:04"
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo     domain.Repository
	notifier notify.Notifier
	audit    Auditor
}

func NewCreateBooking(
	repo domain.Repository,
	notifier notify.Notifier,
	auditDispatcher Auditor,
) *CreateBooking {
	return &CreateBooking{
		repo:     repo,
		notifier: notifier,
		audit:    auditDispatcher,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	if !in.Actor.IsClient() {
		return nil, httperr.ErrBusiness(httperr.CodePermissionDenied)
	}

	professional, err := uc.repo.GetProfessional(ctx, in.ProfessionalID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(professional.Timezone)

	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		loc,
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	service, err := uc.repo.GetService(ctx, in.ProfessionalID, in.ServiceID)
	if err != nil {
		return nil, err
	}

	day, err := uc.repo.GetWorkSchedule(ctx, in.ProfessionalID, schedule.WeekdayIndex(start))
	if err != nil {
		return nil, err
	}

	dayStart := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, loc)
	existing, err := uc.repo.ListBlockingBookings(ctx, in.ProfessionalID, dayStart, dayStart.Add(24*time.Hour))
	if err != nil {
		return nil, err
	}

	busy := make([]domain.BusyBooking, 0, len(existing))
	for _, b := range existing {
		busy = append(busy, domain.BusyBooking{ID: b.ID, Start: b.StartTime, End: b.EndTime})
	}

	end, err := domain.Validate(domain.ValidationInput{
		Start:       start,
		DurationMin: service.DurationMin,
		HasService:  true,
		Day:         day,
		Existing:    busy,
		Loc:         loc,
	})
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeDoubleBooking) {
			metrics.BookingConflicts.Inc()
		}
		return nil, err
	}

	serviceID := service.ID
	b := &models.Booking{
		Reference:      uuid.NewString(),
		ClientID:       in.Actor.UserID,
		ProfessionalID: in.ProfessionalID,
		ServiceID:      &serviceID,
		StartTime:      start,
		EndTime:        end,
		Status:         string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateBookingGuarded(ctx, b); err != nil {
		if httperr.IsBusiness(err, httperr.CodeDoubleBooking) {
			metrics.BookingConflicts.Inc()
		}
		return nil, err
	}

	metrics.BookingsCreated.Inc()

	uc.notifier.Notify(
		in.ProfessionalID,
		fmt.Sprintf("Novo agendamento de %s em %s.", service.Name, start.Format("02/01 15:04")),
		fmt.Sprintf("/bookings/%d", b.ID),
	)

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.Actor.UserID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
