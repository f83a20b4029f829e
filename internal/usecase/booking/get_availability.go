package booking

import (
	"context"
	"time"

	domain "github.com/salaoflow/salon-scheduler/internal/domain/booking"
	"github.com/salaoflow/salon-scheduler/internal/domain/schedule"
	"github.com/salaoflow/salon-scheduler/internal/httperr"
	"github.com/salaoflow/salon-scheduler/internal/metrics"
	"github.com/salaoflow/salon-scheduler/internal/timezone"
)

type AvailabilityInput struct {
	ProfessionalID uint
	ServiceID      uint
	Date           string // "2006-01-02" in the professional's timezone
}

type AvailabilityResult struct {
	Slots []string `json:"slots"`

	// Reason is set when the list is empty because of the schedule
	// itself (no_schedule_configured or day_off), so callers can phrase
	// a precise message.
	Reason string `json:"reason,omitempty"`
}

type GetAvailability struct {
	repo    domain.Repository
	stepMin int
}

func NewGetAvailability(repo domain.Repository, stepMin int) *GetAvailability {
	return &GetAvailability{repo: repo, stepMin: stepMin}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in AvailabilityInput,
) (*AvailabilityResult, error) {

	professional, err := uc.repo.GetProfessional(ctx, in.ProfessionalID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(professional.Timezone)

	date, err := time.ParseInLocation("2006-01-02", in.Date, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	service, err := uc.repo.GetService(ctx, in.ProfessionalID, in.ServiceID)
	if err != nil {
		return nil, err
	}

	metrics.SlotQueries.Inc()

	day, err := uc.repo.GetWorkSchedule(ctx, in.ProfessionalID, schedule.WeekdayIndex(date))
	if err != nil {
		return nil, err
	}
	if day == nil {
		return &AvailabilityResult{Slots: []string{}, Reason: httperr.CodeNoScheduleConfigured}, nil
	}
	if day.DayOff {
		return &AvailabilityResult{Slots: []string{}, Reason: httperr.CodeDayOff}, nil
	}

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	dayEnd := dayStart.Add(24 * time.Hour)

	existing, err := uc.repo.ListBlockingBookings(ctx, in.ProfessionalID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	busy := make([]domain.Interval, 0, len(existing))
	for _, b := range existing {
		busy = append(busy, domain.Interval{Start: b.StartTime, End: b.EndTime})
	}

	slots := domain.AvailableSlots(domain.SlotRequest{
		Day:         day,
		Date:        date,
		DurationMin: service.DurationMin,
		StepMin:     uc.stepMin,
		Busy:        busy,
		Now:         timezone.NowIn(professional.Timezone),
		Loc:         loc,
	})
	if slots == nil {
		slots = []string{}
	}

	return &AvailabilityResult{Slots: slots}, nil
}
