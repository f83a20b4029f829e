package booking

import (
	"time"

	"github.com/salaoflow/salon-scheduler/internal/domain/schedule"
	"github.com/salaoflow/salon-scheduler/internal/httperr"
	"github.com/salaoflow/salon-scheduler/internal/models"
)

// BusyBooking is an existing blocking booking of the same professional,
// reduced to what conflict detection needs.
type BusyBooking struct {
	ID    uint
	Start time.Time
	End   time.Time
}

type ValidationInput struct {
	Start       time.Time
	DurationMin int
	HasService  bool

	// Day is the professional's schedule row for Start's weekday, nil
	// when never configured.
	Day *models.WorkSchedule

	// Existing holds scheduled and completed bookings of the same
	// professional around Start. The booking being updated is excluded
	// by ExcludeID.
	Existing  []BusyBooking
	ExcludeID uint

	Loc *time.Location
}

// Validate is the single source of truth for conflict-freedom, run before
// every persist of a booking. It derives the end time and re-checks the
// working window, the lunch break and pairwise overlap; the availability
// slot list is only advisory and is never trusted here.
func Validate(in ValidationInput) (time.Time, error) {
	if !in.HasService || in.DurationMin <= 0 || in.Start.IsZero() {
		return time.Time{}, httperr.ErrBusiness(httperr.CodeIncompleteInput)
	}

	start := in.Start.In(in.Loc)
	end := start.Add(time.Duration(in.DurationMin) * time.Minute)

	if in.Day == nil {
		return time.Time{}, httperr.ErrBusiness(httperr.CodeNoScheduleConfigured)
	}
	if in.Day.DayOff {
		return time.Time{}, httperr.ErrBusiness(httperr.CodeDayOff)
	}

	workStart, okO := schedule.AtDate(in.Day.StartTime, start, in.Loc)
	workEnd, okC := schedule.AtDate(in.Day.EndTime, start, in.Loc)
	if !okO || !okC {
		return time.Time{}, httperr.ErrBusiness(httperr.CodeNoScheduleConfigured)
	}
	if start.Before(workStart) || end.After(workEnd) {
		return time.Time{}, httperr.ErrBusiness(httperr.CodeOutsideWorkingHours)
	}

	if in.Day.LunchStart != "" && in.Day.LunchEnd != "" {
		lunchStart, okLS := schedule.AtDate(in.Day.LunchStart, start, in.Loc)
		lunchEnd, okLE := schedule.AtDate(in.Day.LunchEnd, start, in.Loc)
		if okLS && okLE && Overlaps(start, end, lunchStart, lunchEnd) {
			return time.Time{}, httperr.ErrBusiness(httperr.CodeLunchConflict)
		}
	}

	for _, b := range in.Existing {
		if b.ID == in.ExcludeID {
			continue
		}
		if Overlaps(start, end, b.Start, b.End) {
			return time.Time{}, httperr.ErrBusiness(httperr.CodeDoubleBooking)
		}
	}

	return end, nil
}
