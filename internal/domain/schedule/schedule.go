package schedule

import (
	"time"

	"github.com/salaoflow/salon-scheduler/internal/httperr"
	"github.com/salaoflow/salon-scheduler/internal/models"
)

// Weekdays are indexed 0=Monday .. 6=Sunday throughout the schedule grid.
const (
	Monday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

const (
	DefaultStart      = "09:00"
	DefaultEnd        = "18:00"
	DefaultLunchStart = "12:00"
	DefaultLunchEnd   = "13:00"
)

// WeekdayIndex maps a date to the schedule grid index (Go weeks start on
// Sunday, the grid starts on Monday).
func WeekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// ParseHM parses an "HH:MM" wall-clock value. Returns false on malformed
// or empty input.
func ParseHM(hm string) (time.Time, bool) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// AtDate materializes an "HH:MM" value onto a calendar date in the given
// location, yielding an absolute instant.
func AtDate(hm string, date time.Time, loc *time.Location) (time.Time, bool) {
	t, ok := ParseHM(hm)
	if !ok {
		return time.Time{}, false
	}
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0,
		loc,
	), true
}

// ValidateDay checks one weekday row against the grid invariants:
// weekday in range, start < end, lunch either fully absent or fully
// contained in the working window. A day off skips the time checks.
func ValidateDay(ws *models.WorkSchedule) error {
	if ws.Weekday < Monday || ws.Weekday > Sunday {
		return httperr.ErrBusiness("invalid_weekday")
	}

	if ws.DayOff {
		return nil
	}

	start, okS := ParseHM(ws.StartTime)
	end, okE := ParseHM(ws.EndTime)
	if !okS || !okE {
		return httperr.ErrBusiness("invalid_time_format")
	}
	if !start.Before(end) {
		return httperr.ErrBusiness("start_after_end")
	}

	hasLunchStart := ws.LunchStart != ""
	hasLunchEnd := ws.LunchEnd != ""
	if hasLunchStart != hasLunchEnd {
		return httperr.ErrBusiness("incomplete_lunch_window")
	}
	if !hasLunchStart {
		return nil
	}

	lunchStart, okLS := ParseHM(ws.LunchStart)
	lunchEnd, okLE := ParseHM(ws.LunchEnd)
	if !okLS || !okLE {
		return httperr.ErrBusiness("invalid_time_format")
	}
	if !lunchStart.Before(lunchEnd) {
		return httperr.ErrBusiness("lunch_start_after_end")
	}
	if lunchStart.Before(start) || lunchEnd.After(end) {
		return httperr.ErrBusiness("lunch_outside_working_hours")
	}

	return nil
}

// DefaultWeek builds the seven rows seeded when a professional account is
// created: 09:00-18:00 with a 12:00-13:00 lunch, Sunday off.
func DefaultWeek(professionalID uint) []models.WorkSchedule {
	week := make([]models.WorkSchedule, 0, 7)
	for day := Monday; day <= Sunday; day++ {
		week = append(week, models.WorkSchedule{
			ProfessionalID: professionalID,
			Weekday:        day,
			StartTime:      DefaultStart,
			EndTime:        DefaultEnd,
			LunchStart:     DefaultLunchStart,
			LunchEnd:       DefaultLunchEnd,
			DayOff:         day == Sunday,
		})
	}
	return week
}
