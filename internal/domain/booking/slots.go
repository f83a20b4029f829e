package booking

import (
	"time"

	"github.com/salaoflow/salon-scheduler/internal/domain/schedule"
	"github.com/salaoflow/salon-scheduler/internal/models"
)

// Interval is a half-open [Start, End) time span.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps is the single overlap predicate used everywhere: strict
// half-open, so back-to-back intervals do not conflict.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

type SlotRequest struct {
	Day         *models.WorkSchedule
	Date        time.Time
	DurationMin int
	StepMin     int
	Busy        []Interval
	Now         time.Time
	Loc         *time.Location
}

// AvailableSlots computes the bookable start times for one professional
// on one date, as ordered "HH:MM" wall-clock values in the professional's
// timezone. A candidate survives when the whole slot fits inside the
// working window, does not overlap the lunch break or any busy interval,
// and (for today only) does not start in the past.
func AvailableSlots(req SlotRequest) []string {
	if req.Day == nil || req.Day.DayOff {
		return nil
	}
	if req.DurationMin <= 0 || req.StepMin <= 0 {
		return nil
	}

	dayStart, okO := schedule.AtDate(req.Day.StartTime, req.Date, req.Loc)
	dayEnd, okC := schedule.AtDate(req.Day.EndTime, req.Date, req.Loc)
	if !okO || !okC || !dayStart.Before(dayEnd) {
		return nil
	}

	var lunchStart, lunchEnd time.Time
	hasLunch := false
	if req.Day.LunchStart != "" && req.Day.LunchEnd != "" {
		ls, okLS := schedule.AtDate(req.Day.LunchStart, req.Date, req.Loc)
		le, okLE := schedule.AtDate(req.Day.LunchEnd, req.Date, req.Loc)
		if okLS && okLE {
			lunchStart, lunchEnd = ls, le
			hasLunch = true
		}
	}

	duration := time.Duration(req.DurationMin) * time.Minute
	step := time.Duration(req.StepMin) * time.Minute
	isToday := sameDay(req.Date, req.Now.In(req.Loc))

	var slots []string
	for cur := dayStart; !cur.Add(duration).After(dayEnd); cur = cur.Add(step) {
		slotEnd := cur.Add(duration)

		if hasLunch && Overlaps(cur, slotEnd, lunchStart, lunchEnd) {
			continue
		}
		if isToday && cur.Before(req.Now) {
			continue
		}
		if overlapsAny(cur, slotEnd, req.Busy) {
			continue
		}

		slots = append(slots, cur.Format("15:04"))
	}

	return slots
}

func overlapsAny(start, end time.Time, busy []Interval) bool {
	for _, b := range busy {
		if Overlaps(start, end, b.Start, b.End) {
			return true
		}
	}
	return false
}

func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
