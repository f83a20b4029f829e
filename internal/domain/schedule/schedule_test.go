package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salaoflow/salon-scheduler/internal/httperr"
	"github.com/salaoflow/salon-scheduler/internal/models"
)

func TestWeekdayIndex(t *testing.T) {
	// 2026-08-24 is a Monday.
	monday := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 7; i++ {
		assert.Equal(t, i, WeekdayIndex(monday.AddDate(0, 0, i)))
	}
}

func TestAtDate(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	date := time.Date(2026, 8, 24, 0, 0, 0, 0, loc)

	got, ok := AtDate("09:30", date, loc)
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, 8, 24, 9, 30, 0, 0, loc), got)

	_, ok = AtDate("", date, loc)
	assert.False(t, ok)

	_, ok = AtDate("25:00", date, loc)
	assert.False(t, ok)
}

func TestValidateDay(t *testing.T) {
	tests := []struct {
		name string
		day  models.WorkSchedule
		code string
	}{
		{
			name: "valid full day",
			day:  models.WorkSchedule{Weekday: Monday, StartTime: "09:00", EndTime: "18:00", LunchStart: "12:00", LunchEnd: "13:00"},
		},
		{
			name: "valid without lunch",
			day:  models.WorkSchedule{Weekday: Tuesday, StartTime: "08:00", EndTime: "14:00"},
		},
		{
			name: "day off skips time checks",
			day:  models.WorkSchedule{Weekday: Sunday, DayOff: true},
		},
		{
			name: "weekday out of range",
			day:  models.WorkSchedule{Weekday: 7, StartTime: "09:00", EndTime: "18:00"},
			code: "invalid_weekday",
		},
		{
			name: "start after end",
			day:  models.WorkSchedule{Weekday: Monday, StartTime: "18:00", EndTime: "09:00"},
			code: "start_after_end",
		},
		{
			name: "half-configured lunch",
			day:  models.WorkSchedule{Weekday: Monday, StartTime: "09:00", EndTime: "18:00", LunchStart: "12:00"},
			code: "incomplete_lunch_window",
		},
		{
			name: "lunch outside working window",
			day:  models.WorkSchedule{Weekday: Monday, StartTime: "09:00", EndTime: "12:30", LunchStart: "12:00", LunchEnd: "13:00"},
			code: "lunch_outside_working_hours",
		},
		{
			name: "inverted lunch",
			day:  models.WorkSchedule{Weekday: Monday, StartTime: "09:00", EndTime: "18:00", LunchStart: "13:00", LunchEnd: "12:00"},
			code: "lunch_start_after_end",
		},
		{
			name: "garbage time",
			day:  models.WorkSchedule{Weekday: Monday, StartTime: "nine", EndTime: "18:00"},
			code: "invalid_time_format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDay(&tt.day)
			if tt.code == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, httperr.IsBusiness(err, tt.code), "expected code %s, got %v", tt.code, err)
		})
	}
}

func TestDefaultWeek(t *testing.T) {
	week := DefaultWeek(42)
	require.Len(t, week, 7)

	for i, day := range week {
		assert.Equal(t, uint(42), day.ProfessionalID)
		assert.Equal(t, i, day.Weekday)
		assert.Equal(t, "09:00", day.StartTime)
		assert.Equal(t, "18:00", day.EndTime)
		assert.Equal(t, "12:00", day.LunchStart)
		assert.Equal(t, "13:00", day.LunchEnd)
		assert.NoError(t, ValidateDay(&week[i]))
	}

	assert.False(t, week[Saturday].DayOff)
	assert.True(t, week[Sunday].DayOff)
}
