package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salaoflow/salon-scheduler/internal/httperr"
)

func validInput() ValidationInput {
	return ValidationInput{
		Start:       at(10, 0),
		DurationMin: 45,
		HasService:  true,
		Day:         fullDay(),
		Loc:         testLoc,
	}
}

func TestValidate_DerivesEnd(t *testing.T) {
	end, err := Validate(validInput())
	require.NoError(t, err)
	assert.Equal(t, at(10, 45), end)
}

func TestValidate_ErrorKinds(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ValidationInput)
		code   string
	}{
		{
			name:   "missing service",
			mutate: func(in *ValidationInput) { in.HasService = false },
			code:   httperr.CodeIncompleteInput,
		},
		{
			name:   "missing start",
			mutate: func(in *ValidationInput) { in.Start = time.Time{} },
			code:   httperr.CodeIncompleteInput,
		},
		{
			name:   "no schedule row",
			mutate: func(in *ValidationInput) { in.Day = nil },
			code:   httperr.CodeNoScheduleConfigured,
		},
		{
			name:   "day off",
			mutate: func(in *ValidationInput) { in.Day.DayOff = true },
			code:   httperr.CodeDayOff,
		},
		{
			name:   "starts before opening",
			mutate: func(in *ValidationInput) { in.Start = at(8, 30) },
			code:   httperr.CodeOutsideWorkingHours,
		},
		{
			name:   "ends after closing",
			mutate: func(in *ValidationInput) { in.Start = at(17, 30) },
			code:   httperr.CodeOutsideWorkingHours,
		},
		{
			name:   "overlaps lunch",
			mutate: func(in *ValidationInput) { in.Start = at(11, 30) },
			code:   httperr.CodeLunchConflict,
		},
		{
			name: "overlaps existing booking",
			mutate: func(in *ValidationInput) {
				in.Existing = []BusyBooking{{ID: 7, Start: at(10, 30), End: at(11, 15)}}
			},
			code: httperr.CodeDoubleBooking,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			_, err := Validate(in)
			require.Error(t, err)
			assert.True(t, httperr.IsBusiness(err, tt.code), "expected %s, got %v", tt.code, err)
		})
	}
}

func TestValidate_EdgeFits(t *testing.T) {
	// Exactly filling the morning window and exactly filling up to
	// closing are both legal.
	in := validInput()
	in.Start = at(9, 0)
	in.DurationMin = 180
	_, err := Validate(in)
	assert.NoError(t, err)

	in = validInput()
	in.Start = at(17, 15)
	_, err = Validate(in)
	assert.NoError(t, err)
}

func TestValidate_BackToBackAllowed(t *testing.T) {
	in := validInput()
	in.Existing = []BusyBooking{
		{ID: 1, Start: at(9, 15), End: at(10, 0)},
		{ID: 2, Start: at(10, 45), End: at(11, 30)},
	}
	end, err := Validate(in)
	require.NoError(t, err)
	assert.Equal(t, at(10, 45), end)
}

func TestValidate_ExcludesSelfOnUpdate(t *testing.T) {
	in := validInput()
	in.ExcludeID = 7
	in.Existing = []BusyBooking{{ID: 7, Start: at(10, 0), End: at(10, 45)}}
	_, err := Validate(in)
	assert.NoError(t, err)
}

func TestValidate_CanceledBookingFreesSlot(t *testing.T) {
	// The caller only feeds blocking bookings in; a canceled one is
	// simply absent from Existing and the retry succeeds.
	in := validInput()
	in.Existing = []BusyBooking{{ID: 3, Start: at(10, 0), End: at(10, 45)}}
	_, err := Validate(in)
	require.True(t, httperr.IsBusiness(err, httperr.CodeDoubleBooking))

	in.Existing = nil
	_, err = Validate(in)
	assert.NoError(t, err)
}
