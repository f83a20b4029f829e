package httperr

import "errors"

// Business error codes surfaced by the booking core. Callers match on the
// code to render a precise message.
const (
	CodeIncompleteInput      = "incomplete_input"
	CodeNoScheduleConfigured = "no_schedule_configured"
	CodeDayOff               = "day_off"
	CodeOutsideWorkingHours  = "outside_working_hours"
	CodeLunchConflict        = "lunch_conflict"
	CodeDoubleBooking        = "double_booking"
	CodePermissionDenied     = "permission_denied"
	CodeInvalidTransition    = "invalid_transition"
	CodeServiceNotFound      = "service_not_found"
	CodeProfessionalNotFound = "professional_not_found"
	CodeBookingNotFound      = "booking_not_found"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// BusinessCode extracts the code from a business error, or "" otherwise.
func BusinessCode(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}
