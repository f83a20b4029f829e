package booking

import (
	"context"
	"time"

	"github.com/salaoflow/salon-scheduler/internal/models"
)

type Repository interface {
	// -------- Users --------
	GetProfessional(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	// -------- Services --------
	GetService(
		ctx context.Context,
		professionalID uint,
		serviceID uint,
	) (*models.Service, error)

	ListActiveServices(
		ctx context.Context,
		professionalID uint,
	) ([]models.Service, error)

	// -------- Schedule --------
	// GetWorkSchedule returns (nil, nil) when the weekday was never
	// configured, so callers can distinguish absence from a day off.
	GetWorkSchedule(
		ctx context.Context,
		professionalID uint,
		weekday int,
	) (*models.WorkSchedule, error)

	// -------- Bookings (read) --------
	// ListBlockingBookings returns scheduled and completed bookings of
	// the professional starting inside [start, end), ordered by start.
	ListBlockingBookings(
		ctx context.Context,
		professionalID uint,
		start time.Time,
		end time.Time,
	) ([]models.Booking, error)

	GetBooking(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	ListUpcoming(
		ctx context.Context,
		professionalID uint,
		from time.Time,
		to time.Time,
	) ([]models.Booking, error)

	ListHistory(
		ctx context.Context,
		clientID uint,
	) ([]models.Booking, error)

	// -------- Bookings (write) --------
	// CreateBookingGuarded re-checks overlap against blocking bookings
	// inside a transaction holding a row-level lock, then inserts.
	// The losing concurrent writer gets a double_booking error.
	CreateBookingGuarded(
		ctx context.Context,
		b *models.Booking,
	) error

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error
}
