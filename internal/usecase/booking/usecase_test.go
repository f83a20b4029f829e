package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salaoflow/salon-scheduler/internal/audit"
	domain "github.com/salaoflow/salon-scheduler/internal/domain/booking"
	"github.com/salaoflow/salon-scheduler/internal/domain/schedule"
	"github.com/salaoflow/salon-scheduler/internal/httperr"
	"github.com/salaoflow/salon-scheduler/internal/models"
)

// --------------------------------------------------
// In-memory repository
// --------------------------------------------------

type fakeRepo struct {
	professionals map[uint]*models.User
	services      map[uint]*models.Service
	week          map[int]*models.WorkSchedule
	bookings      []*models.Booking
	nextID        uint
}

func newFakeRepo() *fakeRepo {
	r := &fakeRepo{
		professionals: map[uint]*models.User{},
		services:      map[uint]*models.Service{},
		week:          map[int]*models.WorkSchedule{},
		nextID:        1,
	}

	r.professionals[2] = &models.User{
		ID: 2, Name: "Ana", Role: models.RoleProfessional, Timezone: "America/Sao_Paulo",
	}
	r.services[5] = &models.Service{
		ID: 5, ProfessionalID: 2, Name: "Corte Degradê", DurationMin: 45, Active: true,
	}
	for _, day := range schedule.DefaultWeek(2) {
		d := day
		r.week[day.Weekday] = &d
	}
	return r
}

func (r *fakeRepo) GetProfessional(_ context.Context, id uint) (*models.User, error) {
	if u, ok := r.professionals[id]; ok {
		return u, nil
	}
	return nil, httperr.ErrBusiness(httperr.CodeProfessionalNotFound)
}

func (r *fakeRepo) GetService(_ context.Context, professionalID, serviceID uint) (*models.Service, error) {
	if s, ok := r.services[serviceID]; ok && s.ProfessionalID == professionalID && s.Active {
		return s, nil
	}
	return nil, httperr.ErrBusiness(httperr.CodeServiceNotFound)
}

func (r *fakeRepo) ListActiveServices(_ context.Context, professionalID uint) ([]models.Service, error) {
	var out []models.Service
	for _, s := range r.services {
		if s.ProfessionalID == professionalID && s.Active {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeRepo) GetWorkSchedule(_ context.Context, _ uint, weekday int) (*models.WorkSchedule, error) {
	return r.week[weekday], nil
}

func (r *fakeRepo) ListBlockingBookings(_ context.Context, professionalID uint, start, end time.Time) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		blocking := b.Status == string(domain.StatusScheduled) || b.Status == string(domain.StatusCompleted)
		if b.ProfessionalID == professionalID && blocking &&
			!b.StartTime.Before(start) && b.StartTime.Before(end) {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeRepo) GetBooking(_ context.Context, id uint) (*models.Booking, error) {
	for _, b := range r.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, httperr.ErrBusiness(httperr.CodeBookingNotFound)
}

func (r *fakeRepo) ListUpcoming(_ context.Context, professionalID uint, from, to time.Time) ([]models.Booking, error) {
	return r.ListBlockingBookings(context.Background(), professionalID, from, to)
}

func (r *fakeRepo) ListHistory(_ context.Context, clientID uint) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.ClientID == clientID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeRepo) CreateBookingGuarded(_ context.Context, b *models.Booking) error {
	for _, other := range r.bookings {
		blocking := other.Status == string(domain.StatusScheduled) || other.Status == string(domain.StatusCompleted)
		if other.ProfessionalID == b.ProfessionalID && blocking &&
			domain.Overlaps(b.StartTime, b.EndTime, other.StartTime, other.EndTime) {
			return httperr.ErrBusiness(httperr.CodeDoubleBooking)
		}
	}
	b.ID = r.nextID
	r.nextID++
	r.bookings = append(r.bookings, b)
	return nil
}

func (r *fakeRepo) UpdateBooking(_ context.Context, b *models.Booking) error {
	for i, other := range r.bookings {
		if other.ID == b.ID {
			r.bookings[i] = b
			return nil
		}
	}
	return httperr.ErrBusiness(httperr.CodeBookingNotFound)
}

var _ domain.Repository = (*fakeRepo)(nil)

// --------------------------------------------------
// Fakes for the side channels
// --------------------------------------------------

type fakeNotifier struct {
	recipients []uint
	messages   []string
}

func (n *fakeNotifier) Notify(recipientID uint, message string, _ string) {
	n.recipients = append(n.recipients, recipientID)
	n.messages = append(n.messages, message)
}

type fakeAuditor struct {
	events []audit.Event
}

func (a *fakeAuditor) Dispatch(ev audit.Event) {
	a.events = append(a.events, ev)
}

var clientActor = domain.Actor{UserID: 1, Role: models.RoleClient}

// --------------------------------------------------
// Tests
// --------------------------------------------------

func TestCreateBooking_Succeeds(t *testing.T) {
	repo := newFakeRepo()
	notifier := &fakeNotifier{}
	auditor := &fakeAuditor{}
	uc := NewCreateBooking(repo, notifier, auditor)

	// 2099-01-06 is a Tuesday.
	b, err := uc.Execute(context.Background(), CreateBookingInput{
		Actor:          clientActor,
		ProfessionalID: 2,
		ServiceID:      5,
		Date:           "2099-01-06",
		Time:           "10:00",
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusScheduled), b.Status)
	assert.Equal(t, uint(1), b.ClientID)
	assert.NotEmpty(t, b.Reference)
	assert.Equal(t, b.StartTime.Add(45*time.Minute), b.EndTime)

	require.Len(t, notifier.recipients, 1)
	assert.Equal(t, uint(2), notifier.recipients[0])
	require.Len(t, auditor.events, 1)
	assert.Equal(t, "booking_created", auditor.events[0].Action)
}

func TestCreateBooking_DoubleBookingThenRetryAfterCancel(t *testing.T) {
	repo := newFakeRepo()
	notifier := &fakeNotifier{}
	auditor := &fakeAuditor{}
	create := NewCreateBooking(repo, notifier, auditor)
	setStatus := NewSetStatus(repo, notifier, auditor, 120)

	first, err := create.Execute(context.Background(), CreateBookingInput{
		Actor: clientActor, ProfessionalID: 2, ServiceID: 5,
		Date: "2099-01-06", Time: "14:00",
	})
	require.NoError(t, err)

	// Overlapping attempt by another client fails with double_booking.
	_, err = create.Execute(context.Background(), CreateBookingInput{
		Actor: domain.Actor{UserID: 3, Role: models.RoleClient}, ProfessionalID: 2, ServiceID: 5,
		Date: "2099-01-06", Time: "14:15",
	})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeDoubleBooking))

	// The professional cancels the first; the retry now succeeds.
	_, err = setStatus.Execute(context.Background(), SetStatusInput{
		Actor:     domain.Actor{UserID: 2, Role: models.RoleProfessional},
		BookingID: first.ID,
		NewStatus: string(domain.StatusCanceled),
	})
	require.NoError(t, err)

	_, err = create.Execute(context.Background(), CreateBookingInput{
		Actor: domain.Actor{UserID: 3, Role: models.RoleClient}, ProfessionalID: 2, ServiceID: 5,
		Date: "2099-01-06", Time: "14:15",
	})
	assert.NoError(t, err)
}

func TestCreateBooking_RejectsNonClientActor(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateBooking(repo, &fakeNotifier{}, &fakeAuditor{})

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		Actor:          domain.Actor{UserID: 2, Role: models.RoleProfessional},
		ProfessionalID: 2,
		ServiceID:      5,
		Date:           "2099-01-06",
		Time:           "10:00",
	})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, httperr.CodePermissionDenied))
}

func TestCreateBooking_LunchAndDayOffKinds(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateBooking(repo, &fakeNotifier{}, &fakeAuditor{})

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		Actor: clientActor, ProfessionalID: 2, ServiceID: 5,
		Date: "2099-01-06", Time: "11:30",
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeLunchConflict))

	// 2099-01-04 is a Sunday, the default day off.
	_, err = uc.Execute(context.Background(), CreateBookingInput{
		Actor: clientActor, ProfessionalID: 2, ServiceID: 5,
		Date: "2099-01-04", Time: "10:00",
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeDayOff))
}

func TestSetStatus_CancellationNotifiesCounterparty(t *testing.T) {
	repo := newFakeRepo()
	notifier := &fakeNotifier{}
	auditor := &fakeAuditor{}
	create := NewCreateBooking(repo, notifier, auditor)
	setStatus := NewSetStatus(repo, notifier, auditor, 120)

	b, err := create.Execute(context.Background(), CreateBookingInput{
		Actor: clientActor, ProfessionalID: 2, ServiceID: 5,
		Date: "2099-01-05", Time: "10:00",
	})
	require.NoError(t, err)

	// Client cancels far in advance; the professional is notified.
	_, err = setStatus.Execute(context.Background(), SetStatusInput{
		Actor:     clientActor,
		BookingID: b.ID,
		NewStatus: string(domain.StatusCanceled),
	})
	require.NoError(t, err)

	require.Len(t, notifier.recipients, 2) // creation + cancellation
	assert.Equal(t, uint(2), notifier.recipients[1])
}

func TestSetStatus_CompletionNote(t *testing.T) {
	repo := newFakeRepo()
	notifier := &fakeNotifier{}
	create := NewCreateBooking(repo, notifier, &fakeAuditor{})
	setStatus := NewSetStatus(repo, notifier, &fakeAuditor{}, 120)

	b, err := create.Execute(context.Background(), CreateBookingInput{
		Actor: clientActor, ProfessionalID: 2, ServiceID: 5,
		Date: "2099-01-06", Time: "10:00",
	})
	require.NoError(t, err)

	updated, err := setStatus.Execute(context.Background(), SetStatusInput{
		Actor:     domain.Actor{UserID: 2, Role: models.RoleProfessional},
		BookingID: b.ID,
		NewStatus: string(domain.StatusCompleted),
		Note:      "Cliente prefere máquina 2 nas laterais.",
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCompleted), updated.Status)
	assert.Equal(t, "Cliente prefere máquina 2 nas laterais.", updated.Notes)
	// Completion does not notify anyone.
	assert.Len(t, notifier.recipients, 1)
}

func TestSetStatus_RejectsUnknownStatus(t *testing.T) {
	repo := newFakeRepo()
	setStatus := NewSetStatus(repo, &fakeNotifier{}, &fakeAuditor{}, 120)

	_, err := setStatus.Execute(context.Background(), SetStatusInput{
		Actor:     clientActor,
		BookingID: 1,
		NewStatus: "postponed",
	})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidTransition))
}

func TestGetAvailability_ReasonCodes(t *testing.T) {
	repo := newFakeRepo()
	uc := NewGetAvailability(repo, 30)

	// Sunday is the default day off.
	res, err := uc.Execute(context.Background(), AvailabilityInput{
		ProfessionalID: 2, ServiceID: 5, Date: "2099-01-04",
	})
	require.NoError(t, err)
	assert.Empty(t, res.Slots)
	assert.Equal(t, httperr.CodeDayOff, res.Reason)

	// Drop the Tuesday row entirely.
	delete(repo.week, schedule.Tuesday)
	res, err = uc.Execute(context.Background(), AvailabilityInput{
		ProfessionalID: 2, ServiceID: 5, Date: "2099-01-06",
	})
	require.NoError(t, err)
	assert.Empty(t, res.Slots)
	assert.Equal(t, httperr.CodeNoScheduleConfigured, res.Reason)
}

func TestGetAvailability_ExcludesExistingBooking(t *testing.T) {
	repo := newFakeRepo()
	notifier := &fakeNotifier{}
	create := NewCreateBooking(repo, notifier, &fakeAuditor{})
	availability := NewGetAvailability(repo, 30)

	_, err := create.Execute(context.Background(), CreateBookingInput{
		Actor: clientActor, ProfessionalID: 2, ServiceID: 5,
		Date: "2099-01-06", Time: "14:00",
	})
	require.NoError(t, err)

	res, err := availability.Execute(context.Background(), AvailabilityInput{
		ProfessionalID: 2, ServiceID: 5, Date: "2099-01-06",
	})
	require.NoError(t, err)

	assert.Contains(t, res.Slots, "11:00")
	assert.NotContains(t, res.Slots, "11:30") // lunch
	assert.NotContains(t, res.Slots, "13:30") // would end 14:15
	assert.NotContains(t, res.Slots, "14:00") // taken
	assert.Contains(t, res.Slots, "15:00")
	assert.Empty(t, res.Reason)
}

func TestListHistory_RoleGate(t *testing.T) {
	repo := newFakeRepo()
	history := NewListHistory(repo)

	_, err := history.Execute(context.Background(), domain.Actor{UserID: 2, Role: models.RoleProfessional})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, httperr.CodePermissionDenied))
}
