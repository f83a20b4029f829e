package booking

import (
	"context"
	"time"

	domain "github.com/salaoflow/salon-scheduler/internal/domain/booking"
	"github.com/salaoflow/salon-scheduler/internal/httperr"
	"github.com/salaoflow/salon-scheduler/internal/models"
)

// ListUpcoming returns a professional's own agenda for a date range,
// earliest first.
type ListUpcoming struct {
	repo domain.Repository
}

func NewListUpcoming(repo domain.Repository) *ListUpcoming {
	return &ListUpcoming{repo: repo}
}

func (uc *ListUpcoming) Execute(
	ctx context.Context,
	actor domain.Actor,
	from time.Time,
	to time.Time,
) ([]models.Booking, error) {

	if !actor.IsProfessional() {
		return nil, httperr.ErrBusiness(httperr.CodePermissionDenied)
	}

	return uc.repo.ListUpcoming(ctx, actor.UserID, from, to)
}

// ListHistory returns a client's own bookings, most recent first.
type ListHistory struct {
	repo domain.Repository
}

func NewListHistory(repo domain.Repository) *ListHistory {
	return &ListHistory{repo: repo}
}

func (uc *ListHistory) Execute(
	ctx context.Context,
	actor domain.Actor,
) ([]models.Booking, error) {

	if !actor.IsClient() {
		return nil, httperr.ErrBusiness(httperr.CodePermissionDenied)
	}

	return uc.repo.ListHistory(ctx, actor.UserID)
}

// ListServices returns a professional's active catalog, for the public
// booking page.
type ListServices struct {
	repo domain.Repository
}

func NewListServices(repo domain.Repository) *ListServices {
	return &ListServices{repo: repo}
}

func (uc *ListServices) Execute(
	ctx context.Context,
	professionalID uint,
) ([]models.Service, error) {

	if _, err := uc.repo.GetProfessional(ctx, professionalID); err != nil {
		return nil, err
	}

	return uc.repo.ListActiveServices(ctx, professionalID)
}
