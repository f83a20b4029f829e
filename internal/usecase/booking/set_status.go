package booking

import (
	"context"
	"fmt"

	"github.com/salaoflow/salon-scheduler/internal/audit"
	domain "github.com/salaoflow/salon-scheduler/internal/domain/booking"
	"github.com/salaoflow/salon-scheduler/internal/httperr"
	"github.com/salaoflow/salon-scheduler/internal/metrics"
	"github.com/salaoflow/salon-scheduler/internal/models"
	"github.com/salaoflow/salon-scheduler/internal/notify"
	"github.com/salaoflow/salon-scheduler/internal/timezone"
)

type SetStatusInput struct {
	Actor domain.Actor

	BookingID uint
	NewStatus string

	// Note is attached on completion, professional-only.
	Note string
}

type SetStatus struct {
	repo      domain.Repository
	notifier  notify.Notifier
	audit     Auditor
	noticeMin int
}

func NewSetStatus(
	repo domain.Repository,
	notifier notify.Notifier,
	auditDispatcher Auditor,
	noticeMin int,
) *SetStatus {
	return &SetStatus{
		repo:      repo,
		notifier:  notifier,
		audit:     auditDispatcher,
		noticeMin: noticeMin,
	}
}

func (uc *SetStatus) Execute(
	ctx context.Context,
	in SetStatusInput,
) (*models.Booking, error) {

	to := domain.Status(in.NewStatus)
	if !to.Valid() {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidTransition)
	}

	b, err := uc.repo.GetBooking(ctx, in.BookingID)
	if err != nil {
		return nil, err
	}

	professional, err := uc.repo.GetProfessional(ctx, b.ProfessionalID)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(professional.Timezone)

	if err := domain.AuthorizeTransition(b, in.Actor, to, now, uc.noticeMin); err != nil {
		return nil, err
	}

	domain.Apply(b, to, now)

	if to == domain.StatusCompleted && in.Actor.IsProfessional() && in.Note != "" {
		b.Notes = in.Note
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	metrics.StatusTransitions.WithLabelValues(string(to)).Inc()

	if to == domain.StatusCanceled {
		uc.notifyCancellation(b, in.Actor)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.Actor.UserID,
		Action:   "booking_" + string(to),
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}

// notifyCancellation tells the counterparty, whichever side canceled.
func (uc *SetStatus) notifyCancellation(b *models.Booking, actor domain.Actor) {
	recipient := b.ClientID
	if actor.IsClient() {
		recipient = b.ProfessionalID
	}

	uc.notifier.Notify(
		recipient,
		fmt.Sprintf("Agendamento de %s foi cancelado.", b.StartTime.Format("02/01 15:04")),
		fmt.Sprintf("/bookings/%d", b.ID),
	)
}
