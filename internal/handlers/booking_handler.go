package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/salaoflow/salon-scheduler/internal/dto"
	"github.com/salaoflow/salon-scheduler/internal/httperr"
	"github.com/salaoflow/salon-scheduler/internal/httpresp"
	"github.com/salaoflow/salon-scheduler/internal/middleware"
	"github.com/salaoflow/salon-scheduler/internal/models"
	"github.com/salaoflow/salon-scheduler/internal/timezone"
	ucBooking "github.com/salaoflow/salon-scheduler/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	db *gorm.DB

	createUC    *ucBooking.CreateBooking
	setStatusUC *ucBooking.SetStatus
	upcomingUC  *ucBooking.ListUpcoming
	historyUC   *ucBooking.ListHistory
}

func NewBookingHandler(
	db *gorm.DB,
	createUC *ucBooking.CreateBooking,
	setStatusUC *ucBooking.SetStatus,
	upcomingUC *ucBooking.ListUpcoming,
	historyUC *ucBooking.ListHistory,
) *BookingHandler {
	return &BookingHandler{
		db:          db,
		createUC:    createUC,
		setStatusUC: setStatusUC,
		upcomingUC:  upcomingUC,
		historyUC:   historyUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	ProfessionalID uint   `json:"professional_id" binding:"required"`
	ServiceID      uint   `json:"service_id" binding:"required"`
	Date           string `json:"date" binding:"required"`
	Time           string `json:"time" binding:"required"`
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Note   string `json:"note"`
}

// ======================================================
// ERROR MAPPING
// ======================================================

var bookingErrorMessages = map[string]string{
	httperr.CodeIncompleteInput:      "Dados incompletos.",
	httperr.CodeNoScheduleConfigured: "O profissional não configurou a agenda.",
	httperr.CodeDayOff:               "O profissional não atende neste dia.",
	httperr.CodeOutsideWorkingHours:  "Horário fora do expediente.",
	httperr.CodeLunchConflict:        "Horário em conflito com o almoço.",
	httperr.CodeDoubleBooking:        "Horário já ocupado.",
	httperr.CodePermissionDenied:     "Operação não permitida.",
	httperr.CodeInvalidTransition:    "Mudança de status não permitida.",
	httperr.CodeServiceNotFound:      "Serviço não encontrado.",
	httperr.CodeProfessionalNotFound: "Profissional não encontrado.",
	httperr.CodeBookingNotFound:      "Agendamento não encontrado.",
}

// writeBookingError renders a business error with the right HTTP status;
// anything else is a 500.
func writeBookingError(c *gin.Context, err error) {
	code := httperr.BusinessCode(err)
	if code == "" {
		httperr.Internal(c, "internal_error", "Erro interno.")
		return
	}

	msg := bookingErrorMessages[code]
	if msg == "" {
		msg = "Requisição inválida."
	}

	switch code {
	case httperr.CodeDoubleBooking:
		httperr.Conflict(c, code, msg)
	case httperr.CodePermissionDenied:
		httperr.Forbidden(c, code, msg)
	case httperr.CodeServiceNotFound,
		httperr.CodeProfessionalNotFound,
		httperr.CodeBookingNotFound:
		httperr.NotFound(c, code, msg)
	default:
		httperr.BadRequest(c, code, msg)
	}
}

// ======================================================
// HANDLERS
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	b, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		Actor:          middleware.ActorFrom(c),
		ProfessionalID: req.ProfessionalID,
		ServiceID:      req.ServiceID,
		Date:           req.Date,
		Time:           req.Time,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.Created(c, b)
}

func (h *BookingHandler) SetStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	b, err := h.setStatusUC.Execute(c.Request.Context(), ucBooking.SetStatusInput{
		Actor:     middleware.ActorFrom(c),
		BookingID: uint(id),
		NewStatus: req.Status,
		Note:      req.Note,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.OK(c, b)
}

// ListUpcoming returns the professional's agenda for a date range in
// their own timezone. Defaults to the next seven days.
func (h *BookingHandler) ListUpcoming(c *gin.Context) {
	actor := middleware.ActorFrom(c)

	var user models.User
	if err := h.db.First(&user, actor.UserID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "Usuário não encontrado.")
		return
	}

	loc := timezone.Location(user.Timezone)
	now := timezone.NowIn(user.Timezone)

	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	if q := c.Query("from"); q != "" {
		parsed, err := time.ParseInLocation("2006-01-02", q, loc)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
			return
		}
		from = parsed
	}

	to := from.Add(7 * 24 * time.Hour)
	if q := c.Query("to"); q != "" {
		parsed, err := time.ParseInLocation("2006-01-02", q, loc)
		if err != nil || parsed.Before(from) {
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
			return
		}
		// End date is inclusive.
		to = parsed.Add(24 * time.Hour)
	}

	items, err := h.upcomingUC.Execute(c.Request.Context(), actor, from, to)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.List(c, dto.BookingList(items))
}

func (h *BookingHandler) ListHistory(c *gin.Context) {
	items, err := h.historyUC.Execute(c.Request.Context(), middleware.ActorFrom(c))
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.List(c, dto.BookingList(items))
}
