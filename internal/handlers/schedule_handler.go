package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/salaoflow/salon-scheduler/internal/domain/schedule"
	"github.com/salaoflow/salon-scheduler/internal/httperr"
	"github.com/salaoflow/salon-scheduler/internal/httpresp"
	"github.com/salaoflow/salon-scheduler/internal/middleware"
	"github.com/salaoflow/salon-scheduler/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type ScheduleHandler struct {
	db *gorm.DB
}

func NewScheduleHandler(db *gorm.DB) *ScheduleHandler {
	return &ScheduleHandler{db: db}
}

// ======================================================
// REQUESTS
// ======================================================

type ScheduleDayRequest struct {
	Weekday    int    `json:"weekday"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	LunchStart string `json:"lunch_start"`
	LunchEnd   string `json:"lunch_end"`
	DayOff     bool   `json:"day_off"`
}

type UpdateScheduleRequest struct {
	Days []ScheduleDayRequest `json:"days" binding:"required"`
}

// ======================================================
// HANDLERS
// ======================================================

// Get returns the professional's own weekly grid, Monday first.
func (h *ScheduleHandler) Get(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	if !actor.IsProfessional() {
		httperr.Forbidden(c, httperr.CodePermissionDenied, "Apenas profissionais possuem agenda.")
		return
	}

	var week []models.WorkSchedule
	if err := h.db.
		Where("professional_id = ?", actor.UserID).
		Order("weekday ASC").
		Find(&week).Error; err != nil {
		httperr.Internal(c, "internal_error", "Erro ao carregar a agenda.")
		return
	}

	httpresp.List(c, week)
}

// Update replaces the whole weekly grid atomically. Every submitted day
// is validated before anything is written.
func (h *ScheduleHandler) Update(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	if !actor.IsProfessional() {
		httperr.Forbidden(c, httperr.CodePermissionDenied, "Apenas profissionais possuem agenda.")
		return
	}

	var req UpdateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if len(req.Days) == 0 || len(req.Days) > 7 {
		httperr.BadRequest(c, "invalid_request", "A agenda deve ter entre 1 e 7 dias.")
		return
	}

	seen := make(map[int]bool, len(req.Days))
	rows := make([]models.WorkSchedule, 0, len(req.Days))
	for _, d := range req.Days {
		if seen[d.Weekday] {
			httperr.BadRequest(c, "duplicate_weekday", "Dia da semana repetido.")
			return
		}
		seen[d.Weekday] = true

		row := models.WorkSchedule{
			ProfessionalID: actor.UserID,
			Weekday:        d.Weekday,
			StartTime:      d.StartTime,
			EndTime:        d.EndTime,
			LunchStart:     d.LunchStart,
			LunchEnd:       d.LunchEnd,
			DayOff:         d.DayOff,
		}
		if err := schedule.ValidateDay(&row); err != nil {
			httperr.BadRequest(c, httperr.BusinessCode(err), "Agenda inválida.")
			return
		}
		rows = append(rows, row)
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("professional_id = ?", actor.UserID).
			Delete(&models.WorkSchedule{}).Error; err != nil {
			return err
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		httperr.Internal(c, "internal_error", "Erro ao salvar a agenda.")
		return
	}

	httpresp.List(c, rows)
}
