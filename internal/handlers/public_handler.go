package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/salaoflow/salon-scheduler/internal/httperr"
	"github.com/salaoflow/salon-scheduler/internal/httpresp"
	"github.com/salaoflow/salon-scheduler/internal/models"
	ucBooking "github.com/salaoflow/salon-scheduler/internal/usecase/booking"
)

// PublicHandler serves the endpoints the booking page calls before the
// client is logged in.
type PublicHandler struct {
	db *gorm.DB

	servicesUC     *ucBooking.ListServices
	availabilityUC *ucBooking.GetAvailability
}

func NewPublicHandler(
	db *gorm.DB,
	servicesUC *ucBooking.ListServices,
	availabilityUC *ucBooking.GetAvailability,
) *PublicHandler {
	return &PublicHandler{
		db:             db,
		servicesUC:     servicesUC,
		availabilityUC: availabilityUC,
	}
}

type ProfessionalDTO struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

func (h *PublicHandler) ListProfessionals(c *gin.Context) {
	var users []models.User
	if err := h.db.
		Where("role = ?", models.RoleProfessional).
		Order("name ASC").
		Find(&users).Error; err != nil {
		httperr.Internal(c, "internal_error", "Erro ao carregar profissionais.")
		return
	}

	out := make([]ProfessionalDTO, 0, len(users))
	for _, u := range users {
		out = append(out, ProfessionalDTO{ID: u.ID, Name: u.Name, Phone: u.Phone})
	}

	httpresp.List(c, out)
}

func (h *PublicHandler) ListServices(c *gin.Context) {
	professionalID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	services, err := h.servicesUC.Execute(c.Request.Context(), uint(professionalID))
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.List(c, services)
}

// Availability returns the free slot grid for one professional, service
// and date. The list is advisory; creation revalidates.
func (h *PublicHandler) Availability(c *gin.Context) {
	professionalID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	serviceID, err := strconv.ParseUint(c.Query("service_id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Serviço inválido.")
		return
	}

	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Informe a data.")
		return
	}

	result, err := h.availabilityUC.Execute(c.Request.Context(), ucBooking.AvailabilityInput{
		ProfessionalID: uint(professionalID),
		ServiceID:      uint(serviceID),
		Date:           date,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.OK(c, result)
}
