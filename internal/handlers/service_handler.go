package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/salaoflow/salon-scheduler/internal/httperr"
	"github.com/salaoflow/salon-scheduler/internal/httpresp"
	"github.com/salaoflow/salon-scheduler/internal/middleware"
	"github.com/salaoflow/salon-scheduler/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	DurationMin int     `json:"duration_min" binding:"required,gt=0"`
}

type UpdateServiceRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	DurationMin *int     `json:"duration_min"`
	Active      *bool    `json:"active"`
}

// ======================================================
// HANDLERS
// ======================================================

// List returns the professional's own catalog, inactive included.
func (h *ServiceHandler) List(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	if !actor.IsProfessional() {
		httperr.Forbidden(c, httperr.CodePermissionDenied, "Apenas profissionais possuem catálogo.")
		return
	}

	var services []models.Service
	if err := h.db.
		Where("professional_id = ?", actor.UserID).
		Order("name ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "internal_error", "Erro ao carregar serviços.")
		return
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	if !actor.IsProfessional() {
		httperr.Forbidden(c, httperr.CodePermissionDenied, "Apenas profissionais possuem catálogo.")
		return
	}

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	service := models.Service{
		ProfessionalID: actor.UserID,
		Name:           req.Name,
		Description:    req.Description,
		Price:          req.Price,
		DurationMin:    req.DurationMin,
		Active:         true,
	}

	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, "internal_error", "Erro ao criar serviço.")
		return
	}

	httpresp.Created(c, service)
}

// Update patches a service in place. Deactivation goes through here too,
// keeping past bookings pointing at the row.
func (h *ServiceHandler) Update(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	if !actor.IsProfessional() {
		httperr.Forbidden(c, httperr.CodePermissionDenied, "Apenas profissionais possuem catálogo.")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var service models.Service
	if err := h.db.
		Where("id = ? AND professional_id = ?", id, actor.UserID).
		First(&service).Error; err != nil {
		httperr.NotFound(c, httperr.CodeServiceNotFound, "Serviço não encontrado.")
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.Price != nil {
		service.Price = *req.Price
	}
	if req.DurationMin != nil {
		if *req.DurationMin <= 0 {
			httperr.BadRequest(c, "invalid_duration", "Duração inválida.")
			return
		}
		service.DurationMin = *req.DurationMin
	}
	if req.Active != nil {
		service.Active = *req.Active
	}

	if err := h.db.Save(&service).Error; err != nil {
		httperr.Internal(c, "internal_error", "Erro ao atualizar serviço.")
		return
	}

	httpresp.OK(c, service)
}
