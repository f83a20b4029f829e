package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/salaoflow/salon-scheduler/internal/httperr"
	"github.com/salaoflow/salon-scheduler/internal/httpresp"
	"github.com/salaoflow/salon-scheduler/internal/middleware"
	"github.com/salaoflow/salon-scheduler/internal/models"
	"github.com/salaoflow/salon-scheduler/internal/notify"
)

type NotificationHandler struct {
	db  *gorm.DB
	rdb *redis.Client
}

func NewNotificationHandler(db *gorm.DB, rdb *redis.Client) *NotificationHandler {
	return &NotificationHandler{db: db, rdb: rdb}
}

// List returns the user's latest notifications, newest first.
func (h *NotificationHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var items []models.Notification
	if err := h.db.
		Where("recipient_id = ?", userID).
		Order("created_at DESC").
		Limit(50).
		Find(&items).Error; err != nil {
		httperr.Internal(c, "internal_error", "Erro ao carregar notificações.")
		return
	}

	httpresp.List(c, items)
}

// UnreadCount feeds the bell badge, served from the Redis counter.
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	count, err := notify.UnreadCount(c.Request.Context(), h.db, h.rdb, userID)
	if err != nil {
		httperr.Internal(c, "internal_error", "Erro ao contar notificações.")
		return
	}

	httpresp.OK(c, gin.H{"unread": count})
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	if err := notify.MarkAllRead(c.Request.Context(), h.db, h.rdb, userID); err != nil {
		httperr.Internal(c, "internal_error", "Erro ao marcar notificações.")
		return
	}

	httpresp.OK(c, gin.H{"status": "ok"})
}
