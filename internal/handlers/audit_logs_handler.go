package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Natalia-Nic/construction-company-api/internal/httperr"
	"github.com/Natalia-Nic/construction-company-api/internal/logger"
	"github.com/Natalia-Nic/construction-company-api/internal/models"
)

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

// List returns the most recent audit entries, newest first. Admin only
// (enforced by the route group).
func (h *AuditLogsHandler) List(c *gin.Context) {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 200 {
			limit = n
		}
	}

	var entries []models.AuditLog
	if err := h.db.
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error; err != nil {

		logger.Get().Error().Err(err).Msg("audit: list failed")
		httperr.Internal(c, "failed_to_list_audit_logs", "Something went wrong.")
		return
	}

	c.JSON(http.StatusOK, entries)
}
