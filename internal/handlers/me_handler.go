package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Natalia-Nic/construction-company-api/internal/dto"
	"github.com/Natalia-Nic/construction-company-api/internal/httperr"
	"github.com/Natalia-Nic/construction-company-api/internal/middleware"
	"github.com/Natalia-Nic/construction-company-api/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	claims, ok := middleware.Identity(c)
	if !ok {
		httperr.Unauthorized(c, "user_not_in_context", "Authentication required.")
		return
	}

	var user models.User
	if err := h.db.Where("id = ?", claims.Subject).First(&user).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "User not found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": dto.NewUserSummary(&user),
	})
}
