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

// ProjectHandler serves the public catalog. The catalog is seeded at
// bootstrap and has no write surface.
type ProjectHandler struct {
	db *gorm.DB
}

func NewProjectHandler(db *gorm.DB) *ProjectHandler {
	return &ProjectHandler{db: db}
}

func (h *ProjectHandler) List(c *gin.Context) {
	var projects []models.Project
	if err := h.db.Order("id ASC").Find(&projects).Error; err != nil {
		logger.Get().Error().Err(err).Msg("catalog: list failed")
		httperr.Internal(c, "failed_to_list_projects", "Something went wrong.")
		return
	}

	c.JSON(http.StatusOK, projects)
}

func (h *ProjectHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_project_id", "Project id must be a number.")
		return
	}

	var project models.Project
	if err := h.db.First(&project, uint(id)).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "project_not_found", "Project not found.")
			return
		}
		logger.Get().Error().Err(err).Msg("catalog: get failed")
		httperr.Internal(c, "failed_to_get_project", "Something went wrong.")
		return
	}

	c.JSON(http.StatusOK, project)
}
