package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Natalia-Nic/construction-company-api/internal/httperr"
	"github.com/Natalia-Nic/construction-company-api/internal/logger"
	"github.com/Natalia-Nic/construction-company-api/internal/middleware"
	ucApplication "github.com/Natalia-Nic/construction-company-api/internal/usecase/application"
)

// ======================================================
// HANDLER
// ======================================================

type ApplicationHandler struct {
	createUC       *ucApplication.CreateApplication
	getUC          *ucApplication.GetApplication
	listAllUC      *ucApplication.ListAllApplications
	listMineUC     *ucApplication.ListMyApplications
	updateUC       *ucApplication.UpdateApplication
	updateStatusUC *ucApplication.UpdateStatus
}

func NewApplicationHandler(
	createUC *ucApplication.CreateApplication,
	getUC *ucApplication.GetApplication,
	listAllUC *ucApplication.ListAllApplications,
	listMineUC *ucApplication.ListMyApplications,
	updateUC *ucApplication.UpdateApplication,
	updateStatusUC *ucApplication.UpdateStatus,
) *ApplicationHandler {
	return &ApplicationHandler{
		createUC:       createUC,
		getUC:          getUC,
		listAllUC:      listAllUC,
		listMineUC:     listMineUC,
		updateUC:       updateUC,
		updateStatusUC: updateStatusUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateApplicationRequest struct {
	ProjectID      uint   `json:"projectId" binding:"required"`
	ClientComments string `json:"clientComments" binding:"max=500"`
}

type UpdateApplicationRequest struct {
	Status             string `json:"status" binding:"max=20"`
	ContractorComments string `json:"contractorComments" binding:"max=500"`
}

type UpdateStatusRequest struct {
	NewStatus string `json:"newStatus" binding:"required,max=20"`
}

// ======================================================
// HELPERS
// ======================================================

func applicationID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_application_id", "Application id must be a number.")
		return 0, false
	}
	return uint(id), true
}

// ======================================================
// LIST (contractor / admin)
// ======================================================

func (h *ApplicationHandler) ListAll(c *gin.Context) {
	apps, err := h.listAllUC.Execute(c.Request.Context())
	if err != nil {
		logger.Get().Error().Err(err).Msg("applications: list failed")
		httperr.Internal(c, "failed_to_list_applications", "Something went wrong.")
		return
	}

	c.JSON(http.StatusOK, apps)
}

// ======================================================
// LIST MINE
// ======================================================

func (h *ApplicationHandler) ListMine(c *gin.Context) {
	claims, ok := middleware.Identity(c)
	if !ok {
		httperr.Unauthorized(c, "user_not_in_context", "Authentication required.")
		return
	}

	apps, err := h.listMineUC.Execute(c.Request.Context(), claims.Subject)
	if err != nil {
		logger.Get().Error().Err(err).Msg("applications: list mine failed")
		httperr.Internal(c, "failed_to_list_applications", "Something went wrong.")
		return
	}

	c.JSON(http.StatusOK, apps)
}

// ======================================================
// CREATE
// ======================================================

func (h *ApplicationHandler) Create(c *gin.Context) {
	claims, ok := middleware.Identity(c)
	if !ok {
		httperr.Unauthorized(c, "user_not_in_context", "Authentication required.")
		return
	}

	var req CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	app, err := h.createUC.Execute(c.Request.Context(), ucApplication.CreateApplicationInput{
		ClientID:       claims.Subject,
		ProjectID:      req.ProjectID,
		ClientComments: req.ClientComments,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "project_not_found"):
			httperr.BadRequest(c, "project_not_found", "Project not found.")
		case httperr.IsBusiness(err, "user_not_found"):
			httperr.BadRequest(c, "user_not_found", "User not found.")
		default:
			logger.Get().Error().Err(err).Msg("applications: create failed")
			httperr.Internal(c, "failed_to_create_application", "Something went wrong.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Application created successfully!",
		"id":        app.ID,
		"projectId": app.ProjectID,
	})
}

// ======================================================
// GET
// ======================================================

func (h *ApplicationHandler) Get(c *gin.Context) {
	id, ok := applicationID(c)
	if !ok {
		return
	}

	app, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "application_not_found"):
			httperr.NotFound(c, "application_not_found", "Application not found.")
		default:
			logger.Get().Error().Err(err).Msg("applications: get failed")
			httperr.Internal(c, "failed_to_get_application", "Something went wrong.")
		}
		return
	}

	c.JSON(http.StatusOK, app)
}

// ======================================================
// UPDATE (partial)
// ======================================================

func (h *ApplicationHandler) Update(c *gin.Context) {
	claims, ok := middleware.Identity(c)
	if !ok {
		httperr.Unauthorized(c, "user_not_in_context", "Authentication required.")
		return
	}

	id, ok := applicationID(c)
	if !ok {
		return
	}

	var req UpdateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	app, err := h.updateUC.Execute(c.Request.Context(), ucApplication.UpdateApplicationInput{
		CallerID:           claims.Subject,
		ApplicationID:      id,
		Status:             req.Status,
		ContractorComments: req.ContractorComments,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "application_not_found"):
			httperr.NotFound(c, "application_not_found", "Application not found.")
		case httperr.IsBusiness(err, "invalid_status"):
			httperr.BadRequest(c, "invalid_status", "Status must be 1-20 characters.")
		default:
			logger.Get().Error().Err(err).Msg("applications: update failed")
			httperr.Internal(c, "failed_to_update_application", "Something went wrong.")
		}
		return
	}

	c.JSON(http.StatusOK, app)
}

// ======================================================
// UPDATE STATUS
// ======================================================

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	claims, ok := middleware.Identity(c)
	if !ok {
		httperr.Unauthorized(c, "user_not_in_context", "Authentication required.")
		return
	}

	id, ok := applicationID(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	app, err := h.updateStatusUC.Execute(c.Request.Context(), claims.Subject, id, req.NewStatus)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "application_not_found"):
			httperr.NotFound(c, "application_not_found", "Application not found.")
		case httperr.IsBusiness(err, "invalid_status"):
			httperr.BadRequest(c, "invalid_status", "Status must be 1-20 characters.")
		default:
			logger.Get().Error().Err(err).Msg("applications: status update failed")
			httperr.Internal(c, "failed_to_update_status", "Something went wrong.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Status updated",
		"status":        app.Status,
		"applicationId": app.ID,
	})
}
