package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Natalia-Nic/construction-company-api/internal/audit"
	"github.com/Natalia-Nic/construction-company-api/internal/handlers"
	infraRepo "github.com/Natalia-Nic/construction-company-api/internal/infra/repository"
	"github.com/Natalia-Nic/construction-company-api/internal/middleware"
	"github.com/Natalia-Nic/construction-company-api/internal/models"
	"github.com/Natalia-Nic/construction-company-api/internal/token"
	ucApplication "github.com/Natalia-Nic/construction-company-api/internal/usecase/application"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, issuer *token.Issuer) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	applicationRepo := infraRepo.NewApplicationGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — APPLICATIONS
	// ======================================================
	createApplicationUC := ucApplication.NewCreateApplication(
		applicationRepo,
		auditDispatcher,
	)

	getApplicationUC := ucApplication.NewGetApplication(applicationRepo)

	listAllApplicationsUC := ucApplication.NewListAllApplications(applicationRepo)

	listMyApplicationsUC := ucApplication.NewListMyApplications(applicationRepo)

	updateApplicationUC := ucApplication.NewUpdateApplication(
		applicationRepo,
		auditDispatcher,
	)

	updateStatusUC := ucApplication.NewUpdateStatus(
		applicationRepo,
		auditDispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, issuer, auditDispatcher)
	meHandler := handlers.NewMeHandler(db)
	projectHandler := handlers.NewProjectHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	applicationHandler := handlers.NewApplicationHandler(
		createApplicationUC,
		getApplicationUC,
		listAllApplicationsUC,
		listMyApplicationsUC,
		updateApplicationUC,
		updateStatusUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PUBLIC CATALOG
		// ------------------------------
		api.GET("/projects", projectHandler.List)
		api.GET("/projects/:id", projectHandler.Get)

		// ------------------------------
		// AUTHENTICATED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(issuer))
		{
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// APPLICATIONS
			// ------------------------------
			secured.GET("/applications/my", applicationHandler.ListMine)
			secured.POST("/applications", applicationHandler.Create)
			secured.GET("/applications/:id", applicationHandler.Get)

			// Contractor-facing surface: the full list and all mutations
			// of status/comments.
			staff := secured.Group("/")
			staff.Use(middleware.RequireRoles(models.RoleContractor, models.RoleAdmin))
			{
				staff.GET("/applications", applicationHandler.ListAll)
				staff.PUT("/applications/:id", applicationHandler.Update)
				staff.PUT("/applications/:id/status", applicationHandler.UpdateStatus)
			}

			admin := secured.Group("/")
			admin.Use(middleware.RequireRoles(models.RoleAdmin))
			{
				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
