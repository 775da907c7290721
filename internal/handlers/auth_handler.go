package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Natalia-Nic/construction-company-api/internal/audit"
	"github.com/Natalia-Nic/construction-company-api/internal/dto"
	"github.com/Natalia-Nic/construction-company-api/internal/httperr"
	"github.com/Natalia-Nic/construction-company-api/internal/logger"
	"github.com/Natalia-Nic/construction-company-api/internal/models"
	"github.com/Natalia-Nic/construction-company-api/internal/token"
	"github.com/Natalia-Nic/construction-company-api/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	issuer *token.Issuer
	audit  *audit.Dispatcher
}

func NewAuthHandler(db *gorm.DB, issuer *token.Issuer, dispatcher *audit.Dispatcher) *AuthHandler {
	return &AuthHandler{db: db, issuer: issuer, audit: dispatcher}
}

// --------- Requests ---------

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"fullName" binding:"required,max=100"`
	Phone    string `json:"phone" binding:"max=20"`
	Role     string `json:"role" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if !models.IsValidRole(req.Role) {
		httperr.BadRequest(c, "invalid_role", "Role must be Admin, Contractor or Client.")
		return
	}

	if err := validators.ValidatePassword(req.Password); err != nil {
		httperr.BadRequest(c, "weak_password", err.Error())
		return
	}

	// Emails are unique case-insensitively; normalising here keeps the
	// unique index sufficient.
	email := strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	if err := h.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		logger.Get().Error().Err(err).Msg("register: email lookup failed")
		httperr.Internal(c, "internal_error", "Something went wrong.")
		return
	}
	if count > 0 {
		httperr.BadRequest(c, "email_already_exists", "A user with this email already exists.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Get().Error().Err(err).Msg("register: hash failed")
		httperr.Internal(c, "internal_error", "Something went wrong.")
		return
	}

	user := models.User{
		Email:        email,
		PasswordHash: string(hashed),
		FullName:     req.FullName,
		Phone:        req.Phone,
		Role:         req.Role,
	}

	if err := h.db.Create(&user).Error; err != nil {
		logger.Get().Error().Err(err).Msg("register: create failed")
		httperr.Internal(c, "failed_to_create_user", "Something went wrong.")
		return
	}

	signed, err := h.issuer.Issue(&user)
	if err != nil {
		logger.Get().Error().Err(err).Msg("register: token issue failed")
		httperr.Internal(c, "failed_to_generate_token", "Something went wrong.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID: &user.ID,
		Action: audit.ActionUserRegistered,
		Entity: "user",
	})

	c.JSON(http.StatusOK, gin.H{
		"token": signed,
		"user":  dto.NewUserSummary(&user),
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.Unauthorized(c, "invalid_credentials", "Email or password is incorrect.")
			return
		}
		logger.Get().Error().Err(err).Msg("login: lookup failed")
		httperr.Internal(c, "internal_error", "Something went wrong.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Email or password is incorrect.")
		return
	}

	signed, err := h.issuer.Issue(&user)
	if err != nil {
		logger.Get().Error().Err(err).Msg("login: token issue failed")
		httperr.Internal(c, "failed_to_generate_token", "Something went wrong.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": signed,
		"user":  dto.NewUserSummary(&user),
	})
}
