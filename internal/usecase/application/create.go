package application

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Natalia-Nic/construction-company-api/internal/audit"
	domain "github.com/Natalia-Nic/construction-company-api/internal/domain/application"
	"github.com/Natalia-Nic/construction-company-api/internal/httperr"
	"github.com/Natalia-Nic/construction-company-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateApplicationInput struct {
	ClientID       string
	ProjectID      uint
	ClientComments string
}

// ======================================================
// USE CASE
// ======================================================

type CreateApplication struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateApplication(
	repo domain.Repository,
	dispatcher *audit.Dispatcher,
) *CreateApplication {
	return &CreateApplication{
		repo:  repo,
		audit: dispatcher,
	}
}

// Execute registers a new application for the caller. The referenced
// project must exist; nothing is written when it does not.
func (uc *CreateApplication) Execute(
	ctx context.Context,
	in CreateApplicationInput,
) (*models.Application, error) {

	if _, err := uc.repo.GetProject(ctx, in.ProjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("project_not_found")
		}
		return nil, err
	}

	if _, err := uc.repo.GetUser(ctx, in.ClientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("user_not_found")
		}
		return nil, err
	}

	app := &models.Application{
		ClientID:       in.ClientID,
		ProjectID:      in.ProjectID,
		Status:         string(domain.InitialStatus()),
		ClientComments: in.ClientComments,
	}

	if err := uc.repo.Create(ctx, app); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ClientID,
		Action:   audit.ActionApplicationCreate,
		Entity:   "application",
		EntityID: &app.ID,
	})

	return app, nil
}
