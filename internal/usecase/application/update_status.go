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

type UpdateStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateStatus(
	repo domain.Repository,
	dispatcher *audit.Dispatcher,
) *UpdateStatus {
	return &UpdateStatus{
		repo:  repo,
		audit: dispatcher,
	}
}

// Execute overwrites the status unconditionally and refreshes updatedAt.
// Transitions are not validated; contractors own the workflow.
func (uc *UpdateStatus) Execute(
	ctx context.Context,
	callerID string,
	applicationID uint,
	newStatus string,
) (*models.Application, error) {

	if err := domain.ValidateStatus(newStatus); err != nil {
		return nil, err
	}

	app, err := uc.repo.GetByID(ctx, applicationID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.ErrBusiness("application_not_found")
	}
	if err != nil {
		return nil, err
	}

	oldStatus := app.Status
	app.Status = newStatus

	if err := uc.repo.Update(ctx, app); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &callerID,
		Action:   audit.ActionStatusChanged,
		Entity:   "application",
		EntityID: &app.ID,
		Metadata: map[string]any{
			"from": oldStatus,
			"to":   newStatus,
		},
	})

	return app, nil
}
