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

type UpdateApplicationInput struct {
	CallerID           string
	ApplicationID      uint
	Status             string
	ContractorComments string
}

type UpdateApplication struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateApplication(
	repo domain.Repository,
	dispatcher *audit.Dispatcher,
) *UpdateApplication {
	return &UpdateApplication{
		repo:  repo,
		audit: dispatcher,
	}
}

// Execute applies a partial update: empty fields are left untouched, not
// cleared. updatedAt is refreshed on every successful call, even when no
// field actually changed.
func (uc *UpdateApplication) Execute(
	ctx context.Context,
	in UpdateApplicationInput,
) (*models.Application, error) {

	app, err := uc.repo.GetByID(ctx, in.ApplicationID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.ErrBusiness("application_not_found")
	}
	if err != nil {
		return nil, err
	}

	if in.Status != "" {
		if err := domain.ValidateStatus(in.Status); err != nil {
			return nil, err
		}
		app.Status = in.Status
	}

	if in.ContractorComments != "" {
		app.ContractorComments = in.ContractorComments
	}

	if err := uc.repo.Update(ctx, app); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.CallerID,
		Action:   audit.ActionApplicationUpdate,
		Entity:   "application",
		EntityID: &app.ID,
	})

	return app, nil
}
