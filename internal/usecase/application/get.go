package application

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/Natalia-Nic/construction-company-api/internal/domain/application"
	"github.com/Natalia-Nic/construction-company-api/internal/httperr"
	"github.com/Natalia-Nic/construction-company-api/internal/models"
)

type GetApplication struct {
	repo domain.Repository
}

func NewGetApplication(repo domain.Repository) *GetApplication {
	return &GetApplication{repo: repo}
}

func (uc *GetApplication) Execute(
	ctx context.Context,
	id uint,
) (*models.Application, error) {

	app, err := uc.repo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.ErrBusiness("application_not_found")
	}
	if err != nil {
		return nil, err
	}
	return app, nil
}
