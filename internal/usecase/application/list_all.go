package application

import (
	"context"

	domain "github.com/Natalia-Nic/construction-company-api/internal/domain/application"
	"github.com/Natalia-Nic/construction-company-api/internal/models"
)

type ListAllApplications struct {
	repo domain.Repository
}

func NewListAllApplications(repo domain.Repository) *ListAllApplications {
	return &ListAllApplications{repo: repo}
}

// Execute returns every application, newest first, with project and client
// hydrated for the contractor dashboard.
func (uc *ListAllApplications) Execute(
	ctx context.Context,
) ([]models.Application, error) {
	return uc.repo.ListAll(ctx)
}
