package application

import (
	"context"

	domain "github.com/Natalia-Nic/construction-company-api/internal/domain/application"
	"github.com/Natalia-Nic/construction-company-api/internal/models"
)

type ListMyApplications struct {
	repo domain.Repository
}

func NewListMyApplications(repo domain.Repository) *ListMyApplications {
	return &ListMyApplications{repo: repo}
}

// Execute returns only the caller's applications, newest first.
func (uc *ListMyApplications) Execute(
	ctx context.Context,
	clientID string,
) ([]models.Application, error) {
	return uc.repo.ListByClient(ctx, clientID)
}
