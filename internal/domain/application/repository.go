package application

import (
	"context"

	"github.com/Natalia-Nic/construction-company-api/internal/models"
)

type Repository interface {
	// -------- Referenced entities --------
	GetProject(
		ctx context.Context,
		id uint,
	) (*models.Project, error)

	GetUser(
		ctx context.Context,
		id string,
	) (*models.User, error)

	// -------- Application --------
	Create(
		ctx context.Context,
		app *models.Application,
	) error

	// GetByID hydrates the Project and Client associations.
	GetByID(
		ctx context.Context,
		id uint,
	) (*models.Application, error)

	ListAll(
		ctx context.Context,
	) ([]models.Application, error)

	ListByClient(
		ctx context.Context,
		clientID string,
	) ([]models.Application, error)

	Update(
		ctx context.Context,
		app *models.Application,
	) error
}
