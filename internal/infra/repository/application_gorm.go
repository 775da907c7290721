package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/Natalia-Nic/construction-company-api/internal/domain/application"
	"github.com/Natalia-Nic/construction-company-api/internal/models"
)

type ApplicationGormRepository struct {
	db *gorm.DB
}

func NewApplicationGormRepository(db *gorm.DB) *ApplicationGormRepository {
	return &ApplicationGormRepository{db: db}
}

// --------------------------------------------------
// Referenced entities
// --------------------------------------------------

func (r *ApplicationGormRepository) GetProject(
	ctx context.Context,
	id uint,
) (*models.Project, error) {

	var project models.Project
	if err := r.db.WithContext(ctx).First(&project, id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *ApplicationGormRepository) GetUser(
	ctx context.Context,
	id string,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// --------------------------------------------------
// Application
// --------------------------------------------------

func (r *ApplicationGormRepository) Create(
	ctx context.Context,
	app *models.Application,
) error {
	return r.db.WithContext(ctx).Create(app).Error
}

func (r *ApplicationGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.Application, error) {

	var app models.Application
	if err := r.db.WithContext(ctx).
		Preload("Project").
		Preload("Client").
		First(&app, id).Error; err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationGormRepository) ListAll(
	ctx context.Context,
) ([]models.Application, error) {

	var apps []models.Application
	if err := r.db.WithContext(ctx).
		Preload("Project").
		Preload("Client").
		Order("created_at DESC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *ApplicationGormRepository) ListByClient(
	ctx context.Context,
	clientID string,
) ([]models.Application, error) {

	var apps []models.Application
	if err := r.db.WithContext(ctx).
		Preload("Project").
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// Update persists the row itself; hydrated associations are read-only here.
func (r *ApplicationGormRepository) Update(
	ctx context.Context,
	app *models.Application,
) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(app).Error
}

// Compile-time check
var _ domain.Repository = (*ApplicationGormRepository)(nil)
