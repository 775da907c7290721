package db

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Natalia-Nic/construction-company-api/internal/logger"
	"github.com/Natalia-Nic/construction-company-api/internal/models"
)

// Seed fills an empty database with the three roles, a demo user per role
// and the sample catalog. Safe to call on every start: each block only
// writes when its table is empty.
func Seed(db *gorm.DB) error {
	if err := seedRoles(db); err != nil {
		return err
	}
	if err := seedUsers(db); err != nil {
		return err
	}
	return seedProjects(db)
}

func seedRoles(db *gorm.DB) error {
	for _, name := range []string{models.RoleAdmin, models.RoleContractor, models.RoleClient} {
		var count int64
		if err := db.Model(&models.Role{}).Where("name = ?", name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := db.Create(&models.Role{Name: name}).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedUsers(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	seedAccounts := []struct {
		email    string
		password string
		fullName string
		phone    string
		role     string
	}{
		{"admin@test.com", "Admin123!", "System Administrator", "+79160000000", models.RoleAdmin},
		{"contractor@test.com", "Contractor123!", "Construction Company LLC", "+79167654321", models.RoleContractor},
		{"client@test.com", "Client123!", "Ivan Klientov", "+79161234567", models.RoleClient},
	}

	for _, acc := range seedAccounts {
		hashed, err := bcrypt.GenerateFromPassword([]byte(acc.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user := models.User{
			Email:        acc.email,
			PasswordHash: string(hashed),
			FullName:     acc.fullName,
			Phone:        acc.phone,
			Role:         acc.role,
		}
		if err := db.Create(&user).Error; err != nil {
			return err
		}
	}

	logger.Get().Info().Int("users", len(seedAccounts)).Msg("seeded demo accounts")
	return nil
}

func seedProjects(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Project{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	projects := []models.Project{
		{
			Name:           "House 'Alpha'",
			Description:    "Modern two-storey cottage with panoramic windows and a spacious living room. Ideal for a big family.",
			Price:          4500000.00,
			ImageURL:       "/house-alpha.jpg",
			PlanURL:        "/assets/plan-alpha.jpg",
			Specifications: "120m², 2 floors, 3 bedrooms, 2 bathrooms, garage",
			Area:           120,
			Bedrooms:       3,
			Bathrooms:      2,
		},
		{
			Name:           "Cottage 'Beta'",
			Description:    "Cosy single-storey house with a fireplace and a terrace. A great fit for a young family.",
			Price:          3200000.00,
			ImageURL:       "/house-beta.jpg",
			PlanURL:        "/assets/plan-beta.jpg",
			Specifications: "85m², 1 floor, 2 bedrooms, 1 bathroom, terrace",
			Area:           85,
			Bedrooms:       2,
			Bathrooms:      1,
		},
		{
			Name:           "Mansion 'Gamma'",
			Description:    "Spacious three-storey mansion with a pool and a sauna. For those who value comfort and luxury.",
			Price:          7800000.00,
			ImageURL:       "/house-gamma.jpg",
			PlanURL:        "/assets/plan-gamma.jpg",
			Specifications: "220m², 3 floors, 5 bedrooms, 3 bathrooms, pool",
			Area:           220,
			Bedrooms:       5,
			Bathrooms:      3,
		},
	}

	if err := db.Create(&projects).Error; err != nil {
		return err
	}

	logger.Get().Info().Int("projects", len(projects)).Msg("seeded catalog")
	return nil
}
