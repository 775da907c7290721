package db

import (
	"fmt"
	"testing"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Natalia-Nic/construction-company-api/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	d, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := Migrate(d); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return d
}

func TestSeedIdempotent(t *testing.T) {
	d := setupTestDB(t)

	if err := Seed(d); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	if err := Seed(d); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	var roleCount, userCount, projectCount int64
	d.Model(&models.Role{}).Count(&roleCount)
	d.Model(&models.User{}).Count(&userCount)
	d.Model(&models.Project{}).Count(&projectCount)

	if roleCount != 3 {
		t.Fatalf("expected 3 roles got %d", roleCount)
	}
	if userCount != 3 {
		t.Fatalf("expected 3 users got %d", userCount)
	}
	if projectCount != 3 {
		t.Fatalf("expected 3 projects got %d", projectCount)
	}
}

func TestSeedCatalogContents(t *testing.T) {
	d := setupTestDB(t)
	if err := Seed(d); err != nil {
		t.Fatalf("seed: %v", err)
	}

	var projects []models.Project
	if err := d.Order("id ASC").Find(&projects).Error; err != nil {
		t.Fatalf("list projects: %v", err)
	}
	if len(projects) != 3 {
		t.Fatalf("expected 3 projects got %d", len(projects))
	}

	wantAreas := []int{120, 85, 220}
	wantPrices := []float64{4500000.00, 3200000.00, 7800000.00}
	for i, p := range projects {
		if p.Area != wantAreas[i] {
			t.Fatalf("project %d: expected area %d got %d", p.ID, wantAreas[i], p.Area)
		}
		if p.Price != wantPrices[i] {
			t.Fatalf("project %d: expected price %.2f got %.2f", p.ID, wantPrices[i], p.Price)
		}
	}
}

func TestSeedUsersHaveHashedCredentials(t *testing.T) {
	d := setupTestDB(t)
	if err := Seed(d); err != nil {
		t.Fatalf("seed: %v", err)
	}

	var admin models.User
	if err := d.Where("email = ?", "admin@test.com").First(&admin).Error; err != nil {
		t.Fatalf("admin not seeded: %v", err)
	}
	if admin.Role != models.RoleAdmin {
		t.Fatalf("expected Admin role got %s", admin.Role)
	}
	if admin.ID == "" {
		t.Fatalf("expected generated user id")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("Admin123!")); err != nil {
		t.Fatalf("stored hash does not match seed password: %v", err)
	}
}
