package db

import (
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Natalia-Nic/construction-company-api/internal/logger"
	"github.com/Natalia-Nic/construction-company-api/internal/models"
)

// Open connects to the database named by dsn and runs migrations.
// A postgres:// URL selects the postgres driver; anything else is treated
// as a sqlite DSN (file path or in-memory), which local runs and tests use.
func Open(dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	lower := strings.ToLower(strings.TrimSpace(dsn))
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		dialector = postgres.Open(dsn)
	} else {
		dialector = sqlite.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.Project{},
		&models.Application{},
		&models.AuditLog{},
	)
}

// MustOpen is Open for main; it exits the process on failure.
func MustOpen(dsn string) *gorm.DB {
	db, err := Open(dsn)
	if err != nil {
		logger.Get().Fatal().Err(err).Msg("failed to connect database")
	}
	return db
}
