// Package database provides the Postgres connection for the backend.
package database

import (
	"fmt"

	"github.com/codeyousef/portfolio-sub001/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// PostgresConfig carries the connection settings for Postgres.
type PostgresConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// Connect opens a GORM connection and migrates the schema. Duplicate-key
// errors are translated so repositories can match gorm.ErrDuplicatedKey.
func Connect(cfg PostgresConfig) (*gorm.DB, error) {
	if cfg.SSLMode == "" {
		cfg.SSLMode = "disable"
	}
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.BlogPost{},
		&models.BlogPostTag{},
		&models.Project{},
		&models.ProjectTechnology{},
		&models.Service{},
		&models.ServiceFeature{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return db, nil
}
