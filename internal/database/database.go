package database

import (
	"strings"

	"lokerhub/config"
	"lokerhub/internal/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ensureFoundRows forces matched-rows reporting on the connection. The
// repositories read RowsAffected after conditional updates and must see
// "matched" rather than the driver's default "changed", or a no-op update
// with identical values would look like a missing row.
func ensureFoundRows(dsn string) string {
	if strings.Contains(dsn, "clientFoundRows") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "clientFoundRows=true"
}

func NewDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(ensureFoundRows(cfg.DSN)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error), // Only log errors, not every SQL query
		// Map driver duplicate-key errors to gorm.ErrDuplicatedKey so the
		// repositories can treat uniqueness conflicts as domain outcomes.
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	return db, nil
}

// AutoMigrate runs Gorm auto-migration for all models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.JobseekerProfile{},
		&models.CompanyProfile{},
		&models.Job{},
		&models.Application{},
		&models.Notification{},
		&models.SavedJob{},
	)
}
