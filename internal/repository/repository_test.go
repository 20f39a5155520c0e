package repository

import (
	"fmt"
	"testing"
	"time"

	"lokerhub/internal/database"
	"lokerhub/internal/domain"
	"lokerhub/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory database with the same migration and
// error-translation setup as production. SQLite reports matched rows for
// updates, matching the clientFoundRows semantics the MySQL DSN enforces.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.AutoMigrate(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email, role string) *models.User {
	t.Helper()
	u := &models.User{Email: email, PasswordHash: "x", Role: role}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedJob(t *testing.T, db *gorm.DB, companyID uint, title string) *models.Job {
	t.Helper()
	j := &models.Job{CompanyID: companyID, Title: title, Type: domain.JobTypeFulltime, IsActive: true}
	require.NoError(t, db.Create(j).Error)
	return j
}

func seedApplication(t *testing.T, db *gorm.DB, jobID, jobseekerID uint, status domain.Status) *models.Application {
	t.Helper()
	a := &models.Application{JobID: jobID, JobseekerID: jobseekerID, Status: status, AppliedAt: time.Now()}
	require.NoError(t, db.Create(a).Error)
	return a
}
