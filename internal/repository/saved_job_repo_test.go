package repository

import (
	"testing"

	"lokerhub/internal/domain"
	"lokerhub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestToggle(t *testing.T) {
	db := newTestDB(t)
	repo := NewSavedJobRepository(db)
	seeker := seedUser(t, db, "seeker@example.com", domain.RoleJobseeker)
	company := seedUser(t, db, "acme@example.com", domain.RoleCompany)
	job := seedJob(t, db, company.ID, "Backend Engineer")

	saved, err := repo.Toggle(seeker.ID, job.ID)
	require.NoError(t, err)
	assert.True(t, saved)
	on, err := repo.IsSaved(seeker.ID, job.ID)
	require.NoError(t, err)
	assert.True(t, on)

	// Second toggle returns to the original state.
	saved, err = repo.Toggle(seeker.ID, job.ID)
	require.NoError(t, err)
	assert.False(t, saved)
	on, err = repo.IsSaved(seeker.ID, job.ID)
	require.NoError(t, err)
	assert.False(t, on)

	// The hard delete frees the unique slot, so saving again works.
	saved, err = repo.Toggle(seeker.ID, job.ID)
	require.NoError(t, err)
	assert.True(t, saved)

	var count int64
	require.NoError(t, db.Model(&models.SavedJob{}).Where("user_id = ?", seeker.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count, "at most one row per (user, job)")
}

// The unique index is the guard Toggle's no-op branch keys on: a concurrent
// duplicate insert surfaces as gorm.ErrDuplicatedKey, never a second row.
func TestSavedJobUniqueIndex(t *testing.T) {
	db := newTestDB(t)
	seeker := seedUser(t, db, "seeker@example.com", domain.RoleJobseeker)
	company := seedUser(t, db, "acme@example.com", domain.RoleCompany)
	job := seedJob(t, db, company.ID, "Backend Engineer")

	require.NoError(t, db.Create(&models.SavedJob{UserID: seeker.ID, JobID: job.ID}).Error)
	err := db.Create(&models.SavedJob{UserID: seeker.ID, JobID: job.ID}).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestListSaverIDsByCompanyID(t *testing.T) {
	db := newTestDB(t)
	repo := NewSavedJobRepository(db)
	company := seedUser(t, db, "acme@example.com", domain.RoleCompany)
	other := seedUser(t, db, "other@example.com", domain.RoleCompany)
	a := seedUser(t, db, "a@example.com", domain.RoleJobseeker)
	b := seedUser(t, db, "b@example.com", domain.RoleJobseeker)
	job1 := seedJob(t, db, company.ID, "Backend Engineer")
	job2 := seedJob(t, db, company.ID, "Data Engineer")
	elsewhere := seedJob(t, db, other.ID, "Designer")

	for _, sj := range []models.SavedJob{
		{UserID: a.ID, JobID: job1.ID},
		{UserID: a.ID, JobID: job2.ID},
		{UserID: b.ID, JobID: job2.ID},
		{UserID: b.ID, JobID: elsewhere.ID},
	} {
		require.NoError(t, db.Create(&sj).Error)
	}

	ids, err := repo.ListSaverIDsByCompanyID(company.ID)
	require.NoError(t, err)
	// a saved two of the company's jobs but appears once.
	assert.ElementsMatch(t, []uint{a.ID, b.ID}, ids)
}
