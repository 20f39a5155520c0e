package repository

import (
	"errors"

	"lokerhub/internal/models"

	"gorm.io/gorm"
)

type SavedJobRepository struct {
	db *gorm.DB
}

func NewSavedJobRepository(db *gorm.DB) *SavedJobRepository {
	return &SavedJobRepository{db: db}
}

// Toggle flips the bookmark and returns the resulting saved state. The
// delete is attempted first; if it removed nothing the insert runs, and a
// duplicate-key conflict there means a concurrent toggle won the race, which
// is treated as a successful no-op rather than an error.
func (r *SavedJobRepository) Toggle(userID, jobID uint) (saved bool, err error) {
	res := r.db.Where("user_id = ? AND job_id = ?", userID, jobID).Delete(&models.SavedJob{})
	if res.Error != nil {
		return false, storeErr(res.Error)
	}
	if res.RowsAffected > 0 {
		return false, nil
	}
	err = r.db.Create(&models.SavedJob{UserID: userID, JobID: jobID}).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true, nil
	}
	if err != nil {
		return false, storeErr(err)
	}
	return true, nil
}

func (r *SavedJobRepository) IsSaved(userID, jobID uint) (bool, error) {
	var c int64
	err := r.db.Model(&models.SavedJob{}).Where("user_id = ? AND job_id = ?", userID, jobID).Count(&c).Error
	return c > 0, storeErr(err)
}

func (r *SavedJobRepository) ListByUserID(userID uint, limit, offset int) ([]models.SavedJob, error) {
	var list []models.SavedJob
	err := r.db.Where("user_id = ?", userID).
		Preload("Job").Preload("Job.Company").
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&list).Error
	return list, storeErr(err)
}

// ListSaverIDsByCompanyID returns user IDs of jobseekers who saved any job
// from this company (recipients of new-posting notifications).
func (r *SavedJobRepository) ListSaverIDsByCompanyID(companyID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Table("saved_jobs sj").
		Joins("INNER JOIN jobs j ON j.id = sj.job_id AND j.deleted_at IS NULL").
		Where("j.company_id = ?", companyID).
		Distinct().Pluck("sj.user_id", &ids).Error
	return ids, storeErr(err)
}
