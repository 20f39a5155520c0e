package repository

import (
	"errors"

	"lokerhub/internal/domain"
	"lokerhub/internal/models"

	"gorm.io/gorm"
)

type ApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// Create inserts a new application. The unique (job_id, jobseeker_id) index
// is the authoritative duplicate guard: a conflicting insert is reported as
// ErrDuplicateApplication, not a generic failure.
func (r *ApplicationRepository) Create(a *models.Application) error {
	err := r.db.Create(a).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrDuplicateApplication
	}
	return storeErr(err)
}

func (r *ApplicationRepository) GetByID(id uint) (*models.Application, error) {
	var a models.Application
	err := r.db.Preload("Job").Preload("Job.Company").First(&a, id).Error
	if err != nil {
		return nil, storeErr(err)
	}
	return &a, nil
}

// Transition moves the application from one status to another with a
// compare-and-swap on the prior status, and inserts the jobseeker
// notification in the same transaction so a status change can never commit
// without its notification. Zero rows affected at write time means another
// writer got there first (ErrStaleTransition) or the row is gone
// (ErrNotFound); either way nothing is mutated.
func (r *ApplicationRepository) Transition(id uint, from, to domain.Status, notify *models.Notification) error {
	return storeErr(r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Application{}).
			Where("id = ? AND status = ?", id, from).
			Update("status", to)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&models.Application{}).Where("id = ?", id).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return domain.ErrNotFound
			}
			return domain.ErrStaleTransition
		}
		if notify != nil {
			if err := tx.Create(notify).Error; err != nil {
				return err
			}
		}
		return nil
	}))
}

// SetInterview overwrites the interview fields, conditioned on the
// application still being in Interview so a concurrent move to a terminal
// status cannot be followed by an interview write. Repeated calls
// reschedule; matched-rows reporting (clientFoundRows in the DSN) keeps an
// identical reschedule from looking like a lost race.
func (r *ApplicationRepository) SetInterview(id uint, fields map[string]interface{}) error {
	res := r.db.Model(&models.Application{}).
		Where("id = ? AND status = ?", id, domain.StatusInterview).
		Updates(fields)
	if res.Error != nil {
		return storeErr(res.Error)
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := r.db.Model(&models.Application{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return storeErr(err)
		}
		if count == 0 {
			return domain.ErrNotFound
		}
		return domain.ErrStaleTransition
	}
	return nil
}

func (r *ApplicationRepository) ListByJobseekerID(jobseekerID uint, limit, offset int) ([]models.Application, error) {
	var list []models.Application
	err := r.db.Where("jobseeker_id = ?", jobseekerID).
		Preload("Job").Preload("Job.Company").
		Order("applied_at DESC").Limit(limit).Offset(offset).Find(&list).Error
	return list, storeErr(err)
}

// ListByCompanyID returns applications across the company's jobs, optionally
// filtered by status, applicant profile expanded.
func (r *ApplicationRepository) ListByCompanyID(companyID uint, status domain.Status, limit, offset int) ([]models.Application, error) {
	q := r.db.Joins("INNER JOIN jobs ON jobs.id = applications.job_id AND jobs.deleted_at IS NULL").
		Where("jobs.company_id = ?", companyID).
		Preload("Job").Preload("Jobseeker").
		Order("applications.applied_at DESC")
	if status != "" {
		q = q.Where("applications.status = ?", status)
	}
	var list []models.Application
	err := q.Limit(limit).Offset(offset).Find(&list).Error
	return list, storeErr(err)
}

// ListInterviewsByCompanyID returns the company's applications in Interview,
// scheduled ones first by date, for the interview calendar.
func (r *ApplicationRepository) ListInterviewsByCompanyID(companyID uint, limit, offset int) ([]models.Application, error) {
	var list []models.Application
	err := r.db.Joins("INNER JOIN jobs ON jobs.id = applications.job_id AND jobs.deleted_at IS NULL").
		Where("jobs.company_id = ? AND applications.status = ?", companyID, domain.StatusInterview).
		Preload("Job").Preload("Jobseeker").
		Order("applications.interview_date IS NULL, applications.interview_date ASC").
		Limit(limit).Offset(offset).Find(&list).Error
	return list, storeErr(err)
}

// CountByJobseekerPerStatus returns application counts keyed by status for
// the jobseeker dashboard.
func (r *ApplicationRepository) CountByJobseekerPerStatus(jobseekerID uint) (map[domain.Status]int64, error) {
	var rows []struct {
		Status domain.Status
		N      int64
	}
	err := r.db.Model(&models.Application{}).
		Select("status, COUNT(*) AS n").
		Where("jobseeker_id = ?", jobseekerID).
		Group("status").Scan(&rows).Error
	if err != nil {
		return nil, storeErr(err)
	}
	out := make(map[domain.Status]int64, len(rows))
	for _, row := range rows {
		out[row.Status] = row.N
	}
	return out, nil
}
