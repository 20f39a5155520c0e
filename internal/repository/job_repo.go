package repository

import (
	"lokerhub/internal/models"

	"gorm.io/gorm"
)

type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db: db}
}

func (r *JobRepository) Create(j *models.Job) error {
	return storeErr(r.db.Create(j).Error)
}

func (r *JobRepository) GetByID(id uint) (*models.Job, error) {
	var j models.Job
	if err := r.db.Preload("Company").First(&j, id).Error; err != nil {
		return nil, storeErr(err)
	}
	return &j, nil
}

// UpdateFields applies a partial field set scoped to the owning company.
// Returns gorm.ErrRecordNotFound if the job does not belong to companyID.
// Zero rows affected means no match thanks to matched-rows reporting
// (clientFoundRows in the DSN), so resubmitting identical values is fine.
func (r *JobRepository) UpdateFields(id, companyID uint, fields map[string]interface{}) error {
	res := r.db.Model(&models.Job{}).Where("id = ? AND company_id = ?", id, companyID).Updates(fields)
	if res.Error != nil {
		return storeErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *JobRepository) Delete(id, companyID uint) error {
	res := r.db.Where("id = ? AND company_id = ?", id, companyID).Delete(&models.Job{})
	if res.Error != nil {
		return storeErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListActive returns active postings newest first, with optional title search
// and type filter, company expanded for the card view.
func (r *JobRepository) ListActive(search, jobType string, limit, offset int) ([]models.Job, error) {
	q := r.db.Where("is_active = ?", true).Preload("Company").Order("created_at DESC")
	if search != "" {
		q = q.Where("title LIKE ?", "%"+search+"%")
	}
	if jobType != "" {
		q = q.Where("type = ?", jobType)
	}
	var list []models.Job
	err := q.Limit(limit).Offset(offset).Find(&list).Error
	return list, storeErr(err)
}

func (r *JobRepository) ListByCompanyID(companyID uint, limit, offset int) ([]models.Job, error) {
	var list []models.Job
	err := r.db.Where("company_id = ?", companyID).Order("created_at DESC").Limit(limit).Offset(offset).Find(&list).Error
	return list, storeErr(err)
}

// CompanyStats are the headline counts on the company dashboard.
type CompanyStats struct {
	TotalJobs         int64 `json:"total_jobs"`
	ActiveJobs        int64 `json:"active_jobs"`
	TotalApplicants   int64 `json:"total_applicants"`
	PendingApplicants int64 `json:"pending_applicants"`
}

func (r *JobRepository) StatsByCompanyID(companyID uint) (*CompanyStats, error) {
	var s CompanyStats
	if err := r.db.Model(&models.Job{}).Where("company_id = ?", companyID).Count(&s.TotalJobs).Error; err != nil {
		return nil, storeErr(err)
	}
	if err := r.db.Model(&models.Job{}).Where("company_id = ? AND is_active = ?", companyID, true).Count(&s.ActiveJobs).Error; err != nil {
		return nil, storeErr(err)
	}
	base := r.db.Table("applications a").
		Joins("INNER JOIN jobs j ON j.id = a.job_id AND j.deleted_at IS NULL").
		Where("j.company_id = ? AND a.deleted_at IS NULL", companyID)
	if err := base.Count(&s.TotalApplicants).Error; err != nil {
		return nil, storeErr(err)
	}
	if err := r.db.Table("applications a").
		Joins("INNER JOIN jobs j ON j.id = a.job_id AND j.deleted_at IS NULL").
		Where("j.company_id = ? AND a.deleted_at IS NULL AND a.status = ?", companyID, "Pending").
		Count(&s.PendingApplicants).Error; err != nil {
		return nil, storeErr(err)
	}
	return &s, nil
}
