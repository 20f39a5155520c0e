package repository

import (
	"lokerhub/internal/models"

	"gorm.io/gorm"
)

type JobseekerRepository struct {
	db *gorm.DB
}

func NewJobseekerRepository(db *gorm.DB) *JobseekerRepository {
	return &JobseekerRepository{db: db}
}

func (r *JobseekerRepository) Create(p *models.JobseekerProfile) error {
	return storeErr(r.db.Create(p).Error)
}

func (r *JobseekerRepository) GetByUserID(userID uint) (*models.JobseekerProfile, error) {
	var p models.JobseekerProfile
	if err := r.db.Where("user_id = ?", userID).First(&p).Error; err != nil {
		return nil, storeErr(err)
	}
	return &p, nil
}

// UpdateFields applies a partial field set scoped to the owning user.
func (r *JobseekerRepository) UpdateFields(userID uint, fields map[string]interface{}) error {
	return storeErr(r.db.Model(&models.JobseekerProfile{}).Where("user_id = ?", userID).Updates(fields).Error)
}

type CompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

func (r *CompanyRepository) Create(p *models.CompanyProfile) error {
	return storeErr(r.db.Create(p).Error)
}

func (r *CompanyRepository) GetByUserID(userID uint) (*models.CompanyProfile, error) {
	var p models.CompanyProfile
	if err := r.db.Where("user_id = ?", userID).First(&p).Error; err != nil {
		return nil, storeErr(err)
	}
	return &p, nil
}

func (r *CompanyRepository) UpdateFields(userID uint, fields map[string]interface{}) error {
	return storeErr(r.db.Model(&models.CompanyProfile{}).Where("user_id = ?", userID).Updates(fields).Error)
}
