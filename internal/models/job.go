package models

import (
	"time"

	"gorm.io/gorm"
)

type Job struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	CompanyID    uint           `gorm:"not null;index" json:"company_id"` // user ID of the owning company
	Title        string         `gorm:"size:255;not null" json:"title"`
	Type         string         `gorm:"size:20;not null;index" json:"type"` // Fulltime, Parttime, Internship, Contract
	Location     string         `gorm:"size:255" json:"location"`
	SalaryMin    int64          `json:"salary_min"`
	SalaryMax    int64          `json:"salary_max"`
	Description  string         `gorm:"type:text" json:"description"`
	Requirements string         `gorm:"type:text" json:"requirements"`
	IsActive     bool           `gorm:"default:true;index" json:"is_active"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	Company CompanyProfile `gorm:"foreignKey:CompanyID;references:UserID" json:"company,omitempty"`
}

func (Job) TableName() string {
	return "jobs"
}
