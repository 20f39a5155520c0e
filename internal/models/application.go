package models

import (
	"time"

	"lokerhub/internal/domain"

	"gorm.io/gorm"
)

// Application tracks a jobseeker's request to be considered for a Job.
// The unique index on (job_id, jobseeker_id) is the authoritative guard
// against double-applies; status is written only by the workflow service.
type Application struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	JobID          uint           `gorm:"not null;index:idx_app_job_seeker,unique" json:"job_id"`
	JobseekerID    uint           `gorm:"not null;index:idx_app_job_seeker,unique" json:"jobseeker_id"` // user ID of the applicant
	Status         domain.Status  `gorm:"size:20;not null;index" json:"status"`
	AppliedAt      time.Time      `json:"applied_at"`
	CoverLetter    string         `gorm:"type:text" json:"cover_letter"`
	InterviewDate  *time.Time     `json:"interview_date"`
	InterviewLink  string         `gorm:"size:512" json:"interview_link"`
	InterviewNotes string         `gorm:"type:text" json:"interview_notes"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	Job       Job              `gorm:"foreignKey:JobID" json:"job,omitempty"`
	Jobseeker JobseekerProfile `gorm:"foreignKey:JobseekerID;references:UserID" json:"jobseeker,omitempty"`
}

func (Application) TableName() string {
	return "applications"
}
