package models

import (
	"time"
)

// SavedJob is a jobseeker's bookmark on a job. The unique index makes the
// store the arbiter under concurrent toggles.
type SavedJob struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index:idx_saved_user_job,unique" json:"user_id"`
	JobID     uint      `gorm:"not null;index:idx_saved_user_job,unique" json:"job_id"`
	CreatedAt time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
	Job  Job  `gorm:"foreignKey:JobID" json:"job,omitempty"`
}

func (SavedJob) TableName() string {
	return "saved_jobs"
}
