package models

import (
	"time"

	"gorm.io/gorm"
)

// JobseekerProfile is the one-to-one profile for a JOBSEEKER user.
type JobseekerProfile struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserID    uint           `gorm:"uniqueIndex;not null" json:"user_id"`
	FirstName string         `gorm:"size:100" json:"first_name"`
	LastName  string         `gorm:"size:100" json:"last_name"`
	Headline  string         `gorm:"size:255" json:"headline"`
	Bio       string         `gorm:"type:text" json:"bio"`
	Phone     string         `gorm:"size:32" json:"phone"`
	AvatarURL string         `gorm:"size:512" json:"avatar_url"`
	ResumeURL string         `gorm:"size:512" json:"resume_url"`
	Skills    string         `gorm:"type:text" json:"skills"` // comma separated
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (JobseekerProfile) TableName() string {
	return "jobseeker_profiles"
}

// CompanyProfile is the one-to-one profile for a COMPANY user.
type CompanyProfile struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	UserID      uint           `gorm:"uniqueIndex;not null" json:"user_id"`
	CompanyName string         `gorm:"size:255" json:"company_name"`
	PICName     string         `gorm:"size:100" json:"pic_name"`
	Industry    string         `gorm:"size:100" json:"industry"`
	Website     string         `gorm:"size:255" json:"website"`
	Address     string         `gorm:"size:512" json:"address"`
	Description string         `gorm:"type:text" json:"description"`
	LogoURL     string         `gorm:"size:512" json:"logo_url"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (CompanyProfile) TableName() string {
	return "company_profiles"
}
