package models

import (
	"time"

	"lokerhub/internal/domain"

	"gorm.io/gorm"
)

type User struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Email        string         `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash string         `gorm:"size:255" json:"-"`
	Role         string         `gorm:"size:20;not null;index" json:"role"` // JOBSEEKER | COMPANY
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	JobseekerProfile *JobseekerProfile `gorm:"foreignKey:UserID" json:"jobseeker_profile,omitempty"`
	CompanyProfile   *CompanyProfile   `gorm:"foreignKey:UserID" json:"company_profile,omitempty"`
}

func (u *User) IsJobseeker() bool { return u.Role == domain.RoleJobseeker }
func (u *User) IsCompany() bool   { return u.Role == domain.RoleCompany }
