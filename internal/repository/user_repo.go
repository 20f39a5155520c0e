package repository

import (
	"lokerhub/internal/models"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(u *models.User) error {
	return storeErr(r.db.Create(u).Error)
}

// CreateWithProfile inserts the user and their role profile in one
// transaction. A failed profile insert rolls the user back, so a registered
// account always has its profile row.
func (r *UserRepository) CreateWithProfile(u *models.User, profile interface{}) error {
	return storeErr(r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(u).Error; err != nil {
			return err
		}
		switch p := profile.(type) {
		case *models.JobseekerProfile:
			p.UserID = u.ID
		case *models.CompanyProfile:
			p.UserID = u.ID
		case nil:
			return nil
		}
		return tx.Create(profile).Error
	}))
}

func (r *UserRepository) GetByID(id uint) (*models.User, error) {
	var u models.User
	if err := r.db.First(&u, id).Error; err != nil {
		return nil, storeErr(err)
	}
	return &u, nil
}

func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var u models.User
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, storeErr(err)
	}
	return &u, nil
}

func (r *UserRepository) Update(u *models.User) error {
	return storeErr(r.db.Save(u).Error)
}
