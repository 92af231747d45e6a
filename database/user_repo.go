package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/jamndev/portfolio-backend/models"
)

type UserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db}
}

// FindByEmail returns a user by email, or nil when no account exists.
func (r *UserRepo) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// Add inserts a new account.
func (r *UserRepo) Add(user *models.User) error {
	return r.db.Create(user).Error
}
