package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/meridianstudio/site-backend/models"
)

type AdminUserRepo struct {
	db *gorm.DB
}

func NewAdminUserRepo(db *gorm.DB) *AdminUserRepo {
	return &AdminUserRepo{db}
}

// FindByEmail returns the admin user with the given email, or nil.
func (r *AdminUserRepo) FindByEmail(email string) (*models.AdminUser, error) {
	var user models.AdminUser
	err := r.db.First(&user, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByID returns an admin user by ID, or nil when it does not exist.
func (r *AdminUserRepo) FindByID(id uuid.UUID) (*models.AdminUser, error) {
	var user models.AdminUser
	err := r.db.First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Add inserts a new admin user into the database
func (r *AdminUserRepo) Add(user *models.AdminUser) error {
	return r.db.Create(user).Error
}

// Count returns the number of admin users. Zero means the instance has not
// been bootstrapped yet and signup is open.
func (r *AdminUserRepo) Count() (int64, error) {
	var n int64
	err := r.db.Model(&models.AdminUser{}).Count(&n).Error
	return n, err
}
