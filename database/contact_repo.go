package database

import (
	"gorm.io/gorm"

	"github.com/meridianstudio/site-backend/models"
)

// ContactRepo is intentionally narrow: inquiries are created by the public
// form and read by admins. There is no update or delete surface.
type ContactRepo struct {
	db *gorm.DB
}

func NewContactRepo(db *gorm.DB) *ContactRepo {
	return &ContactRepo{db}
}

// List returns all contact inquiries, newest first.
func (r *ContactRepo) List() ([]*models.Contact, error) {
	var contacts []*models.Contact
	err := r.db.Order("created_at DESC").Find(&contacts).Error
	return contacts, err
}

// Add inserts a new contact inquiry into the database
func (r *ContactRepo) Add(contact *models.Contact) error {
	return r.db.Create(contact).Error
}

// Count returns the total number of contact inquiries.
func (r *ContactRepo) Count() (int64, error) {
	var n int64
	err := r.db.Model(&models.Contact{}).Count(&n).Error
	return n, err
}
