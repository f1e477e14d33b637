package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/meridianstudio/site-backend/models"
)

type TestimonialRepo struct {
	db *gorm.DB
}

func NewTestimonialRepo(db *gorm.DB) *TestimonialRepo {
	return &TestimonialRepo{db}
}

// List returns testimonials ordered newest-first. Unpublished rows are
// excluded unless includeUnpublished is set; featuredOnly narrows further.
func (r *TestimonialRepo) List(includeUnpublished, featuredOnly bool) ([]*models.Testimonial, error) {
	query := r.db.Order("created_at DESC")
	if !includeUnpublished {
		query = query.Where("published = ?", true)
	}
	if featuredOnly {
		query = query.Where("featured = ?", true)
	}

	var testimonials []*models.Testimonial
	err := query.Find(&testimonials).Error
	return testimonials, err
}

// FindByID returns a testimonial by ID, or nil when it does not exist.
func (r *TestimonialRepo) FindByID(id uuid.UUID) (*models.Testimonial, error) {
	var testimonial models.Testimonial
	err := r.db.First(&testimonial, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &testimonial, nil
}

// Add inserts a new testimonial into the database
func (r *TestimonialRepo) Add(testimonial *models.Testimonial) error {
	return r.db.Create(testimonial).Error
}

// Update updates an existing testimonial in the database
func (r *TestimonialRepo) Update(testimonial *models.Testimonial) error {
	return r.db.Save(testimonial).Error
}

// Delete removes a testimonial from the database by id
func (r *TestimonialRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Testimonial{}, "id = ?", id).Error
}

// Count returns the total number of testimonials, published or not.
func (r *TestimonialRepo) Count() (int64, error) {
	var n int64
	err := r.db.Model(&models.Testimonial{}).Count(&n).Error
	return n, err
}
