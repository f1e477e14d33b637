package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/meridianstudio/site-backend/models"
)

type BlogPostRepo struct {
	db *gorm.DB
}

func NewBlogPostRepo(db *gorm.DB) *BlogPostRepo {
	return &BlogPostRepo{db}
}

// List returns blog posts ordered by publish date, newest first. Posts with
// no publish date sort last. Unpublished rows are excluded unless
// includeUnpublished is set.
func (r *BlogPostRepo) List(includeUnpublished bool) ([]*models.BlogPost, error) {
	query := r.db.Order("publish_date IS NULL").Order("publish_date DESC")
	if !includeUnpublished {
		query = query.Where("published = ?", true)
	}

	var posts []*models.BlogPost
	err := query.Find(&posts).Error
	return posts, err
}

// ListRecent returns blog posts ordered by creation time, newest first.
// Used by the admin dashboard, which shows recently authored posts rather
// than the editorial publish order.
func (r *BlogPostRepo) ListRecent(includeUnpublished bool) ([]*models.BlogPost, error) {
	query := r.db.Order("created_at DESC")
	if !includeUnpublished {
		query = query.Where("published = ?", true)
	}

	var posts []*models.BlogPost
	err := query.Find(&posts).Error
	return posts, err
}

// FindBySlug returns the first post with the given slug, or nil when no row
// matches. Unpublished posts are invisible to anonymous lookups.
func (r *BlogPostRepo) FindBySlug(slug string, includeUnpublished bool) (*models.BlogPost, error) {
	query := r.db.Where("slug = ?", slug)
	if !includeUnpublished {
		query = query.Where("published = ?", true)
	}

	var post models.BlogPost
	err := query.First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// FindByID returns a blog post by its ID, or nil when it does not exist.
func (r *BlogPostRepo) FindByID(id uuid.UUID) (*models.BlogPost, error) {
	var post models.BlogPost
	err := r.db.First(&post, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Add inserts a new blog post into the database
func (r *BlogPostRepo) Add(post *models.BlogPost) error {
	return r.db.Create(post).Error
}

// Update updates an existing blog post in the database
func (r *BlogPostRepo) Update(post *models.BlogPost) error {
	return r.db.Save(post).Error
}

// Delete removes a blog post from the database by id
func (r *BlogPostRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.BlogPost{}, "id = ?", id).Error
}

// Count returns the total number of blog posts, published or not.
func (r *BlogPostRepo) Count() (int64, error) {
	var n int64
	err := r.db.Model(&models.BlogPost{}).Count(&n).Error
	return n, err
}
