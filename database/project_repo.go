package database

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/meridianstudio/site-backend/models"
)

// ProjectFilter narrows a project listing. Zero values mean "no filter".
// Service matches set membership in the services column; Location is a
// case-insensitive substring match; Year is exact.
type ProjectFilter struct {
	Featured bool
	Service  string
	Location string
	Year     int
}

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// List returns projects ordered newest-first. Unpublished rows are excluded
// unless includeUnpublished is set (admin context).
func (r *ProjectRepo) List(includeUnpublished bool) ([]*models.Project, error) {
	return r.ListFiltered(includeUnpublished, ProjectFilter{})
}

// ListFiltered returns projects matching the filter, ordered newest-first.
// All filter clauses compose with AND semantics.
func (r *ProjectRepo) ListFiltered(includeUnpublished bool, filter ProjectFilter) ([]*models.Project, error) {
	query := r.db.Order("created_at DESC")
	if !includeUnpublished {
		query = query.Where("published = ?", true)
	}
	if filter.Featured {
		query = query.Where("featured = ?", true)
	}
	if filter.Location != "" {
		query = query.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(filter.Location)+"%")
	}
	if filter.Year != 0 {
		query = query.Where("year = ?", filter.Year)
	}

	var projects []*models.Project
	if err := query.Find(&projects).Error; err != nil {
		return nil, err
	}

	// Services live in a JSON column, so membership is checked here rather
	// than in SQL. Listings are small enough that this is not a concern.
	if filter.Service != "" {
		filtered := projects[:0]
		for _, p := range projects {
			if p.Services.Contains(filter.Service) {
				filtered = append(filtered, p)
			}
		}
		projects = filtered
	}

	return projects, nil
}

// FindBySlug returns the first project with the given slug, or nil when no
// row matches. Unpublished projects are invisible to anonymous lookups; a
// hidden slug reports not-found rather than "filtered".
func (r *ProjectRepo) FindBySlug(slug string, includeUnpublished bool) (*models.Project, error) {
	query := r.db.Where("slug = ?", slug)
	if !includeUnpublished {
		query = query.Where("published = ?", true)
	}

	var project models.Project
	err := query.First(&project).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// FindByID returns a project by its ID, or nil when it does not exist.
func (r *ProjectRepo) FindByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Add inserts a new project into the database
func (r *ProjectRepo) Add(project *models.Project) error {
	return r.db.Create(project).Error
}

// Update updates an existing project in the database
func (r *ProjectRepo) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

// Delete removes a project from the database by id
func (r *ProjectRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Project{}, "id = ?", id).Error
}

// Count returns the total number of projects, published or not.
func (r *ProjectRepo) Count() (int64, error) {
	var n int64
	err := r.db.Model(&models.Project{}).Count(&n).Error
	return n, err
}
