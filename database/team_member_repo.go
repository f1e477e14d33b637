package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/meridianstudio/site-backend/models"
)

type TeamMemberRepo struct {
	db *gorm.DB
}

func NewTeamMemberRepo(db *gorm.DB) *TeamMemberRepo {
	return &TeamMemberRepo{db}
}

// List returns team members in display order (order_index ascending).
// Unpublished rows are excluded unless includeUnpublished is set.
func (r *TeamMemberRepo) List(includeUnpublished bool) ([]*models.TeamMember, error) {
	query := r.db.Order("order_index ASC")
	if !includeUnpublished {
		query = query.Where("published = ?", true)
	}

	var members []*models.TeamMember
	err := query.Find(&members).Error
	return members, err
}

// FindByID returns a team member by ID, or nil when it does not exist.
func (r *TeamMemberRepo) FindByID(id uuid.UUID) (*models.TeamMember, error) {
	var member models.TeamMember
	err := r.db.First(&member, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// Add inserts a new team member into the database
func (r *TeamMemberRepo) Add(member *models.TeamMember) error {
	return r.db.Create(member).Error
}

// Update updates an existing team member in the database
func (r *TeamMemberRepo) Update(member *models.TeamMember) error {
	return r.db.Save(member).Error
}

// Delete removes a team member from the database by id
func (r *TeamMemberRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.TeamMember{}, "id = ?", id).Error
}

// Count returns the total number of team members, published or not.
func (r *TeamMemberRepo) Count() (int64, error) {
	var n int64
	err := r.db.Model(&models.TeamMember{}).Count(&n).Error
	return n, err
}
