package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamMember represents a member of the studio. OrderIndex controls display
// order on the about page, ascending.
type TeamMember struct {
	ID         uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey"`
	Name       string    `json:"name" db:"name" gorm:"type:text;not null"`
	Position   string    `json:"position" db:"position" gorm:"type:text;not null"`
	Bio        string    `json:"bio" db:"bio" gorm:"type:text"`
	Image      string    `json:"image" db:"image" gorm:"type:text"`
	Email      string    `json:"email" db:"email" gorm:"type:text"`
	Linkedin   string    `json:"linkedin" db:"linkedin" gorm:"type:text"`
	Twitter    string    `json:"twitter" db:"twitter" gorm:"type:text"`
	OrderIndex int       `json:"order_index" db:"order_index" gorm:"default:0"`
	Published  bool      `json:"published" db:"published" gorm:"default:false"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

func (m *TeamMember) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
