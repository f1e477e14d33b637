package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Testimonial represents a client quote. ProjectName is free text, not a
// foreign key. Rating range is enforced at the API boundary, not here.
type Testimonial struct {
	ID             uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey"`
	ClientName     string    `json:"client_name" db:"client_name" gorm:"type:text;not null"`
	ClientPosition string    `json:"client_position" db:"client_position" gorm:"type:text"`
	ClientCompany  string    `json:"client_company" db:"client_company" gorm:"type:text"`
	Content        string    `json:"content" db:"content" gorm:"type:text;not null"`
	Rating         int       `json:"rating" db:"rating" gorm:"default:5"`
	ProjectName    string    `json:"project_name" db:"project_name" gorm:"type:text"`
	ClientImage    string    `json:"client_image" db:"client_image" gorm:"type:text"`
	Featured       bool      `json:"featured" db:"featured" gorm:"default:false"`
	Published      bool      `json:"published" db:"published" gorm:"default:false"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

func (t *Testimonial) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
