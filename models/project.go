package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Project represents a built or in-progress work shown in the portfolio.
// Slug is the public identity used for detail-page routing.
type Project struct {
	ID            uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey"`
	Title         string     `json:"title" db:"title" gorm:"type:text;not null"`
	Slug          string     `json:"slug" db:"slug" gorm:"type:text;not null;index:idx_project_slug"`
	Description   string     `json:"description" db:"description" gorm:"type:text"`
	FeaturedImage string     `json:"featured_image" db:"featured_image" gorm:"type:text"`
	Gallery       StringList `json:"gallery" db:"gallery" gorm:"serializer:json"`
	Location      string     `json:"location" db:"location" gorm:"type:text"`
	Year          int        `json:"year" db:"year"`
	Area          string     `json:"area" db:"area" gorm:"type:text"`
	Services      StringList `json:"services" db:"services" gorm:"serializer:json"`
	Featured      bool       `json:"featured" db:"featured" gorm:"default:false"`
	Published     bool       `json:"published" db:"published" gorm:"default:false"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Slug == "" {
		p.Slug = Slugify(p.Title)
	}
	return nil
}
