package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BlogPost represents a journal article. PublishDate is editorial and
// distinct from CreatedAt; public listings order by PublishDate.
type BlogPost struct {
	ID            uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey"`
	Title         string     `json:"title" db:"title" gorm:"type:text;not null"`
	Slug          string     `json:"slug" db:"slug" gorm:"type:text;not null;index:idx_blog_post_slug"`
	Excerpt       string     `json:"excerpt" db:"excerpt" gorm:"type:text"`
	Content       string     `json:"content" db:"content" gorm:"type:text;not null"`
	FeaturedImage string     `json:"featured_image" db:"featured_image" gorm:"type:text"`
	Author        string     `json:"author" db:"author" gorm:"type:text"`
	Category      string     `json:"category" db:"category" gorm:"type:text"`
	Tags          StringList `json:"tags" db:"tags" gorm:"serializer:json"`
	PublishDate   *time.Time `json:"publish_date,omitempty" db:"publish_date" gorm:"type:timestamp"`
	Featured      bool       `json:"featured" db:"featured" gorm:"default:false"`
	Published     bool       `json:"published" db:"published" gorm:"default:false"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`
}

func (p *BlogPost) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Slug == "" {
		p.Slug = Slugify(p.Title)
	}
	return nil
}
