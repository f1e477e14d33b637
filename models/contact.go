package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Contact is an inquiry submitted through the public contact form.
// Write-only from the public side; never updated or deleted.
type Contact struct {
	ID          uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey"`
	Name        string    `json:"name" db:"name" gorm:"type:text;not null"`
	Email       string    `json:"email" db:"email" gorm:"type:text;not null"`
	Phone       string    `json:"phone" db:"phone" gorm:"type:text"`
	ProjectType string    `json:"project_type" db:"project_type" gorm:"type:text"`
	Message     string    `json:"message" db:"message" gorm:"type:text;not null"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

func (c *Contact) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
