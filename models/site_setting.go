package models

import "time"

// SiteSetting is one row of the flat key->value settings table. There is no
// schema over keys; an absent key hides the corresponding UI element.
type SiteSetting struct {
	Key       string    `json:"key" db:"key" gorm:"type:text;primaryKey"`
	Value     string    `json:"value" db:"value" gorm:"type:text"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
