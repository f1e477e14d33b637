package database

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/meridianstudio/site-backend/models"
)

type SiteSettingRepo struct {
	db *gorm.DB
}

func NewSiteSettingRepo(db *gorm.DB) *SiteSettingRepo {
	return &SiteSettingRepo{db}
}

// All flattens the settings table into a single key->value map.
func (r *SiteSettingRepo) All() (map[string]string, error) {
	var rows []models.SiteSetting
	if err := r.db.Find(&rows).Error; err != nil {
		return nil, err
	}

	settings := make(map[string]string, len(rows))
	for _, row := range rows {
		settings[row.Key] = row.Value
	}
	return settings, nil
}

// Get returns a single setting row, or nil when the key is absent.
func (r *SiteSettingRepo) Get(key string) (*models.SiteSetting, error) {
	var row models.SiteSetting
	err := r.db.First(&row, "key = ?", key).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Upsert writes a single key, inserting or overwriting as needed.
func (r *SiteSettingRepo) Upsert(key, value string) (*models.SiteSetting, error) {
	row := models.SiteSetting{Key: key, Value: value, UpdatedAt: time.Now()}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// UpsertMany writes every provided key inside a single transaction, so a
// partial failure leaves no key updated.
func (r *SiteSettingRepo) UpsertMany(settings map[string]string) error {
	if len(settings) == 0 {
		return nil
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		for key, value := range settings {
			row := models.SiteSetting{Key: key, Value: value, UpdatedAt: now}
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "key"}},
				DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
			}).Create(&row).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}
