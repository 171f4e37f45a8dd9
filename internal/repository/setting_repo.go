package repository

import (
	"context"

	"zhanyixia/internal/models"

	"gorm.io/gorm"
)

type SettingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

// ListAll returns every setting ordered by category, then key. This ordering
// is what the grouped admin view derives from.
func (r *SettingRepository) ListAll(ctx context.Context) ([]models.SiteSetting, error) {
	var list []models.SiteSetting
	err := r.db.WithContext(ctx).Order("category").Order("setting_key").Find(&list).Error
	return list, err
}

// ListPublic returns only rows exposed to the public site.
func (r *SettingRepository) ListPublic(ctx context.Context) ([]models.SiteSetting, error) {
	var list []models.SiteSetting
	err := r.db.WithContext(ctx).
		Where("is_public = ?", true).
		Order("category").Order("setting_key").
		Find(&list).Error
	return list, err
}

func (r *SettingRepository) Get(ctx context.Context, key string) (string, error) {
	var s models.SiteSetting
	if err := r.db.WithContext(ctx).Where("setting_key = ?", key).First(&s).Error; err != nil {
		return "", err
	}
	return s.SettingValue, nil
}

// UpdateValue writes the value column of one row by id.
func (r *SettingRepository) UpdateValue(ctx context.Context, id uint, value string) error {
	return r.db.WithContext(ctx).
		Model(&models.SiteSetting{}).
		Where("id = ?", id).
		Update("setting_value", value).Error
}
