package repository

import (
	"context"

	"zhanyixia/internal/models"

	"gorm.io/gorm"
)

type StatRepository struct {
	db *gorm.DB
}

func NewStatRepository(db *gorm.DB) *StatRepository {
	return &StatRepository{db: db}
}

func (r *StatRepository) ListAll(ctx context.Context) ([]models.SiteStat, error) {
	var list []models.SiteStat
	err := r.db.WithContext(ctx).Order("display_order").Find(&list).Error
	return list, err
}

func (r *StatRepository) GetByID(ctx context.Context, id uint) (*models.SiteStat, error) {
	var s models.SiteStat
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StatRepository) Create(ctx context.Context, s *models.SiteStat) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *StatRepository) Update(ctx context.Context, s *models.SiteStat) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *StatRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.SiteStat{}, id).Error
}
