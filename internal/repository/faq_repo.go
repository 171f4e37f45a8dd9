package repository

import (
	"context"

	"zhanyixia/internal/domain"
	"zhanyixia/internal/models"

	"gorm.io/gorm"
)

type FAQRepository struct {
	db *gorm.DB
}

func NewFAQRepository(db *gorm.DB) *FAQRepository {
	return &FAQRepository{db: db}
}

// ListAll returns every FAQ ordered by category, then sort_order.
func (r *FAQRepository) ListAll(ctx context.Context) ([]models.FAQ, error) {
	var list []models.FAQ
	err := r.db.WithContext(ctx).Order("category").Order("sort_order").Find(&list).Error
	return list, err
}

func (r *FAQRepository) ListPublished(ctx context.Context) ([]models.FAQ, error) {
	var list []models.FAQ
	err := r.db.WithContext(ctx).
		Where("status = ?", domain.StatusPublished).
		Order("category").Order("sort_order").
		Find(&list).Error
	return list, err
}

func (r *FAQRepository) GetByID(ctx context.Context, id uint) (*models.FAQ, error) {
	var f models.FAQ
	if err := r.db.WithContext(ctx).First(&f, id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *FAQRepository) Create(ctx context.Context, f *models.FAQ) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *FAQRepository) Update(ctx context.Context, f *models.FAQ) error {
	return r.db.WithContext(ctx).Save(f).Error
}

func (r *FAQRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	return r.db.WithContext(ctx).
		Model(&models.FAQ{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *FAQRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.FAQ{}, id).Error
}

func (r *FAQRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.FAQ{}).Count(&n).Error
	return n, err
}
