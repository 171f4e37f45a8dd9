package repository

import (
	"context"

	"zhanyixia/internal/domain"
	"zhanyixia/internal/models"

	"gorm.io/gorm"
)

type CaseRepository struct {
	db *gorm.DB
}

func NewCaseRepository(db *gorm.DB) *CaseRepository {
	return &CaseRepository{db: db}
}

func (r *CaseRepository) ListAll(ctx context.Context) ([]models.Case, error) {
	var list []models.Case
	err := r.db.WithContext(ctx).Order("sort_order").Find(&list).Error
	return list, err
}

func (r *CaseRepository) ListPublished(ctx context.Context) ([]models.Case, error) {
	var list []models.Case
	err := r.db.WithContext(ctx).
		Where("status = ?", domain.StatusPublished).
		Order("sort_order").
		Find(&list).Error
	return list, err
}

func (r *CaseRepository) GetByID(ctx context.Context, id uint) (*models.Case, error) {
	var c models.Case
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CaseRepository) Create(ctx context.Context, c *models.Case) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CaseRepository) Update(ctx context.Context, c *models.Case) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *CaseRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	return r.db.WithContext(ctx).
		Model(&models.Case{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *CaseRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Case{}, id).Error
}

func (r *CaseRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Case{}).Count(&n).Error
	return n, err
}
