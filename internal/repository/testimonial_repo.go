package repository

import (
	"context"

	"zhanyixia/internal/domain"
	"zhanyixia/internal/models"

	"gorm.io/gorm"
)

type TestimonialRepository struct {
	db *gorm.DB
}

func NewTestimonialRepository(db *gorm.DB) *TestimonialRepository {
	return &TestimonialRepository{db: db}
}

func (r *TestimonialRepository) ListAll(ctx context.Context) ([]models.Testimonial, error) {
	var list []models.Testimonial
	err := r.db.WithContext(ctx).Order("sort_order").Find(&list).Error
	return list, err
}

func (r *TestimonialRepository) ListPublished(ctx context.Context) ([]models.Testimonial, error) {
	var list []models.Testimonial
	err := r.db.WithContext(ctx).
		Where("status = ?", domain.StatusPublished).
		Order("sort_order").
		Find(&list).Error
	return list, err
}

func (r *TestimonialRepository) GetByID(ctx context.Context, id uint) (*models.Testimonial, error) {
	var t models.Testimonial
	if err := r.db.WithContext(ctx).First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TestimonialRepository) Create(ctx context.Context, t *models.Testimonial) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TestimonialRepository) Update(ctx context.Context, t *models.Testimonial) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *TestimonialRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	return r.db.WithContext(ctx).
		Model(&models.Testimonial{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *TestimonialRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Testimonial{}, id).Error
}

func (r *TestimonialRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Testimonial{}).Count(&n).Error
	return n, err
}
