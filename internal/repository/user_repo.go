package repository

import (
	"context"

	"zhanyixia/internal/models"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *models.UserProfile) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (*models.UserProfile, error) {
	var u models.UserProfile
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.UserProfile, error) {
	var u models.UserProfile
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Update(ctx context.Context, u *models.UserProfile) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.UserProfile{}).Count(&n).Error
	return n, err
}

// RoleByID satisfies middleware.RoleLookup.
func (r *UserRepository) RoleByID(ctx context.Context, id uint) (string, error) {
	var u models.UserProfile
	if err := r.db.WithContext(ctx).Select("role").First(&u, id).Error; err != nil {
		return "", err
	}
	return u.Role, nil
}
