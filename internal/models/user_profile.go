package models

import (
	"time"

	"zhanyixia/internal/domain"

	"gorm.io/gorm"
)

// UserProfile is a back-office account. Only role=admin may enter /admin.
type UserProfile struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	UserID       string         `gorm:"uniqueIndex;size:64;not null" json:"user_id"`
	Email        string         `gorm:"uniqueIndex;size:255;not null" json:"email"`
	DisplayName  string         `gorm:"size:100" json:"display_name"`
	PasswordHash string         `gorm:"size:255" json:"-"`
	Role         string         `gorm:"size:20;not null;default:other;index" json:"role"` // admin | other
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (UserProfile) TableName() string { return "user_profiles" }

func (u *UserProfile) IsAdmin() bool { return u.Role == domain.RoleAdmin }
