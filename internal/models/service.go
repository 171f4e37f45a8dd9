package models

import (
	"time"

	"zhanyixia/internal/domain"

	"gorm.io/gorm"
)

// Service is one orderable item on the services page.
type Service struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Category    string         `gorm:"size:50;not null;index" json:"category"`
	Name        string         `gorm:"size:255;not null" json:"name"`
	Price       int            `gorm:"not null" json:"price"` // whole yuan
	Description string         `gorm:"type:text" json:"description"`
	Status      string         `gorm:"size:20;not null;default:已上架;index" json:"status"` // 已上架 | 已下架
	SortOrder   int            `gorm:"not null;default:0" json:"sort_order"`
	ImageURL    string         `gorm:"size:512" json:"image_url,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (s *Service) IsListed() bool { return s.Status == domain.StatusListed }
