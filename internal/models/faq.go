package models

import (
	"time"

	"gorm.io/gorm"
)

type FAQ struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Category  string         `gorm:"size:50;not null;index" json:"category"`
	Question  string         `gorm:"size:512;not null" json:"question"`
	Answer    string         `gorm:"type:text;not null" json:"answer"`
	Status    string         `gorm:"size:20;not null;default:已发布;index" json:"status"` // 已发布 | 草稿
	SortOrder int            `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (FAQ) TableName() string { return "faqs" }
