package models

import "time"

// SiteStat is one headline number on the home/cases pages ("1000+" etc.).
type SiteStat struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	StatLabel    string    `gorm:"size:100;not null" json:"stat_label"`
	StatValue    string    `gorm:"size:50;not null" json:"stat_value"`
	DisplayOrder int       `gorm:"not null;default:0" json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (SiteStat) TableName() string { return "site_stats" }
