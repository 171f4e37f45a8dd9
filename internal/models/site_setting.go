package models

import "time"

// SiteSetting is one key/value row of the global site configuration.
// Rows flagged is_public feed the public pages (contact info, SEO text).
type SiteSetting struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	SettingKey   string    `gorm:"uniqueIndex;size:100;not null" json:"setting_key"`
	SettingValue string    `gorm:"type:text" json:"setting_value"`
	SettingType  string    `gorm:"size:20;not null;default:text" json:"setting_type"` // text | boolean
	Category     string    `gorm:"size:50;not null;index" json:"category"`            // general | contact | social | seo
	Description  string    `gorm:"size:255" json:"description"`
	IsPublic     bool      `gorm:"not null;default:false" json:"is_public"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (SiteSetting) TableName() string { return "site_settings" }
