package database

import (
	"log"

	"zhanyixia/config"
	"zhanyixia/internal/domain"
	"zhanyixia/internal/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error), // Only log errors, not every SQL query
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	return db, nil
}

// AutoMigrate runs Gorm auto-migration for all models. The production schema
// is provisioned externally; this keeps development databases in shape.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.UserProfile{},
		&models.Service{},
		&models.Case{},
		&models.FAQ{},
		&models.Testimonial{},
		&models.SiteSetting{},
		&models.SiteStat{},
	)
}

// SeedAdmin creates the bootstrap admin account when no profile exists yet.
func SeedAdmin(db *gorm.DB, cfg *config.AdminConfig) {
	var count int64
	if err := db.Model(&models.UserProfile{}).Count(&count).Error; err != nil || count > 0 {
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("seed admin: %v", err)
		return
	}
	admin := &models.UserProfile{
		UserID:       uuid.New().String(),
		Email:        cfg.Email,
		DisplayName:  "管理员",
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
	}
	if err := db.Create(admin).Error; err != nil {
		log.Printf("seed admin: %v", err)
		return
	}
	log.Printf("seeded admin account %s", cfg.Email)
}

// SeedSettings inserts default site settings that don't exist yet.
func SeedSettings(db *gorm.DB) error {
	defaults := []models.SiteSetting{
		{SettingKey: "site_name", SettingValue: "战一下电竞", SettingType: domain.SettingTypeText, Category: "general", Description: "网站名称", IsPublic: true},
		{SettingKey: "site_description", SettingValue: "专业电竞护航服务俱乐部", SettingType: domain.SettingTypeText, Category: "general", Description: "网站描述", IsPublic: true},
		{SettingKey: "maintenance_mode", SettingValue: "false", SettingType: domain.SettingTypeBoolean, Category: "general", Description: "维护模式", IsPublic: false},
		{SettingKey: "contact_phone", SettingValue: "", SettingType: domain.SettingTypeText, Category: "contact", Description: "联系电话", IsPublic: true},
		{SettingKey: "contact_email", SettingValue: "", SettingType: domain.SettingTypeText, Category: "contact", Description: "联系邮箱", IsPublic: true},
		{SettingKey: "contact_wechat", SettingValue: "", SettingType: domain.SettingTypeText, Category: "contact", Description: "微信号", IsPublic: true},
		{SettingKey: "social_qq_group", SettingValue: "", SettingType: domain.SettingTypeText, Category: "social", Description: "QQ群", IsPublic: true},
		{SettingKey: "social_douyin", SettingValue: "", SettingType: domain.SettingTypeText, Category: "social", Description: "抖音号", IsPublic: true},
		{SettingKey: "seo_keywords", SettingValue: "", SettingType: domain.SettingTypeText, Category: "seo", Description: "SEO关键词", IsPublic: false},
		{SettingKey: "seo_description", SettingValue: "", SettingType: domain.SettingTypeText, Category: "seo", Description: "SEO描述", IsPublic: false},
	}
	for _, s := range defaults {
		var count int64
		db.Model(&models.SiteSetting{}).Where("setting_key = ?", s.SettingKey).Count(&count)
		if count == 0 {
			if err := db.Create(&s).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
