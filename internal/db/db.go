package db

import (
	"grove/internal/config"
	"grove/internal/logger"
	"grove/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg config.AppConfig) {
	dsn := cfg.DatabaseURL
	if dsn == "" {
		// Fallback for local dev if not set
		dsn = "host=localhost user=postgres password=postgres dbname=grove port=5432 sslmode=disable"
	}

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		logger.Sugar.Fatalf("Failed to connect to database: %v", err)
	}

	logger.Sugar.Info("Database connection established")

	err = DB.AutoMigrate(
		&models.User{},
		&models.Group{},
		&models.Post{},
		&models.Comment{},
		&models.Follow{},
	)
	if err != nil {
		logger.Sugar.Fatalf("Failed to migrate database: %v", err)
	}
	logger.Sugar.Info("Database migration completed")

	seedGroups()
}

// seedGroups creates a starter set of groups on an empty database. Groups are
// otherwise created through the admin service only.
func seedGroups() {
	var count int64
	DB.Model(&models.Group{}).Count(&count)
	if count > 0 {
		return
	}

	groups := []models.Group{
		{Title: "Tech", Slug: "tech", Description: "Technology posts and discussion"},
		{Title: "Life", Slug: "life", Description: "Everyday life and experiences"},
		{Title: "Showcase", Slug: "showcase", Description: "Show off your projects"},
		{Title: "Random", Slug: "random", Description: "Everything else"},
	}

	for _, group := range groups {
		if err := DB.Create(&group).Error; err != nil {
			logger.Sugar.Warnf("Failed to create group %s: %v", group.Slug, err)
		}
	}
	logger.Sugar.Info("Initial groups created")
}
