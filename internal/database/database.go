package database

import (
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/princeprakhar/portfolio-backend/internal/models"
)

// Init opens the content database and migrates every model, ratings
// included, so the sqlite backend can share the connection. The unique index
// on ratings(project_id, rater_identity) comes from the model tags and is
// what the upsert conflict clause resolves against.
func Init(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(dialectorFor(databaseURL), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, err
	}

	if err := migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// InitRatings opens a dedicated connection for the rating store when it
// lives in a different database than the site content.
func InitRatings(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(dialectorFor(databaseURL), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&models.Rating{}); err != nil {
		return nil, err
	}
	return db, nil
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Project{},
		&models.Rating{},
		&models.Skill{},
		&models.Experience{},
		&models.Credential{},
		&models.ContactMessage{},
		&models.FeatureFlag{},
		&models.AdminUser{},
	)
}

func dialectorFor(databaseURL string) gorm.Dialector {
	if strings.HasPrefix(databaseURL, "postgres://") || strings.HasPrefix(databaseURL, "postgresql://") {
		return postgres.Open(databaseURL)
	}
	return sqlite.Open(databaseURL)
}
