package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/princeprakhar/portfolio-backend/internal/models"
)

var ErrFlagNotFound = errors.New("feature flag not found")

// Known flag names. Seeded on startup so the admin panel always has the full
// set to toggle.
const (
	FlagProjectRatings      = "enableProjectRatings"
	FlagContactForm         = "enableContactForm"
	FlagProjects            = "enableProjects"
	FlagExperience          = "enableExperience"
	FlagDevelopmentProjects = "showDevelopmentProjects"
)

type FlagService struct {
	db *gorm.DB
}

func NewFlagService(db *gorm.DB) *FlagService {
	if db == nil {
		panic("database connection cannot be nil")
	}
	return &FlagService{db: db}
}

// EnsureDefaults inserts any missing known flags without overwriting
// existing values.
func (s *FlagService) EnsureDefaults(ctx context.Context) error {
	defaults := []models.FeatureFlag{
		{Name: FlagProjectRatings, Enabled: true, Description: "Project star ratings"},
		{Name: FlagContactForm, Enabled: true, Description: "Public contact form"},
		{Name: FlagProjects, Enabled: true, Description: "Projects showcase"},
		{Name: FlagExperience, Enabled: true, Description: "Experience section"},
		{Name: FlagDevelopmentProjects, Enabled: false, Description: "Show in-development projects"},
	}

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&defaults).Error
	if err != nil {
		return fmt.Errorf("%w: failed to seed feature flags: %v", ErrDatabaseQuery, err)
	}
	return nil
}

func (s *FlagService) All(ctx context.Context) ([]models.FeatureFlag, error) {
	var flags []models.FeatureFlag
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&flags).Error; err != nil {
		return nil, fmt.Errorf("%w: failed to fetch feature flags: %v", ErrDatabaseQuery, err)
	}
	return flags, nil
}

// IsEnabled treats an unknown flag as disabled.
func (s *FlagService) IsEnabled(ctx context.Context, name string) bool {
	var flag models.FeatureFlag
	if err := s.db.WithContext(ctx).First(&flag, "name = ?", name).Error; err != nil {
		return false
	}
	return flag.Enabled
}

func (s *FlagService) SetFlag(ctx context.Context, name string, enabled bool) (*models.FeatureFlag, error) {
	var flag models.FeatureFlag
	if err := s.db.WithContext(ctx).First(&flag, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFlagNotFound
		}
		return nil, fmt.Errorf("%w: failed to fetch feature flag: %v", ErrDatabaseQuery, err)
	}

	flag.Enabled = enabled
	if err := s.db.WithContext(ctx).Save(&flag).Error; err != nil {
		return nil, fmt.Errorf("%w: failed to update feature flag: %v", ErrDatabaseQuery, err)
	}
	return &flag, nil
}
