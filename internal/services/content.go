package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/princeprakhar/portfolio-backend/internal/models"
)

var ErrContentNotFound = errors.New("content entry not found")

// ContentService covers the simple portfolio sections: skills, experience
// and credentials. They share the same shape of CRUD with no invariants
// beyond what the database enforces.
type ContentService struct {
	db *gorm.DB
}

func NewContentService(db *gorm.DB) *ContentService {
	if db == nil {
		panic("database connection cannot be nil")
	}
	return &ContentService{db: db}
}

func (s *ContentService) GetSkills(ctx context.Context) ([]models.Skill, error) {
	var skills []models.Skill
	err := s.db.WithContext(ctx).Order("sort_order ASC, name ASC").Find(&skills).Error
	if err != nil {
		return nil, fmt.Errorf("%w: failed to fetch skills: %v", ErrDatabaseQuery, err)
	}
	return skills, nil
}

func (s *ContentService) CreateSkill(ctx context.Context, skill *models.Skill) error {
	if err := s.db.WithContext(ctx).Create(skill).Error; err != nil {
		return fmt.Errorf("%w: failed to create skill: %v", ErrDatabaseQuery, err)
	}
	return nil
}

func (s *ContentService) UpdateSkill(ctx context.Context, id uint, skill *models.Skill) error {
	var existing models.Skill
	if err := s.db.WithContext(ctx).First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrContentNotFound
		}
		return fmt.Errorf("%w: failed to fetch skill: %v", ErrDatabaseQuery, err)
	}

	existing.Name = skill.Name
	existing.Category = skill.Category
	existing.Icon = skill.Icon
	existing.SortOrder = skill.SortOrder

	if err := s.db.WithContext(ctx).Save(&existing).Error; err != nil {
		return fmt.Errorf("%w: failed to update skill: %v", ErrDatabaseQuery, err)
	}
	*skill = existing
	return nil
}

func (s *ContentService) DeleteSkill(ctx context.Context, id uint) error {
	return s.deleteByID(ctx, &models.Skill{}, id, "skill")
}

func (s *ContentService) GetExperience(ctx context.Context) ([]models.Experience, error) {
	var entries []models.Experience
	err := s.db.WithContext(ctx).Order("sort_order ASC, start_date DESC").Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("%w: failed to fetch experience: %v", ErrDatabaseQuery, err)
	}
	return entries, nil
}

func (s *ContentService) CreateExperience(ctx context.Context, entry *models.Experience) error {
	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("%w: failed to create experience entry: %v", ErrDatabaseQuery, err)
	}
	return nil
}

func (s *ContentService) UpdateExperience(ctx context.Context, id uint, entry *models.Experience) error {
	var existing models.Experience
	if err := s.db.WithContext(ctx).First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrContentNotFound
		}
		return fmt.Errorf("%w: failed to fetch experience entry: %v", ErrDatabaseQuery, err)
	}

	existing.Company = entry.Company
	existing.Position = entry.Position
	existing.StartDate = entry.StartDate
	existing.EndDate = entry.EndDate
	existing.Description = entry.Description
	existing.Highlights = entry.Highlights
	existing.SortOrder = entry.SortOrder

	if err := s.db.WithContext(ctx).Save(&existing).Error; err != nil {
		return fmt.Errorf("%w: failed to update experience entry: %v", ErrDatabaseQuery, err)
	}
	*entry = existing
	return nil
}

func (s *ContentService) DeleteExperience(ctx context.Context, id uint) error {
	return s.deleteByID(ctx, &models.Experience{}, id, "experience entry")
}

func (s *ContentService) GetCredentials(ctx context.Context) ([]models.Credential, error) {
	var credentials []models.Credential
	err := s.db.WithContext(ctx).Order("sort_order ASC, issued_at DESC").Find(&credentials).Error
	if err != nil {
		return nil, fmt.Errorf("%w: failed to fetch credentials: %v", ErrDatabaseQuery, err)
	}
	return credentials, nil
}

func (s *ContentService) CreateCredential(ctx context.Context, credential *models.Credential) error {
	if err := s.db.WithContext(ctx).Create(credential).Error; err != nil {
		return fmt.Errorf("%w: failed to create credential: %v", ErrDatabaseQuery, err)
	}
	return nil
}

func (s *ContentService) UpdateCredential(ctx context.Context, id uint, credential *models.Credential) error {
	var existing models.Credential
	if err := s.db.WithContext(ctx).First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrContentNotFound
		}
		return fmt.Errorf("%w: failed to fetch credential: %v", ErrDatabaseQuery, err)
	}

	existing.Title = credential.Title
	existing.Issuer = credential.Issuer
	existing.IssuedAt = credential.IssuedAt
	existing.URL = credential.URL
	existing.SortOrder = credential.SortOrder

	if err := s.db.WithContext(ctx).Save(&existing).Error; err != nil {
		return fmt.Errorf("%w: failed to update credential: %v", ErrDatabaseQuery, err)
	}
	*credential = existing
	return nil
}

func (s *ContentService) DeleteCredential(ctx context.Context, id uint) error {
	return s.deleteByID(ctx, &models.Credential{}, id, "credential")
}

func (s *ContentService) deleteByID(ctx context.Context, model interface{}, id uint, what string) error {
	result := s.db.WithContext(ctx).Delete(model, id)
	if result.Error != nil {
		return fmt.Errorf("%w: failed to delete %s: %v", ErrDatabaseQuery, what, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrContentNotFound
	}
	return nil
}
