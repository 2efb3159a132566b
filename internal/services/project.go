package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/princeprakhar/portfolio-backend/internal/models"
)

const QueryTimeout = 30 * time.Second

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrProjectExists   = errors.New("project id already in use")
	ErrDatabaseQuery   = errors.New("database query failed")
)

type ProjectService struct {
	db *gorm.DB
}

func NewProjectService(db *gorm.DB) *ProjectService {
	if db == nil {
		panic("database connection cannot be nil")
	}
	return &ProjectService{db: db}
}

// GetProjects lists projects newest first, each carrying its rating
// aggregate. The aggregate is derived per read with a LEFT JOIN; there is no
// stored counter to drift out of sync with the rating rows.
func (s *ProjectService) GetProjects(ctx context.Context, includeDevelopment bool) ([]models.ProjectWithStats, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeout)
	defer cancel()

	query := s.db.WithContext(ctx).
		Model(&models.Project{}).
		Select("projects.*, COUNT(ratings.id) AS total_ratings, COALESCE(AVG(ratings.score), 0) AS average_rating").
		Joins("LEFT JOIN ratings ON ratings.project_id = projects.id").
		Group("projects.id").
		Order("projects.date DESC")

	if !includeDevelopment {
		query = query.Where("projects.development = ?", false)
	}

	var projects []models.ProjectWithStats
	if err := query.Scan(&projects).Error; err != nil {
		return nil, fmt.Errorf("%w: failed to fetch projects: %v", ErrDatabaseQuery, err)
	}
	if projects == nil {
		projects = []models.ProjectWithStats{}
	}
	return projects, nil
}

func (s *ProjectService) GetProjectByID(ctx context.Context, id string) (*models.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeout)
	defer cancel()

	var project models.Project
	if err := s.db.WithContext(ctx).First(&project, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("%w: failed to fetch project: %v", ErrDatabaseQuery, err)
	}
	return &project, nil
}

func (s *ProjectService) CreateProject(ctx context.Context, req models.CreateProjectRequest) (*models.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeout)
	defer cancel()

	project := models.Project{
		ID:           req.ID,
		Title:        req.Title,
		Date:         req.Date,
		Cover:        req.Cover,
		Role:         req.Role,
		Timeline:     req.Timeline,
		Summary:      req.Summary,
		Description:  req.Description,
		Problem:      req.Problem,
		Solution:     req.Solution,
		Highlights:   req.Highlights,
		Technologies: req.Technologies,
		Screenshots:  req.Screenshots,
		Links:        req.Links,
		Development:  req.Development,
		Group:        req.Group,
	}

	var existing models.Project
	if err := s.db.WithContext(ctx).First(&existing, "id = ?", req.ID).Error; err == nil {
		return nil, ErrProjectExists
	}

	if err := s.db.WithContext(ctx).Create(&project).Error; err != nil {
		return nil, fmt.Errorf("%w: failed to create project: %v", ErrDatabaseQuery, err)
	}
	return &project, nil
}

func (s *ProjectService) UpdateProject(ctx context.Context, id string, req models.UpdateProjectRequest) (*models.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeout)
	defer cancel()

	var project models.Project
	if err := s.db.WithContext(ctx).First(&project, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("%w: failed to fetch project: %v", ErrDatabaseQuery, err)
	}

	if req.Title != nil {
		project.Title = *req.Title
	}
	if req.Date != nil {
		project.Date = *req.Date
	}
	if req.Cover != nil {
		project.Cover = *req.Cover
	}
	if req.Role != nil {
		project.Role = *req.Role
	}
	if req.Timeline != nil {
		project.Timeline = *req.Timeline
	}
	if req.Summary != nil {
		project.Summary = *req.Summary
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.Problem != nil {
		project.Problem = *req.Problem
	}
	if req.Solution != nil {
		project.Solution = *req.Solution
	}
	if req.Highlights != nil {
		project.Highlights = *req.Highlights
	}
	if req.Technologies != nil {
		project.Technologies = *req.Technologies
	}
	if req.Screenshots != nil {
		project.Screenshots = *req.Screenshots
	}
	if req.Links != nil {
		project.Links = req.Links
	}
	if req.Development != nil {
		project.Development = *req.Development
	}
	if req.Group != nil {
		project.Group = *req.Group
	}

	if err := s.db.WithContext(ctx).Save(&project).Error; err != nil {
		return nil, fmt.Errorf("%w: failed to update project: %v", ErrDatabaseQuery, err)
	}
	return &project, nil
}

// DeleteProject removes the project row. Rating rows keep no foreign key to
// the catalog and are left in place; they never surface without a project.
func (s *ProjectService) DeleteProject(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeout)
	defer cancel()

	result := s.db.WithContext(ctx).Delete(&models.Project{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("%w: failed to delete project: %v", ErrDatabaseQuery, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrProjectNotFound
	}
	return nil
}
