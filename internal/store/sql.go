package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/princeprakhar/portfolio-backend/internal/models"
)

// SQLStore adapts any gorm-backed database to the RatingStore contract. The
// sqlite (edge/local file) and postgres (remote) backends both run through
// it; only the dialector opened in internal/database differs. The upsert is
// a native INSERT ... ON CONFLICT DO UPDATE bound to the unique index on
// (project_id, rater_identity), which both dialects support.
type SQLStore struct {
	db *gorm.DB
}

func NewSQLStore(db *gorm.DB) *SQLStore {
	if db == nil {
		panic("database connection cannot be nil")
	}
	return &SQLStore{db: db}
}

func (s *SQLStore) Upsert(ctx context.Context, projectID, raterIdentity string, score int) error {
	rating := models.Rating{
		ProjectID:     projectID,
		RaterIdentity: raterIdentity,
		Score:         score,
	}

	// OnConflict does not touch gorm's auto timestamps, so updated_at is
	// assigned explicitly; created_at keeps its insert-time value.
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "project_id"}, {Name: "rater_identity"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"score":      score,
				"updated_at": time.Now().UTC(),
			}),
		}).
		Create(&rating).Error
	if err != nil {
		return fmt.Errorf("%w: upsert rating: %v", ErrUnavailable, err)
	}
	return nil
}

func (s *SQLStore) Stats(ctx context.Context, projectID string) (models.RatingStats, error) {
	var row struct {
		Total   int64
		Average sql.NullFloat64
	}

	err := s.db.WithContext(ctx).
		Model(&models.Rating{}).
		Select("COUNT(*) AS total, AVG(score) AS average").
		Where("project_id = ?", projectID).
		Scan(&row).Error
	if err != nil {
		return models.RatingStats{}, fmt.Errorf("%w: aggregate ratings: %v", ErrUnavailable, err)
	}

	stats := models.RatingStats{
		ProjectID:    projectID,
		TotalRatings: row.Total,
	}
	if row.Average.Valid {
		stats.AverageRating = row.Average.Float64
	}
	return stats, nil
}

func (s *SQLStore) HasRated(ctx context.Context, projectID, raterIdentity string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.Rating{}).
		Where("project_id = ? AND rater_identity = ?", projectID, raterIdentity).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("%w: rating existence check: %v", ErrUnavailable, err)
	}
	return count > 0, nil
}

func (s *SQLStore) Get(ctx context.Context, projectID, raterIdentity string) (*models.Rating, error) {
	var rating models.Rating
	err := s.db.WithContext(ctx).
		Where("project_id = ? AND rater_identity = ?", projectID, raterIdentity).
		First(&rating).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: fetch rating: %v", ErrUnavailable, err)
	}
	return &rating, nil
}
