package models

import (
	"time"
)

// Rating is a single visitor's score for a project. The unique index on
// (project_id, rater_identity) is the mechanism that guarantees at most one
// counted rating per visitor per project; upserts resolve against it.
type Rating struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	ProjectID     string    `json:"project_id" gorm:"not null;uniqueIndex:idx_ratings_project_rater,priority:1"`
	RaterIdentity string    `json:"-" gorm:"not null;uniqueIndex:idx_ratings_project_rater,priority:2"`
	Score         int       `json:"score" gorm:"not null;check:score >= 1 AND score <= 5"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// RatingStats is derived from the rating rows on every read; it is never
// persisted.
type RatingStats struct {
	ProjectID     string  `json:"project_id"`
	TotalRatings  int64   `json:"total_ratings"`
	AverageRating float64 `json:"average_rating"`
}

// RatingState describes what a single visitor has done for one project.
type RatingState struct {
	HasRated bool `json:"has_rated"`
	Score    int  `json:"rating,omitempty"`
}
