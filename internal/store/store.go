// Package store holds the rating persistence contract and its backends.
// Every backend must enforce at most one rating row per
// (project, rater identity) pair and resolve concurrent submissions for the
// same pair through an atomic upsert, never a read-modify-write.
package store

import (
	"context"
	"errors"

	"github.com/princeprakhar/portfolio-backend/internal/models"
)

var (
	// ErrNotFound is returned by Get when the visitor has no rating row.
	ErrNotFound = errors.New("rating not found")
	// ErrUnavailable wraps backend connectivity and query failures.
	ErrUnavailable = errors.New("rating store unavailable")
)

// RatingStore is satisfied identically by the in-memory, sqlite and postgres
// backends. Score validation happens above this layer so every backend stays
// a thin adapter.
type RatingStore interface {
	// Upsert inserts the rating, or updates score and updated_at when the
	// (projectID, raterIdentity) pair already has a row.
	Upsert(ctx context.Context, projectID, raterIdentity string, score int) error

	// Stats computes count and average over the project's rows. A project
	// with no ratings yields {0, 0}, not an error.
	Stats(ctx context.Context, projectID string) (models.RatingStats, error)

	// HasRated reports whether the identity already rated the project. It
	// exposes existence only, never another visitor's score.
	HasRated(ctx context.Context, projectID, raterIdentity string) (bool, error)

	// Get returns the identity's own rating row, or ErrNotFound.
	Get(ctx context.Context, projectID, raterIdentity string) (*models.Rating, error)
}
