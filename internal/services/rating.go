package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/princeprakhar/portfolio-backend/internal/models"
	"github.com/princeprakhar/portfolio-backend/internal/store"
	"github.com/princeprakhar/portfolio-backend/internal/utils"
)

var (
	ErrInvalidScore  = errors.New("rating must be between 1 and 5")
	ErrMissingField  = errors.New("missing required field")
	ErrNoIdentity    = errors.New("visitor identity unavailable")
	ErrRatingStorage = errors.New("rating storage failed")
)

// RatingService owns the submission protocol: validate, resolve identity,
// then hand the write to the store's atomic upsert. It never branches on
// which backend it talks to.
type RatingService struct {
	store store.RatingStore
}

func NewRatingService(ratingStore store.RatingStore) *RatingService {
	if ratingStore == nil {
		panic("rating store cannot be nil")
	}
	return &RatingService{store: ratingStore}
}

type SubmitRatingRequest struct {
	Rating int `json:"rating" binding:"required"`
}

// Submit records or replaces the identity's rating for the project.
// Validation happens before any store I/O; a sentinel-empty identity is
// refused instead of being counted under a shared fake visitor.
func (s *RatingService) Submit(ctx context.Context, projectID, raterIdentity string, score int) error {
	if projectID == "" {
		return fmt.Errorf("%w: project id", ErrMissingField)
	}
	if raterIdentity == "" {
		return ErrNoIdentity
	}
	if !utils.IsValidRating(score) {
		return ErrInvalidScore
	}

	if err := s.store.Upsert(ctx, projectID, raterIdentity, score); err != nil {
		return fmt.Errorf("%w: %v", ErrRatingStorage, err)
	}
	return nil
}

// GetStats returns the project's aggregate, recomputed from the rows on
// every call. A project nobody rated yet is {0, 0}, not an error; only a
// genuine store failure propagates.
func (s *RatingService) GetStats(ctx context.Context, projectID string) (models.RatingStats, error) {
	if projectID == "" {
		return models.RatingStats{}, fmt.Errorf("%w: project id", ErrMissingField)
	}

	stats, err := s.store.Stats(ctx, projectID)
	if err != nil {
		return models.RatingStats{}, fmt.Errorf("%w: %v", ErrRatingStorage, err)
	}
	return stats, nil
}

// GetRatingState reports whether the identity rated the project and, when it
// did, the score it gave, so the client can restore the stars after a
// reload.
func (s *RatingService) GetRatingState(ctx context.Context, projectID, raterIdentity string) (models.RatingState, error) {
	if projectID == "" {
		return models.RatingState{}, fmt.Errorf("%w: project id", ErrMissingField)
	}
	if raterIdentity == "" {
		return models.RatingState{}, ErrNoIdentity
	}

	rating, err := s.store.Get(ctx, projectID, raterIdentity)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.RatingState{HasRated: false}, nil
		}
		return models.RatingState{}, fmt.Errorf("%w: %v", ErrRatingStorage, err)
	}
	return models.RatingState{HasRated: true, Score: rating.Score}, nil
}
