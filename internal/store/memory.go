package store

import (
	"context"
	"sync"
	"time"

	"github.com/princeprakhar/portfolio-backend/internal/models"
)

// MemoryStore is the volatile backend used when no database is configured.
// It is an explicit instance owned by the process, not a package-level map,
// so tests and the server construct their own isolated copies.
type MemoryStore struct {
	mu      sync.Mutex
	ratings map[string]map[string]*memoryRating
}

type memoryRating struct {
	score     int
	createdAt time.Time
	updatedAt time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		ratings: make(map[string]map[string]*memoryRating),
	}
}

func (s *MemoryStore) Upsert(ctx context.Context, projectID, raterIdentity string, score int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	byRater, ok := s.ratings[projectID]
	if !ok {
		byRater = make(map[string]*memoryRating)
		s.ratings[projectID] = byRater
	}

	if existing, ok := byRater[raterIdentity]; ok {
		existing.score = score
		existing.updatedAt = now
		return nil
	}

	byRater[raterIdentity] = &memoryRating{
		score:     score,
		createdAt: now,
		updatedAt: now,
	}
	return nil
}

func (s *MemoryStore) Stats(ctx context.Context, projectID string) (models.RatingStats, error) {
	if err := ctx.Err(); err != nil {
		return models.RatingStats{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stats := models.RatingStats{ProjectID: projectID}
	byRater := s.ratings[projectID]
	if len(byRater) == 0 {
		return stats, nil
	}

	var sum int
	for _, r := range byRater {
		sum += r.score
	}
	stats.TotalRatings = int64(len(byRater))
	stats.AverageRating = float64(sum) / float64(len(byRater))
	return stats, nil
}

func (s *MemoryStore) HasRated(ctx context.Context, projectID, raterIdentity string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.ratings[projectID][raterIdentity]
	return ok, nil
}

func (s *MemoryStore) Get(ctx context.Context, projectID, raterIdentity string) (*models.Rating, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.ratings[projectID][raterIdentity]
	if !ok {
		return nil, ErrNotFound
	}
	return &models.Rating{
		ProjectID:     projectID,
		RaterIdentity: raterIdentity,
		Score:         r.score,
		CreatedAt:     r.createdAt,
		UpdatedAt:     r.updatedAt,
	}, nil
}
