package store

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/princeprakhar/portfolio-backend/internal/models"
)

func newSQLiteStore(t *testing.T) *SQLStore {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps every query on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Rating{}))
	return NewSQLStore(db)
}

// Both backends must satisfy the same contract, so every behavior runs
// against each adapter.
func runForEachBackend(t *testing.T, test func(t *testing.T, s RatingStore)) {
	t.Run("memory", func(t *testing.T) {
		test(t, NewMemoryStore())
	})
	t.Run("sqlite", func(t *testing.T) {
		test(t, newSQLiteStore(t))
	})
}

func TestUpsertReplacesInsteadOfAppending(t *testing.T) {
	runForEachBackend(t, func(t *testing.T, s RatingStore) {
		ctx := context.Background()

		require.NoError(t, s.Upsert(ctx, "p1", "visitor-a", 2))
		require.NoError(t, s.Upsert(ctx, "p1", "visitor-a", 5))

		stats, err := s.Stats(ctx, "p1")
		require.NoError(t, err)
		assert.Equal(t, int64(1), stats.TotalRatings)
		assert.InDelta(t, 5.0, stats.AverageRating, 0.001)

		rating, err := s.Get(ctx, "p1", "visitor-a")
		require.NoError(t, err)
		assert.Equal(t, 5, rating.Score)
	})
}

func TestUpsertKeepsCreatedAt(t *testing.T) {
	runForEachBackend(t, func(t *testing.T, s RatingStore) {
		ctx := context.Background()

		require.NoError(t, s.Upsert(ctx, "p1", "visitor-a", 3))
		first, err := s.Get(ctx, "p1", "visitor-a")
		require.NoError(t, err)

		require.NoError(t, s.Upsert(ctx, "p1", "visitor-a", 4))
		second, err := s.Get(ctx, "p1", "visitor-a")
		require.NoError(t, err)

		assert.Equal(t, first.CreatedAt.UTC(), second.CreatedAt.UTC())
		assert.False(t, second.UpdatedAt.Before(first.UpdatedAt))
	})
}

func TestStatsEmptyProject(t *testing.T) {
	runForEachBackend(t, func(t *testing.T, s RatingStore) {
		stats, err := s.Stats(context.Background(), "never-rated")
		require.NoError(t, err)
		assert.Equal(t, int64(0), stats.TotalRatings)
		assert.Zero(t, stats.AverageRating)
	})
}

func TestStatsAveragesAcrossIdentities(t *testing.T) {
	runForEachBackend(t, func(t *testing.T, s RatingStore) {
		ctx := context.Background()

		require.NoError(t, s.Upsert(ctx, "p1", "visitor-a", 5))
		require.NoError(t, s.Upsert(ctx, "p1", "visitor-b", 4))
		require.NoError(t, s.Upsert(ctx, "p1", "visitor-c", 3))
		// A rating for another project must not leak into p1's aggregate.
		require.NoError(t, s.Upsert(ctx, "p2", "visitor-a", 1))

		stats, err := s.Stats(ctx, "p1")
		require.NoError(t, err)
		assert.Equal(t, int64(3), stats.TotalRatings)
		assert.InDelta(t, 4.0, stats.AverageRating, 0.001)
	})
}

func TestHasRated(t *testing.T) {
	runForEachBackend(t, func(t *testing.T, s RatingStore) {
		ctx := context.Background()

		rated, err := s.HasRated(ctx, "p1", "visitor-a")
		require.NoError(t, err)
		assert.False(t, rated)

		require.NoError(t, s.Upsert(ctx, "p1", "visitor-a", 4))

		rated, err = s.HasRated(ctx, "p1", "visitor-a")
		require.NoError(t, err)
		assert.True(t, rated)

		// Same project, different identity is still unrated.
		rated, err = s.HasRated(ctx, "p1", "visitor-b")
		require.NoError(t, err)
		assert.False(t, rated)
	})
}

func TestGetNotFound(t *testing.T) {
	runForEachBackend(t, func(t *testing.T, s RatingStore) {
		_, err := s.Get(context.Background(), "p1", "visitor-a")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestConcurrentUpsertsSamePair(t *testing.T) {
	runForEachBackend(t, func(t *testing.T, s RatingStore) {
		ctx := context.Background()

		var wg sync.WaitGroup
		scores := []int{1, 2, 3, 4, 5, 1, 2, 3, 4, 5}
		for _, score := range scores {
			wg.Add(1)
			go func(score int) {
				defer wg.Done()
				assert.NoError(t, s.Upsert(ctx, "p1", "visitor-a", score))
			}(score)
		}
		wg.Wait()

		stats, err := s.Stats(ctx, "p1")
		require.NoError(t, err)
		assert.Equal(t, int64(1), stats.TotalRatings, "concurrent upserts for one pair must leave exactly one row")

		rating, err := s.Get(ctx, "p1", "visitor-a")
		require.NoError(t, err)
		assert.Contains(t, []int{1, 2, 3, 4, 5}, rating.Score)
	})
}

func TestConcurrentUpsertsDistinctIdentities(t *testing.T) {
	runForEachBackend(t, func(t *testing.T, s RatingStore) {
		ctx := context.Background()

		var wg sync.WaitGroup
		identities := []string{"a", "b", "c", "d", "e"}
		for _, id := range identities {
			wg.Add(1)
			go func(id string) {
				defer wg.Done()
				assert.NoError(t, s.Upsert(ctx, "p1", id, 3))
			}(id)
		}
		wg.Wait()

		stats, err := s.Stats(ctx, "p1")
		require.NoError(t, err)
		assert.Equal(t, int64(5), stats.TotalRatings)
		assert.InDelta(t, 3.0, stats.AverageRating, 0.001)
	})
}
