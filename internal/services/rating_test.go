package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/princeprakhar/portfolio-backend/internal/store"
)

func TestSubmitRejectsInvalidScores(t *testing.T) {
	ratingStore := store.NewMemoryStore()
	svc := NewRatingService(ratingStore)
	ctx := context.Background()

	for _, score := range []int{-1, 0, 6, 100} {
		err := svc.Submit(ctx, "p1", "visitor-a", score)
		assert.ErrorIs(t, err, ErrInvalidScore, "score %d", score)
	}

	// Nothing may be written by a rejected submission.
	stats, err := svc.GetStats(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.TotalRatings)
}

func TestSubmitRejectsMissingIdentity(t *testing.T) {
	svc := NewRatingService(store.NewMemoryStore())

	err := svc.Submit(context.Background(), "p1", "", 4)
	assert.ErrorIs(t, err, ErrNoIdentity)
}

func TestSubmitRejectsMissingProject(t *testing.T) {
	svc := NewRatingService(store.NewMemoryStore())

	err := svc.Submit(context.Background(), "", "visitor-a", 4)
	assert.ErrorIs(t, err, ErrMissingField)
}

func TestSubmitUpsertsPriorRating(t *testing.T) {
	svc := NewRatingService(store.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, svc.Submit(ctx, "p1", "visitor-a", 3))

	stats, err := svc.GetStats(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalRatings)
	assert.InDelta(t, 3.0, stats.AverageRating, 0.001)

	// Changing the score replaces the prior rating, it never adds a second
	// one.
	require.NoError(t, svc.Submit(ctx, "p1", "visitor-a", 5))

	stats, err = svc.GetStats(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalRatings)
	assert.InDelta(t, 5.0, stats.AverageRating, 0.001)

	// A second identity is counted separately.
	require.NoError(t, svc.Submit(ctx, "p1", "visitor-b", 1))

	stats, err = svc.GetStats(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalRatings)
	assert.InDelta(t, 3.0, stats.AverageRating, 0.001)
}

func TestGetStatsDefaultsToZero(t *testing.T) {
	svc := NewRatingService(store.NewMemoryStore())

	stats, err := svc.GetStats(context.Background(), "unrated")
	require.NoError(t, err)
	assert.Equal(t, "unrated", stats.ProjectID)
	assert.Equal(t, int64(0), stats.TotalRatings)
	assert.Zero(t, stats.AverageRating)
}

func TestGetRatingStateRoundTrip(t *testing.T) {
	svc := NewRatingService(store.NewMemoryStore())
	ctx := context.Background()

	state, err := svc.GetRatingState(ctx, "p1", "visitor-a")
	require.NoError(t, err)
	assert.False(t, state.HasRated)
	assert.Zero(t, state.Score)

	require.NoError(t, svc.Submit(ctx, "p1", "visitor-a", 4))

	state, err = svc.GetRatingState(ctx, "p1", "visitor-a")
	require.NoError(t, err)
	assert.True(t, state.HasRated)
	assert.Equal(t, 4, state.Score, "state must return the visitor's own prior score")

	// Another identity still sees an unrated project.
	state, err = svc.GetRatingState(ctx, "p1", "visitor-b")
	require.NoError(t, err)
	assert.False(t, state.HasRated)
}

func TestGetRatingStateRequiresIdentity(t *testing.T) {
	svc := NewRatingService(store.NewMemoryStore())

	_, err := svc.GetRatingState(context.Background(), "p1", "")
	assert.ErrorIs(t, err, ErrNoIdentity)
}
