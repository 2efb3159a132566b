package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDefaultsIsIdempotent(t *testing.T) {
	svc := NewFlagService(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, svc.EnsureDefaults(ctx))
	assert.True(t, svc.IsEnabled(ctx, FlagProjectRatings))

	// Admin edits must survive a restart's re-seeding.
	_, err := svc.SetFlag(ctx, FlagProjectRatings, false)
	require.NoError(t, err)
	require.NoError(t, svc.EnsureDefaults(ctx))
	assert.False(t, svc.IsEnabled(ctx, FlagProjectRatings))
}

func TestUnknownFlagIsDisabled(t *testing.T) {
	svc := NewFlagService(newTestDB(t))
	assert.False(t, svc.IsEnabled(context.Background(), "doesNotExist"))
}

func TestSetUnknownFlag(t *testing.T) {
	svc := NewFlagService(newTestDB(t))
	_, err := svc.SetFlag(context.Background(), "doesNotExist", true)
	assert.ErrorIs(t, err, ErrFlagNotFound)
}

func TestAllListsSeededFlags(t *testing.T) {
	svc := NewFlagService(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, svc.EnsureDefaults(ctx))
	flags, err := svc.All(ctx)
	require.NoError(t, err)
	assert.Len(t, flags, 5)
}
