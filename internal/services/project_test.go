package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/princeprakhar/portfolio-backend/internal/models"
	"github.com/princeprakhar/portfolio-backend/internal/store"
)

func seedProject(t *testing.T, svc *ProjectService, id, date string, development bool) {
	t.Helper()
	_, err := svc.CreateProject(context.Background(), models.CreateProjectRequest{
		ID:          id,
		Title:       "Project " + id,
		Date:        date,
		Development: development,
		Highlights:  []models.Highlight{{Title: "h", Desc: "d"}},
	})
	require.NoError(t, err)
}

func TestGetProjectsIncludesRatingAggregate(t *testing.T) {
	db := newTestDB(t)
	projects := NewProjectService(db)
	ratings := NewRatingService(store.NewSQLStore(db))
	ctx := context.Background()

	seedProject(t, projects, "alpha", "2024-01-01", false)
	seedProject(t, projects, "beta", "2024-06-01", false)

	require.NoError(t, ratings.Submit(ctx, "alpha", "visitor-a", 5))
	require.NoError(t, ratings.Submit(ctx, "alpha", "visitor-b", 3))

	list, err := projects.GetProjects(ctx, false)
	require.NoError(t, err)
	require.Len(t, list, 2)

	// Newest first.
	assert.Equal(t, "beta", list[0].ID)
	assert.Equal(t, int64(0), list[0].TotalRatings)
	assert.Zero(t, list[0].AverageRating)

	assert.Equal(t, "alpha", list[1].ID)
	assert.Equal(t, int64(2), list[1].TotalRatings)
	assert.InDelta(t, 4.0, list[1].AverageRating, 0.001)
}

func TestGetProjectsHidesDevelopmentByDefault(t *testing.T) {
	db := newTestDB(t)
	svc := NewProjectService(db)
	ctx := context.Background()

	seedProject(t, svc, "live", "2024-01-01", false)
	seedProject(t, svc, "wip", "2024-02-01", true)

	list, err := svc.GetProjects(ctx, false)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "live", list[0].ID)

	list, err = svc.GetProjects(ctx, true)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestCreateProjectRejectsDuplicateID(t *testing.T) {
	svc := NewProjectService(newTestDB(t))

	seedProject(t, svc, "alpha", "2024-01-01", false)
	_, err := svc.CreateProject(context.Background(), models.CreateProjectRequest{
		ID:    "alpha",
		Title: "Duplicate",
		Date:  "2024-02-01",
	})
	assert.ErrorIs(t, err, ErrProjectExists)
}

func TestUpdateProjectPartialFields(t *testing.T) {
	svc := NewProjectService(newTestDB(t))
	ctx := context.Background()

	seedProject(t, svc, "alpha", "2024-01-01", false)

	newTitle := "Renamed"
	updated, err := svc.UpdateProject(ctx, "alpha", models.UpdateProjectRequest{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, "2024-01-01", updated.Date, "untouched fields must survive a partial update")
}

func TestDeleteProjectLeavesRatingsOrphaned(t *testing.T) {
	db := newTestDB(t)
	projects := NewProjectService(db)
	ratings := NewRatingService(store.NewSQLStore(db))
	ctx := context.Background()

	seedProject(t, projects, "alpha", "2024-01-01", false)
	require.NoError(t, ratings.Submit(ctx, "alpha", "visitor-a", 4))

	require.NoError(t, projects.DeleteProject(ctx, "alpha"))

	_, err := projects.GetProjectByID(ctx, "alpha")
	assert.ErrorIs(t, err, ErrProjectNotFound)

	// No foreign key couples ratings to the catalog; rows stay behind.
	stats, err := ratings.GetStats(ctx, "alpha")
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalRatings)
}

func TestDeleteMissingProject(t *testing.T) {
	svc := NewProjectService(newTestDB(t))
	err := svc.DeleteProject(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrProjectNotFound)
}
