package database

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jamndev/portfolio-backend/errs"
	"github.com/jamndev/portfolio-backend/models"
)

func projectInput(title, description string, tags []string, date string) models.CreateProjectInput {
	return models.CreateProjectInput{
		Title:       title,
		Description: description,
		Tags:        tags,
		Stack:       []string{"go"},
		Links:       []string{},
		Date:        date,
	}
}

func TestProjectRepoRoundTrip(t *testing.T) {
	repo := NewProjectRepo(testDB(t))

	in := projectInput("Portfolio API", "A REST backend for the portfolio site.", []string{"go", "postgres"}, "2026-02-01T00:00:00Z")
	in.DemoURL = "https://demo.example.com"

	created, err := repo.Add(in)
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	found, err := repo.FindByID(uuid.MustParse(created.ID))
	require.NoError(t, err)
	require.NotNil(t, found)

	assert.Equal(t, in.Title, found.Title)
	assert.Equal(t, in.Description, found.Description)
	assert.Equal(t, in.Tags, found.Tags)
	assert.Equal(t, []string{"go"}, found.Stack)
	assert.Equal(t, []string{}, found.Links)
	require.NotNil(t, found.DemoURL)
	assert.Equal(t, "https://demo.example.com", *found.DemoURL)
	assert.Nil(t, found.RepoURL)
	assert.Equal(t, "2026-02-01T00:00:00Z", found.Date)
}

func TestProjectRepoFindByIDAbsent(t *testing.T) {
	repo := NewProjectRepo(testDB(t))

	found, err := repo.FindByID(uuid.New())
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestProjectRepoListOrdering(t *testing.T) {
	repo := NewProjectRepo(testDB(t))

	_, err := repo.Add(projectInput("Older", "The older project entry.", nil, "2025-01-01T00:00:00Z"))
	require.NoError(t, err)
	_, err = repo.Add(projectInput("Newer", "The newer project entry.", nil, "2026-01-01T00:00:00Z"))
	require.NoError(t, err)

	projects, err := repo.List(ListFilters{})
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "Newer", projects[0].Title)
	assert.Equal(t, "Older", projects[1].Title)
}

func TestProjectRepoListFilters(t *testing.T) {
	repo := NewProjectRepo(testDB(t))

	_, err := repo.Add(projectInput("Chat Server", "Realtime websocket chat.", []string{"node"}, "2026-01-01T00:00:00Z"))
	require.NoError(t, err)
	_, err = repo.Add(projectInput("Landing Page", "A marketing site with chat widget.", []string{"react"}, "2026-01-02T00:00:00Z"))
	require.NoError(t, err)
	_, err = repo.Add(projectInput("CLI Tool", "A terminal utility.", []string{"node"}, "2026-01-03T00:00:00Z"))
	require.NoError(t, err)

	t.Run("query matches title or description case-insensitively", func(t *testing.T) {
		projects, err := repo.List(ListFilters{Query: "CHAT"})
		require.NoError(t, err)
		require.Len(t, projects, 2)
	})

	t.Run("tag requires exact membership", func(t *testing.T) {
		projects, err := repo.List(ListFilters{Tag: "node"})
		require.NoError(t, err)
		require.Len(t, projects, 2)
		for _, project := range projects {
			assert.Contains(t, project.Tags, "node")
		}
	})

	t.Run("query and tag combine with AND", func(t *testing.T) {
		projects, err := repo.List(ListFilters{Query: "chat", Tag: "node"})
		require.NoError(t, err)
		require.Len(t, projects, 1)
		assert.Equal(t, "Chat Server", projects[0].Title)
	})

	t.Run("no filters return everything", func(t *testing.T) {
		projects, err := repo.List(ListFilters{})
		require.NoError(t, err)
		assert.Len(t, projects, 3)
	})
}

func TestProjectRepoUpdatePartialMerge(t *testing.T) {
	repo := NewProjectRepo(testDB(t))

	in := projectInput("Original", "Original project description.", []string{"go"}, "2026-01-01T00:00:00Z")
	in.DemoURL = "https://demo.example.com"
	created, err := repo.Add(in)
	require.NoError(t, err)

	id := uuid.MustParse(created.ID)

	t.Run("only provided fields change", func(t *testing.T) {
		newTitle := "Renamed"
		updated, err := repo.Update(id, models.UpdateProjectInput{Title: &newTitle})
		require.NoError(t, err)

		assert.Equal(t, "Renamed", updated.Title)
		assert.Equal(t, "Original project description.", updated.Description)
		assert.Equal(t, []string{"go"}, updated.Tags)
		require.NotNil(t, updated.DemoURL)
	})

	t.Run("empty string clears an optional URL", func(t *testing.T) {
		empty := ""
		updated, err := repo.Update(id, models.UpdateProjectInput{DemoURL: &empty})
		require.NoError(t, err)
		assert.Nil(t, updated.DemoURL)
	})

	t.Run("missing id signals not found", func(t *testing.T) {
		_, err := repo.Update(uuid.New(), models.UpdateProjectInput{})
		require.Error(t, err)
		assert.True(t, errs.IsNotFound(err))
	})
}

func TestProjectRepoDelete(t *testing.T) {
	repo := NewProjectRepo(testDB(t))

	created, err := repo.Add(projectInput("Disposable", "Created only to be deleted.", nil, "2026-01-01T00:00:00Z"))
	require.NoError(t, err)

	deleted, err := repo.Delete(uuid.MustParse(created.ID))
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)
	assert.Equal(t, "Disposable", deleted.Title)

	found, err := repo.FindByID(uuid.MustParse(created.ID))
	require.NoError(t, err)
	assert.Nil(t, found)

	_, err = repo.Delete(uuid.MustParse(created.ID))
	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))
}
