package database

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jamndev/portfolio-backend/errs"
	"github.com/jamndev/portfolio-backend/models"
)

func exerciseInput(title, slug string, tags []string, date string) models.CreateExerciseInput {
	return models.CreateExerciseInput{
		Title:       title,
		Slug:        slug,
		Description: "An exercise used by the repository tests.",
		Tags:        tags,
		Links:       []string{},
		Date:        date,
	}
}

func TestExerciseRepoSlugLookup(t *testing.T) {
	repo := NewExerciseRepo(testDB(t))

	created, err := repo.Add(exerciseInput("Node Challenge", "node-challenge", []string{"node"}, "2026-01-01T00:00:00Z"))
	require.NoError(t, err)

	found, err := repo.FindBySlug("node-challenge")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created.ID, found.ID)

	absent, err := repo.FindBySlug("does-not-exist")
	require.NoError(t, err)
	assert.Nil(t, absent)
}

func TestExerciseRepoDuplicateSlug(t *testing.T) {
	repo := NewExerciseRepo(testDB(t))

	_, err := repo.Add(exerciseInput("First", "node-challenge", nil, "2026-01-01T00:00:00Z"))
	require.NoError(t, err)

	_, err = repo.Add(exerciseInput("Second", "node-challenge", nil, "2026-01-02T00:00:00Z"))
	require.Error(t, err)
	assert.True(t, errs.IsConflict(err))
}

func TestExerciseRepoUpdate(t *testing.T) {
	repo := NewExerciseRepo(testDB(t))

	created, err := repo.Add(exerciseInput("Streams", "streams", []string{"node"}, "2026-01-01T00:00:00Z"))
	require.NoError(t, err)

	t.Run("merges provided fields", func(t *testing.T) {
		tags := []string{"node", "backpressure"}
		updated, err := repo.Update(uuid.MustParse(created.ID), models.UpdateExerciseInput{Tags: tags})
		require.NoError(t, err)
		assert.Equal(t, tags, updated.Tags)
		assert.Equal(t, "Streams", updated.Title)
		assert.Equal(t, "streams", updated.Slug)
	})

	t.Run("renaming onto a taken slug conflicts", func(t *testing.T) {
		_, err := repo.Add(exerciseInput("Other", "other", nil, "2026-01-02T00:00:00Z"))
		require.NoError(t, err)

		taken := "other"
		_, err = repo.Update(uuid.MustParse(created.ID), models.UpdateExerciseInput{Slug: &taken})
		require.Error(t, err)
		assert.True(t, errs.IsConflict(err))
	})

	t.Run("missing id signals not found", func(t *testing.T) {
		_, err := repo.Update(uuid.New(), models.UpdateExerciseInput{})
		require.Error(t, err)
		assert.True(t, errs.IsNotFound(err))
	})
}

func TestExerciseRepoListFilters(t *testing.T) {
	repo := NewExerciseRepo(testDB(t))

	_, err := repo.Add(exerciseInput("Event Loop", "event-loop", []string{"node"}, "2026-01-01T00:00:00Z"))
	require.NoError(t, err)
	_, err = repo.Add(exerciseInput("Hooks Deep Dive", "hooks-deep-dive", []string{"react"}, "2026-01-02T00:00:00Z"))
	require.NoError(t, err)

	exercises, err := repo.List(ListFilters{Tag: "react"})
	require.NoError(t, err)
	require.Len(t, exercises, 1)
	assert.Equal(t, "hooks-deep-dive", exercises[0].Slug)

	exercises, err = repo.List(ListFilters{Query: "event"})
	require.NoError(t, err)
	require.Len(t, exercises, 1)
	assert.Equal(t, "event-loop", exercises[0].Slug)
}

func TestExerciseRepoDeleteReturnsDTO(t *testing.T) {
	repo := NewExerciseRepo(testDB(t))

	created, err := repo.Add(exerciseInput("Temp", "temp", nil, "2026-01-01T00:00:00Z"))
	require.NoError(t, err)

	deleted, err := repo.Delete(uuid.MustParse(created.ID))
	require.NoError(t, err)
	assert.Equal(t, "temp", deleted.Slug)

	_, err = repo.Delete(uuid.MustParse(created.ID))
	assert.True(t, errs.IsNotFound(err))
}
