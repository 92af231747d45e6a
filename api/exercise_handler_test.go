package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jamndev/portfolio-backend/database"
	"github.com/jamndev/portfolio-backend/models"
)

func validExerciseBody(slug string) map[string]any {
	return map[string]any{
		"title":       "Node Challenge",
		"slug":        slug,
		"description": "A small challenge exploring event loop behaviour in Node.",
		"tags":        []string{"Node", "node", "Backend"},
		"date":        "2025-06-01T00:00:00Z",
	}
}

func TestCreateExerciseValidation(t *testing.T) {
	handler, _ := newTestEnv(t)
	token := adminToken(t)

	body := validExerciseBody("node-challenge")
	body["title"] = "Ab"

	rec, env := doJSON(t, handler, http.MethodPost, "/exercises", token, body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "error", env.Status)
	assert.Contains(t, env.Errors, "title")
}

func TestCreateExerciseRequiresAdmin(t *testing.T) {
	handler, db := newTestEnv(t)

	rec, env := doJSON(t, handler, http.MethodPost, "/exercises", "", validExerciseBody("node-challenge"))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "error", env.Status)

	stored, err := db.ExerciseRepo().List(database.ListFilters{})
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestExerciseSlugLifecycle(t *testing.T) {
	handler, _ := newTestEnv(t)
	token := adminToken(t)

	rec, env := doJSON(t, handler, http.MethodPost, "/exercises", token, validExerciseBody("node-challenge"))
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.ExerciseDTO
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "node-challenge", created.Slug)
	assert.Equal(t, []string{"node", "backend"}, created.Tags)

	rec, env = doJSON(t, handler, http.MethodGet, "/exercises/slug/node-challenge", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var fetched models.ExerciseDTO
	require.NoError(t, json.Unmarshal(env.Data, &fetched))
	assert.Equal(t, created.ID, fetched.ID)

	rec, env = doJSON(t, handler, http.MethodPost, "/exercises", token, validExerciseBody("node-challenge"))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "error", env.Status)
}

func TestGetExerciseUnknownSlug(t *testing.T) {
	handler, _ := newTestEnv(t)

	rec, env := doJSON(t, handler, http.MethodGet, "/exercises/slug/missing-slug", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "error", env.Status)
}

func TestDeleteExercise(t *testing.T) {
	handler, _ := newTestEnv(t)
	token := adminToken(t)

	_, env := doJSON(t, handler, http.MethodPost, "/exercises", token, validExerciseBody("to-delete"))
	var created models.ExerciseDTO
	require.NoError(t, json.Unmarshal(env.Data, &created))

	rec, _ := doJSON(t, handler, http.MethodDelete, "/exercises/"+created.ID, token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = doJSON(t, handler, http.MethodGet, "/exercises/"+created.ID, "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
