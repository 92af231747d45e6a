package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jamndev/portfolio-backend/database"
	"github.com/jamndev/portfolio-backend/errs"
	"github.com/jamndev/portfolio-backend/models"
	"github.com/jamndev/portfolio-backend/sanitize"
	"github.com/jamndev/portfolio-backend/validate"
)

type exerciseHandler struct {
	responder    Responder
	logger       zerolog.Logger
	exerciseRepo *database.ExerciseRepo
}

func newExerciseHandler(exerciseRepo *database.ExerciseRepo) exerciseHandler {
	logger := log.With().Str("handler", "exerciseHandler").Logger()

	return exerciseHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		exerciseRepo: exerciseRepo,
	}
}

// getAllExercises lists exercises with optional query/tag filters. Public.
func (h exerciseHandler) getAllExercises() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters := database.ListFilters{
			Query: sanitize.Text(r.URL.Query().Get("query")),
			Tag:   sanitize.Text(r.URL.Query().Get("tag")),
		}

		exercises, err := h.exerciseRepo.List(filters)
		if err != nil {
			h.responder.Error(w, err)
			return
		}

		h.responder.Success(w, http.StatusOK, "Exercises retrieved", exercises)
	}
}

// getExercise returns one exercise by internal ID. Public.
func (h exerciseHandler) getExercise() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		exerciseID, err := uuid.Parse(chi.URLParam(r, "exerciseID"))
		if err != nil {
			h.responder.Error(w, errs.NewBadRequestError("invalid exerciseID"))
			return
		}

		exercise, err := h.exerciseRepo.FindByID(exerciseID)
		if err != nil {
			h.responder.Error(w, err)
			return
		}
		if exercise == nil {
			h.responder.Error(w, errs.NewNotFoundError("exercise not found"))
			return
		}

		h.responder.Success(w, http.StatusOK, "Exercise retrieved", exercise)
	}
}

// getExerciseBySlug returns one exercise by its public slug. Public.
func (h exerciseHandler) getExerciseBySlug() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := strings.ToLower(sanitize.Text(chi.URLParam(r, "slug")))
		if slug == "" {
			h.responder.Error(w, errs.NewBadRequestError("missing slug"))
			return
		}

		exercise, err := h.exerciseRepo.FindBySlug(slug)
		if err != nil {
			h.responder.Error(w, err)
			return
		}
		if exercise == nil {
			h.responder.Error(w, errs.NewNotFoundError("exercise not found"))
			return
		}

		h.responder.Success(w, http.StatusOK, "Exercise retrieved", exercise)
	}
}

// createExercise creates a new exercise. Admin only.
func (h exerciseHandler) createExercise() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in models.CreateExerciseInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			h.responder.Error(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if fields := validate.Struct(in); fields != nil {
			h.responder.Error(w, errs.NewValidationError("invalid exercise payload", fields))
			return
		}

		sanitizeExerciseInput(&in)

		created, err := h.exerciseRepo.Add(in)
		if err != nil {
			h.responder.Error(w, err)
			return
		}

		h.logger.Info().Str("id", created.ID).Str("slug", created.Slug).Msg("Exercise created")
		h.responder.Success(w, http.StatusCreated, "Exercise created", created)
	}
}

// updateExercise replaces the mutable fields of an existing exercise. Admin only.
func (h exerciseHandler) updateExercise() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		exerciseID, err := uuid.Parse(chi.URLParam(r, "exerciseID"))
		if err != nil {
			h.responder.Error(w, errs.NewBadRequestError("invalid exerciseID"))
			return
		}

		var in models.CreateExerciseInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			h.responder.Error(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if fields := validate.Struct(in); fields != nil {
			h.responder.Error(w, errs.NewValidationError("invalid exercise payload", fields))
			return
		}

		sanitizeExerciseInput(&in)

		updated, err := h.exerciseRepo.Update(exerciseID, models.UpdateExerciseInput{
			Title:       &in.Title,
			Slug:        &in.Slug,
			Description: &in.Description,
			Tags:        in.Tags,
			Links:       in.Links,
			DemoURL:     &in.DemoURL,
			RepoURL:     &in.RepoURL,
			Date:        &in.Date,
		})
		if err != nil {
			h.responder.Error(w, err)
			return
		}

		h.logger.Info().Str("id", updated.ID).Msg("Exercise updated")
		h.responder.Success(w, http.StatusOK, "Exercise updated", updated)
	}
}

// deleteExercise removes an exercise and echoes what was deleted. Admin only.
func (h exerciseHandler) deleteExercise() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		exerciseID, err := uuid.Parse(chi.URLParam(r, "exerciseID"))
		if err != nil {
			h.responder.Error(w, errs.NewBadRequestError("invalid exerciseID"))
			return
		}

		deleted, err := h.exerciseRepo.Delete(exerciseID)
		if err != nil {
			h.responder.Error(w, err)
			return
		}

		h.logger.Info().Str("id", deleted.ID).Msg("Exercise deleted")
		h.responder.Success(w, http.StatusOK, "Exercise deleted", deleted)
	}
}

func sanitizeExerciseInput(in *models.CreateExerciseInput) {
	in.Title = sanitize.Text(in.Title)
	in.Slug = strings.ToLower(sanitize.Text(in.Slug))
	in.Description = sanitize.Text(in.Description)
	in.Tags = sanitize.Tags(in.Tags)
	in.DemoURL = sanitize.Text(in.DemoURL)
	in.RepoURL = sanitize.Text(in.RepoURL)
	if in.Links == nil {
		in.Links = []string{}
	}
}
