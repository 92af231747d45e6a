package api

import (
	"encoding/json"
	"net/http"

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

type projectHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo *database.ProjectRepo
}

func newProjectHandler(projectRepo *database.ProjectRepo) projectHandler {
	logger := log.With().Str("handler", "projectHandler").Logger()

	return projectHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: projectRepo,
	}
}

// getAllProjects lists projects with optional query/tag filters. Public.
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters := database.ListFilters{
			Query: sanitize.Text(r.URL.Query().Get("query")),
			Tag:   sanitize.Text(r.URL.Query().Get("tag")),
		}

		projects, err := h.projectRepo.List(filters)
		if err != nil {
			h.responder.Error(w, err)
			return
		}

		h.responder.Success(w, http.StatusOK, "Projects retrieved", projects)
	}
}

// getProject returns one project by ID. Public.
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.Error(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.Error(w, err)
			return
		}
		if project == nil {
			h.responder.Error(w, errs.NewNotFoundError("project not found"))
			return
		}

		h.responder.Success(w, http.StatusOK, "Project retrieved", project)
	}
}

// createProject creates a new project. Admin only.
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in models.CreateProjectInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			h.responder.Error(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if fields := validate.Struct(in); fields != nil {
			h.responder.Error(w, errs.NewValidationError("invalid project payload", fields))
			return
		}

		sanitizeProjectInput(&in)

		created, err := h.projectRepo.Add(in)
		if err != nil {
			h.responder.Error(w, err)
			return
		}

		h.logger.Info().Str("id", created.ID).Msg("Project created")
		h.responder.Success(w, http.StatusCreated, "Project created", created)
	}
}

// updateProject replaces the mutable fields of an existing project. Admin only.
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.Error(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		var in models.CreateProjectInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			h.responder.Error(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if fields := validate.Struct(in); fields != nil {
			h.responder.Error(w, errs.NewValidationError("invalid project payload", fields))
			return
		}

		sanitizeProjectInput(&in)

		updated, err := h.projectRepo.Update(projectID, models.UpdateProjectInput{
			Title:       &in.Title,
			Description: &in.Description,
			Tags:        in.Tags,
			Stack:       in.Stack,
			Links:       in.Links,
			DemoURL:     &in.DemoURL,
			RepoURL:     &in.RepoURL,
			Date:        &in.Date,
		})
		if err != nil {
			h.responder.Error(w, err)
			return
		}

		h.logger.Info().Str("id", updated.ID).Msg("Project updated")
		h.responder.Success(w, http.StatusOK, "Project updated", updated)
	}
}

// deleteProject removes a project and echoes what was deleted. Admin only.
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.Error(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		deleted, err := h.projectRepo.Delete(projectID)
		if err != nil {
			h.responder.Error(w, err)
			return
		}

		h.logger.Info().Str("id", deleted.ID).Msg("Project deleted")
		h.responder.Success(w, http.StatusOK, "Project deleted", deleted)
	}
}

func sanitizeProjectInput(in *models.CreateProjectInput) {
	in.Title = sanitize.Text(in.Title)
	in.Description = sanitize.Text(in.Description)
	in.Tags = sanitize.Tags(in.Tags)
	in.Stack = sanitize.Tags(in.Stack)
	in.DemoURL = sanitize.Text(in.DemoURL)
	in.RepoURL = sanitize.Text(in.RepoURL)
	if in.Links == nil {
		in.Links = []string{}
	}
}
