package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jamndev/portfolio-backend/database"
	"github.com/jamndev/portfolio-backend/errs"
	"github.com/jamndev/portfolio-backend/models"
	"github.com/jamndev/portfolio-backend/sanitize"
	"github.com/jamndev/portfolio-backend/validate"
)

type cvHandler struct {
	responder Responder
	logger    zerolog.Logger
	cvRepo    *database.CvRepo
}

func newCvHandler(cvRepo *database.CvRepo) cvHandler {
	logger := log.With().Str("handler", "cvHandler").Logger()

	return cvHandler{
		responder: NewResponder(logger),
		logger:    logger,
		cvRepo:    cvRepo,
	}
}

// getCv returns the singleton CV profile. Public; data is null until the
// first save.
func (h cvHandler) getCv() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := h.cvRepo.Get()
		if err != nil {
			h.responder.Error(w, err)
			return
		}

		h.responder.Success(w, http.StatusOK, "CV profile retrieved", profile)
	}
}

// updateCv creates or updates the CV profile. Admin only.
func (h cvHandler) updateCv() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in models.UpsertCvInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			h.responder.Error(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if fields := validate.Struct(in); fields != nil {
			h.responder.Error(w, errs.NewValidationError("invalid CV profile payload", fields))
			return
		}

		sanitizeCvInput(&in)

		saved, err := h.cvRepo.Upsert(in)
		if err != nil {
			h.responder.Error(w, err)
			return
		}

		h.logger.Info().Str("id", saved.ID).Msg("CV profile saved")
		h.responder.Success(w, http.StatusOK, "CV profile saved", saved)
	}
}

func sanitizeCvInput(in *models.UpsertCvInput) {
	in.FullName = sanitize.Text(in.FullName)
	in.Title = sanitize.Text(in.Title)
	in.Summary = sanitize.Text(in.Summary)
	in.Location = sanitize.Text(in.Location)
	in.Email = sanitize.Text(in.Email)
	in.Phone = sanitize.Text(in.Phone)
	in.Website = sanitize.Text(in.Website)
	in.Linkedin = sanitize.Text(in.Linkedin)
	in.Github = sanitize.Text(in.Github)
	in.Skills = sanitize.Tags(in.Skills)

	for i := range in.Experiences {
		exp := &in.Experiences[i]
		exp.Company = sanitize.Text(exp.Company)
		exp.Role = sanitize.Text(exp.Role)
		exp.Period = sanitize.Text(exp.Period)

		highlights := make([]string, 0, len(exp.Highlights))
		for _, highlight := range exp.Highlights {
			if cleaned := sanitize.Text(highlight); cleaned != "" {
				highlights = append(highlights, cleaned)
			}
		}
		exp.Highlights = highlights
	}
}
