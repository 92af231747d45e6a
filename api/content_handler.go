package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jamndev/portfolio-backend/errs"
	"github.com/jamndev/portfolio-backend/models"
	"github.com/jamndev/portfolio-backend/sanitize"
	"github.com/jamndev/portfolio-backend/services"
	"github.com/jamndev/portfolio-backend/validate"
)

// contentHandler serves the cross-entity read endpoints: search and the
// landing-page aggregate.
type contentHandler struct {
	responder Responder
	logger    zerolog.Logger
	searcher  services.ContentSearcher
	home      services.HomeLoader
}

func newContentHandler(searcher services.ContentSearcher, home services.HomeLoader) contentHandler {
	logger := log.With().Str("handler", "contentHandler").Logger()

	return contentHandler{
		responder: NewResponder(logger),
		logger:    logger,
		searcher:  searcher,
		home:      home,
	}
}

// search runs the cross-entity text/tag search. Public.
func (h contentHandler) search() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := r.URL.Query()
		in := models.SearchQueryInput{
			Query: params.Get("query"),
			Tag:   params.Get("tag"),
			Type:  params.Get("type"),
		}

		if fields := validate.Struct(in); fields != nil {
			h.responder.Error(w, errs.NewValidationError("invalid search filters", fields))
			return
		}

		result, err := h.searcher.Search(r.Context(), services.SearchInput{
			Query: sanitize.Text(in.Query),
			Tag:   sanitize.Text(in.Tag),
			Type:  in.Type,
		})
		if err != nil {
			h.responder.Error(w, err)
			return
		}

		h.responder.Success(w, http.StatusOK, "Search completed", result)
	}
}

// homeContent returns the landing-page aggregate. Public.
func (h contentHandler) homeContent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		content, err := h.home.Load(r.Context())
		if err != nil {
			h.responder.Error(w, err)
			return
		}

		h.responder.Success(w, http.StatusOK, "Home content retrieved", content)
	}
}

// health is a liveness probe.
func (h contentHandler) health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.Success(w, http.StatusOK, "OK", map[string]string{"status": "up"})
	}
}
