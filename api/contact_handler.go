package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jamndev/portfolio-backend/errs"
	"github.com/jamndev/portfolio-backend/sanitize"
	"github.com/jamndev/portfolio-backend/services"
	"github.com/jamndev/portfolio-backend/validate"
)

type contactHandler struct {
	responder Responder
	logger    zerolog.Logger
	mailer    services.Mailer
}

func newContactHandler(mailer services.Mailer) contactHandler {
	logger := log.With().Str("handler", "contactHandler").Logger()

	return contactHandler{
		responder: NewResponder(logger),
		logger:    logger,
		mailer:    mailer,
	}
}

// submit relays a visitor message to the site owner. Public.
func (h contactHandler) submit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var msg services.ContactMessage
		if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
			h.responder.Error(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if fields := validate.Struct(msg); fields != nil {
			h.responder.Error(w, errs.NewValidationError("invalid contact message", fields))
			return
		}

		msg.Name = sanitize.Text(msg.Name)
		msg.Email = sanitize.Text(msg.Email)
		msg.Message = sanitize.Text(msg.Message)

		if err := h.mailer.Relay(msg); err != nil {
			h.responder.Error(w, errs.NewInternalError("could not deliver contact message", err))
			return
		}

		h.logger.Info().Str("from", msg.Email).Msg("Contact message delivered")
		h.responder.Success(w, http.StatusOK, "Message sent", nil)
	}
}
