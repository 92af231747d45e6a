package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/jamndev/portfolio-backend/errs"
)

// successEnvelope is the uniform success response wrapper.
type successEnvelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// errorEnvelope is the uniform failure response wrapper.
type errorEnvelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Errors  any    `json:"errors,omitempty"`
}

type Responder struct {
	logger zerolog.Logger
}

func NewResponder(logger zerolog.Logger) Responder {
	return Responder{logger}
}

func (r Responder) writeJSON(w http.ResponseWriter, status int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		r.logger.Error().Err(err).Msg("Error marshaling response body")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		r.logger.Error().Err(err).Msg("Error writing response")
	}
}

// Success writes the uniform success envelope with the given status code.
func (r Responder) Success(w http.ResponseWriter, status int, message string, data any) {
	r.writeJSON(w, status, successEnvelope{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

// Error maps err onto the failure envelope. Typed ApiErr values keep their
// status code and message; anything else becomes a generic 500 whose detail
// is only logged, never sent to the client.
func (r Responder) Error(w http.ResponseWriter, err error) {
	var apiErr *errs.ApiErr
	if !errors.As(err, &apiErr) {
		r.logger.Error().Err(err).Msg("Unexpected error")
		r.writeJSON(w, http.StatusInternalServerError, errorEnvelope{
			Status:  "error",
			Message: "An unexpected error occurred",
		})
		return
	}

	logEvent := r.logger.Error().Int("status", apiErr.StatusCode)
	if apiErr.Cause != nil {
		logEvent = logEvent.AnErr("cause", apiErr.Cause)
	}
	logEvent.Msg(apiErr.Error())

	envelope := errorEnvelope{
		Status:  "error",
		Message: apiErr.Error(),
	}
	if apiErr.Fields != nil {
		envelope.Errors = apiErr.Fields
	}
	r.writeJSON(w, apiErr.StatusCode, envelope)
}
