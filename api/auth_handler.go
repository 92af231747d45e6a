package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/jamndev/portfolio-backend/database"
	"github.com/jamndev/portfolio-backend/errs"
	"github.com/jamndev/portfolio-backend/models"
	"github.com/jamndev/portfolio-backend/sanitize"
	"github.com/jamndev/portfolio-backend/validate"
)

type authHandler struct {
	responder Responder
	logger    zerolog.Logger
	userRepo  *database.UserRepo
	secret    string
	tokenTTL  time.Duration
}

func newAuthHandler(userRepo *database.UserRepo, secret string, tokenTTL time.Duration) authHandler {
	logger := log.With().Str("handler", "authHandler").Logger()

	return authHandler{
		responder: NewResponder(logger),
		logger:    logger,
		userRepo:  userRepo,
		secret:    secret,
		tokenTTL:  tokenTTL,
	}
}

type loginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
}

// login verifies credentials and issues a session token. Credential failures
// are reported uniformly so the response does not reveal which part failed.
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in models.LoginInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			h.responder.Error(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if fields := validate.Struct(in); fields != nil {
			h.responder.Error(w, errs.NewValidationError("invalid credentials payload", fields))
			return
		}

		user, err := h.userRepo.FindByEmail(sanitize.Text(in.Email))
		if err != nil {
			h.responder.Error(w, err)
			return
		}
		if user == nil {
			h.responder.Error(w, errs.NewUnauthorizedError("invalid credentials"))
			return
		}

		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)) != nil {
			h.responder.Error(w, errs.NewUnauthorizedError("invalid credentials"))
			return
		}

		token, expiresAt, err := issueToken(h.secret, *user, h.tokenTTL)
		if err != nil {
			h.responder.Error(w, errs.NewInternalError("could not issue session token", err))
			return
		}

		h.logger.Info().Str("email", user.Email).Msg("User signed in")
		h.responder.Success(w, http.StatusOK, "Signed in", loginResponse{
			Token:     token,
			ExpiresAt: expiresAt,
			Email:     user.Email,
			Name:      user.Name,
			Role:      user.Role,
		})
	}
}
