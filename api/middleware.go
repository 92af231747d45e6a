package api

import (
	"net/http"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jamndev/portfolio-backend/errs"
	"github.com/jamndev/portfolio-backend/models"
)

type authMiddleware struct {
	responder Responder
	secret    string
}

func newAuthMiddleware(secret string) authMiddleware {
	logger := log.With().Str("handler", "authMiddleware").Logger()
	return authMiddleware{
		responder: NewResponder(logger),
		secret:    secret,
	}
}

// requireAdmin gates mutating routes: a valid bearer token with the ADMIN
// role is required, everything else is a 401.
func (m authMiddleware) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			m.responder.Error(w, errs.NewUnauthorizedError("missing bearer token"))
			return
		}

		claims, err := parseToken(m.secret, strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			m.responder.Error(w, errs.NewUnauthorizedError("invalid or expired token"))
			return
		}

		if claims.Role != models.RoleAdmin {
			m.responder.Error(w, errs.NewUnauthorizedError("admin role required"))
			return
		}

		next.ServeHTTP(w, r.WithContext(ctxWithUserEmail(r.Context(), claims.Subject)))
	})
}

type statusResponseWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusResponseWriter) WriteHeader(statusCode int) {
	if !w.wroteHeader {
		w.status = statusCode
		w.wroteHeader = true
		w.ResponseWriter.WriteHeader(statusCode)
	}
}

// Recoverer converts handler panics into 500 responses and logs the stack.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		srw := &statusResponseWriter{ResponseWriter: w, status: 200}

		defer func() {
			if err := recover(); err != nil {
				log.Error().
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Interface("panic", err).
					Str("stack", string(debug.Stack())).
					Msg("Recovered from panic")

				// Write 500 if nothing written yet
				if !srw.wroteHeader {
					srw.WriteHeader(http.StatusInternalServerError)
				}
			}
		}()

		next.ServeHTTP(srw, r)
	})
}

// RequestLogger logs every HTTP request with a level matching its status code.
func RequestLogger(next http.Handler) http.Handler {
	colorLogger := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		srw := &statusResponseWriter{ResponseWriter: w, status: 200}

		next.ServeHTTP(srw, r)

		duration := time.Since(start)

		var logEvent *zerolog.Event
		switch {
		case srw.status >= 500:
			logEvent = colorLogger.Error()
		case srw.status >= 400:
			logEvent = colorLogger.Warn()
		default:
			logEvent = colorLogger.Info()
		}

		logEvent.
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", srw.status).
			Dur("duration", duration).
			Str("remote_addr", r.RemoteAddr).
			Msg("HTTP Request")
	})
}
