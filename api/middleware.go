package api

import (
	"errors"
	"net/http"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/zulfifazhar/portfolio-backend/errs"
)

// ownerGate is the authorization boundary of the admin surfaces: it verifies
// the bearer token and compares the email claim against the single configured
// owner address. There are no roles beyond owner / not-owner.
type ownerGate struct {
	responder  Responder
	secret     []byte
	ownerEmail string
}

func newOwnerGate(secret, ownerEmail string) ownerGate {
	logger := log.With().Str("handlerName", "ownerGate").Logger()
	return ownerGate{
		responder:  NewResponder(logger),
		secret:     []byte(secret),
		ownerEmail: ownerEmail,
	}
}

// identityFromRequest extracts and verifies the bearer token, returning the
// email claim of the signed-in identity.
func (g ownerGate) identityFromRequest(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", errs.NewMissingTokenError()
	}
	raw := strings.TrimPrefix(authHeader, "Bearer ")
	if raw == "" {
		return "", errs.NewMissingTokenError()
	}

	token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		return g.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", errs.NewExpiredTokenError()
		}
		return "", errs.NewInvalidTokenError(err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errs.NewInvalidTokenError(errors.New("unexpected claims type"))
	}
	email, _ := claims["email"].(string)
	if email == "" {
		return "", errs.NewInvalidTokenError(errors.New("missing email claim"))
	}
	return email, nil
}

func (g ownerGate) isOwner(email string) bool {
	return g.ownerEmail != "" && strings.EqualFold(email, g.ownerEmail)
}

// requireOwner guards mutating and dashboard routes.
func (g ownerGate) requireOwner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, err := g.identityFromRequest(r)
		if err != nil {
			g.responder.WriteError(w, err)
			return
		}
		if !g.isOwner(email) {
			g.responder.WriteError(w, errs.NewNotOwnerError(email))
			return
		}

		next.ServeHTTP(w, r.WithContext(ctxWithIdentityEmail(r.Context(), email)))
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

func LogInternalServerErrors(next http.Handler) http.Handler {
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

		// Log 500s that weren't panics (e.g. manually set by handlers)
		if srw.status == http.StatusInternalServerError {
			log.Error().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Msg("500 error response")
		}
	})
}

// ColoredHTTPLoggingMiddleware logs HTTP requests with colored output based on status codes
func ColoredHTTPLoggingMiddleware(next http.Handler) http.Handler {
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
