package api

import (
	"net/http"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/meridianstudio/site-backend/auth"
	"github.com/meridianstudio/site-backend/database"
	"github.com/meridianstudio/site-backend/errs"
)

type authMiddleware struct {
	sessions  *auth.Sessions
	users     *database.AdminUserRepo
	responder Responder
}

func newAuthMiddleware(sessions *auth.Sessions, users *database.AdminUserRepo) authMiddleware {
	logger := log.With().Str("handlerName", "authMiddleware").Logger()
	return authMiddleware{
		sessions:  sessions,
		users:     users,
		responder: NewResponder(logger),
	}
}

// verify extracts and validates the bearer token, then confirms the session's
// user still exists. Returns the claims or an ApiErr.
func (m authMiddleware) verify(r *http.Request) (auth.Claims, error) {
	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return auth.Claims{}, errs.NewMissingTokenError()
	}

	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == "" {
		return auth.Claims{}, errs.NewMissingTokenError()
	}

	claims, err := m.sessions.Verify(token)
	if err != nil {
		if err == auth.ErrTokenExpired {
			return auth.Claims{}, errs.NewExpiredTokenError()
		}
		return auth.Claims{}, errs.NewInvalidTokenError()
	}

	user, err := m.users.FindByID(claims.UserID)
	if err != nil {
		return auth.Claims{}, errs.NewDatabaseError("find session user", "admin user", err)
	}
	if user == nil {
		return auth.Claims{}, errs.NewInvalidTokenError()
	}

	return claims, nil
}

// authenticate rejects requests without a valid session.
func (m authMiddleware) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := m.verify(r)
		if err != nil {
			m.responder.WriteError(w, err)
			return
		}

		updatedReq := r.WithContext(ctxWithUser(r.Context(), claims.UserID, claims.Email))
		next.ServeHTTP(w, updatedReq)
	})
}

// maybeAuthenticate attaches the session identity when a valid token is
// present but never rejects. Public listings use it to decide whether the
// caller is in an admin context.
func (m authMiddleware) maybeAuthenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if claims, err := m.verify(r); err == nil {
			r = r.WithContext(ctxWithUser(r.Context(), claims.UserID, claims.Email))
		}
		next.ServeHTTP(w, r)
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

		// Optionally log 500s that weren't panics (e.g. manually set by handlers)
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
	// Set up colored console writer for development
	colorLogger := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		srw := &statusResponseWriter{ResponseWriter: w, status: 200}

		next.ServeHTTP(srw, r)

		duration := time.Since(start)

		// Color-code based on HTTP status codes
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
