package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/meridianstudio/site-backend/auth"
	"github.com/meridianstudio/site-backend/database"
	"github.com/meridianstudio/site-backend/errs"
	"github.com/meridianstudio/site-backend/models"
)

type authHandler struct {
	responder Responder
	logger    zerolog.Logger
	users     *database.AdminUserRepo
	sessions  *auth.Sessions
}

func newAuthHandler(users *database.AdminUserRepo, sessions *auth.Sessions) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder: NewResponder(logger),
		logger:    logger,
		users:     users,
		sessions:  sessions,
	}
}

type credentialsPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

func (h authHandler) decodeCredentials(r *http.Request) (credentialsPayload, error) {
	bodyBytes, err := io.ReadAll(r.Body)
	if err != nil {
		return credentialsPayload{}, errs.NewBadRequestError("failed to read request body")
	}

	var payload credentialsPayload
	if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&payload); err != nil {
		return credentialsPayload{}, errs.NewInvalidJSONError(err)
	}

	payload.Email = strings.ToLower(strings.TrimSpace(payload.Email))
	if payload.Email == "" || !strings.Contains(payload.Email, "@") {
		return credentialsPayload{}, errs.NewInvalidFieldError("email", "must be a valid email address")
	}
	if payload.Password == "" {
		return credentialsPayload{}, errs.NewMissingRequiredFieldError("password")
	}

	return payload, nil
}

// signup godoc
// @Summary Create the first admin account
// @Description Open only while no admin user exists; afterwards it always returns 403
// @Tags auth
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /auth/signup [post]
func (h authHandler) signup() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, err := h.decodeCredentials(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if len(payload.Password) < 8 {
			h.responder.WriteError(w, errs.NewInvalidFieldError("password", "must be at least 8 characters"))
			return
		}

		count, err := h.users.Count()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("count", "admin users", err))
			return
		}
		if count > 0 {
			h.responder.WriteError(w, errs.NewForbiddenError("signup is closed"))
			return
		}

		hash, err := auth.HashPassword(payload.Password)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to hash password", err))
			return
		}

		user := &models.AdminUser{
			Email:        payload.Email,
			Name:         payload.Name,
			PasswordHash: hash,
		}
		if err := h.users.Add(user); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "admin user", err))
			return
		}

		token, err := h.sessions.Issue(user)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to issue session", err))
			return
		}

		h.logger.Info().Str("email", user.Email).Msg("admin account bootstrapped")

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, map[string]any{
			"token": token,
			"user":  user,
		})
	}
}

// login godoc
// @Summary Exchange credentials for a session token
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/login [post]
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, err := h.decodeCredentials(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		user, err := h.users.FindByEmail(payload.Email)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "admin user", err))
			return
		}
		// Same response for unknown email and wrong password.
		if user == nil || !auth.CheckPassword(user.PasswordHash, payload.Password) {
			h.responder.WriteError(w, errs.NewUnauthorizedError("invalid email or password"))
			return
		}

		token, err := h.sessions.Issue(user)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to issue session", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"token": token,
			"user":  user,
		})
	}
}

// session returns the authenticated admin behind the presented token.
func (h authHandler) session() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := ctxGetUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewMissingTokenError())
			return
		}

		user, err := h.users.FindByID(userID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "admin user", err))
			return
		}
		if user == nil {
			h.responder.WriteError(w, errs.NewInvalidTokenError())
			return
		}

		h.responder.WriteJSON(w, map[string]*models.AdminUser{"user": user})
	}
}
