package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianstudio/site-backend/models"
)

func TestSignupBootstrap(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/auth/signup", "", map[string]string{
		"email":    "First@Example.com",
		"password": "password123",
		"name":     "Founder",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		Token string            `json:"token"`
		User  *models.AdminUser `json:"user"`
	}
	decodeBody(t, rec, &body)
	assert.NotEmpty(t, body.Token)
	require.NotNil(t, body.User)
	// Email is normalized to lowercase.
	assert.Equal(t, "first@example.com", body.User.Email)

	// Signup closes once an admin exists.
	rec = env.do(t, http.MethodPost, "/api/auth/signup", "", map[string]string{
		"email":    "second@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	count, err := env.db.AdminUserRepo().Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestSignupValidation(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/auth/signup", "", map[string]string{
		"email":    "not-an-email",
		"password": "password123",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/auth/signup", "", map[string]string{
		"email":    "admin@example.com",
		"password": "short",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body ErrorResponse
	decodeBody(t, rec, &body)
	assert.Equal(t, "password", body.Field)
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	env.adminToken(t)

	rec := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "admin@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Token string            `json:"token"`
		User  *models.AdminUser `json:"user"`
	}
	decodeBody(t, rec, &body)
	assert.NotEmpty(t, body.Token)
	require.NotNil(t, body.User)
	assert.Equal(t, "admin@example.com", body.User.Email)

	// Wrong password and unknown email get the same response.
	rec = env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "admin@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "ghost@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSession(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	rec := env.do(t, http.MethodGet, "/api/auth/session", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		User *models.AdminUser `json:"user"`
	}
	decodeBody(t, rec, &body)
	require.NotNil(t, body.User)
	assert.Equal(t, "admin@example.com", body.User.Email)

	rec = env.do(t, http.MethodGet, "/api/auth/session", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/auth/session", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
