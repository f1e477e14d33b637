package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianstudio/site-backend/models"
)

func TestCreateContactPublic(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/contacts", "", map[string]any{
		"name":         "Prospective Client",
		"email":        "client@example.com",
		"phone":        "+351 000 000 000",
		"project_type": "residential",
		"message":      "We would like to discuss a house.",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		Contact *models.Contact `json:"contact"`
	}
	decodeBody(t, rec, &body)
	require.NotNil(t, body.Contact)
	assert.NotEmpty(t, body.Contact.ID)

	count, err := env.db.ContactRepo().Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestCreateContactValidation(t *testing.T) {
	env := newTestEnv(t)

	cases := []struct {
		name    string
		payload map[string]any
		field   string
	}{
		{"missing name", map[string]any{"email": "a@b.com", "message": "hi"}, "name"},
		{"missing email", map[string]any{"name": "A", "message": "hi"}, "email"},
		{"invalid email", map[string]any{"name": "A", "email": "nope", "message": "hi"}, "email"},
		{"missing message", map[string]any{"name": "A", "email": "a@b.com"}, "message"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := env.do(t, http.MethodPost, "/api/contacts", "", tc.payload)
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var body ErrorResponse
			decodeBody(t, rec, &body)
			assert.Equal(t, tc.field, body.Field)
		})
	}

	count, err := env.db.ContactRepo().Count()
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestGetContactsAdminOnly(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	require.NoError(t, env.db.ContactRepo().Add(&models.Contact{
		Name: "Client", Email: "client@example.com", Message: "Hello",
	}))

	rec := env.do(t, http.MethodGet, "/api/contacts", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/contacts", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Contacts []*models.Contact `json:"contacts"`
	}
	decodeBody(t, rec, &body)
	require.Len(t, body.Contacts, 1)
	assert.Equal(t, "Client", body.Contacts[0].Name)
}
