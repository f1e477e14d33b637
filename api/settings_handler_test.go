package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianstudio/site-backend/models"
)

func TestGetSettingsPublic(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.db.SiteSettingRepo().Upsert("site_title", "Meridian Studio")
	require.NoError(t, err)

	rec := env.do(t, http.MethodGet, "/api/settings", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Settings map[string]string `json:"settings"`
	}
	decodeBody(t, rec, &body)
	assert.Equal(t, "Meridian Studio", body.Settings["site_title"])
}

func TestUpdateSettingsRequiresAuth(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPut, "/api/settings", "", map[string]string{"site_title": "Hacked"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	settings, err := env.db.SiteSettingRepo().All()
	require.NoError(t, err)
	assert.Empty(t, settings)
}

func TestUpdateSettingsBulk(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	rec := env.do(t, http.MethodPut, "/api/settings", token, map[string]string{
		"site_title":    "Meridian Studio",
		"contact_email": "hello@example.com",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Settings map[string]string `json:"settings"`
	}
	decodeBody(t, rec, &body)
	assert.Len(t, body.Settings, 2)
	assert.Equal(t, "hello@example.com", body.Settings["contact_email"])

	// Empty payload is rejected.
	rec = env.do(t, http.MethodPut, "/api/settings", token, map[string]string{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateSingleSetting(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	rec := env.do(t, http.MethodPut, "/api/settings/footer_text", token, map[string]string{
		"value": "All rights reserved",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Setting *models.SiteSetting `json:"setting"`
	}
	decodeBody(t, rec, &body)
	require.NotNil(t, body.Setting)
	assert.Equal(t, "footer_text", body.Setting.Key)
	assert.Equal(t, "All rights reserved", body.Setting.Value)

	// Overwrites are idempotent on the key.
	rec = env.do(t, http.MethodPut, "/api/settings/footer_text", token, map[string]string{
		"value": "Updated",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	settings, err := env.db.SiteSettingRepo().All()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"footer_text": "Updated"}, settings)
}
