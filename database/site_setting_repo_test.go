package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSiteSettingUpsertAndAll(t *testing.T) {
	repo := NewSiteSettingRepo(newTestDB(t))

	_, err := repo.Upsert("site_title", "Meridian Studio")
	require.NoError(t, err)
	_, err = repo.Upsert("contact_email", "hello@example.com")
	require.NoError(t, err)

	// Overwriting an existing key must not create a second row.
	updated, err := repo.Upsert("site_title", "Meridian Architecture")
	require.NoError(t, err)
	assert.Equal(t, "Meridian Architecture", updated.Value)

	settings, err := repo.All()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"site_title":    "Meridian Architecture",
		"contact_email": "hello@example.com",
	}, settings)
}

func TestSiteSettingGet(t *testing.T) {
	repo := NewSiteSettingRepo(newTestDB(t))

	missing, err := repo.Get("absent")
	require.NoError(t, err)
	assert.Nil(t, missing)

	_, err = repo.Upsert("footer_text", "All rights reserved")
	require.NoError(t, err)

	row, err := repo.Get("footer_text")
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, "All rights reserved", row.Value)
}

func TestSiteSettingUpsertMany(t *testing.T) {
	repo := NewSiteSettingRepo(newTestDB(t))

	_, err := repo.Upsert("site_title", "Old Title")
	require.NoError(t, err)

	err = repo.UpsertMany(map[string]string{
		"site_title": "New Title",
		"phone":      "+351 000 000 000",
		"address":    "Rua Example 1",
	})
	require.NoError(t, err)

	settings, err := repo.All()
	require.NoError(t, err)
	assert.Len(t, settings, 3)
	assert.Equal(t, "New Title", settings["site_title"])
	assert.Equal(t, "+351 000 000 000", settings["phone"])

	// Empty input is a no-op.
	require.NoError(t, repo.UpsertMany(nil))
	after, err := repo.All()
	require.NoError(t, err)
	assert.Len(t, after, 3)
}
