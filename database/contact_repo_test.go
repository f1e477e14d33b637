package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianstudio/site-backend/models"
)

func TestContactAddAndList(t *testing.T) {
	repo := NewContactRepo(newTestDB(t))

	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Add(&models.Contact{
		Name: "Older", Email: "older@example.com", Message: "First inquiry", CreatedAt: base,
	}))
	require.NoError(t, repo.Add(&models.Contact{
		Name: "Newer", Email: "newer@example.com", Message: "Second inquiry", CreatedAt: base.Add(time.Hour),
	}))

	contacts, err := repo.List()
	require.NoError(t, err)
	require.Len(t, contacts, 2)
	assert.Equal(t, "Newer", contacts[0].Name)
	assert.Equal(t, "Older", contacts[1].Name)

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
