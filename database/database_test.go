package database

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/meridianstudio/site-backend/models"
)

// newTestDB opens a fresh in-memory database with the full schema. Each test
// gets its own instance; MaxOpenConns is pinned to one so the in-memory
// store is not lost between pooled connections.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, models.Migrate(db))
	return db
}

func TestStats(t *testing.T) {
	db := newTestDB(t)
	facade := New(db)

	require.NoError(t, facade.ProjectRepo().Add(&models.Project{Title: "One"}))
	require.NoError(t, facade.ProjectRepo().Add(&models.Project{Title: "Two"}))
	require.NoError(t, facade.TeamMemberRepo().Add(&models.TeamMember{Name: "A", Position: "Principal"}))
	require.NoError(t, facade.ContactRepo().Add(&models.Contact{Name: "B", Email: "b@example.com", Message: "hi"}))

	stats, err := facade.Stats()
	require.NoError(t, err)
	require.Equal(t, int64(2), stats.Projects)
	require.Equal(t, int64(1), stats.Team)
	require.Equal(t, int64(0), stats.Testimonials)
	require.Equal(t, int64(0), stats.Blog)
	require.Equal(t, int64(1), stats.Contacts)
}
