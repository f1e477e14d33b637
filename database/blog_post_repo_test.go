package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianstudio/site-backend/models"
)

func seedBlogPosts(t *testing.T, repo *BlogPostRepo) {
	t.Helper()

	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	early := base.Add(-30 * 24 * time.Hour)
	late := base.Add(30 * 24 * time.Hour)

	fixtures := []*models.BlogPost{
		{
			// Authored first, but published most recently.
			Title:       "Material Studies",
			Content:     "...",
			PublishDate: &late,
			Published:   true,
			CreatedAt:   base,
		},
		{
			Title:       "Studio Notes",
			Content:     "...",
			PublishDate: &early,
			Published:   true,
			CreatedAt:   base.Add(24 * time.Hour),
		},
		{
			// No publish date: sorts after dated posts.
			Title:     "Undated Draft Gone Live",
			Content:   "...",
			Published: true,
			CreatedAt: base.Add(48 * time.Hour),
		},
		{
			Title:     "Unpublished Draft",
			Content:   "...",
			Published: false,
			CreatedAt: base.Add(72 * time.Hour),
		},
	}
	for _, p := range fixtures {
		require.NoError(t, repo.Add(p))
	}
}

func TestBlogPostListPublishDateOrder(t *testing.T) {
	repo := NewBlogPostRepo(newTestDB(t))
	seedBlogPosts(t, repo)

	posts, err := repo.List(false)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "Material Studies", posts[0].Title)
	assert.Equal(t, "Studio Notes", posts[1].Title)
	assert.Equal(t, "Undated Draft Gone Live", posts[2].Title)
}

func TestBlogPostListRecentCreationOrder(t *testing.T) {
	repo := NewBlogPostRepo(newTestDB(t))
	seedBlogPosts(t, repo)

	posts, err := repo.ListRecent(true)
	require.NoError(t, err)
	require.Len(t, posts, 4)
	assert.Equal(t, "Unpublished Draft", posts[0].Title)
	assert.Equal(t, "Undated Draft Gone Live", posts[1].Title)
	assert.Equal(t, "Studio Notes", posts[2].Title)
	assert.Equal(t, "Material Studies", posts[3].Title)
}

func TestBlogPostFindBySlug(t *testing.T) {
	repo := NewBlogPostRepo(newTestDB(t))
	seedBlogPosts(t, repo)

	post, err := repo.FindBySlug("studio-notes", false)
	require.NoError(t, err)
	require.NotNil(t, post)
	assert.Equal(t, "Studio Notes", post.Title)

	hidden, err := repo.FindBySlug("unpublished-draft", false)
	require.NoError(t, err)
	assert.Nil(t, hidden)

	asAdmin, err := repo.FindBySlug("unpublished-draft", true)
	require.NoError(t, err)
	require.NotNil(t, asAdmin)
}

func TestBlogPostCRUD(t *testing.T) {
	repo := NewBlogPostRepo(newTestDB(t))

	post := &models.BlogPost{Title: "On Courtyards", Content: "body", Published: true}
	require.NoError(t, repo.Add(post))
	assert.Equal(t, "on-courtyards", post.Slug)

	post.Excerpt = "short"
	require.NoError(t, repo.Update(post))

	found, err := repo.FindByID(post.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "short", found.Excerpt)

	require.NoError(t, repo.Delete(post.ID))
	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
