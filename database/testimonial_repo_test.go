package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianstudio/site-backend/models"
)

func TestTestimonialList(t *testing.T) {
	repo := NewTestimonialRepo(newTestDB(t))

	fixtures := []*models.Testimonial{
		{ClientName: "Featured Client", Content: "Great.", Rating: 5, Featured: true, Published: true},
		{ClientName: "Regular Client", Content: "Good.", Rating: 4, Published: true},
		{ClientName: "Hidden Client", Content: "Pending.", Rating: 5, Featured: true, Published: false},
	}
	for _, ts := range fixtures {
		require.NoError(t, repo.Add(ts))
	}

	published, err := repo.List(false, false)
	require.NoError(t, err)
	assert.Len(t, published, 2)

	featured, err := repo.List(false, true)
	require.NoError(t, err)
	require.Len(t, featured, 1)
	assert.Equal(t, "Featured Client", featured[0].ClientName)

	all, err := repo.List(true, false)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestTestimonialCRUD(t *testing.T) {
	repo := NewTestimonialRepo(newTestDB(t))

	testimonial := &models.Testimonial{ClientName: "Rui", Content: "Excellent work.", Rating: 5, Published: true}
	require.NoError(t, repo.Add(testimonial))

	testimonial.ClientCompany = "Atelier X"
	require.NoError(t, repo.Update(testimonial))

	found, err := repo.FindByID(testimonial.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Atelier X", found.ClientCompany)

	require.NoError(t, repo.Delete(testimonial.ID))
	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
