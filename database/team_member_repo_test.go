package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianstudio/site-backend/models"
)

func TestTeamMemberListOrder(t *testing.T) {
	repo := NewTeamMemberRepo(newTestDB(t))

	fixtures := []*models.TeamMember{
		{Name: "Third", Position: "Architect", OrderIndex: 3, Published: true},
		{Name: "First", Position: "Principal", OrderIndex: 1, Published: true},
		{Name: "Second", Position: "Director", OrderIndex: 2, Published: true},
		{Name: "Hidden", Position: "Intern", OrderIndex: 0, Published: false},
	}
	for _, m := range fixtures {
		require.NoError(t, repo.Add(m))
	}

	members, err := repo.List(false)
	require.NoError(t, err)
	require.Len(t, members, 3)
	assert.Equal(t, "First", members[0].Name)
	assert.Equal(t, "Second", members[1].Name)
	assert.Equal(t, "Third", members[2].Name)

	all, err := repo.List(true)
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "Hidden", all[0].Name)
}

func TestTeamMemberCRUD(t *testing.T) {
	repo := NewTeamMemberRepo(newTestDB(t))

	member := &models.TeamMember{Name: "Ana", Position: "Principal", Published: true}
	require.NoError(t, repo.Add(member))
	assert.NotEmpty(t, member.ID)

	member.Bio = "Founder of the studio."
	require.NoError(t, repo.Update(member))

	found, err := repo.FindByID(member.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Founder of the studio.", found.Bio)

	require.NoError(t, repo.Delete(member.ID))
	gone, err := repo.FindByID(member.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}
