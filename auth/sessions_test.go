package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianstudio/site-backend/models"
)

func testUser() *models.AdminUser {
	return &models.AdminUser{
		ID:    uuid.New(),
		Email: "admin@example.com",
	}
}

func TestIssueAndVerify(t *testing.T) {
	sessions := NewSessions("test-secret", time.Hour)
	user := testUser()

	token, err := sessions.Issue(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := sessions.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
}

func TestVerifyExpiredToken(t *testing.T) {
	sessions := NewSessions("test-secret", -time.Minute)

	token, err := sessions.Issue(testUser())
	require.NoError(t, err)

	_, err = sessions.Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyWrongSecret(t *testing.T) {
	token, err := NewSessions("secret-one", time.Hour).Issue(testUser())
	require.NoError(t, err)

	_, err = NewSessions("secret-two", time.Hour).Verify(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyGarbageToken(t *testing.T) {
	sessions := NewSessions("test-secret", time.Hour)

	_, err := sessions.Verify("not.a.token")
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = sessions.Verify("")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
