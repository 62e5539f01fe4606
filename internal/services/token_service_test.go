package services

import (
	"testing"
	"time"

	"github.com/projectboard/project-task-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService_RoundTrip(t *testing.T) {
	service := NewTokenService("test-secret", "project-task-api", 60)
	user := &models.User{ID: "user-1", Email: "alice@example.com"}

	token, expiresAt, err := service.Issue(user)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().UTC().Add(60*time.Minute), expiresAt, 5*time.Second)

	claims, err := service.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "project-task-api", claims.Issuer)
	assert.NotEmpty(t, claims.ID)
}

func TestTokenService_Verify_WrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a", "project-task-api", 60)
	verifier := NewTokenService("secret-b", "project-task-api", 60)

	token, _, err := issuer.Issue(&models.User{ID: "user-1", Email: "alice@example.com"})
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_Verify_Expired(t *testing.T) {
	service := NewTokenService("test-secret", "project-task-api", -1)

	token, _, err := service.Issue(&models.User{ID: "user-1", Email: "alice@example.com"})
	require.NoError(t, err)

	_, err = service.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_Verify_Garbage(t *testing.T) {
	service := NewTokenService("test-secret", "project-task-api", 60)

	_, err := service.Verify("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
