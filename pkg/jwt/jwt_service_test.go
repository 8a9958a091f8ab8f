package jwt

import (
	"Cookbook-Backend/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndResolveToken(t *testing.T) {
	svc := NewJWTService()

	token := svc.GenerateTokenUser("some-user-id", domain.RoleAdmin)
	require.NotEmpty(t, token)

	userID, role, err := svc.GetUserIDByToken(token)
	require.NoError(t, err)
	assert.Equal(t, "some-user-id", userID)
	assert.Equal(t, domain.RoleAdmin, role)
}

func TestGarbageTokenRejected(t *testing.T) {
	svc := NewJWTService()

	_, _, err := svc.GetUserIDByToken("not.a.token")
	require.ErrorIs(t, err, domain.ErrTokenInvalid)
}
