package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adilet/stockeasy/pkg/auth"
)

func TestGenerateAndValidateToken(t *testing.T) {
	token, sessionID, err := auth.GenerateToken("demo@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotEmpty(t, sessionID)

	claims, err := auth.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "demo@example.com", claims.Email)
	assert.Equal(t, sessionID, claims.SessionID)
	assert.Equal(t, sessionID, claims.ID)
	assert.Equal(t, "stockeasy", claims.Issuer)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, err := auth.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestValidateTokenRejectsTamperedToken(t *testing.T) {
	token, _, err := auth.GenerateToken("demo@example.com")
	require.NoError(t, err)

	_, err = auth.ValidateToken(token + "x")
	assert.Error(t, err)
}

func TestGenerateTokenSessionIDsAreUnique(t *testing.T) {
	_, first, err := auth.GenerateToken("demo@example.com")
	require.NoError(t, err)
	_, second, err := auth.GenerateToken("demo@example.com")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
