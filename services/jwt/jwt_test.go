package jwt

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	internID := uuid.New()
	token, err := GenerateSessionToken(internID, "sarah@example.com", "test-secret")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateAndGetClaims(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, "sarah@example.com", claims["email"])

	parsed, err := InternIDFromClaims(claims)
	require.NoError(t, err)
	assert.Equal(t, internID, parsed)
}

func TestValidateAndGetClaims_WrongSecret(t *testing.T) {
	token, err := GenerateSessionToken(uuid.New(), "sarah@example.com", "test-secret")
	require.NoError(t, err)

	_, err = ValidateAndGetClaims(token, "other-secret")
	assert.Error(t, err)
}

func TestValidateAndGetClaims_Garbage(t *testing.T) {
	_, err := ValidateAndGetClaims("not-a-token", "test-secret")
	assert.Error(t, err)
}

func TestGenerateSessionToken_EmptySecret(t *testing.T) {
	_, err := GenerateSessionToken(uuid.New(), "sarah@example.com", "")
	assert.Error(t, err)
}
