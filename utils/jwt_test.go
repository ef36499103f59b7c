package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaypeewhat/rooms-sana/models"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret")

	token, err := tm.Generate(models.Actor{Email: "s@x.com", Role: models.RoleStudent})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tm.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "s@x.com", claims.Email)
	assert.Equal(t, models.RoleStudent, claims.Role)
	assert.NotEmpty(t, claims.ID)
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := NewTokenManager("secret-one").Generate(models.Actor{Email: "a@x.com", Role: models.RoleAdmin})
	require.NoError(t, err)

	_, err = NewTokenManager("secret-two").Parse(token)
	assert.Error(t, err)
}

func TestParseGarbage(t *testing.T) {
	_, err := NewTokenManager("test-secret").Parse("not-a-token")
	assert.Error(t, err)
}
