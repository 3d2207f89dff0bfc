package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")
	in := Claims{
		UserID: uuid.New(),
		Email:  "president@durganagar.com",
		ClubID: uuid.New(),
		Role:   "president",
	}

	tok, err := GenerateToken(secret, in, time.Hour)
	require.NoError(t, err)

	out, err := VerifyToken(secret, tok)
	require.NoError(t, err)
	assert.Equal(t, in, *out)
}

func TestVerifyTokenRejectsWrongSecret(t *testing.T) {
	tok, err := GenerateToken([]byte("secret-a"), Claims{
		UserID: uuid.New(), ClubID: uuid.New(), Role: "collector",
	}, time.Hour)
	require.NoError(t, err)

	_, err = VerifyToken([]byte("secret-b"), tok)
	assert.Error(t, err)
}

func TestVerifyTokenRejectsExpired(t *testing.T) {
	secret := []byte("test-secret")
	tok, err := GenerateToken(secret, Claims{
		UserID: uuid.New(), ClubID: uuid.New(), Role: "collector",
	}, -time.Minute)
	require.NoError(t, err)

	_, err = VerifyToken(secret, tok)
	assert.Error(t, err)
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	_, err := VerifyToken([]byte("test-secret"), "not.a.token")
	assert.Error(t, err)
}
