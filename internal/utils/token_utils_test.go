package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := GenerateJWT(DefaultTokenSubject, "secret", time.Hour, "crypto-portfolio-tracker")
	require.NoError(t, err)

	claims, err := ParseAndValidateJWT(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, DefaultTokenSubject, claims.Subject)
	assert.Equal(t, "crypto-portfolio-tracker", claims.Issuer)
}

func TestParseJWTRejects(t *testing.T) {
	valid, err := GenerateJWT("owner", "secret", time.Hour, "test")
	require.NoError(t, err)
	expired, err := GenerateJWT("owner", "secret", -time.Minute, "test")
	require.NoError(t, err)

	_, err = ParseAndValidateJWT(valid, "other-secret")
	assert.ErrorIs(t, err, jwt.ErrSignatureInvalid)

	_, err = ParseAndValidateJWT(expired, "secret")
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)

	_, err = ParseAndValidateJWT("not-a-token", "secret")
	assert.Error(t, err)
}

func TestGenerateJWTRequiresSecret(t *testing.T) {
	_, err := GenerateJWT("owner", "", time.Hour, "test")
	assert.Error(t, err)
}
