package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignEParseJWT(t *testing.T) {
	token, err := SignJWT("segredo-de-teste", "abc-123", "freelancer", 10)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseJWT("segredo-de-teste", token)
	require.NoError(t, err)
	assert.Equal(t, "abc-123", claims.UserID)
	assert.Equal(t, "freelancer", claims.Role)
}

func TestParseJWTSegredoErrado(t *testing.T) {
	token, err := SignJWT("segredo-de-teste", "abc-123", "contratante", 10)
	require.NoError(t, err)

	_, err = ParseJWT("outro-segredo", token)
	assert.Error(t, err)
}

func TestParseJWTTokenExpirado(t *testing.T) {
	token, err := SignJWT("segredo-de-teste", "abc-123", "freelancer", -1)
	require.NoError(t, err)

	_, err = ParseJWT("segredo-de-teste", token)
	assert.Error(t, err)
}
