package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordNuncaGuardaPlaintext(t *testing.T) {
	hash, err := HashPassword("123456")

	require.NoError(t, err)
	assert.NotEqual(t, "123456", hash)
	assert.NotContains(t, hash, "123456")
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("123456")
	require.NoError(t, err)

	assert.True(t, CheckPassword(hash, "123456"))
	assert.False(t, CheckPassword(hash, "654321"))
	assert.False(t, CheckPassword(hash, ""))
}
